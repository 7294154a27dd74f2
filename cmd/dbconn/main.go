package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/dbconn/internal/docstore"
	"github.com/nikmy/dbconn/internal/gateway"
	"github.com/nikmy/dbconn/internal/hosted"
	"github.com/nikmy/dbconn/pkg/environment"
	"github.com/nikmy/dbconn/pkg/errors"
	"github.com/nikmy/dbconn/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

var (
	configPath = flag.String("config", "config.yaml", "path to yaml config")
	envName    = flag.String("env", "", "environment (dev, prod)")
	serve      = flag.Bool("serve", false, "run the http gateway instead of the example")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	if *envName != "" {
		cfg.Environment = environment.FromString(*envName)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	if !*serve {
		runExample(ctx, log, cfg)
		return
	}

	err = runGateway(ctx, log, cfg)
	if err != nil {
		log.Panic(errors.WrapFail(err, "run gateway"))
	}
}

func runGateway(ctx context.Context, log logger.Logger, cfg *Config) error {
	docs, rows, err := openStores(ctx, log, cfg)
	if err != nil {
		return err
	}

	srv := gateway.NewServer(cfg.Gateway, log, docs, rows)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Error(errors.WrapFail(srv.Shutdown(shutdownCtx), "shutdown gateway"))
	})

	err = srv.Serve(ctx)
	if err != nil {
		return err
	}

	<-stopped
	stdlog.Println("Shutdown complete")
	return nil
}

// openStores builds the hosted backend before dialing mongo, so a rejected
// hosted config leaves no open mongo client.
func openStores(ctx context.Context, log logger.Logger, cfg *Config) (gateway.DocumentStore, gateway.HostedBackend, error) {
	var rows gateway.HostedBackend
	if cfg.Supabase.Enabled() {
		backend, err := hosted.New(cfg.Supabase, log)
		if err != nil {
			return nil, nil, errors.WrapFail(err, "init hosted backend")
		}
		rows = backend
	}

	var docs gateway.DocumentStore
	if cfg.Mongo.Enabled() {
		store := docstore.New(cfg.Mongo, log)
		if !store.Connect(ctx) {
			return nil, nil, errors.Fail("connect to document store")
		}
		docs = store
	}

	return docs, rows, nil
}
