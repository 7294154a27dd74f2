package main

import (
	"context"
	"encoding/json"

	"github.com/nikmy/dbconn/internal/docstore"
	"github.com/nikmy/dbconn/internal/hosted"
	"github.com/nikmy/dbconn/pkg/envelope"
	"github.com/nikmy/dbconn/pkg/errors"
	"github.com/nikmy/dbconn/pkg/logger"
)

func runExample(ctx context.Context, log logger.Logger, cfg *Config) {
	log = log.With("example")

	runDocumentsExample(ctx, log, cfg.Mongo)
	runRowsExample(log, cfg.Supabase)
}

func runDocumentsExample(ctx context.Context, log logger.Logger, cfg docstore.Config) {
	if !cfg.Enabled() {
		log.Warnf("mongo.uri is not set, skipping document store example")
		return
	}

	docs := docstore.New(cfg, log)
	if !docs.Connect(ctx) {
		return
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Warn(docs.Disconnect(closeCtx))
	}()

	report(log, "insert", docs.Insert(ctx, "users", docstore.Document{
		"name":  "Carlos Oliveira",
		"email": "carlos@email.com",
		"age":   35,
	}))

	report(log, "find", docs.Find(ctx, "users", docstore.Document{"name": "Carlos Oliveira"}))
}

func runRowsExample(log logger.Logger, cfg hosted.Config) {
	if !cfg.Enabled() {
		log.Warnf("supabase.url is not set, skipping hosted backend example")
		return
	}

	rows, err := hosted.New(cfg, log)
	if err != nil {
		log.Error(errors.WrapFail(err, "init hosted backend"))
		return
	}

	report(log, "supabase insert", rows.Insert("users", hosted.Row{
		"name":  "Ana Costa",
		"email": "ana@email.com",
		"age":   28,
	}))

	report(log, "supabase select", rows.Select("users", &hosted.Query{
		Where: hosted.Row{"name": "Ana Costa"},
	}))
}

func report(log logger.Logger, label string, env envelope.Envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		log.Error(errors.WrapFailf(err, "marshal %s result", label))
		return
	}
	log.Infof("%s: %s", label, raw)
}
