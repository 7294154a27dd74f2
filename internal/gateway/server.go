package gateway

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/dbconn/internal/docstore"
	"github.com/nikmy/dbconn/internal/hosted"
	"github.com/nikmy/dbconn/pkg/envelope"
	"github.com/nikmy/dbconn/pkg/errors"
	"github.com/nikmy/dbconn/pkg/logger"
)

// NewServer exposes docs under /docs and rows under /rows. Either store
// may be nil, in which case its routes are not registered.
func NewServer(cfg Config, log logger.Logger, docs DocumentStore, rows HostedBackend) Server {
	serveLog := log.With("gateway")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		ProxyHeader:           cfg.Proxy.Header,
		RequestMethods: []string{
			fiber.MethodHead,
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPatch,
			fiber.MethodDelete,
		},
	}

	if len(cfg.Proxy.Trusted) != 0 {
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = cfg.Proxy.Trusted
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		status, kind := http.StatusInternalServerError, envelope.KindBackend

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status, kind = fiberErr.Code, envelope.KindInvalid
		} else {
			serveLog.Warn(errors.WrapFail(err, "handle http request"))
		}

		return c.Status(status).JSON(envelope.FailKind(kind, err))
	}

	s := &server{
		docs: docs,
		rows: rows,
		http: fiber.New(fiberCfg),
		addr: cfg.HTTP.Addr,
		log:  serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	docs DocumentStore
	rows HostedBackend
	http *fiber.App
	addr string
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	s.log.Infof("listening on %s", s.addr)

	select {
	case err := <-errCh:
		return errors.WrapFail(err, "listen")
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	if s.docs != nil {
		err = s.docs.Disconnect(ctx)
		if err != nil {
			errs = append(errs, errors.WrapFail(err, "disconnect document store"))
		}
	}

	return errors.Join(errs)
}

func (s *server) setupRoutes() {
	s.http.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if s.docs != nil {
		docs := s.http.Group("/docs/:collection")
		docs.Post("/", s.handleInsertDocument)
		docs.Post("/find", s.handleFindDocuments)
		docs.Patch("/", s.handleUpdateDocument)
		docs.Delete("/", s.handleDeleteDocument)
	}

	if s.rows != nil {
		rows := s.http.Group("/rows/:table")
		rows.Post("/", s.handleInsertRow)
		rows.Post("/select", s.handleSelectRows)
		rows.Patch("/", s.handleUpdateRows)
		rows.Delete("/", s.handleDeleteRows)
	}
}

type filterRequest struct {
	Filter docstore.Document `json:"filter"`
}

type updateDocumentRequest struct {
	Filter docstore.Document `json:"filter"`
	Patch  docstore.Document `json:"patch"`
}

type matchRequest struct {
	Match hosted.Row `json:"match"`
}

type updateRowsRequest struct {
	Match hosted.Row `json:"match"`
	Patch hosted.Row `json:"patch"`
}

func (s *server) handleInsertDocument(c *fiber.Ctx) error {
	var doc docstore.Document
	err := c.BodyParser(&doc)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse document"))
	}

	env := s.docs.Insert(c.UserContext(), c.Params("collection"), doc)
	return s.send(c, http.StatusCreated, env)
}

func (s *server) handleFindDocuments(c *fiber.Ctx) error {
	var req filterRequest
	err := parseOptional(c, &req)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse find request"))
	}

	env := s.docs.Find(c.UserContext(), c.Params("collection"), req.Filter)
	return s.send(c, http.StatusOK, env)
}

func (s *server) handleUpdateDocument(c *fiber.Ctx) error {
	var req updateDocumentRequest
	err := c.BodyParser(&req)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse update request"))
	}

	env := s.docs.Update(c.UserContext(), c.Params("collection"), req.Filter, req.Patch)
	return s.send(c, http.StatusOK, env)
}

func (s *server) handleDeleteDocument(c *fiber.Ctx) error {
	var req filterRequest
	err := c.BodyParser(&req)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse delete request"))
	}

	env := s.docs.Delete(c.UserContext(), c.Params("collection"), req.Filter)
	return s.send(c, http.StatusOK, env)
}

func (s *server) handleInsertRow(c *fiber.Ctx) error {
	var row hosted.Row
	err := c.BodyParser(&row)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse row"))
	}

	return s.send(c, http.StatusCreated, s.rows.Insert(c.Params("table"), row))
}

func (s *server) handleSelectRows(c *fiber.Ctx) error {
	var query hosted.Query
	err := parseOptional(c, &query)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse select request"))
	}

	return s.send(c, http.StatusOK, s.rows.Select(c.Params("table"), &query))
}

func (s *server) handleUpdateRows(c *fiber.Ctx) error {
	var req updateRowsRequest
	err := c.BodyParser(&req)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse update request"))
	}

	return s.send(c, http.StatusOK, s.rows.Update(c.Params("table"), req.Match, req.Patch))
}

func (s *server) handleDeleteRows(c *fiber.Ctx) error {
	var req matchRequest
	err := c.BodyParser(&req)
	if err != nil {
		return s.sendInvalid(c, errors.WrapFail(err, "parse delete request"))
	}

	return s.send(c, http.StatusOK, s.rows.Delete(c.Params("table"), req.Match))
}

func (s *server) send(c *fiber.Ctx, okStatus int, env envelope.Envelope) error {
	return c.Status(statusOf(env, okStatus)).JSON(env)
}

func (s *server) sendInvalid(c *fiber.Ctx, err error) error {
	s.log.Warn(err)
	return s.send(c, http.StatusBadRequest, envelope.FailKind(envelope.KindInvalid, err))
}

func statusOf(env envelope.Envelope, okStatus int) int {
	if env.Success {
		return okStatus
	}

	switch env.Kind {
	case envelope.KindInvalid:
		return http.StatusBadRequest
	case envelope.KindNotConnected:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// parseOptional leaves out untouched when the body is empty.
func parseOptional(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
