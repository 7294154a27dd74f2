package gateway

import (
	"context"

	"github.com/nikmy/dbconn/internal/docstore"
	"github.com/nikmy/dbconn/internal/hosted"
	"github.com/nikmy/dbconn/pkg/envelope"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=gateway

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type DocumentStore interface {
	Insert(ctx context.Context, collection string, document docstore.Document) envelope.Envelope
	Find(ctx context.Context, collection string, filter docstore.Document) envelope.Envelope
	Update(ctx context.Context, collection string, filter, patch docstore.Document) envelope.Envelope
	Delete(ctx context.Context, collection string, filter docstore.Document) envelope.Envelope
	Disconnect(ctx context.Context) error
}

type HostedBackend interface {
	Insert(table string, row hosted.Row) envelope.Envelope
	Select(table string, query *hosted.Query) envelope.Envelope
	Update(table string, match, patch hosted.Row) envelope.Envelope
	Delete(table string, match hosted.Row) envelope.Envelope
}
