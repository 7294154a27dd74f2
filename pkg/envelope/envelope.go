// Package envelope defines the uniform result returned by every connector
// operation.
//
// An Envelope is either a success, carrying exactly one payload field
// (Data, ID, ModifiedCount or DeletedCount), or a failure carrying the
// stringified underlying error and its Kind.
package envelope

import (
	"context"
	"net"
	"net/url"

	"github.com/nikmy/dbconn/pkg/errors"
)

type Kind string

const (
	KindNone         Kind = ""
	KindNotConnected Kind = "not_connected"
	KindInvalid      Kind = "invalid"
	KindTransport    Kind = "transport"
	KindBackend      Kind = "backend"
)

var (
	ErrNotConnected = errors.Error("not connected")
	ErrEmptyTarget  = errors.Error("empty collection or table name")
)

type Envelope struct {
	Success bool `json:"success"`

	Data          any    `json:"data,omitempty"`
	ID            string `json:"id,omitempty"`
	ModifiedCount *int64 `json:"modified_count,omitempty"`
	DeletedCount  *int64 `json:"deleted_count,omitempty"`

	Error string `json:"error,omitempty"`
	Kind  Kind   `json:"kind,omitempty"`
}

func WithData(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Inserted(id string) Envelope {
	return Envelope{Success: true, ID: id}
}

func Modified(n int64) Envelope {
	return Envelope{Success: true, ModifiedCount: &n}
}

func Deleted(n int64) Envelope {
	return Envelope{Success: true, DeletedCount: &n}
}

// Fail builds a failure envelope, classifying err with Classify.
func Fail(err error) Envelope {
	return FailKind(Classify(err), err)
}

func FailKind(kind Kind, err error) Envelope {
	if err == nil {
		err = errors.Error("unknown error")
	}
	if kind == KindNone {
		kind = KindBackend
	}
	return Envelope{Error: err.Error(), Kind: kind}
}

// Classify covers the store-agnostic cases. Connectors refine it with
// their driver's own error predicates before falling back to it.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotConnected):
		return KindNotConnected
	case errors.Is(err, ErrEmptyTarget):
		return KindInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransport
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindTransport
	}

	return KindBackend
}

func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	return errors.Error(e.Error)
}
