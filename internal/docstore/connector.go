// Package docstore wraps the MongoDB driver behind connect/disconnect and
// four CRUD calls that report through envelope.Envelope instead of errors.
package docstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/nikmy/dbconn/internal/metrics"
	"github.com/nikmy/dbconn/pkg/envelope"
	"github.com/nikmy/dbconn/pkg/errors"
	"github.com/nikmy/dbconn/pkg/logger"
	mng "github.com/nikmy/dbconn/pkg/mongotools"
)

// Database used when neither the config nor the URI names one.
const defaultDatabase = "test"

var (
	ErrFilterRequired = errors.Error("filter is required")
	ErrEmptyPatch     = errors.Error("update patch is empty")
)

type Document = map[string]any

func New(cfg Config, log logger.Logger) *Connector {
	return &Connector{
		cfg: cfg,
		log: log.With("docstore"),
	}
}

type Connector struct {
	cfg Config
	log logger.Logger

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client and pings the primary. Failures are logged and
// reported as false.
func (c *Connector) Connect(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return true
	}

	client, err := mongo.Connect(ctx, c.clientOptions())
	if err != nil {
		c.log.Error(errors.WrapFail(err, "connect to mongo db"))
		return false
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		c.log.Error(errors.WrapFail(err, "ping mongo db"))
		c.log.Warn(errors.WrapFail(client.Disconnect(ctx), "close unhealthy client"))
		return false
	}

	c.client = client
	c.db = client.Database(databaseName(c.cfg))
	c.log.Infof("connected to mongo db %q", c.db.Name())
	return true
}

func (c *Connector) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db != nil
}

func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client, c.db = nil, nil
	if err != nil {
		return errors.WrapFail(err, "close mongo db connection")
	}

	c.log.Infof("disconnected from mongo db")
	return nil
}

func (c *Connector) Insert(ctx context.Context, collection string, document Document) envelope.Envelope {
	return metrics.Observe(metrics.StoreDocuments, "insert", c.insert(ctx, collection, document))
}

func (c *Connector) Find(ctx context.Context, collection string, filter Document) envelope.Envelope {
	return metrics.Observe(metrics.StoreDocuments, "find", c.find(ctx, collection, filter))
}

func (c *Connector) Update(ctx context.Context, collection string, filter, patch Document) envelope.Envelope {
	return metrics.Observe(metrics.StoreDocuments, "update", c.update(ctx, collection, filter, patch))
}

func (c *Connector) Delete(ctx context.Context, collection string, filter Document) envelope.Envelope {
	return metrics.Observe(metrics.StoreDocuments, "delete", c.delete(ctx, collection, filter))
}

func (c *Connector) insert(ctx context.Context, collection string, document Document) envelope.Envelope {
	coll, err := c.collection(collection)
	if err != nil {
		return c.fail("insert document", err)
	}

	if document == nil {
		return c.fail("insert document", mongo.ErrNilDocument)
	}

	result, err := coll.InsertOne(ctx, document)
	if err != nil {
		return c.fail("insert document", err)
	}

	return envelope.Inserted(mng.IDString(result.InsertedID))
}

func (c *Connector) find(ctx context.Context, collection string, filter Document) envelope.Envelope {
	coll, err := c.collection(collection)
	if err != nil {
		return c.fail("find documents", err)
	}

	cur, err := coll.Find(ctx, mng.Filter(filter))
	if err != nil {
		return c.fail("find documents", err)
	}

	found, err := mng.Drain[bson.M](ctx, cur)
	if err != nil {
		return c.fail("read cursor", err)
	}

	docs := make([]Document, 0, len(found))
	for _, doc := range found {
		docs = append(docs, mng.StringifyID(doc))
	}

	return envelope.WithData(docs)
}

func (c *Connector) update(ctx context.Context, collection string, filter, patch Document) envelope.Envelope {
	coll, err := c.collection(collection)
	if err != nil {
		return c.fail("update document", err)
	}

	if filter == nil {
		return c.fail("update document", ErrFilterRequired)
	}
	if len(patch) == 0 {
		return c.fail("update document", ErrEmptyPatch)
	}

	result, err := coll.UpdateOne(ctx, mng.Filter(filter), mng.SetAll(patch))
	if err != nil {
		return c.fail("update document", err)
	}

	return envelope.Modified(result.ModifiedCount)
}

func (c *Connector) delete(ctx context.Context, collection string, filter Document) envelope.Envelope {
	coll, err := c.collection(collection)
	if err != nil {
		return c.fail("delete document", err)
	}

	if filter == nil {
		return c.fail("delete document", ErrFilterRequired)
	}

	result, err := coll.DeleteOne(ctx, mng.Filter(filter))
	if err != nil {
		return c.fail("delete document", err)
	}

	return envelope.Deleted(result.DeletedCount)
}

func (c *Connector) collection(name string) (*mongo.Collection, error) {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()

	if db == nil {
		return nil, envelope.ErrNotConnected
	}
	if name == "" {
		return nil, envelope.ErrEmptyTarget
	}

	return db.Collection(name), nil
}

func (c *Connector) fail(what string, err error) envelope.Envelope {
	c.log.Warn(errors.WrapFail(err, what))
	return envelope.FailKind(classify(err), err)
}

func (c *Connector) clientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(c.cfg.URI)

	if c.cfg.Timeout > 0 {
		opts.SetTimeout(c.cfg.Timeout)
	}

	if c.cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: c.cfg.Auth.Username,
			Password: c.cfg.Auth.Password,
		})
	}

	if c.cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(c.cfg.Pool.MinSize)
	}
	if c.cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(c.cfg.Pool.MaxSize)
	}

	return opts
}

func classify(err error) envelope.Kind {
	switch {
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return envelope.KindTransport
	case errors.Is(err, mongo.ErrNilDocument),
		errors.Is(err, ErrFilterRequired),
		errors.Is(err, ErrEmptyPatch):
		return envelope.KindInvalid
	default:
		return envelope.Classify(err)
	}
}

func databaseName(cfg Config) string {
	if cfg.Database != "" {
		return cfg.Database
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err == nil && cs.Database != "" {
		return cs.Database
	}

	return defaultDatabase
}
