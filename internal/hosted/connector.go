// Package hosted wraps the Supabase REST (PostgREST) client behind four
// table operations that report through envelope.Envelope.
package hosted

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/nikmy/dbconn/internal/metrics"
	"github.com/nikmy/dbconn/pkg/envelope"
	"github.com/nikmy/dbconn/pkg/errors"
	"github.com/nikmy/dbconn/pkg/logger"
)

const (
	restPath             = "/rest/v1"
	returnRepresentation = "representation"
)

var ErrMatchRequired = errors.Error("match is required")

type Row = map[string]any

// Query narrows Select. Where holds equality conditions, all of which
// must hold.
type Query struct {
	Where Row `json:"where"`
}

func New(cfg Config, log logger.Logger) (*Connector, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.WrapFail(err, "parse supabase url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("supabase url %q must be absolute", cfg.URL)
	}
	if cfg.Key == "" {
		return nil, errors.Error("empty supabase api key")
	}

	client := postgrest.NewClient(
		strings.TrimRight(cfg.URL, "/")+restPath,
		cfg.Schema,
		map[string]string{
			"apikey":        cfg.Key,
			"Authorization": "Bearer " + cfg.Key,
		},
	)
	if client.ClientError != nil {
		return nil, errors.WrapFail(client.ClientError, "create postgrest client")
	}

	return &Connector{
		client: client,
		log:    log.With("hosted"),
	}, nil
}

type Connector struct {
	client *postgrest.Client
	log    logger.Logger
}

func (c *Connector) Insert(table string, row Row) envelope.Envelope {
	return metrics.Observe(metrics.StoreHosted, "insert", c.insert(table, row))
}

func (c *Connector) Select(table string, query *Query) envelope.Envelope {
	return metrics.Observe(metrics.StoreHosted, "select", c.selectRows(table, query))
}

func (c *Connector) Update(table string, match, patch Row) envelope.Envelope {
	return metrics.Observe(metrics.StoreHosted, "update", c.update(table, match, patch))
}

func (c *Connector) Delete(table string, match Row) envelope.Envelope {
	return metrics.Observe(metrics.StoreHosted, "delete", c.delete(table, match))
}

func (c *Connector) insert(table string, row Row) envelope.Envelope {
	if table == "" {
		return c.fail("insert row", envelope.ErrEmptyTarget)
	}

	body, err := encode(row)
	if err != nil {
		return c.invalid("insert row", err)
	}

	req := c.client.From(table).Insert(body, false, "", returnRepresentation, "")
	return c.execute("insert row", req)
}

func (c *Connector) selectRows(table string, query *Query) envelope.Envelope {
	if table == "" {
		return c.fail("select rows", envelope.ErrEmptyTarget)
	}

	req := c.client.From(table).Select("*", "", false)
	if query != nil {
		var err error
		req, err = applyEq(req, query.Where)
		if err != nil {
			return c.invalid("select rows", err)
		}
	}

	return c.execute("select rows", req)
}

func (c *Connector) update(table string, match, patch Row) envelope.Envelope {
	if table == "" {
		return c.fail("update rows", envelope.ErrEmptyTarget)
	}
	if match == nil {
		return c.fail("update rows", ErrMatchRequired)
	}

	body, err := encode(patch)
	if err != nil {
		return c.invalid("update rows", err)
	}

	req, err := applyEq(c.client.From(table).Update(body, returnRepresentation, ""), match)
	if err != nil {
		return c.invalid("update rows", err)
	}

	return c.execute("update rows", req)
}

func (c *Connector) delete(table string, match Row) envelope.Envelope {
	if table == "" {
		return c.fail("delete rows", envelope.ErrEmptyTarget)
	}
	if match == nil {
		return c.fail("delete rows", ErrMatchRequired)
	}

	req, err := applyEq(c.client.From(table).Delete(returnRepresentation, ""), match)
	if err != nil {
		return c.invalid("delete rows", err)
	}

	return c.execute("delete rows", req)
}

func (c *Connector) execute(what string, req *postgrest.FilterBuilder) envelope.Envelope {
	rows := make([]Row, 0)

	_, err := req.ExecuteTo(&rows)
	if err != nil {
		return c.fail(what, err)
	}

	// "null" decodes into a nil slice
	if rows == nil {
		rows = make([]Row, 0)
	}

	return envelope.WithData(rows)
}

func (c *Connector) fail(what string, err error) envelope.Envelope {
	kind := envelope.Classify(err)
	if errors.Is(err, ErrMatchRequired) {
		kind = envelope.KindInvalid
	}

	c.log.Warn(errors.WrapFail(err, what))
	return envelope.FailKind(kind, err)
}

func (c *Connector) invalid(what string, err error) envelope.Envelope {
	c.log.Warn(errors.WrapFail(err, what))
	return envelope.FailKind(envelope.KindInvalid, err)
}

// encode marshals up front: postgrest-go records its own marshal failures
// on the shared client, poisoning every later request.
func encode(row Row) (json.RawMessage, error) {
	body, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// applyEq adds one eq filter per key, in key order. Filters share the
// query parameter namespace, so reserved parameter names are refused.
func applyEq(req *postgrest.FilterBuilder, where Row) (*postgrest.FilterBuilder, error) {
	keys := make([]string, 0, len(where))
	for k := range where {
		if _, ok := reservedParams[k]; ok {
			return nil, errors.Errorf("column %q collides with a query parameter", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := where[k]
		if v == nil {
			req = req.Is(k, "null")
			continue
		}

		text, err := formatValue(v)
		if err != nil {
			return nil, errors.WrapFailf(err, "filter on %q", k)
		}
		req = req.Eq(k, text)
	}

	return req, nil
}

var reservedParams = map[string]struct{}{
	"select":      {},
	"order":       {},
	"limit":       {},
	"offset":      {},
	"on_conflict": {},
	"columns":     {},
	"and":         {},
	"or":          {},
}

func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", errors.Errorf("unsupported filter value of type %T", v)
	}
}
