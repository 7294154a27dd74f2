package mongotools

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/dbconn/pkg/errors"
)

const FieldID = "_id"

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(map[string]any, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": bson.M(s)}
}

func All() bson.M {
	return bson.M{}
}

// Filter copies doc into a query filter. A hex string under "_id" is
// turned back into an ObjectID, so ids handed out by IDString match again.
func Filter(doc map[string]any) bson.M {
	if len(doc) == 0 {
		return All()
	}

	f := make(bson.M, len(doc))
	for k, v := range doc {
		f[k] = v
	}

	if raw, ok := f[FieldID].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			f[FieldID] = oid
		}
	}

	return f
}

func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StringifyID replaces an ObjectID "_id" with its hex form in place.
func StringifyID(doc bson.M) bson.M {
	if oid, ok := doc[FieldID].(primitive.ObjectID); ok {
		doc[FieldID] = oid.Hex()
	}
	return doc
}

// Drain decodes every document left in c and closes it. The result is
// never nil.
func Drain[T any](ctx context.Context, c *mongo.Cursor) ([]T, error) {
	defer c.Close(ctx)

	items := make([]T, 0)
	for c.Next(ctx) {
		var item T
		if err := c.Decode(&item); err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}
		items = append(items, item)
	}

	return items, c.Err()
}
