package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"loginsvc/internal/adapters/docstore"
)

var ErrFieldNotIndexed = errors.New("field is not indexed")

// Collection stores JSON documents under <name>:doc:<id> and keeps a unique
// equality index <name>:idx:<field>:<value> -> id for each indexed field.
type Collection struct {
	redis   *redis.Client
	name    string
	indexed map[string]struct{}
}

func NewCollection(r *redis.Client, name string, indexedFields ...string) *Collection {
	indexed := make(map[string]struct{}, len(indexedFields))
	for _, f := range indexedFields {
		indexed[f] = struct{}{}
	}
	return &Collection{redis: r, name: name, indexed: indexed}
}

func (c *Collection) docKey(id string) string {
	return c.name + ":doc:" + id
}

func (c *Collection) indexKey(field string, value any) string {
	return fmt.Sprintf("%s:idx:%s:%v", c.name, field, value)
}

func (c *Collection) idsKey() string {
	return c.name + ":ids"
}

func (c *Collection) FindOne(ctx context.Context, field string, value any) (docstore.Document, error) {
	var id string
	if field == "_id" {
		id = fmt.Sprint(value)
	} else {
		if _, ok := c.indexed[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrFieldNotIndexed, field)
		}

		var err error
		id, err = c.redis.Get(ctx, c.indexKey(field, value)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, nil
			}
			return nil, fmt.Errorf("collection index lookup failed: %w", err)
		}
	}

	data, err := c.redis.Get(ctx, c.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("collection get failed: %w", err)
	}

	var doc docstore.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("collection unmarshal failed: %w", err)
	}

	return doc, nil
}

func (c *Collection) InsertOne(ctx context.Context, doc docstore.Document) (string, error) {
	stored := make(docstore.Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}

	id, _ := stored["_id"].(string)
	if id == "" {
		id = uuid.NewString()
	}
	stored["_id"] = id

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("collection marshal failed: %w", err)
	}

	var claimed []string
	release := func() {
		if len(claimed) > 0 {
			_ = c.redis.Del(ctx, claimed...).Err()
		}
	}

	for field := range c.indexed {
		value, ok := stored[field]
		if !ok {
			continue
		}

		key := c.indexKey(field, value)
		set, err := c.redis.SetNX(ctx, key, id, 0).Result()
		if err != nil {
			release()
			return "", fmt.Errorf("collection index write failed: %w", err)
		}
		if !set {
			release()
			return "", fmt.Errorf("%w: %s=%v", docstore.ErrDuplicateKey, field, value)
		}
		claimed = append(claimed, key)
	}

	_, err = c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.docKey(id), data, 0)
		pipe.SAdd(ctx, c.idsKey(), id)
		return nil
	})
	if err != nil {
		release()
		return "", fmt.Errorf("collection insert failed: %w", err)
	}

	return id, nil
}

func (c *Collection) DeleteMany(ctx context.Context) error {
	var keys []string

	iter := c.redis.Scan(ctx, 0, c.name+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("collection scan failed: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("collection delete failed: %w", err)
	}

	return nil
}
