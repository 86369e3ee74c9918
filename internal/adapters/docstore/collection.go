// Package docstore loads users from a document collection.
package docstore

import (
	"context"
	"errors"
)

var ErrDuplicateKey = errors.New("duplicate key")

type Document map[string]any

// Collection is the subset of a document store the repositories need.
// FindOne returns a nil document and a nil error when nothing matches.
type Collection interface {
	FindOne(ctx context.Context, field string, value any) (Document, error)
	InsertOne(ctx context.Context, doc Document) (string, error)
	DeleteMany(ctx context.Context) error
}
