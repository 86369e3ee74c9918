package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"loginsvc/internal/adapters/docstore"
)

type Collection struct {
	coll *mongo.Collection
}

func NewCollection(db *mongo.Database, name string) *Collection {
	return &Collection{coll: db.Collection(name)}
}

func (c *Collection) FindOne(ctx context.Context, field string, value any) (docstore.Document, error) {
	var doc bson.M
	if err := c.coll.FindOne(ctx, bson.M{field: value}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}

	return docstore.Document(doc), nil
}

func (c *Collection) InsertOne(ctx context.Context, doc docstore.Document) (string, error) {
	res, err := c.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %v", docstore.ErrDuplicateKey, err)
		}
		return "", fmt.Errorf("mongo insert failed: %w", err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (c *Collection) DeleteMany(ctx context.Context) error {
	if _, err := c.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("mongo delete failed: %w", err)
	}
	return nil
}

// EnsureEmailIndex creates the unique index the login lookup relies on.
func (c *Collection) EnsureEmailIndex(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo create index failed: %w", err)
	}
	return nil
}
