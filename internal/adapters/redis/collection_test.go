package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginsvc/internal/adapters/docstore"
)

func newTestCollection(t *testing.T) (*Collection, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewCollection(rdb, "users", "email"), mr
}

func TestFindOneMiss(t *testing.T) {
	c, _ := newTestCollection(t)

	doc, err := c.FindOne(context.Background(), "email", "invalid_email@mail.com")

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestInsertThenFindByIndexedField(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	id, err := c.InsertOne(ctx, docstore.Document{"email": "valid_email@mail.com", "password": "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	doc, err := c.FindOne(ctx, "email", "valid_email@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "valid_email@mail.com", doc["email"])
	assert.Equal(t, "hash", doc["password"])
	assert.Equal(t, id, doc["_id"])

	byID, err := c.FindOne(ctx, "_id", id)
	require.NoError(t, err)
	assert.Equal(t, doc, byID)
}

func TestInsertKeepsProvidedID(t *testing.T) {
	c, _ := newTestCollection(t)

	id, err := c.InsertOne(context.Background(), docstore.Document{"_id": "fixed", "email": "a@mail.com"})

	require.NoError(t, err)
	assert.Equal(t, "fixed", id)
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	c, _ := newTestCollection(t)
	doc := docstore.Document{"email": "a@mail.com"}

	_, err := c.InsertOne(context.Background(), doc)

	require.NoError(t, err)
	assert.NotContains(t, doc, "_id")
}

func TestInsertRejectsDuplicateIndexedValue(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	_, err := c.InsertOne(ctx, docstore.Document{"email": "dup@mail.com"})
	require.NoError(t, err)

	_, err = c.InsertOne(ctx, docstore.Document{"email": "dup@mail.com"})
	assert.ErrorIs(t, err, docstore.ErrDuplicateKey)
}

func TestFindOneUnindexedField(t *testing.T) {
	c, _ := newTestCollection(t)

	_, err := c.FindOne(context.Background(), "name", "x")

	assert.ErrorIs(t, err, ErrFieldNotIndexed)
}

func TestDeleteMany(t *testing.T) {
	c, mr := newTestCollection(t)
	ctx := context.Background()

	_, err := c.InsertOne(ctx, docstore.Document{"email": "a@mail.com"})
	require.NoError(t, err)
	_, err = c.InsertOne(ctx, docstore.Document{"email": "b@mail.com"})
	require.NoError(t, err)
	mr.Set("other:key", "keep")

	require.NoError(t, c.DeleteMany(ctx))

	doc, err := c.FindOne(ctx, "email", "a@mail.com")
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.True(t, mr.Exists("other:key"))

	_, err = c.InsertOne(ctx, docstore.Document{"email": "a@mail.com"})
	assert.NoError(t, err)
}

func TestFindOneStoreFailure(t *testing.T) {
	c, mr := newTestCollection(t)
	mr.Close()

	_, err := c.FindOne(context.Background(), "email", "a@mail.com")

	assert.Error(t, err)
}
