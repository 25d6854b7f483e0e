package docstore

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Document{}))
	return db
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	store := New(testDB(t))

	data, err := store.Get(context.Background(), "pricing/ratebook")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPutUpserts(t *testing.T) {
	ctx := context.Background()
	store := New(testDB(t))

	require.NoError(t, store.Put(ctx, "pricing/ratebook", []byte(`{"v":1}`)))
	data, err := store.Get(ctx, "pricing/ratebook")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)

	require.NoError(t, store.Put(ctx, "pricing/ratebook", []byte(`{"v":2}`)))
	data, err = store.Get(ctx, "pricing/ratebook")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), data)
}

func TestDecode(t *testing.T) {
	log := zap.NewNop()

	var out struct {
		V int `json:"v"`
	}
	assert.False(t, Decode(log, "k", nil, &out))
	assert.False(t, Decode(log, "k", []byte("not json"), &out))
	assert.Zero(t, out.V, "a bad document must not partially populate out")

	assert.True(t, Decode(log, "k", []byte(`{"v":7}`), &out))
	assert.Equal(t, 7, out.V)
}
