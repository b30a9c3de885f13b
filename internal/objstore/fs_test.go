package objstore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_PutGetDelete(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	err = store.Put(ctx, "photo-key.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	rc, err := store.Get(ctx, "photo-key.jpg")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "jpeg bytes", string(body))

	err = store.Delete(ctx, "photo-key.jpg")
	require.NoError(t, err)

	_, err = store.Get(ctx, "photo-key.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestFSStore_GetMissing(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "nope.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestFSStore_DeleteMissingIsIdempotent(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	err = store.Delete(context.Background(), "never-existed.jpg")
	assert.NoError(t, err)
}

func TestFSStore_OverwriteReplacesContent(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", strings.NewReader("first")))
	require.NoError(t, store.Put(ctx, "k", strings.NewReader("second")))

	rc, err := store.Get(ctx, "k")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(body))
}
