package stash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapters(t *testing.T) {
	fileBlob, err := NewFile(t.TempDir())
	require.NoError(t, err)

	adapters := map[string]Blob{
		"memory": NewMemory(),
		"file":   fileBlob,
	}

	for name, blob := range adapters {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := blob.Load(ctx, "cart:missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, blob.Save(ctx, "cart:s1", []byte(`[{"productId":1}]`)))

			data, ok, err := blob.Load(ctx, "cart:s1")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"productId":1}]`, string(data))

			require.NoError(t, blob.Delete(ctx, "cart:s1"))
			_, ok, err = blob.Load(ctx, "cart:s1")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting a missing key is fine
			require.NoError(t, blob.Delete(ctx, "cart:s1"))
		})
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Save(ctx, "k", []byte("abc")))

	data, _, err := m.Load(ctx, "k")
	require.NoError(t, err)
	data[0] = 'x'

	again, _, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
