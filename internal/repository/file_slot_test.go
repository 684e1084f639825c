package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_EmptyLoad(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir(), "crimeData")
	require.NoError(t, err)

	payload, err := slot.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFileSlot_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "nested", "data")

	slot, err := NewFileSlot(root, "crimeData")
	require.NoError(t, err)
	require.NoError(t, slot.Save(ctx, []byte(`[{"id":1}]`)))
	require.NoError(t, slot.Save(ctx, []byte(`[{"id":2}]`)))

	reopened, err := NewFileSlot(root, "crimeData")
	require.NoError(t, err)
	payload, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":2}]`), payload)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "crimeData.json", entries[0].Name())
}

func TestFileSlot_RejectsTraversalKey(t *testing.T) {
	for _, key := range []string{"", "../escape", "a/b"} {
		_, err := NewFileSlot(t.TempDir(), key)
		assert.Error(t, err, key)
	}
}
