package memory

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

func TestMemoryFolder(t *testing.T) {
	storage.RunFolderTest(NewFolder("in_memory/", NewKVS()), t)
}

func TestMemoryFolder_ObjectTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 1500, time.UTC)
	folder := NewFolder("in_memory/", NewKVS(WithCustomTime(func() time.Time { return now })))

	require.NoError(t, folder.PutObject("a", strings.NewReader("abc")))

	objects, _, err := folder.ListFolder()
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, int64(3), objects[0].GetSize())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 2000, time.UTC), objects[0].GetLastModified())
}

func TestMemoryFolder_ReadTwice(t *testing.T) {
	folder := NewFolder("in_memory/", NewKVS())
	require.NoError(t, folder.PutObject("a", strings.NewReader("abc")))

	for i := 0; i < 2; i++ {
		r, err := folder.ReadObject("a")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(data))
	}
}
