package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFolderTest checks the behaviour every Folder implementation must share.
func RunFolderTest(storageFolder Folder, t *testing.T) {
	sub1 := storageFolder.GetSubFolder("Sub1")

	err := storageFolder.PutObject("file0", strings.NewReader("data0"))
	assert.NoError(t, err)

	err = sub1.PutObject("file1", strings.NewReader("data1"))
	assert.NoError(t, err)

	b, err := storageFolder.Exists("file0")
	assert.NoError(t, err)
	assert.True(t, b)
	b, err = sub1.Exists("file1")
	assert.NoError(t, err)
	assert.True(t, b)
	b, err = sub1.Exists("file0")
	assert.NoError(t, err)
	assert.False(t, b)

	objects, subFolders, err := storageFolder.ListFolder()
	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Len(t, subFolders, 1)
	assert.Equal(t, "file0", objects[0].GetName())
	assert.True(t, strings.HasSuffix(subFolders[0].GetPath(), "Sub1/"))

	names, err := SubFolderNames(storageFolder)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Sub1"}, names)

	sublist, subFolders, err := sub1.ListFolder()
	assert.NoError(t, err)
	assert.Equal(t, 0, len(subFolders))
	require.Equal(t, 1, len(sublist))
	assert.Equal(t, "file1", sublist[0].GetName())

	data, err := sub1.ReadObject("file1")
	require.NoError(t, err)
	data0Str, err := io.ReadAll(data)
	assert.NoError(t, err)
	assert.Equal(t, "data1", string(data0Str))
	err = data.Close()
	assert.NoError(t, err)

	all, err := ListFolderRecursively(storageFolder)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = sub1.ReadObject("Tumba Yumba")
	assert.Error(t, err)
	assert.True(t, IsObjectNotFound(err))
}
