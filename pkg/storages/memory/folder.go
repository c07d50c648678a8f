package memory

import (
	"io"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

type Folder struct {
	path string
	kvs  *KVS
}

func NewFolder(path string, kvs *KVS) *Folder {
	return &Folder{path, kvs}
}

func NewError(err error, format string, args ...interface{}) storage.Error {
	return storage.NewError(err, "Memory", format, args...)
}

func (folder *Folder) Exists(objectRelativePath string) (bool, error) {
	_, exists := folder.kvs.Load(path.Join(folder.path, objectRelativePath))
	return exists, nil
}

func (folder *Folder) GetPath() string {
	return folder.path
}

func (folder *Folder) ListFolder() (objects []storage.Object, subFolders []storage.Folder, err error) {
	subFolderNames := map[string]bool{}
	folder.kvs.Range(func(key string, value TimeStampedData) bool {
		if !strings.HasPrefix(key, folder.path) {
			return true
		}
		relativePath := strings.TrimPrefix(key, folder.path)
		if !strings.Contains(relativePath, "/") {
			objects = append(objects, storage.NewLocalObject(relativePath, value.Timestamp, int64(value.Size)))
		} else {
			subFolderNames[strings.Split(relativePath, "/")[0]] = true
		}
		return true
	})
	names := make([]string, 0, len(subFolderNames))
	for name := range subFolderNames {
		names = append(names, name)
	}
	// sync.Map ranges in random order, keep listings stable
	sort.Strings(names)
	for _, name := range names {
		subFolders = append(subFolders, NewFolder(path.Join(folder.path, name)+"/", folder.kvs))
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].GetName() < objects[j].GetName()
	})
	return
}

func (folder *Folder) GetSubFolder(subFolderRelativePath string) storage.Folder {
	return NewFolder(path.Join(folder.path, subFolderRelativePath)+"/", folder.kvs)
}

func (folder *Folder) ReadObject(objectRelativePath string) (io.ReadCloser, error) {
	objectAbsPath := path.Join(folder.path, objectRelativePath)
	object, exists := folder.kvs.Load(objectAbsPath)
	if !exists {
		return nil, storage.NewObjectNotFoundError(objectAbsPath)
	}
	return io.NopCloser(object.reader()), nil
}

func (folder *Folder) PutObject(name string, content io.Reader) error {
	data, err := io.ReadAll(content)
	objectPath := path.Join(folder.path, name)
	if err != nil {
		return errors.Wrapf(err, "failed to put '%s' in memory storage", objectPath)
	}
	folder.kvs.Store(objectPath, data)
	return nil
}
