package memory

import (
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

type Storage struct {
	rootFolder storage.Folder
}

func NewStorage(rootPath string, kvs *KVS) *Storage {
	return &Storage{
		rootFolder: NewFolder(rootPath, kvs),
	}
}

func (s *Storage) RootFolder() storage.Folder {
	return s.rootFolder
}

func (s *Storage) Close() error {
	// Nothing to close
	return nil
}
