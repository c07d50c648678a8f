package fs

import (
	"fmt"
	"os"

	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

type Storage struct {
	rootFolder storage.Folder
}

type Config struct {
	// RootPath points to the directory on the FS where this storage is located. All objects are read inside this dir.
	RootPath string
}

func NewStorage(config *Config) (*Storage, error) {
	if _, err := os.Stat(config.RootPath); err != nil {
		return nil, fmt.Errorf("FS storage root directory doesn't exist or is inaccessible: %w", err)
	}
	return &Storage{NewFolder(config.RootPath, "")}, nil
}

func (s *Storage) RootFolder() storage.Folder {
	return s.rootFolder
}

func (s *Storage) Close() error {
	// Nothing to close
	return nil
}
