package internal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"github.com/wal-g/pitr-resolver/utility"
)

// Server identifies the database server whose backups are resolved. It is passed explicitly to every
// loading operation instead of being looked up in process-wide configuration.
type Server struct {
	Name string
	// Root is the storage folder holding one sub-folder per server.
	Root storage.Folder
}

func NewServer(name string, root storage.Folder) (Server, error) {
	if name == "" {
		return Server{}, errors.New("server name is empty")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return Server{}, errors.Errorf("server name '%s' must not contain path elements", name)
	}
	if root == nil {
		return Server{}, errors.Errorf("no storage folder for server '%s'", name)
	}
	return Server{Name: name, Root: root}, nil
}

// BackupFolder returns the folder with one sub-folder per backup label.
func (s Server) BackupFolder() storage.Folder {
	return s.Root.GetSubFolder(s.Name).GetSubFolder(utility.BackupPath)
}
