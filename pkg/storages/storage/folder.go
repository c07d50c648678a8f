package storage

import (
	"io"
	"path"
	"strings"
)

//go:generate mockgen -destination=../../../test/mocks/mock_folder.go -package mocks -build_flags -mod=readonly github.com/wal-g/pitr-resolver/pkg/storages/storage Folder

// Folder is a read-mostly handle to a directory-like location in a storage. Backup metadata is only ever
// read through it; PutObject exists so that tests and tooling can lay out fixtures.
type Folder interface {
	// GetPath provides a relative path from the root of the storage. It must always end with '/'.
	GetPath() string

	// ListFolder lists the folder and provides nested objects and folders. Objects must be with relative paths.
	ListFolder() (objects []Object, subFolders []Folder, err error)

	// Exists checks if an object exists in the folder.
	Exists(objectRelativePath string) (bool, error)

	// GetSubFolder returns a handle to the subfolder. Does not have to instantiate the subfolder in any material form.
	GetSubFolder(subFolderRelativePath string) Folder

	// ReadObject reads an object from the folder. Must return ObjectNotFoundError in case the object doesn't exist.
	ReadObject(objectRelativePath string) (io.ReadCloser, error)

	// PutObject uploads a new object into the folder by a relative path. If an object with the same name already
	// exists, it is overwritten.
	PutObject(name string, content io.Reader) error
}

type RelativePathObject struct {
	Object
	ParentDir string
}

func (o RelativePathObject) GetName() string {
	return path.Join(o.ParentDir, o.Object.GetName())
}

func ListFolderRecursively(folder Folder) (relativePathObjects []Object, err error) {
	queue := make([]Folder, 0)
	queue = append(queue, folder)
	for len(queue) > 0 {
		subFolder := queue[0]
		queue = queue[1:]
		objects, subFolders, err := subFolder.ListFolder()
		if err != nil {
			return nil, err
		}
		folderPrefix := strings.TrimPrefix(subFolder.GetPath(), folder.GetPath())
		for _, object := range objects {
			relativePathObjects = append(relativePathObjects, RelativePathObject{object, folderPrefix})
		}
		queue = append(queue, subFolders...)
	}
	return relativePathObjects, nil
}

// SubFolderNames returns the last path element of every direct subfolder of the folder.
func SubFolderNames(folder Folder) ([]string, error) {
	_, subFolders, err := folder.ListFolder()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(subFolders))
	for _, subFolder := range subFolders {
		names = append(names, path.Base(strings.TrimSuffix(subFolder.GetPath(), "/")))
	}
	return names, nil
}
