package fs

import (
	"io"
	"os"
	"path"
	"strings"

	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"github.com/wal-g/tracelog"
)

const dirDefaultMode = 0755

func NewError(err error, format string, args ...interface{}) storage.Error {
	return storage.NewError(err, "FS", format, args...)
}

// Folder represents folder of file system
type Folder struct {
	rootPath string
	subpath  string
}

func NewFolder(rootPath string, subPath string) *Folder {
	subPath = strings.TrimPrefix(subPath, "/")
	return &Folder{rootPath, subPath}
}

func (folder *Folder) GetPath() string {
	return folder.subpath
}

func (folder *Folder) ListFolder() (objects []storage.Object, subFolders []storage.Folder, err error) {
	files, err := os.ReadDir(path.Join(folder.rootPath, folder.subpath))
	if err != nil {
		return nil, nil, NewError(err, "Unable to read folder")
	}
	for _, fileInfo := range files {
		if fileInfo.IsDir() {
			// I do not use GetSubfolder() intentially
			subPath := path.Join(folder.subpath, fileInfo.Name()) + "/"
			subFolders = append(subFolders, NewFolder(folder.rootPath, subPath))
		} else {
			info, err := fileInfo.Info()
			if err != nil {
				// the file was removed between ReadDir and Info
				tracelog.DebugLogger.Printf("Skipping %s: %v\n", fileInfo.Name(), err)
				continue
			}
			objects = append(objects, storage.NewLocalObject(fileInfo.Name(), info.ModTime(), info.Size()))
		}
	}
	return
}

func (folder *Folder) Exists(objectRelativePath string) (bool, error) {
	_, err := os.Stat(folder.GetFilePath(objectRelativePath))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, NewError(err, "Unable to stat object %v", objectRelativePath)
	}
	return true, nil
}

// GetSubFolder never creates the directory: metadata folders are owned by the backup process.
func (folder *Folder) GetSubFolder(subFolderRelativePath string) storage.Folder {
	return NewFolder(folder.rootPath, path.Join(folder.subpath, subFolderRelativePath)+"/")
}

func (folder *Folder) ReadObject(objectRelativePath string) (io.ReadCloser, error) {
	filePath := folder.GetFilePath(objectRelativePath)
	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, storage.NewObjectNotFoundError(filePath)
	}
	if err != nil {
		return nil, NewError(err, "Unable to read object %v", filePath)
	}
	return file, nil
}

func (folder *Folder) PutObject(name string, content io.Reader) error {
	tracelog.DebugLogger.Printf("Put %v into %v\n", name, folder.subpath)
	filePath := folder.GetFilePath(name)
	file, err := OpenFileWithDir(filePath)
	if err != nil {
		return NewError(err, "Unable to open file %v", filePath)
	}
	_, err = io.Copy(file, content)
	if err != nil {
		closerErr := file.Close()
		if closerErr != nil {
			tracelog.InfoLogger.Println("Error during closing failed upload ", closerErr)
		}
		return NewError(err, "Unable to copy data to %v", filePath)
	}
	err = file.Close()
	if err != nil {
		return NewError(err, "Unable to close %v", filePath)
	}
	return nil
}

func OpenFileWithDir(filePath string) (*os.File, error) {
	file, err := os.Create(filePath)
	if os.IsNotExist(err) {
		err = os.MkdirAll(path.Dir(filePath), dirDefaultMode)
		if err != nil {
			return nil, err
		}
		file, err = os.Create(filePath)
	}
	return file, err
}

func (folder *Folder) GetFilePath(objectRelativePath string) string {
	return path.Join(folder.rootPath, folder.subpath, objectRelativePath)
}
