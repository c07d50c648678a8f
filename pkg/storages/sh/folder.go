package sh

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"github.com/wal-g/tracelog"
)

type Folder struct {
	client SftpClient
	path   string
}

const defaultBufferSize = 64 * 1024

func NewFolder(client SftpClient, path string) *Folder {
	return &Folder{client, storage.AddDelimiterToPath(path)}
}

func NewFolderError(err error, format string, args ...interface{}) storage.Error {
	return storage.NewError(err, "SSH", format, args...)
}

func (folder *Folder) GetPath() string {
	return folder.path
}

func (folder *Folder) ListFolder() (objects []storage.Object, subFolders []storage.Folder, err error) {
	client := folder.client
	path := folder.path

	filesInfo, err := client.ReadDir(folder.path)

	if os.IsNotExist(err) {
		// Folder does not exists, it means where are no objects in folder
		tracelog.InfoLogger.Println("\tskipped " + folder.path + ": " + err.Error())
		err = nil
		return
	}

	if err != nil {
		return nil, nil,
			NewFolderError(err, "Fail read folder '%s'", path)
	}

	for _, fileInfo := range filesInfo {
		if fileInfo.IsDir() {
			subFolders = append(subFolders, NewFolder(folder.client, client.Join(path, fileInfo.Name())))
			// Folder is not object, just skip it
			continue
		}

		object := storage.NewLocalObject(
			fileInfo.Name(),
			fileInfo.ModTime(),
			fileInfo.Size(),
		)
		objects = append(objects, object)
	}

	return
}

func (folder *Folder) Exists(objectRelativePath string) (bool, error) {
	path := folder.client.Join(folder.path, objectRelativePath)
	_, err := folder.client.Stat(path)

	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, NewFolderError(
			err, "Fail check object existence '%s'", path,
		)
	}

	return true, nil
}

func (folder *Folder) GetSubFolder(subFolderRelativePath string) storage.Folder {
	return NewFolder(folder.client, folder.client.Join(folder.path, subFolderRelativePath))
}

func (folder *Folder) ReadObject(objectRelativePath string) (io.ReadCloser, error) {
	path := folder.client.Join(folder.path, objectRelativePath)
	file, err := folder.client.OpenFile(path)

	if os.IsNotExist(err) {
		return nil, storage.NewObjectNotFoundError(path)
	}
	if err != nil {
		return nil, NewFolderError(err, "Fail open file '%s'", path)
	}

	return struct {
		io.Reader
		io.Closer
	}{bufio.NewReaderSize(file, defaultBufferSize), file}, nil
}

func (folder *Folder) PutObject(name string, content io.Reader) error {
	client := folder.client
	absolutePath := client.Join(folder.path, name)

	dirPath := filepath.Dir(absolutePath)
	err := client.Mkdir(dirPath)
	if err != nil {
		return NewFolderError(
			err, "Fail to create directory '%s'",
			dirPath,
		)
	}

	file, err := client.CreateFile(absolutePath)
	if err != nil {
		return NewFolderError(
			err, "Fail to create file '%s'",
			absolutePath,
		)
	}

	_, err = io.Copy(file, content)
	if err != nil {
		closerErr := file.Close()
		if closerErr != nil {
			tracelog.InfoLogger.Println("Error during closing failed upload ", closerErr)
		}
		return NewFolderError(
			err, "Fail write content to file '%s'",
			absolutePath,
		)
	}
	err = file.Close()
	if err != nil {
		return NewFolderError(
			err, "Fail write close file '%s'",
			absolutePath,
		)
	}
	return nil
}
