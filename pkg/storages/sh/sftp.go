package sh

import (
	"io"
	"os"

	"github.com/pkg/sftp"
)

// SftpClient is the part of *sftp.Client the folder relies on.
type SftpClient interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Join(elem ...string) string
	Stat(p string) (os.FileInfo, error)
	OpenFile(path string) (io.ReadCloser, error)
	CreateFile(path string) (io.WriteCloser, error)
	Mkdir(path string) error
}

type extendedSftpClient struct {
	*sftp.Client
}

func (client *extendedSftpClient) OpenFile(path string) (io.ReadCloser, error) {
	return client.Open(path)
}

func (client *extendedSftpClient) CreateFile(path string) (io.WriteCloser, error) {
	return client.Create(path)
}

func (client *extendedSftpClient) Mkdir(path string) error {
	return client.MkdirAll(path)
}

func extend(client *sftp.Client) *extendedSftpClient {
	return &extendedSftpClient{client}
}
