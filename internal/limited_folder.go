package internal

import (
	"context"
	"io"

	"github.com/wal-g/pitr-resolver/internal/limiters"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"golang.org/x/time/rate"
)

// LimitedFolder throttles object reads of the wrapped folder.
type LimitedFolder struct {
	storage.Folder
	limiter *rate.Limiter
}

func NewLimitedFolder(folder storage.Folder, limiter *rate.Limiter) *LimitedFolder {
	return &LimitedFolder{Folder: folder, limiter: limiter}
}

func (lf *LimitedFolder) GetSubFolder(subFolderRelativePath string) storage.Folder {
	folder := lf.Folder.GetSubFolder(subFolderRelativePath)
	return NewLimitedFolder(folder, lf.limiter)
}

func (lf *LimitedFolder) ReadObject(objectRelativePath string) (io.ReadCloser, error) {
	readCloser, err := lf.Folder.ReadObject(objectRelativePath)
	if err != nil {
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{limiters.NewReader(context.Background(), readCloser, lf.limiter), readCloser}, nil
}
