package fs

import (
	"fmt"
	"strings"
)

const waleFileURL = "file://localhost"

func ConfigureStorage(prefix string, _ map[string]string) (*Storage, error) {
	prefix = strings.TrimPrefix(prefix, waleFileURL) // WAL-E backward compatibility

	config := &Config{
		RootPath: prefix,
	}

	st, err := NewStorage(config)
	if err != nil {
		return nil, fmt.Errorf("create FS storage: %w", err)
	}
	return st, nil
}
