package internal

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/wal-g/pitr-resolver/pkg/storages/fs"
	"github.com/wal-g/pitr-resolver/pkg/storages/s3"
	"github.com/wal-g/pitr-resolver/pkg/storages/sh"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

// Storage is a configured backend. Close releases its connections.
type Storage interface {
	RootFolder() storage.Folder
	Close() error
}

type StorageAdapter struct {
	prefixName         string
	settingNames       []string
	configureStorage   func(prefix string, settings map[string]string) (Storage, error)
	prefixPreprocessor func(string) string
}

func (adapter *StorageAdapter) PrefixSettingKey() string {
	return "WALG_" + adapter.prefixName
}

func (adapter *StorageAdapter) loadSettings(config *viper.Viper) map[string]string {
	settings := make(map[string]string)
	for _, settingName := range adapter.settingNames {
		if config.IsSet(settingName) {
			settings[settingName] = config.GetString(settingName)
		}
	}
	return settings
}

func preprocessFilePrefix(prefix string) string {
	return strings.TrimPrefix(prefix, "file://localhost")
}

func configureFSStorage(prefix string, settings map[string]string) (Storage, error) {
	st, err := fs.ConfigureStorage(prefix, settings)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func configureS3Storage(prefix string, settings map[string]string) (Storage, error) {
	st, err := s3.ConfigureStorage(prefix, settings)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func configureSSHStorage(prefix string, settings map[string]string) (Storage, error) {
	st, err := sh.ConfigureStorage(prefix, settings)
	if err != nil {
		return nil, err
	}
	return st, nil
}

var StorageAdapters = []StorageAdapter{
	{"FILE_PREFIX", nil, configureFSStorage, preprocessFilePrefix},
	{"S3_PREFIX", s3.SettingList, configureS3Storage, nil},
	{"SSH_PREFIX", sh.SettingList, configureSSHStorage, nil},
}
