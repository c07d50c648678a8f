package s3

import (
	"fmt"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

const (
	EndpointSetting        = "AWS_ENDPOINT"
	RegionSetting          = "AWS_REGION"
	ForcePathStyleSetting  = "AWS_S3_FORCE_PATH_STYLE"
	AccessKeyIDSetting     = "AWS_ACCESS_KEY_ID"
	AccessKeySetting       = "AWS_ACCESS_KEY"
	SecretAccessKeySetting = "AWS_SECRET_ACCESS_KEY"
	SecretKeySetting       = "AWS_SECRET_KEY"
	SessionTokenSetting    = "AWS_SESSION_TOKEN"
	StorageClassSetting    = "S3_STORAGE_CLASS"
	MaxRetriesSetting      = "S3_MAX_RETRIES"

	MaxRetriesDefault   = 15
	StorageClassDefault = "STANDARD"
)

var SettingList = []string{
	EndpointSetting,
	RegionSetting,
	ForcePathStyleSetting,
	AccessKeyIDSetting,
	AccessKeySetting,
	SecretAccessKeySetting,
	SecretKeySetting,
	SessionTokenSetting,
	StorageClassSetting,
	MaxRetriesSetting,
}

type Config struct {
	Bucket          string
	RootPath        string
	Region          string
	Endpoint        string
	ForcePathStyle  bool
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	StorageClass    string
	MaxRetries      int
}

type Storage struct {
	rootFolder storage.Folder
}

func (s *Storage) RootFolder() storage.Folder {
	return s.rootFolder
}

func (s *Storage) Close() error {
	// Nothing to close: the AWS client has no persistent connections to release
	return nil
}

func NewStorage(config *Config) (*Storage, error) {
	sess, err := createSession(config)
	if err != nil {
		return nil, NewFolderError(err, "failed to create new session")
	}
	return &Storage{NewFolder(s3.New(sess), config.RootPath, config)}, nil
}

func firstSettingOf(settings map[string]string, keys ...string) string {
	for _, key := range keys {
		if value, ok := settings[key]; ok && value != "" {
			return value
		}
	}
	return ""
}

func ConfigureStorage(prefix string, settings map[string]string) (*Storage, error) {
	bucket, rootPath, err := storage.GetPathFromPrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("extract bucket and path from prefix %q: %w", prefix, err)
	}

	forcePathStyle, err := parseBoolSetting(settings, ForcePathStyleSetting, false)
	if err != nil {
		return nil, err
	}
	maxRetries, err := parseIntSetting(settings, MaxRetriesSetting, MaxRetriesDefault)
	if err != nil {
		return nil, err
	}
	storageClass := StorageClassDefault
	if sc := settings[StorageClassSetting]; sc != "" {
		storageClass = sc
	}

	config := &Config{
		Bucket:          bucket,
		RootPath:        rootPath,
		Region:          settings[RegionSetting],
		Endpoint:        settings[EndpointSetting],
		ForcePathStyle:  forcePathStyle,
		AccessKeyID:     firstSettingOf(settings, AccessKeyIDSetting, AccessKeySetting),
		SecretAccessKey: firstSettingOf(settings, SecretAccessKeySetting, SecretKeySetting),
		SessionToken:    settings[SessionTokenSetting],
		StorageClass:    storageClass,
		MaxRetries:      maxRetries,
	}

	st, err := NewStorage(config)
	if err != nil {
		return nil, fmt.Errorf("create S3 storage: %w", err)
	}
	return st, nil
}
