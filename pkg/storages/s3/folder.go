package s3

import (
	"bytes"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
)

const (
	NotFoundAWSErrorCode  = "NotFound"
	NoSuchKeyAWSErrorCode = "NoSuchKey"
)

type Folder struct {
	s3API  s3iface.S3API
	bucket *string
	path   string
	config *Config
}

func NewFolder(s3API s3iface.S3API, path string, config *Config) *Folder {
	// Trim leading slash because there's no difference between absolute and relative paths in S3.
	path = strings.TrimPrefix(path, "/")
	return &Folder{
		s3API:  s3API,
		bucket: aws.String(config.Bucket),
		path:   storage.AddDelimiterToPath(path),
		config: config,
	}
}

func NewFolderError(err error, format string, args ...interface{}) storage.Error {
	return storage.NewError(err, "S3", format, args...)
}

func (folder *Folder) Exists(objectRelativePath string) (bool, error) {
	objectPath := folder.path + objectRelativePath
	_, err := folder.s3API.HeadObject(&s3.HeadObjectInput{
		Bucket: folder.bucket,
		Key:    aws.String(objectPath),
	})
	if err != nil {
		if isAwsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to check s3 object '%s' existence", objectPath)
	}
	return true, nil
}

func (folder *Folder) PutObject(name string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return errors.Wrapf(err, "failed to read content of '%s'", name)
	}
	input := &s3.PutObjectInput{
		Bucket:       folder.bucket,
		Key:          aws.String(folder.path + name),
		Body:         bytes.NewReader(data),
		StorageClass: aws.String(folder.config.StorageClass),
	}
	_, err = folder.s3API.PutObject(input)
	return errors.Wrapf(err, "failed to upload '%s' to bucket '%s'", *input.Key, folder.config.Bucket)
}

func (folder *Folder) ReadObject(objectRelativePath string) (io.ReadCloser, error) {
	objectPath := folder.path + objectRelativePath
	object, err := folder.s3API.GetObject(&s3.GetObjectInput{
		Bucket: folder.bucket,
		Key:    aws.String(objectPath),
	})
	if err != nil {
		if isAwsNotExist(err) {
			return nil, storage.NewObjectNotFoundError(objectPath)
		}
		return nil, errors.Wrapf(err, "failed to read object: '%s' from S3", objectPath)
	}
	return object.Body, nil
}

func (folder *Folder) GetSubFolder(subFolderRelativePath string) storage.Folder {
	return NewFolder(folder.s3API, storage.JoinPath(folder.path, subFolderRelativePath)+"/", folder.config)
}

func (folder *Folder) GetPath() string {
	return folder.path
}

func (folder *Folder) ListFolder() (objects []storage.Object, subFolders []storage.Folder, err error) {
	input := &s3.ListObjectsV2Input{
		Bucket:    folder.bucket,
		Prefix:    aws.String(folder.path),
		Delimiter: aws.String("/"),
	}
	err = folder.s3API.ListObjectsV2Pages(input, func(files *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, prefix := range files.CommonPrefixes {
			subFolders = append(subFolders, NewFolder(folder.s3API, *prefix.Prefix, folder.config))
		}
		for _, object := range files.Contents {
			// Some storages return root folder as a Key.
			if *object.Key == folder.path {
				continue
			}
			objectRelativePath := strings.TrimPrefix(*object.Key, folder.path)
			objects = append(objects, storage.NewLocalObject(objectRelativePath, *object.LastModified, *object.Size))
		}
		return true
	})

	// DigitalOcean Spaces compatibility: DO's API complains about NoSuchKey when trying to list folders
	// which don't yet exist.
	if err != nil && !isAwsNotExist(err) {
		return nil, nil, errors.Wrapf(err, "failed to list s3 folder: '%s'", folder.path)
	}
	return objects, subFolders, nil
}

func isAwsNotExist(err error) bool {
	if awsErr, ok := err.(awserr.Error); ok {
		if awsErr.Code() == NotFoundAWSErrorCode || awsErr.Code() == NoSuchKeyAWSErrorCode {
			return true
		}
	}
	return false
}
