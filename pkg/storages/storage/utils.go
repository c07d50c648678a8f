package storage

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

func ParsePrefixAsURL(prefix string) (host, path string, err error) {
	storageURL, err := url.Parse(prefix)
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to parse url '%s'", prefix)
	}
	if storageURL.Scheme == "" || storageURL.Host == "" {
		return "", "", errors.Errorf("missing url scheme=%q and/or host=%q", storageURL.Scheme, storageURL.Host)
	}
	return storageURL.Host, storageURL.Path, nil
}

// GetPathFromPrefix splits a storage prefix into the bucket (host) and the path inside it without
// leading and trailing slashes.
func GetPathFromPrefix(prefix string) (bucket, server string, err error) {
	bucket, server, err = ParsePrefixAsURL(prefix)
	if err != nil {
		return "", "", err
	}
	server = strings.TrimPrefix(server, "/")
	server = strings.TrimSuffix(server, "/")
	return bucket, server, nil
}

func AddDelimiterToPath(path string) string {
	if strings.HasSuffix(path, "/") || path == "" {
		return path
	}
	return path + "/"
}

func JoinPath(elem ...string) string {
	var res []string
	for _, e := range elem {
		if e != "" {
			res = append(res, strings.Trim(e, "/"))
		}
	}
	return strings.Join(res, "/")
}
