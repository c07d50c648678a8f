package postgres

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"github.com/wal-g/pitr-resolver/utility"
	"github.com/wal-g/tracelog"
)

// Reasons a backup is left out of a collection, used as the metric label.
const (
	SkipReasonMissing    = "missing"
	SkipReasonUnreadable = "unreadable"
	SkipReasonMalformed  = "malformed"
	SkipReasonDuplicate  = "duplicate"
)

// ListBackupLabels returns the names of the backup directories of the server in ascending order.
func ListBackupLabels(server internal.Server) ([]string, error) {
	labels, err := storage.SubFolderNames(server.BackupFolder())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list backups of server '%s'", server.Name)
	}
	sort.Strings(labels)
	return labels, nil
}

// FetchBackupRecord reads and decodes <label>/backup.info of the server.
func FetchBackupRecord(server internal.Server, label string) (BackupRecord, error) {
	if _, err := ParseLabelTime(label); err != nil {
		return BackupRecord{}, NewMalformedBackupInfoError(label, err.Error())
	}

	reader, err := server.BackupFolder().ReadObject(utility.BackupInfoPath(label))
	if err != nil {
		return BackupRecord{}, err
	}
	defer utility.LoggedClose(reader, "failed to close backup.info")

	data, err := io.ReadAll(reader)
	if err != nil {
		return BackupRecord{}, errors.Wrapf(err, "failed to read backup.info of backup '%s'", label)
	}
	return DecodeBackupInfo(label, data)
}

// LoadBackupCollection reads the metadata of every given backup of the server.
// Backups whose metadata is missing, unreadable or malformed are logged and left out; they never fail the load.
func LoadBackupCollection(server internal.Server, labels []string) BackupCollection {
	builder := NewBackupCollectionBuilder()
	for _, label := range labels {
		record, err := FetchBackupRecord(server, label)
		if err != nil {
			reason := skipReason(err)
			if reason == SkipReasonMissing {
				tracelog.InfoLogger.Printf("Backup '%s' of server '%s' has no %s, skipping",
					label, server.Name, utility.BackupInfoFileName)
			} else {
				tracelog.WarningLogger.Printf("Skipping backup '%s' of server '%s': %v", label, server.Name, err)
			}
			internal.Metrics.BackupRecordSkipped(reason)
			continue
		}
		if err = builder.Add(record); err != nil {
			tracelog.WarningLogger.Printf("Skipping backup '%s' of server '%s': %v", label, server.Name, err)
			internal.Metrics.BackupRecordSkipped(SkipReasonDuplicate)
			continue
		}
		internal.Metrics.BackupRecordLoaded()
	}

	collection := builder.Build()
	tracelog.DebugLogger.Printf("Loaded %d of %d backups of server '%s'", collection.Len(), len(labels), server.Name)
	return collection
}

func skipReason(err error) string {
	var malformed MalformedBackupInfoError
	switch {
	case storage.IsObjectNotFound(err):
		return SkipReasonMissing
	case errors.As(err, &malformed):
		return SkipReasonMalformed
	default:
		return SkipReasonUnreadable
	}
}
