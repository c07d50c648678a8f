package postgres

import (
	"strconv"
	"time"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/wal-g/pitr-resolver/utility"
	"github.com/wal-g/tracelog"
	"gopkg.in/ini.v1"
)

// MaxLabelLength bounds the length of a backup label.
const MaxLabelLength = 64

const (
	LabelKey         = "LABEL"
	StatusKey        = "STATUS"
	StartWalPosKey   = "START_WALPOS"
	StartTimelineKey = "START_TIMELINE"
	VersionKey       = "PGMONETA_VERSION"
	LegacyVersionKey = "VERSION"
)

var requiredBackupInfoKeys = []string{LabelKey, StatusKey, StartWalPosKey, StartTimelineKey}

// BackupRecord is the metadata of one backup as read from its backup.info.
type BackupRecord struct {
	Label         string          `json:"label"`
	Status        BackupStatus    `json:"status"`
	StartLSN      LSN             `json:"start_lsn"`
	StartTimeline uint32          `json:"start_timeline"`
	StartTime     time.Time       `json:"start_time"`
	Version       *semver.Version `json:"version,omitempty"`
}

// ParseLabelTime returns the start time encoded in a YYYYMMDDHHMMSS label.
func ParseLabelTime(label string) (time.Time, error) {
	if len(label) > MaxLabelLength {
		return time.Time{}, errors.Errorf("label is longer than %d characters", MaxLabelLength)
	}
	if len(label) != len(utility.LabelTimeLayout) || !utility.IsDigits(label) {
		return time.Time{}, errors.Errorf("label '%s' is not a YYYYMMDDHHMMSS timestamp", label)
	}
	startTime, err := time.ParseInLocation(utility.LabelTimeLayout, label, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "label '%s' is not a valid timestamp", label)
	}
	return startTime, nil
}

// DecodeBackupInfo parses the KEY=VALUE content of the backup.info stored under the directory label.
// Lines that are not key-value pairs and keys it does not know are ignored.
func DecodeBackupInfo(label string, data []byte) (BackupRecord, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		KeyValueDelimiters:      "=",
		SkipUnrecognizableLines: true,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return BackupRecord{}, NewMalformedBackupInfoError(label, err.Error())
	}
	section := cfg.Section(ini.DefaultSection)

	for _, key := range requiredBackupInfoKeys {
		if !section.HasKey(key) {
			return BackupRecord{}, NewMalformedBackupInfoError(label, "missing "+key)
		}
	}

	record := BackupRecord{Label: section.Key(LabelKey).String()}
	if record.Label != label {
		return BackupRecord{}, NewMalformedBackupInfoError(label,
			"LABEL '"+record.Label+"' does not match the backup directory")
	}
	if record.StartTime, err = ParseLabelTime(record.Label); err != nil {
		return BackupRecord{}, NewMalformedBackupInfoError(label, err.Error())
	}

	statusText := section.Key(StatusKey).String()
	statusCode, err := strconv.Atoi(statusText)
	if err != nil {
		return BackupRecord{}, NewMalformedBackupInfoError(label, "STATUS '"+statusText+"' is not an integer")
	}
	record.Status = NewBackupStatus(statusCode)

	if record.StartLSN, err = ParseLSN(section.Key(StartWalPosKey).String()); err != nil {
		return BackupRecord{}, NewMalformedBackupInfoError(label, err.Error())
	}

	timelineText := section.Key(StartTimelineKey).String()
	timeline, err := strconv.ParseUint(timelineText, 10, 32)
	if err != nil || !utility.IsDigits(timelineText) {
		return BackupRecord{}, NewMalformedBackupInfoError(label,
			"START_TIMELINE '"+timelineText+"' is not an unsigned 32-bit integer")
	}
	record.StartTimeline = uint32(timeline)

	record.Version = decodeVersion(label, section)
	return record, nil
}

func decodeVersion(label string, section *ini.Section) *semver.Version {
	for _, key := range []string{VersionKey, LegacyVersionKey} {
		if !section.HasKey(key) {
			continue
		}
		value := section.Key(key).String()
		version, err := semver.ParseTolerant(value)
		if err != nil {
			tracelog.WarningLogger.Printf("Backup '%s' has unrecognized %s '%s': %v", label, key, value, err)
			return nil
		}
		return &version
	}
	return nil
}
