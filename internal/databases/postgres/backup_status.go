package postgres

import "fmt"

// BackupStatus is the STATUS code of a backup.info record.
type BackupStatus int

const (
	StatusUnknown    BackupStatus = -128
	StatusInProgress BackupStatus = -1
	StatusFailed     BackupStatus = 0
	StatusValid      BackupStatus = 1
)

// NewBackupStatus maps a stored status code, collapsing unrecognized codes into StatusUnknown.
func NewBackupStatus(code int) BackupStatus {
	switch status := BackupStatus(code); status {
	case StatusInProgress, StatusFailed, StatusValid:
		return status
	default:
		return StatusUnknown
	}
}

// IsValid reports whether a backup with this status may be used as a restore base.
func (status BackupStatus) IsValid() bool {
	return status == StatusValid
}

func (status BackupStatus) String() string {
	switch status {
	case StatusValid:
		return "valid"
	case StatusFailed:
		return "failed"
	case StatusInProgress:
		return "in-progress"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int(status))
	}
}

func (status BackupStatus) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}
