package utility

import (
	"io"
	"path"

	"github.com/wal-g/tracelog"
)

func LoggedClose(c io.Closer, errmsg string) {
	err := c.Close()
	if errmsg == "" {
		errmsg = "Problem with closing object"
	}
	if err != nil {
		tracelog.ErrorLogger.Printf(errmsg+": %v", err)
	}
}

const (
	// BackupPath is the directory under a server folder holding one sub-folder per backup label.
	BackupPath = "backup/"
	// BackupInfoFileName is the metadata record written once a backup completes.
	BackupInfoFileName = "backup.info"

	// LabelTimeLayout is the layout of backup labels, which are the backup start time.
	LabelTimeLayout = "20060102150405"
	// TargetTimeLayout is the layout accepted by the target-time recovery target.
	TargetTimeLayout = "2006-01-02 15:04:05"
)

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BackupInfoPath returns the path of the metadata record of a backup relative to the backup folder.
func BackupInfoPath(label string) string {
	return path.Join(label, BackupInfoFileName)
}

// IsDigits reports whether s is non-empty and contains only ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
