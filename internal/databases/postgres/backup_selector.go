package postgres

import (
	"github.com/wal-g/tracelog"
)

// RecoveryTargetSelector chooses the restore base for a recovery target.
// Only backups with a valid status are ever chosen.
type RecoveryTargetSelector struct {
	target RecoveryTarget
}

func NewRecoveryTargetSelector(target RecoveryTarget) RecoveryTargetSelector {
	return RecoveryTargetSelector{target: target}
}

// Select returns the chosen backup, or false when none qualifies.
//
// For LSN and time targets it is the latest backup that started at or before the target.
// For timeline targets it is the earliest backup that started on exactly that timeline.
func (s RecoveryTargetSelector) Select(collection BackupCollection) (best BackupRecord, found bool) {
	collection.Walk(func(record BackupRecord) bool {
		if !record.Status.IsValid() {
			tracelog.DebugLogger.Printf("Skipping backup '%s' with status %s", record.Label, record.Status)
			return true
		}

		switch target := s.target.(type) {
		case LSNTarget:
			if record.StartLSN <= target.LSN {
				best, found = record, true
			}
		case TimeTarget:
			if !record.StartTime.After(target.Time) {
				best, found = record, true
			}
		case TimelineTarget:
			if record.StartTimeline == target.Timeline {
				best, found = record, true
				return false
			}
		}
		return true
	})
	return best, found
}
