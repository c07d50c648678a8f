package postgres

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

type MalformedLSNError struct {
	error
}

func NewMalformedLSNError(value string, reason string) MalformedLSNError {
	return MalformedLSNError{errors.Errorf("malformed LSN '%s': %s", value, reason)}
}

func (err MalformedLSNError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type MalformedTimestampError struct {
	error
}

func NewMalformedTimestampError(value string, reason string) MalformedTimestampError {
	return MalformedTimestampError{errors.Errorf("malformed timestamp '%s': %s", value, reason)}
}

func (err MalformedTimestampError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type MalformedTimelineError struct {
	error
}

func NewMalformedTimelineError(value string, reason string) MalformedTimelineError {
	return MalformedTimelineError{errors.Errorf("malformed timeline '%s': %s", value, reason)}
}

func (err MalformedTimelineError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type UnknownTargetKindError struct {
	error
}

func NewUnknownTargetKindError(identifier string) UnknownTargetKindError {
	return UnknownTargetKindError{
		errors.Errorf("unknown recovery target '%s', expected one of %s:<hi>/<lo>, %s:<YYYY-MM-DD HH:MM:SS>, %s:<timeline>",
			identifier, TargetLSNKind, TargetTimeKind, TargetTimelineKind),
	}
}

func (err UnknownTargetKindError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

// NoBackupFoundError means no valid backup can serve as the restore base for the target.
type NoBackupFoundError struct {
	error
}

func NewNoBackupFoundError(server string, target RecoveryTarget) NoBackupFoundError {
	return NoBackupFoundError{errors.Errorf("no valid backup of server '%s' satisfies %s", server, target)}
}

func (err NoBackupFoundError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type MalformedBackupInfoError struct {
	error
}

func NewMalformedBackupInfoError(label string, reason string) MalformedBackupInfoError {
	return MalformedBackupInfoError{errors.Errorf("malformed backup.info of backup '%s': %s", label, reason)}
}

func (err MalformedBackupInfoError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

// IsMalformedTargetError reports whether err comes from parsing a recovery target identifier.
func IsMalformedTargetError(err error) bool {
	var lsnErr MalformedLSNError
	var timestampErr MalformedTimestampError
	var timelineErr MalformedTimelineError
	var kindErr UnknownTargetKindError
	return errors.As(err, &lsnErr) || errors.As(err, &timestampErr) ||
		errors.As(err, &timelineErr) || errors.As(err, &kindErr)
}

func IsNoBackupFound(err error) bool {
	var noBackupErr NoBackupFoundError
	return errors.As(err, &noBackupErr)
}
