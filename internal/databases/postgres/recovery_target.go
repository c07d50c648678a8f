package postgres

import (
	"strconv"
	"strings"
	"time"

	"github.com/wal-g/pitr-resolver/utility"
)

type TargetKind string

const (
	TargetLSNKind      TargetKind = "target-lsn"
	TargetTimeKind     TargetKind = "target-time"
	TargetTimelineKind TargetKind = "target-tli"
)

// RecoveryTarget is the point a restore has to reach. It is one of LSNTarget, TimeTarget or TimelineTarget.
type RecoveryTarget interface {
	Kind() TargetKind
	// String returns the canonical identifier, which parses back to an equal target.
	String() string
	isRecoveryTarget()
}

type LSNTarget struct {
	LSN LSN
}

func (target LSNTarget) Kind() TargetKind { return TargetLSNKind }

func (target LSNTarget) String() string {
	return string(TargetLSNKind) + ":" + target.LSN.String()
}

func (LSNTarget) isRecoveryTarget() {}

// TimeTarget carries a UTC wall-clock time of second granularity.
type TimeTarget struct {
	Time time.Time
}

func (target TimeTarget) Kind() TargetKind { return TargetTimeKind }

func (target TimeTarget) String() string {
	return string(TargetTimeKind) + ":" + target.Time.Format(utility.TargetTimeLayout)
}

func (TimeTarget) isRecoveryTarget() {}

type TimelineTarget struct {
	Timeline uint32
}

func (target TimelineTarget) Kind() TargetKind { return TargetTimelineKind }

func (target TimelineTarget) String() string {
	return string(TargetTimelineKind) + ":" + strconv.FormatUint(uint64(target.Timeline), 10)
}

func (TimelineTarget) isRecoveryTarget() {}

// ParseRecoveryTarget parses "<kind>:<value>" where kind is target-lsn, target-time or target-tli.
func ParseRecoveryTarget(identifier string) (RecoveryTarget, error) {
	kind, value, found := strings.Cut(identifier, ":")
	if !found {
		return nil, NewUnknownTargetKindError(identifier)
	}

	switch TargetKind(kind) {
	case TargetLSNKind:
		lsn, err := ParseLSN(value)
		if err != nil {
			return nil, err
		}
		return LSNTarget{LSN: lsn}, nil
	case TargetTimeKind:
		targetTime, err := ParseTargetTime(value)
		if err != nil {
			return nil, err
		}
		return TimeTarget{Time: targetTime}, nil
	case TargetTimelineKind:
		timeline, err := ParseTimeline(value)
		if err != nil {
			return nil, err
		}
		return TimelineTarget{Timeline: timeline}, nil
	default:
		return nil, NewUnknownTargetKindError(identifier)
	}
}

// ParseTargetTime parses exactly "YYYY-MM-DD HH:MM:SS" with every field zero-padded, read as UTC.
func ParseTargetTime(value string) (time.Time, error) {
	layout := utility.TargetTimeLayout
	if len(value) != len(layout) {
		return time.Time{}, NewMalformedTimestampError(value, "expected YYYY-MM-DD HH:MM:SS")
	}
	for i := 0; i < len(layout); i++ {
		isDigit := value[i] >= '0' && value[i] <= '9'
		layoutDigit := layout[i] >= '0' && layout[i] <= '9'
		if layoutDigit != isDigit || !layoutDigit && value[i] != layout[i] {
			return time.Time{}, NewMalformedTimestampError(value, "expected YYYY-MM-DD HH:MM:SS")
		}
	}
	parsed, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, NewMalformedTimestampError(value, err.Error())
	}
	return parsed, nil
}

func ParseTimeline(value string) (uint32, error) {
	if !utility.IsDigits(value) {
		return 0, NewMalformedTimelineError(value, "expected a non-negative decimal number")
	}
	timeline, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, NewMalformedTimelineError(value, "does not fit in 32 bits")
	}
	return uint32(timeline), nil
}
