package postgres

import (
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/tracelog"
	"golang.org/x/sync/errgroup"
)

// Result codes of a resolution, used as the process exit code.
const (
	ResultOK              = 0
	ResultNoBackupFound   = 1
	ResultMalformedTarget = 2
	ResultFailure         = 3
)

var resultNames = map[int]string{
	ResultOK:              "ok",
	ResultNoBackupFound:   "no_backup_found",
	ResultMalformedTarget: "malformed_target",
	ResultFailure:         "failure",
}

func ResultCode(err error) int {
	switch {
	case err == nil:
		return ResultOK
	case IsNoBackupFound(err):
		return ResultNoBackupFound
	case IsMalformedTargetError(err):
		return ResultMalformedTarget
	default:
		return ResultFailure
	}
}

// Resolve returns the label of the backup to restore from to reach the target given by rawIdentifier.
// On failure the label is empty.
func Resolve(server internal.Server, rawIdentifier string, collection BackupCollection) (string, error) {
	target, err := ParseRecoveryTarget(rawIdentifier)
	if err != nil {
		internal.Metrics.Resolution("unknown", resultNames[ResultCode(err)])
		return "", err
	}
	return resolveTarget(server, target, collection)
}

func resolveTarget(server internal.Server, target RecoveryTarget, collection BackupCollection) (string, error) {
	record, found := NewRecoveryTargetSelector(target).Select(collection)
	if !found {
		err := NewNoBackupFoundError(server.Name, target)
		internal.Metrics.Resolution(string(target.Kind()), resultNames[ResultNoBackupFound])
		return "", err
	}

	tracelog.InfoLogger.Printf("Backup '%s' of server '%s' is the restore base for %s",
		record.Label, server.Name, target)
	internal.Metrics.Resolution(string(target.Kind()), resultNames[ResultOK])
	return record.Label, nil
}

// LoadAndResolve loads the backups of the server from storage and resolves rawIdentifier against them.
// The identifier is parsed before storage is touched.
func LoadAndResolve(server internal.Server, rawIdentifier string) (string, error) {
	target, err := ParseRecoveryTarget(rawIdentifier)
	if err != nil {
		internal.Metrics.Resolution("unknown", resultNames[ResultCode(err)])
		return "", err
	}

	labels, err := ListBackupLabels(server)
	if err != nil {
		internal.Metrics.Resolution(string(target.Kind()), resultNames[ResultFailure])
		return "", err
	}
	return resolveTarget(server, target, LoadBackupCollection(server, labels))
}

// Resolution is the outcome of resolving one identifier.
type Resolution struct {
	Target     string `json:"target"`
	Label      string `json:"label,omitempty"`
	ResultCode int    `json:"result_code"`
	Error      string `json:"error,omitempty"`
	err        error
}

func (resolution Resolution) Err() error {
	return resolution.err
}

func newResolution(identifier, label string, err error) Resolution {
	resolution := Resolution{Target: identifier, Label: label, ResultCode: ResultCode(err), err: err}
	if err != nil {
		resolution.Error = err.Error()
	}
	return resolution
}

// ResolveAll resolves every identifier against the same collection, at most concurrency at a time.
// Results keep the order of identifiers.
func ResolveAll(server internal.Server, identifiers []string, collection BackupCollection,
	concurrency int) []Resolution {
	resolutions := make([]Resolution, len(identifiers))

	var group errgroup.Group
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}
	for i, identifier := range identifiers {
		i, identifier := i, identifier
		group.Go(func() error {
			label, err := Resolve(server, identifier, collection)
			resolutions[i] = newResolution(identifier, label, err)
			return nil
		})
	}
	_ = group.Wait()

	return resolutions
}

// FirstFailureCode returns the result code of the first failed resolution, ResultOK if all succeeded.
func FirstFailureCode(resolutions []Resolution) int {
	for _, resolution := range resolutions {
		if resolution.ResultCode != ResultOK {
			return resolution.ResultCode
		}
	}
	return ResultOK
}
