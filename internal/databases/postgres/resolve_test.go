package postgres_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/testtools"
)

func TestResolve_Scenarios(t *testing.T) {
	lsnBackups := []testtools.MockBackup{
		validBackup("20250101000000", "0/1000", 1),
		validBackup("20250101010000", "0/2000", 1),
	}
	timeBackups := []testtools.MockBackup{
		validBackup("20230101000000", "0/1000", 1),
		validBackup("20230101020000", "0/2000", 1),
	}
	timelineBackups := []testtools.MockBackup{
		validBackup("20230101000000", "0/1000", 1),
		validBackup("20230101010000", "0/2000", 2),
	}

	cases := []struct {
		name       string
		backups    []testtools.MockBackup
		identifier string
		label      string
		resultCode int
	}{
		{"lsn between backups", lsnBackups, "target-lsn:0/1500", "20250101000000", postgres.ResultOK},
		{"lsn after all backups", lsnBackups, "target-lsn:0/3000", "20250101010000", postgres.ResultOK},
		{"lsn before all backups", lsnBackups, "target-lsn:0/500", "", postgres.ResultNoBackupFound},
		{"time between backups", timeBackups, "target-time:2023-01-01 01:00:00", "20230101000000", postgres.ResultOK},
		{"exact timeline", timelineBackups, "target-tli:1", "20230101000000", postgres.ResultOK},
		{"malformed lsn", lsnBackups, "target-lsn:zz/10", "", postgres.ResultMalformedTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newInMemoryServer(t, tc.backups...)
			labels, err := postgres.ListBackupLabels(server)
			require.NoError(t, err)
			collection := postgres.LoadBackupCollection(server, labels)

			label, err := postgres.Resolve(server, tc.identifier, collection)

			assert.Equal(t, tc.label, label)
			assert.Equal(t, tc.resultCode, postgres.ResultCode(err))
		})
	}
}

func TestResolve_ErrorTypes(t *testing.T) {
	server := newInMemoryServer(t, validBackup("20250101000000", "0/1000", 1))
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000"})

	_, err := postgres.Resolve(server, "target-lsn:0/500", collection)
	assert.IsType(t, postgres.NoBackupFoundError{}, err)
	assert.Contains(t, err.Error(), "primary")
	assert.Contains(t, err.Error(), "target-lsn:0/500")

	_, err = postgres.Resolve(server, "target-lsn:zz/10", collection)
	assert.IsType(t, postgres.MalformedLSNError{}, err)
}

func TestResolve_IsIdempotent(t *testing.T) {
	server := newInMemoryServer(t,
		validBackup("20250101000000", "0/1000", 1),
		validBackup("20250101010000", "0/2000", 2),
		validBackup("20250101020000", "0/3000", 2),
	)
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000", "20250101010000", "20250101020000"})

	for _, identifier := range []string{"target-lsn:0/2500", "target-time:2025-01-01 01:30:00", "target-tli:2"} {
		first, err := postgres.Resolve(server, identifier, collection)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := postgres.Resolve(server, identifier, collection)
			require.NoError(t, err)
			assert.Equal(t, first, again, identifier)
		}
	}
}

func TestResolve_ConcurrentUseOfOneCollection(t *testing.T) {
	server := newInMemoryServer(t,
		validBackup("20250101000000", "0/1000", 1),
		validBackup("20250101010000", "0/2000", 1),
	)
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000", "20250101010000"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			label, err := postgres.Resolve(server, "target-lsn:0/1500", collection)
			assert.NoError(t, err)
			assert.Equal(t, "20250101000000", label)
		}()
	}
	wg.Wait()
}

func TestLoadAndResolve(t *testing.T) {
	server := newInMemoryServer(t,
		validBackup("20250101000000", "0/1000", 1),
		validBackup("20250101010000", "0/2000", 1),
	)
	require.NoError(t, testtools.PutRawBackupInfo(server.BackupFolder(), "20250101020000", "garbage"))

	label, err := postgres.LoadAndResolve(server, "target-lsn:0/FFFFFFFF")

	assert.NoError(t, err)
	assert.Equal(t, "20250101010000", label)
}

func TestLoadAndResolve_MalformedTargetDoesNotTouchStorage(t *testing.T) {
	server, _ := newMockServer(t)

	label, err := postgres.LoadAndResolve(server, "target-time:yesterday")

	assert.Empty(t, label)
	assert.IsType(t, postgres.MalformedTimestampError{}, err)
}

func TestLoadAndResolve_ListingFailure(t *testing.T) {
	server, backupFolder := newMockServer(t)
	backupFolder.EXPECT().ListFolder().Return(nil, nil, errors.New("access denied"))

	label, err := postgres.LoadAndResolve(server, "target-tli:1")

	assert.Empty(t, label)
	assert.Error(t, err)
	assert.Equal(t, postgres.ResultFailure, postgres.ResultCode(err))
}

func TestResultCode(t *testing.T) {
	assert.Equal(t, postgres.ResultOK, postgres.ResultCode(nil))
	assert.Equal(t, postgres.ResultNoBackupFound,
		postgres.ResultCode(errors.Wrap(postgres.NewNoBackupFoundError("primary", postgres.TimelineTarget{Timeline: 1}), "resolve")))
	assert.Equal(t, postgres.ResultMalformedTarget,
		postgres.ResultCode(errors.Wrap(postgres.NewUnknownTargetKindError("x"), "resolve")))
	assert.Equal(t, postgres.ResultFailure, postgres.ResultCode(errors.New("disk on fire")))
}

func TestResolveAll(t *testing.T) {
	server := newInMemoryServer(t,
		validBackup("20250101000000", "0/1000", 1),
		validBackup("20250101010000", "0/2000", 2),
	)
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000", "20250101010000"})
	identifiers := []string{"target-lsn:0/1500", "target-tli:3", "target-tli:2", "bogus"}

	resolutions := postgres.ResolveAll(server, identifiers, collection, 2)

	require.Len(t, resolutions, 4)
	assert.Equal(t, "20250101000000", resolutions[0].Label)
	assert.NoError(t, resolutions[0].Err())
	assert.Equal(t, postgres.ResultNoBackupFound, resolutions[1].ResultCode)
	assert.NotEmpty(t, resolutions[1].Error)
	assert.Equal(t, "20250101010000", resolutions[2].Label)
	assert.Equal(t, postgres.ResultMalformedTarget, resolutions[3].ResultCode)
	for i, identifier := range identifiers {
		assert.Equal(t, identifier, resolutions[i].Target)
	}
	assert.Equal(t, postgres.ResultNoBackupFound, postgres.FirstFailureCode(resolutions))
}

func TestResolveAll_ManyTargets(t *testing.T) {
	server := newInMemoryServer(t, validBackup("20250101000000", "0/1000", 1))
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000"})

	identifiers := make([]string, 100)
	for i := range identifiers {
		identifiers[i] = fmt.Sprintf("target-lsn:%X/0", i)
	}

	resolutions := postgres.ResolveAll(server, identifiers, collection, 0)

	assert.Equal(t, postgres.ResultNoBackupFound, resolutions[0].ResultCode)
	for _, resolution := range resolutions[1:] {
		assert.Equal(t, "20250101000000", resolution.Label)
	}
	assert.Equal(t, postgres.ResultOK, postgres.FirstFailureCode(resolutions[1:]))
}
