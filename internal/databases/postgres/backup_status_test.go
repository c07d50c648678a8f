package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
)

func TestNewBackupStatus(t *testing.T) {
	assert.Equal(t, postgres.StatusValid, postgres.NewBackupStatus(1))
	assert.Equal(t, postgres.StatusFailed, postgres.NewBackupStatus(0))
	assert.Equal(t, postgres.StatusInProgress, postgres.NewBackupStatus(-1))
	assert.Equal(t, postgres.StatusUnknown, postgres.NewBackupStatus(2))
	assert.Equal(t, postgres.StatusUnknown, postgres.NewBackupStatus(-7))
}

func TestBackupStatus_OnlyValidIsEligible(t *testing.T) {
	assert.True(t, postgres.StatusValid.IsValid())
	for _, status := range []postgres.BackupStatus{
		postgres.StatusFailed, postgres.StatusInProgress, postgres.StatusUnknown,
	} {
		assert.False(t, status.IsValid(), status.String())
	}
}

func TestBackupStatus_String(t *testing.T) {
	assert.Equal(t, "valid", postgres.StatusValid.String())
	assert.Equal(t, "failed", postgres.StatusFailed.String())
	assert.Equal(t, "in-progress", postgres.StatusInProgress.String())
	assert.Equal(t, "unknown", postgres.StatusUnknown.String())
	assert.Equal(t, "status(5)", postgres.BackupStatus(5).String())
}
