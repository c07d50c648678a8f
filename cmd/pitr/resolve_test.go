package pitr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/testtools"
)

func prepareFileStorage(t *testing.T) {
	root := t.TempDir()
	for _, backup := range []testtools.MockBackup{
		{Label: "20250101000000", WalPos: "0/1000", Timeline: 1, Status: 1},
		{Label: "20250101010000", WalPos: "0/2000", Timeline: 2, Status: 1},
	} {
		dir := filepath.Join(root, internal.DefaultServerName, "backup", backup.Label)
		require.NoError(t, os.MkdirAll(dir, 0700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "backup.info"), []byte(backup.Render()), 0600))
	}

	viper.Reset()
	internal.SetDefaultValues(viper.GetViper())
	viper.Set("WALG_FILE_PREFIX", root)
	t.Cleanup(viper.Reset)
}

func TestRunResolve_SingleTarget(t *testing.T) {
	prepareFileStorage(t)

	assert.Equal(t, postgres.ResultOK, runResolve([]string{"target-lsn:0/1500"}, false))
	assert.Equal(t, postgres.ResultNoBackupFound, runResolve([]string{"target-lsn:0/500"}, false))
	assert.Equal(t, postgres.ResultMalformedTarget, runResolve([]string{"target-lsn:zz/10"}, false))
}

func TestRunResolve_SeveralTargets(t *testing.T) {
	prepareFileStorage(t)

	assert.Equal(t, postgres.ResultOK, runResolve([]string{"target-tli:1", "target-tli:2"}, true))
	assert.Equal(t, postgres.ResultMalformedTarget, runResolve([]string{"target-tli:1", "target-tli:x"}, false))
}

func TestRunResolve_MissingServerDirectory(t *testing.T) {
	prepareFileStorage(t)
	viper.Set(internal.ServerNameSetting, "absent")

	assert.Equal(t, postgres.ResultFailure, runResolve([]string{"target-tli:1"}, false))
}

func TestRunResolve_MalformedTargetIsReportedBeforeStorageFailure(t *testing.T) {
	prepareFileStorage(t)
	viper.Set(internal.ServerNameSetting, "absent")

	assert.Equal(t, postgres.ResultMalformedTarget,
		runResolve([]string{"target-tli:1", "target-time:2025-01-01", "target-lsn:0/1"}, false))
	assert.Equal(t, postgres.ResultMalformedTarget, runResolve([]string{"target-tli:1", "target-xid:7"}, true))
}

func TestRunResolve_ConfigurationFailureStillExportsMetrics(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "pitr.prom")
	viper.Reset()
	internal.SetDefaultValues(viper.GetViper())
	viper.Set(internal.MetricsTextfileSetting, textfile)
	t.Cleanup(viper.Reset)

	assert.Equal(t, postgres.ResultFailure, runResolve([]string{"target-tli:1"}, false))

	_, err := os.Stat(textfile)
	assert.NoError(t, err)
}

func TestRunBackupList_ConfigurationFailure(t *testing.T) {
	viper.Reset()
	internal.SetDefaultValues(viper.GetViper())
	t.Cleanup(viper.Reset)

	assert.Equal(t, postgres.ResultFailure, runBackupList(false, false))
}
