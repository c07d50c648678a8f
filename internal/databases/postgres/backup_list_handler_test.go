package postgres_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/testtools"
)

type infoLoggerMock struct {
	lines []string
}

func (logger *infoLoggerMock) Println(v ...interface{}) {
	var parts []string
	for _, value := range v {
		parts = append(parts, value.(string))
	}
	logger.lines = append(logger.lines, strings.Join(parts, " "))
}

type errorLoggerMock struct {
	errs []error
}

func (logger *errorLoggerMock) FatalOnError(err error) {
	if err != nil {
		logger.errs = append(logger.errs, err)
	}
}

func newLoggingMock() (internal.Logging, *infoLoggerMock, *errorLoggerMock) {
	infoLogger, errorLogger := &infoLoggerMock{}, &errorLoggerMock{}
	return internal.Logging{InfoLogger: infoLogger, ErrorLogger: errorLogger}, infoLogger, errorLogger
}

func newListedServer(t *testing.T) internal.Server {
	server := newInMemoryServer(t,
		validBackup("20250101010000", "0/2000", 2),
		testtools.MockBackup{Label: "20250101000000", WalPos: "0/1000", Timeline: 1, Status: int(postgres.StatusFailed)},
	)
	require.NoError(t, testtools.PutRawBackupInfo(server.BackupFolder(), "20250101020000", "STATUS=1"))
	return server
}

func TestHandleBackupList_Plain(t *testing.T) {
	logging, _, errorLogger := newLoggingMock()
	var output bytes.Buffer

	postgres.HandleBackupList(newListedServer(t), false, false, &output, logging)

	assert.Empty(t, errorLogger.errs)
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"label", "status", "start_lsn", "start_timeline", "start_time"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"20250101000000", "failed", "0/1000", "1", "2025-01-01T00:00:00Z"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"20250101010000", "valid", "0/2000", "2", "2025-01-01T01:00:00Z"}, strings.Fields(lines[2]))
}

func TestHandleBackupList_Pretty(t *testing.T) {
	logging, _, _ := newLoggingMock()
	var output bytes.Buffer

	postgres.HandleBackupList(newListedServer(t), true, false, &output, logging)

	assert.Contains(t, output.String(), "START LSN")
	assert.Contains(t, output.String(), "20250101010000")
	assert.Contains(t, output.String(), "0.20.0")
}

func TestHandleBackupList_JSON(t *testing.T) {
	logging, _, _ := newLoggingMock()
	var output bytes.Buffer

	postgres.HandleBackupList(newListedServer(t), false, true, &output, logging)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "20250101000000", records[0]["label"])
	assert.Equal(t, "failed", records[0]["status"])
	assert.Equal(t, "0/2000", records[1]["start_lsn"])
	assert.Equal(t, float64(2), records[1]["start_timeline"])
}

func TestHandleBackupList_NoBackups(t *testing.T) {
	logging, infoLogger, errorLogger := newLoggingMock()
	var output bytes.Buffer

	postgres.HandleBackupList(newInMemoryServer(t), false, false, &output, logging)

	assert.Empty(t, output.String())
	assert.Empty(t, errorLogger.errs)
	assert.Equal(t, []string{"No backups found"}, infoLogger.lines)
}

func TestHandleBackupList_ListingFailure(t *testing.T) {
	server, backupFolder := newMockServer(t)
	backupFolder.EXPECT().ListFolder().Return(nil, nil, errors.New("access denied"))
	logging, _, errorLogger := newLoggingMock()

	postgres.HandleBackupList(server, false, false, &bytes.Buffer{}, logging)

	assert.NotEmpty(t, errorLogger.errs)
}

func TestWriteResolutions(t *testing.T) {
	server := newInMemoryServer(t, validBackup("20250101000000", "0/1000", 1))
	collection := postgres.LoadBackupCollection(server, []string{"20250101000000"})
	resolutions := postgres.ResolveAll(server, []string{"target-tli:1", "target-tli:2"}, collection, 1)

	var plain bytes.Buffer
	require.NoError(t, postgres.WriteResolutions(resolutions, &plain, false))
	lines := strings.Split(strings.TrimSpace(plain.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"target-tli:1", "20250101000000"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(strings.Fields(lines[1])[1], "error:"))

	var encoded bytes.Buffer
	require.NoError(t, postgres.WriteResolutions(resolutions, &encoded, true))
	var decoded []postgres.Resolution
	require.NoError(t, json.Unmarshal(encoded.Bytes(), &decoded))
	assert.Equal(t, "20250101000000", decoded[0].Label)
	assert.Equal(t, postgres.ResultNoBackupFound, decoded[1].ResultCode)
}
