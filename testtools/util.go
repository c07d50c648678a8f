package testtools

import (
	"fmt"
	"strings"

	"github.com/wal-g/pitr-resolver/pkg/storages/memory"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"github.com/wal-g/pitr-resolver/utility"
)

func MakeDefaultInMemoryStorageFolder() *memory.Folder {
	return memory.NewFolder("in_memory/", memory.NewKVS())
}

func MakeDefaultInMemoryStorage() *memory.Storage {
	return memory.NewStorage("in_memory/", memory.NewKVS())
}

// MockBackup describes a backup.info record to lay out in a test folder.
type MockBackup struct {
	Label    string
	WalPos   string
	Timeline int
	Status   int
	Version  string
}

// Render formats the record the way the backup process writes it.
func (b MockBackup) Render() string {
	version := b.Version
	if version == "" {
		version = "0.20.0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "LABEL=%s\n", b.Label)
	fmt.Fprintf(&sb, "STATUS=%d\n", b.Status)
	fmt.Fprintf(&sb, "START_WALPOS=%s\n", b.WalPos)
	fmt.Fprintf(&sb, "START_TIMELINE=%d\n", b.Timeline)
	fmt.Fprintf(&sb, "PGMONETA_VERSION=%s\n", version)
	return sb.String()
}

// PutMockBackup writes backup.info of the backup into <label>/ of the backup folder.
func PutMockBackup(backupFolder storage.Folder, backup MockBackup) error {
	return PutRawBackupInfo(backupFolder, backup.Label, backup.Render())
}

// PutRawBackupInfo writes arbitrary backup.info content, used to simulate corrupt records.
func PutRawBackupInfo(backupFolder storage.Folder, label, content string) error {
	return backupFolder.PutObject(utility.BackupInfoPath(label), strings.NewReader(content))
}
