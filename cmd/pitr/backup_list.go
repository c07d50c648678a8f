package pitr

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/utility"
	"github.com/wal-g/tracelog"
)

const (
	BackupListShortDescription = "Prints the backups of the server and their metadata"
	PrettyFlag                 = "pretty"
)

var (
	// backupListCmd represents the backupList command
	backupListCmd = &cobra.Command{
		Use:   "backup-list",
		Short: BackupListShortDescription,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runBackupList(pretty, json))
		},
	}
	pretty = false
	json   = false
)

func runBackupList(pretty, json bool) int {
	defer internal.ExportMetrics()

	st, server, err := configureServer()
	if err != nil {
		tracelog.ErrorLogger.PrintError(err)
		return postgres.ResultFailure
	}
	defer utility.LoggedClose(st, "failed to close storage")

	postgres.HandleBackupList(server, pretty, json, os.Stdout, internal.DefaultLogging())
	return postgres.ResultOK
}

func init() {
	Cmd.AddCommand(backupListCmd)

	backupListCmd.Flags().BoolVar(&pretty, PrettyFlag, false, "Prints more readable output")
	backupListCmd.Flags().BoolVar(&json, JSONFlag, false, "Prints output in json format")
}
