package pitr

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/utility"
	"github.com/wal-g/tracelog"
)

const (
	ResolveShortDescription = "Prints the backup to restore from to reach a recovery target"
	ResolveLongDescription  = "Targets are target-lsn:<hi>/<lo>, target-time:<YYYY-MM-DD HH:MM:SS> (UTC) " +
		"or target-tli:<timeline>.\n" +
		"Exit codes: 0 resolved, 1 no backup satisfies the target, 2 malformed target, 3 storage or other failure."
	JSONFlag = "json"
)

var (
	resolveCmd = &cobra.Command{
		Use:   "resolve target...",
		Short: ResolveShortDescription,
		Long:  ResolveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runResolve(args, resolveJSON))
		},
	}
	resolveJSON = false
)

func runResolve(identifiers []string, asJSON bool) int {
	defer internal.ExportMetrics()

	for _, identifier := range identifiers {
		if _, err := postgres.ParseRecoveryTarget(identifier); err != nil {
			tracelog.ErrorLogger.PrintError(err)
			return postgres.ResultCode(err)
		}
	}

	st, server, err := configureServer()
	if err != nil {
		tracelog.ErrorLogger.PrintError(err)
		return postgres.ResultFailure
	}
	defer utility.LoggedClose(st, "failed to close storage")

	if len(identifiers) == 1 && !asJSON {
		label, err := postgres.LoadAndResolve(server, identifiers[0])
		if err != nil {
			tracelog.ErrorLogger.PrintError(err)
			return postgres.ResultCode(err)
		}
		fmt.Println(label)
		return postgres.ResultOK
	}

	labels, err := postgres.ListBackupLabels(server)
	if err != nil {
		tracelog.ErrorLogger.PrintError(err)
		return postgres.ResultCode(err)
	}
	collection := postgres.LoadBackupCollection(server, labels)

	resolutions := postgres.ResolveAll(server, identifiers, collection, runtime.GOMAXPROCS(0))
	if err = postgres.WriteResolutions(resolutions, os.Stdout, asJSON); err != nil {
		tracelog.ErrorLogger.PrintError(err)
		return postgres.ResultFailure
	}
	return postgres.FirstFailureCode(resolutions)
}

func init() {
	Cmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&resolveJSON, JSONFlag, false, "Prints output in json format")
}
