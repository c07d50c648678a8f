package postgres

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/wal-g/pitr-resolver/internal"
)

// HandleBackupList prints the backups of the server that can be loaded, oldest first.
func HandleBackupList(server internal.Server, pretty bool, json bool, output io.Writer, logging internal.Logging) {
	labels, err := ListBackupLabels(server)
	logging.ErrorLogger.FatalOnError(err)

	records := LoadBackupCollection(server, labels).Records()
	if len(records) == 0 {
		logging.InfoLogger.Println("No backups found")
		return
	}

	switch {
	case json:
		err = internal.WriteAsJSON(records, output, pretty)
		logging.ErrorLogger.FatalOnError(err)
	case pretty:
		WritePrettyBackupList(records, output)
	default:
		WriteBackupList(records, output)
	}
}

func WriteBackupList(records []BackupRecord, output io.Writer) {
	writer := tabwriter.NewWriter(output, 0, 0, 1, ' ', 0)
	defer writer.Flush()
	fmt.Fprintln(writer, "label\tstatus\tstart_lsn\tstart_timeline\tstart_time")
	for _, r := range records {
		_, _ = fmt.Fprintf(writer, "%v\t%v\t%v\t%v\t%v\n",
			r.Label, r.Status, r.StartLSN, r.StartTimeline, r.StartTime.Format(time.RFC3339))
	}
}

func WritePrettyBackupList(records []BackupRecord, output io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(output)
	defer writer.Render()
	writer.AppendHeader(table.Row{"#", "Label", "Status", "Start LSN", "Timeline", "Start time", "Version"})
	for i, r := range records {
		version := ""
		if r.Version != nil {
			version = r.Version.String()
		}
		writer.AppendRow(table.Row{i, r.Label, r.Status, r.StartLSN, r.StartTimeline,
			r.StartTime.Format(time.RFC850), version})
	}
}

// WriteResolutions prints one line per resolution: the target and either the label or the error.
func WriteResolutions(resolutions []Resolution, output io.Writer, json bool) error {
	if json {
		return internal.WriteAsJSON(resolutions, output, false)
	}
	writer := tabwriter.NewWriter(output, 0, 0, 1, ' ', 0)
	for _, r := range resolutions {
		outcome := r.Label
		if r.Err() != nil {
			outcome = "error: " + r.Error
		}
		_, _ = fmt.Fprintf(writer, "%s\t%s\n", r.Target, outcome)
	}
	return writer.Flush()
}
