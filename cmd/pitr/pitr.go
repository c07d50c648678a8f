package pitr

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wal-g/pitr-resolver/internal"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
	"github.com/wal-g/pitr-resolver/utility"
)

const (
	ShortDescription = "Chooses the base backup for point-in-time recovery"

	hiddenConfigFlagAnnotation = "walg_annotation_hidden_config_flag"
)

// These variables are here only to show current version. They are set in makefile during build process
var Version = "devel"
var GitRevision = "devel"
var BuildDate = "devel"

var Cmd = &cobra.Command{
	Use:     "pitr-resolver",
	Short:   ShortDescription,
	Version: Version + "\t" + GitRevision + "\t" + BuildDate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the Cmd.
func Execute() {
	if err := Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(postgres.ResultFailure)
	}
}

// configureServer opens the configured storage. The caller closes the returned storage.
func configureServer() (internal.Storage, internal.Server, error) {
	st, err := internal.ConfigureStorage()
	if err != nil {
		return nil, internal.Server{}, err
	}
	server, err := internal.ConfigureServer(st)
	if err != nil {
		utility.LoggedClose(st, "failed to close storage")
		return nil, internal.Server{}, err
	}
	return st, server, nil
}

func init() {
	cobra.OnInitialize(internal.InitConfig, internal.Configure)

	internal.ConfigureSettings()
	Cmd.PersistentFlags().StringVar(&internal.CfgFile, "config", "",
		"config file (default is $HOME/"+internal.DefaultConfigName+".json)")
	internal.AddConfigFlags(Cmd, hiddenConfigFlagAnnotation)
	Cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if _, ok := f.Annotations[hiddenConfigFlagAnnotation]; ok {
			f.Hidden = true
		}
	})
	Cmd.InitDefaultVersionFlag()
}
