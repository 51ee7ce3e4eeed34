package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lxc/incus/v6/shared/ask"
	"github.com/spf13/cobra"

	"github.com/FuturFusion/workload-migrator/cmd/workload-migrator/internal/cmds"
	"github.com/FuturFusion/workload-migrator/internal/version"
)

func main() {
	// Setup the parser
	app := &cobra.Command{}
	app.Use = "workload-migrator"
	app.Short = "Command line client for the workload migrator"
	app.Long = `Description:
  Command line client for the workload migrator

  The workload migrator can be interacted with through the various commands
  below. For help with any of those, simply call them with --help.
`

	app.SilenceUsage = true
	app.SilenceErrors = true
	app.CompletionOptions = cobra.CompletionOptions{HiddenDefaultCmd: true}

	// Global flags
	asker := ask.NewAsker(bufio.NewReader(os.Stdin))
	globalCmd := cmds.CmdGlobal{Cmd: app, Asker: &asker}

	app.PersistentFlags().BoolVar(&globalCmd.FlagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.FlagHelp, "help", "h", false, "Print help")
	app.PersistentFlags().BoolVar(&globalCmd.FlagForceLocal, "force-local", false, "Force using the local unix socket")

	// Wrappers
	app.PersistentPreRunE = globalCmd.PreRun

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version.Version

	// migration sub-command
	migrationCmd := cmds.CmdMigration{Global: &globalCmd}
	app.AddCommand(migrationCmd.Command())

	// workload sub-command
	workloadCmd := cmds.CmdWorkload{Global: &globalCmd}
	app.AddCommand(workloadCmd.Command())

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}
}
