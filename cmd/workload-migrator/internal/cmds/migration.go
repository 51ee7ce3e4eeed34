package cmds

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/lxc/incus/v6/shared/validate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/workload-migrator/internal/util"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

type CmdMigration struct {
	Global *CmdGlobal
}

func (c *CmdMigration) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "migration"
	cmd.Short = "Interact with migrations"
	cmd.Long = `Description:
  Interact with migrations

  Define, run and inspect migrations of registered workloads into cloud
  targets.
`

	// Add
	migrationAddCmd := cmdMigrationAdd{global: c.Global}
	cmd.AddCommand(migrationAddCmd.Command())

	// List
	migrationListCmd := cmdMigrationList{global: c.Global}
	cmd.AddCommand(migrationListCmd.Command())

	// Remove
	migrationRemoveCmd := cmdMigrationRemove{global: c.Global}
	cmd.AddCommand(migrationRemoveCmd.Command())

	// Show
	migrationShowCmd := cmdMigrationShow{global: c.Global}
	cmd.AddCommand(migrationShowCmd.Command())

	// Update
	migrationUpdateCmd := cmdMigrationUpdate{global: c.Global}
	cmd.AddCommand(migrationUpdateCmd.Command())

	// Start
	migrationStartCmd := cmdMigrationStart{global: c.Global}
	cmd.AddCommand(migrationStartCmd.Command())

	// Status
	migrationStatusCmd := cmdMigrationStatus{global: c.Global}
	cmd.AddCommand(migrationStatusCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// Add the migration.
type cmdMigrationAdd struct {
	global *CmdGlobal

	flagSelect []string
}

func (c *cmdMigrationAdd) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "add <source IP> <cloud type> <target IP>"
	cmd.Short = "Add a new migration"
	cmd.Long = `Description:
  Add a new migration

  Defines a new migration of a registered workload into a cloud target. The
  source workload must already be registered. Without --select all mount
  points of the source are carried over; the boot volume must always be
  among the selected mount points.

  You will be prompted for the credentials used to access the cloud and the
  target VM.
`

	cmd.RunE = c.Run
	cmd.Flags().StringArrayVar(&c.flagSelect, "select", nil, `Name of a source mount point to carry over (can be repeated)`)

	return cmd
}

func (c *cmdMigrationAdd) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 3, 3)
	if exit {
		return err
	}

	sourceIP := args[0]
	targetIP := args[2]

	cloudType, err := api.ParseCloudType(args[1])
	if err != nil {
		return err
	}

	// Get the source workload.
	resp, _, err := c.global.doHTTPRequestV1("/workloads/"+sourceIP, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	source := api.Workload{}

	err = responseToStruct(resp, &source)
	if err != nil {
		return err
	}

	// Without an explicit selection, carry over all source mount points.
	selected := c.flagSelect
	if len(selected) == 0 {
		for _, mp := range source.Storage.MountPoints {
			selected = append(selected, mp.Name)
		}
	}

	cloudUsername, err := c.global.Asker.AskString("Please enter username for the "+string(cloudType)+" cloud: ", "", validate.IsNotEmpty)
	if err != nil {
		return err
	}

	cloudPassword := c.global.Asker.AskPasswordOnce("Please enter password for the " + string(cloudType) + " cloud: ")

	targetUsername, err := c.global.Asker.AskString("Please enter username for target VM '"+targetIP+"': ", "", validate.IsNotEmpty)
	if err != nil {
		return err
	}

	targetPassword := c.global.Asker.AskPasswordOnce("Please enter password for target VM '" + targetIP + "': ")

	migration := api.Migration{
		SelectedMountPoints: selected,
		Source:              source,
		MigrationTarget: api.MigrationTarget{
			CloudType: cloudType,
			CloudCredentials: api.Credentials{
				Username: cloudUsername,
				Password: cloudPassword,
			},
			TargetVM: api.Workload{
				IP: targetIP,
				Credentials: api.Credentials{
					Username: targetUsername,
					Password: targetPassword,
				},
			},
		},
	}

	content, err := json.Marshal(migration)
	if err != nil {
		return err
	}

	resp, _, err = c.global.doHTTPRequestV1("/migrations", http.MethodPost, "", content)
	if err != nil {
		return err
	}

	created := api.Migration{}

	err = responseToStruct(resp, &created)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully added new migration %q.\n", created.ID)

	return nil
}

// List the migrations.
type cmdMigrationList struct {
	global *CmdGlobal

	flagFormat string
}

func (c *cmdMigrationList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List migrations"
	cmd.Long = `Description:
  List the migrations
`

	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", `Format (csv|json|table|yaml|compact), use suffix ",noheader" to disable headers and ",header" to enable if demanded, e.g. csv,header`)
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateFlagFormat(cmd.Flag("format").Value.String())
	}

	return cmd
}

func (c *cmdMigrationList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	// Get the list of all migrations.
	resp, _, err := c.global.doHTTPRequestV1("/migrations", http.MethodGet, "recursion=1", nil)
	if err != nil {
		return err
	}

	migrations := []api.Migration{}

	err = responseToStruct(resp, &migrations)
	if err != nil {
		return err
	}

	// Render the table.
	header := []string{"ID", "Source IP", "Cloud", "Target IP", "Selected Mount Points", "State", "Created At"}
	data := [][]string{}

	for _, m := range migrations {
		data = append(data, []string{m.ID, m.Source.IP, string(m.MigrationTarget.CloudType), m.MigrationTarget.TargetVM.IP, strings.Join(m.SelectedMountPoints, ", "), string(m.State), m.CreatedAt.Format(time.RFC3339)})
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, migrations)
}

// Remove the migration.
type cmdMigrationRemove struct {
	global *CmdGlobal
}

func (c *cmdMigrationRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <ID>"
	cmd.Short = "Remove migration"
	cmd.Long = `Description:
  Remove migration
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdMigrationRemove) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id := args[0]

	// Remove the migration.
	_, _, err = c.global.doHTTPRequestV1("/migrations/"+id, http.MethodDelete, "", nil)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully removed migration %q.\n", id)

	return nil
}

// Show the migration.
type cmdMigrationShow struct {
	global *CmdGlobal
}

func (c *cmdMigrationShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <ID>"
	cmd.Short = "Show migration details"
	cmd.Long = `Description:
  Show migration details
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdMigrationShow) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	resp, _, err := c.global.doHTTPRequestV1("/migrations/"+args[0], http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	migration := api.Migration{}

	err = responseToStruct(resp, &migration)
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(migration)
	if err != nil {
		return err
	}

	cmd.Print(string(content))

	return nil
}

// Update the migration.
type cmdMigrationUpdate struct {
	global *CmdGlobal

	flagSelect []string
}

func (c *cmdMigrationUpdate) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "update <ID>"
	cmd.Short = "Update migration"
	cmd.Long = `Description:
  Update migration

  Replaces the selected mount points of a migration that has not yet run.
  The boot volume must remain among the selected mount points.
`

	cmd.RunE = c.Run
	cmd.Flags().StringArrayVar(&c.flagSelect, "select", nil, `Name of a source mount point to carry over (can be repeated)`)

	return cmd
}

func (c *cmdMigrationUpdate) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	if len(c.flagSelect) == 0 {
		return fmt.Errorf("At least one --select is required")
	}

	id := args[0]

	content, err := json.Marshal(api.Migration{SelectedMountPoints: c.flagSelect})
	if err != nil {
		return err
	}

	_, _, err = c.global.doHTTPRequestV1("/migrations/"+id, http.MethodPut, "", content)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully updated migration %q.\n", id)

	return nil
}

// Start the migration.
type cmdMigrationStart struct {
	global *CmdGlobal

	flagDelayMinutes float64
}

func (c *cmdMigrationStart) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "start <ID>"
	cmd.Short = "Start migration"
	cmd.Long = `Description:
  Start migration

  Runs the migration and waits for it to finish. Without --delay the
  transfer time configured on the server is used.
`

	cmd.RunE = c.Run
	cmd.Flags().Float64Var(&c.flagDelayMinutes, "delay", 0, "Simulated transfer time in minutes")

	return cmd
}

func (c *cmdMigrationStart) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id := args[0]

	content, err := json.Marshal(api.MigrationStart{DelayMinutes: c.flagDelayMinutes})
	if err != nil {
		return err
	}

	resp, _, err := c.global.doHTTPRequestV1("/migrations/"+id+"/start", http.MethodPost, "", content)
	if err != nil {
		return err
	}

	migration := api.Migration{}

	err = responseToStruct(resp, &migration)
	if err != nil {
		return err
	}

	if migration.State != api.MIGRATIONSTATUS_SUCCESS {
		return fmt.Errorf("Migration %q finished in state %q", id, migration.State)
	}

	cmd.Printf("Successfully ran migration %q.\n", id)

	return nil
}

// Show the migration status.
type cmdMigrationStatus struct {
	global *CmdGlobal
}

func (c *cmdMigrationStatus) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "status <ID>"
	cmd.Short = "Show migration status"
	cmd.Long = `Description:
  Show migration status
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdMigrationStatus) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	id := args[0]

	resp, _, err := c.global.doHTTPRequestV1("/migrations/"+id+"/status", http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	status := api.MigrationStatus{}

	err = responseToStruct(resp, &status)
	if err != nil {
		return err
	}

	cmd.Printf("Migration %q is %s (finished: %t).\n", status.MigrationID, status.State, status.Finished)

	return nil
}
