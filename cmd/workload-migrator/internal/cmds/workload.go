package cmds

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/lxc/incus/v6/shared/units"
	"github.com/lxc/incus/v6/shared/validate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/workload-migrator/internal/util"
	"github.com/FuturFusion/workload-migrator/shared/api"
)

type CmdWorkload struct {
	Global *CmdGlobal
}

func (c *CmdWorkload) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "workload"
	cmd.Short = "Interact with registered workloads"
	cmd.Long = `Description:
  Interact with registered workloads

  Register and manage the workloads that can serve as migration sources.
`

	// Add
	workloadAddCmd := cmdWorkloadAdd{global: c.Global}
	cmd.AddCommand(workloadAddCmd.Command())

	// List
	workloadListCmd := cmdWorkloadList{global: c.Global}
	cmd.AddCommand(workloadListCmd.Command())

	// Remove
	workloadRemoveCmd := cmdWorkloadRemove{global: c.Global}
	cmd.AddCommand(workloadRemoveCmd.Command())

	// Show
	workloadShowCmd := cmdWorkloadShow{global: c.Global}
	cmd.AddCommand(workloadShowCmd.Command())

	// Update
	workloadUpdateCmd := cmdWorkloadUpdate{global: c.Global}
	cmd.AddCommand(workloadUpdateCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// parseMountPointFlags turns repeated "name=size" flag values into mount
// points. The size accepts human readable units.
func parseMountPointFlags(flags []string) ([]api.MountPoint, error) {
	mountPoints := make([]api.MountPoint, 0, len(flags))
	for _, flag := range flags {
		name, size, found := strings.Cut(flag, "=")
		if !found || name == "" {
			return nil, fmt.Errorf(`Invalid mount point %q; must be in "name=size" format`, flag)
		}

		totalSize, err := units.ParseByteSizeString(size)
		if err != nil {
			return nil, fmt.Errorf("Invalid size for mount point %q: %w", name, err)
		}

		mountPoints = append(mountPoints, api.MountPoint{Name: name, TotalSize: totalSize})
	}

	return mountPoints, nil
}

// Add the workload.
type cmdWorkloadAdd struct {
	global *CmdGlobal

	flagMountPoints []string
}

func (c *cmdWorkloadAdd) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "add <IP>"
	cmd.Short = "Add a new workload"
	cmd.Long = `Description:
  Add a new workload

  Registers a new workload with the workload migrator. The IP address is the
  unique identifier of the workload and cannot be changed afterwards.

  You will be prompted for the credentials used to access the workload.
`

	cmd.RunE = c.Run
	cmd.Flags().StringArrayVar(&c.flagMountPoints, "mount-point", nil, `Mount point attached to the workload, in "name=size" format, e.g. 'C:\=100GiB' (can be repeated)`)

	return cmd
}

func (c *cmdWorkloadAdd) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	ip := args[0]

	username, err := c.global.Asker.AskString("Please enter username for workload '"+ip+"': ", "", validate.IsNotEmpty)
	if err != nil {
		return err
	}

	password := c.global.Asker.AskPasswordOnce("Please enter password for workload '" + ip + "': ")

	domain, err := c.global.Asker.AskString("Please enter authentication domain (empty for none): ", "", nil)
	if err != nil {
		return err
	}

	mountPoints, err := parseMountPointFlags(c.flagMountPoints)
	if err != nil {
		return err
	}

	workload := api.Workload{
		IP: ip,
		Credentials: api.Credentials{
			Username: username,
			Password: password,
			Domain:   domain,
		},
		Storage: api.Storage{MountPoints: mountPoints},
	}

	content, err := json.Marshal(workload)
	if err != nil {
		return err
	}

	_, _, err = c.global.doHTTPRequestV1("/workloads", http.MethodPost, "", content)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully added new workload %q.\n", ip)

	return nil
}

// List the workloads.
type cmdWorkloadList struct {
	global *CmdGlobal

	flagFormat string
}

func (c *cmdWorkloadList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List registered workloads"
	cmd.Long = `Description:
  List the registered workloads
`

	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", `Format (csv|json|table|yaml|compact), use suffix ",noheader" to disable headers and ",header" to enable if demanded, e.g. csv,header`)
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return validateFlagFormat(cmd.Flag("format").Value.String())
	}

	return cmd
}

func (c *cmdWorkloadList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	// Get the list of all workloads.
	resp, _, err := c.global.doHTTPRequestV1("/workloads", http.MethodGet, "recursion=1", nil)
	if err != nil {
		return err
	}

	workloads := []api.Workload{}

	err = responseToStruct(resp, &workloads)
	if err != nil {
		return err
	}

	// Render the table.
	header := []string{"IP", "Username", "Domain", "Mount Points"}
	data := [][]string{}

	for _, w := range workloads {
		mountPoints := make([]string, 0, len(w.Storage.MountPoints))
		for _, mp := range w.Storage.MountPoints {
			mountPoints = append(mountPoints, fmt.Sprintf("%s (%s)", mp.Name, units.GetByteSizeStringIEC(mp.TotalSize, 2)))
		}

		data = append(data, []string{w.IP, w.Credentials.Username, w.Credentials.Domain, strings.Join(mountPoints, ", ")})
	}

	sort.Sort(util.SortColumnsNaturally(data))

	return util.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, workloads)
}

// Remove the workload.
type cmdWorkloadRemove struct {
	global *CmdGlobal
}

func (c *cmdWorkloadRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <IP>"
	cmd.Short = "Remove workload"
	cmd.Long = `Description:
  Remove workload
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdWorkloadRemove) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	ip := args[0]

	// Remove the workload.
	_, _, err = c.global.doHTTPRequestV1("/workloads/"+ip, http.MethodDelete, "", nil)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully removed workload %q.\n", ip)

	return nil
}

// Show the workload.
type cmdWorkloadShow struct {
	global *CmdGlobal
}

func (c *cmdWorkloadShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <IP>"
	cmd.Short = "Show workload details"
	cmd.Long = `Description:
  Show workload details
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdWorkloadShow) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	resp, _, err := c.global.doHTTPRequestV1("/workloads/"+args[0], http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	workload := api.Workload{}

	err = responseToStruct(resp, &workload)
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(workload)
	if err != nil {
		return err
	}

	cmd.Print(string(content))

	return nil
}

// Update the workload.
type cmdWorkloadUpdate struct {
	global *CmdGlobal

	flagMountPoints []string
}

func (c *cmdWorkloadUpdate) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "update <IP>"
	cmd.Short = "Update workload"
	cmd.Long = `Description:
  Update workload

  Updates the credentials or the storage of a registered workload. The IP
  address cannot be changed.
`

	cmd.RunE = c.Run
	cmd.Flags().StringArrayVar(&c.flagMountPoints, "mount-point", nil, `Replacement mount point, in "name=size" format (can be repeated)`)

	return cmd
}

func (c *cmdWorkloadUpdate) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	ip := args[0]

	// Get the existing workload.
	resp, _, err := c.global.doHTTPRequestV1("/workloads/"+ip, http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	workload := api.Workload{}

	err = responseToStruct(resp, &workload)
	if err != nil {
		return err
	}

	updateAuth, err := c.global.Asker.AskBool("Update configured credentials? (yes/no) [default=no]: ", "no")
	if err != nil {
		return err
	}

	if updateAuth {
		workload.Credentials.Username, err = c.global.Asker.AskString("Username [default="+workload.Credentials.Username+"]: ", workload.Credentials.Username, validate.IsNotEmpty)
		if err != nil {
			return err
		}

		workload.Credentials.Password = c.global.Asker.AskPasswordOnce("Password: ")

		workload.Credentials.Domain, err = c.global.Asker.AskString("Authentication domain [default="+workload.Credentials.Domain+"]: ", workload.Credentials.Domain, nil)
		if err != nil {
			return err
		}
	}

	// Replace the storage when mount points were given.
	if len(c.flagMountPoints) > 0 {
		mountPoints, err := parseMountPointFlags(c.flagMountPoints)
		if err != nil {
			return err
		}

		workload.Storage = api.Storage{MountPoints: mountPoints}
	}

	// Update the workload.
	content, err := json.Marshal(workload)
	if err != nil {
		return err
	}

	_, _, err = c.global.doHTTPRequestV1("/workloads/"+ip, http.MethodPut, "", content)
	if err != nil {
		return err
	}

	cmd.Printf("Successfully updated workload %q.\n", ip)

	return nil
}
