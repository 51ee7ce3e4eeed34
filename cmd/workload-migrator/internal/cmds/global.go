package cmds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/user"
	"path"
	"strings"

	incusAPI "github.com/lxc/incus/v6/shared/api"
	"github.com/lxc/incus/v6/shared/util"
	"github.com/spf13/cobra"

	"github.com/FuturFusion/workload-migrator/cmd/workload-migrator/internal/config"
	"github.com/FuturFusion/workload-migrator/internal/server/sys"
	internalUtil "github.com/FuturFusion/workload-migrator/internal/util"
)

//go:generate go run github.com/matryer/moq -fmt goimports -out asker_mock_gen_test.go -rm . Asker

type Asker interface {
	AskBool(question string, defaultAnswer string) (bool, error)
	AskChoice(question string, choices []string, defaultAnswer string) (string, error)
	AskInt(question string, minValue int64, maxValue int64, defaultAnswer string, validator func(int64) error) (int64, error)
	AskString(question string, defaultAnswer string, validator func(string) error) (string, error)
	AskPasswordOnce(question string) string
}

type CmdGlobal struct {
	Asker Asker

	config *config.Config
	os     *sys.OS
	Cmd    *cobra.Command

	FlagForceLocal bool
	FlagHelp       bool
	FlagVersion    bool
}

func (c *CmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	var err error

	// If calling the help, skip pre-run
	if cmd.Name() == "help" {
		return nil
	}

	c.os = sys.DefaultOS()

	// Figure out the config directory and config path
	var configDir string
	if os.Getenv("WORKLOAD_MIGRATOR_CONF") != "" {
		configDir = os.Getenv("WORKLOAD_MIGRATOR_CONF")
	} else if os.Getenv("HOME") != "" && util.PathExists(os.Getenv("HOME")) {
		configDir = path.Join(os.Getenv("HOME"), ".config", "workload-migrator")
	} else {
		currentUser, err := user.Current()
		if err != nil {
			return err
		}

		if util.PathExists(currentUser.HomeDir) {
			configDir = path.Join(currentUser.HomeDir, ".config", "workload-migrator")
		}
	}

	configDir = os.ExpandEnv(configDir)
	if !util.PathExists(configDir) {
		// Create the config dir if it doesn't exist
		err = os.MkdirAll(configDir, 0o750)
		if err != nil {
			return err
		}
	}

	// Load the configuration
	c.config, err = config.LoadConfig(configDir)
	if err != nil {
		return err
	}

	// Without a configured server address, talk to the local unix socket.
	if c.config.Server == "" {
		c.FlagForceLocal = true
	}

	return nil
}

func (c *CmdGlobal) CheckArgs(cmd *cobra.Command, args []string, minArgs int, maxArgs int) (bool, error) {
	if len(args) < minArgs || (maxArgs != -1 && len(args) > maxArgs) {
		_ = cmd.Help()

		return true, fmt.Errorf("Invalid number of arguments")
	}

	return false, nil
}

func (c *CmdGlobal) buildRequest(endpoint string, method string, query string, reader io.Reader) (*http.Request, *http.Client, error) {
	requestString, err := url.JoinPath("/1.0/", endpoint)
	if err != nil {
		return nil, nil, err
	}

	if query != "" {
		requestString = fmt.Sprintf("%s?%s", requestString, query)
	}

	var client *http.Client
	u, err := url.Parse(requestString)
	if err != nil {
		return nil, nil, err
	}

	if !c.FlagForceLocal && strings.HasPrefix(c.config.Server, "http") {
		serverHost, err := url.Parse(c.config.Server)
		if err != nil {
			return nil, nil, err
		}

		u.Scheme = serverHost.Scheme
		u.Host = serverHost.Host

		client = &http.Client{}
	} else {
		u.Scheme = "http"
		u.Host = "unix.socket"
		client = internalUtil.UnixHTTPClient(c.os.GetUnixSocket())
	}

	req, err := http.NewRequest(method, u.String(), reader)
	if err != nil {
		return nil, nil, err
	}

	return req, client, nil
}

func (c *CmdGlobal) parseResponse(resp *http.Response) (*incusAPI.Response, error) {
	decoder := json.NewDecoder(resp.Body)
	response := incusAPI.Response{}

	err := decoder.Decode(&response)
	if err != nil {
		return nil, err
	} else if response.Code != 0 {
		return &response, fmt.Errorf("Received an error from the server: %s", response.Error)
	}

	return &response, nil
}

func (c *CmdGlobal) doHTTPRequestV1(endpoint string, method string, query string, content []byte) (*incusAPI.Response, http.Header, error) {
	req, client, err := c.buildRequest(endpoint, method, query, bytes.NewBuffer(content))
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	// A deleted resource has no body to decode.
	if resp.StatusCode == http.StatusNoContent {
		return &incusAPI.Response{}, resp.Header, nil
	}

	response, err := c.parseResponse(resp)
	if err != nil {
		return response, resp.Header, err
	}

	return response, resp.Header, nil
}

func responseToStruct(response *incusAPI.Response, targetStruct any) error {
	return json.Unmarshal(response.Metadata, &targetStruct)
}

func validateFlagFormat(format string) error {
	fields := strings.SplitN(format, ",", 2)
	switch fields[0] {
	case internalUtil.TableFormatCSV, internalUtil.TableFormatJSON, internalUtil.TableFormatTable, internalUtil.TableFormatYAML, internalUtil.TableFormatCompact:
	default:
		return fmt.Errorf("Invalid format %q", format)
	}

	if len(fields) == 2 && fields[1] != "noheader" && fields[1] != "header" {
		return fmt.Errorf("Invalid format modifier %q", fields[1])
	}

	return nil
}
