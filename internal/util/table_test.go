package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/workload-migrator/internal/testing/boom"
	"github.com/FuturFusion/workload-migrator/internal/util"
)

var headers = []string{
	"IP", "Username", "Mount Points",
}

var entries = [][]string{
	{
		"10.10.10.1",
		"admin",
		"2",
	},
	{
		"10.10.10.2",
		"admin2",
		"1",
	},
	{
		"10.10.10.3",
		"admin3",
		"0",
	},
}

type someJSON struct {
	IP          string `json:"ip" yaml:"ip"`
	Username    string `json:"username" yaml:"username"`
	MountPoints int    `json:"mount_points" yaml:"mount_points"`
}

var raw = []someJSON{
	{
		IP:          "10.10.10.1",
		Username:    "admin",
		MountPoints: 2,
	},
	{
		IP:          "10.10.10.2",
		Username:    "admin2",
		MountPoints: 1,
	},
	{
		IP:          "10.10.10.3",
		Username:    "admin3",
		MountPoints: 0,
	},
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name   string
		format string

		assertErr             require.ErrorAssertionFunc
		wantOutputContains    []string
		wantOutputNotContains []string
		wantJSONEQ            []string
	}{
		{
			name:   "success - table",
			format: `table`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`| 10.10.10.1 | admin  | 2            |`,
				`| 10.10.10.2 | admin2 | 1            |`,
				`| 10.10.10.3 | admin3 | 0            |`,
			},
		},
		{
			name:   "success - table without header",
			format: `table,noheader`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`| 10.10.10.1 | admin  | 2 |`,
				`| 10.10.10.2 | admin2 | 1 |`,
				`| 10.10.10.3 | admin3 | 0 |`,
			},
			wantOutputNotContains: []string{
				`IP`,
				`USERNAME`,
				`MOUNT POINTS`,
			},
		},
		{
			name:   "success - csv",
			format: "csv",

			assertErr: require.NoError,
			wantOutputContains: []string{
				`10.10.10.1,admin,2`,
				`10.10.10.2,admin2,1`,
				`10.10.10.3,admin3,0`,
			},
			wantOutputNotContains: []string{
				`IP`,
				`Username`,
				`Mount Points`,
			},
		},
		{
			name:   "success - csv with header",
			format: "csv,header",

			assertErr: require.NoError,
			wantOutputContains: []string{
				`IP,Username,Mount Points`,
				`10.10.10.1,admin,2`,
			},
		},
		{
			name:   "success - compact",
			format: `compact`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`10.10.10.1  admin   2`,
				`10.10.10.2  admin2  1`,
				`10.10.10.3  admin3  0`,
			},
		},
		{
			name:   "success - list as json",
			format: `json`,

			assertErr: require.NoError,
			wantJSONEQ: []string{
				`[
  {
    "ip": "10.10.10.1",
    "username": "admin",
    "mount_points": 2
  },
  {
    "ip": "10.10.10.2",
    "username": "admin2",
    "mount_points": 1
  },
  {
    "ip": "10.10.10.3",
    "username": "admin3",
    "mount_points": 0
  }
]`,
			},
		},
		{
			name:   "success - list as yaml",
			format: `yaml`,

			assertErr: require.NoError,
			wantOutputContains: []string{
				`- ip: 10.10.10.1`,
				`username: admin`,
				`mount_points: 2`,
				`- ip: 10.10.10.2`,
				`- ip: 10.10.10.3`,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.Buffer{}

			err := util.RenderTable(&buf, tc.format, headers, entries, raw)
			tc.assertErr(t, err)

			if testing.Verbose() {
				t.Logf("\n%s", buf.String())
			}

			for _, want := range tc.wantOutputContains {
				require.Contains(t, buf.String(), want)
			}

			for _, want := range tc.wantOutputNotContains {
				require.NotContains(t, buf.String(), want)
			}

			for _, want := range tc.wantJSONEQ {
				require.JSONEq(t, want, buf.String())
			}
		})
	}
}

func TestRenderTableNilWriter(t *testing.T) {
	err := util.RenderTable(nil, "table", headers, entries, raw)
	require.Error(t, err)
}

func TestRenderTableError(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		headers []string
		entries [][]string
		raw     any

		assertErr require.ErrorAssertionFunc
	}{
		{
			name:    "csv write error",
			format:  "csv",
			headers: []string{"head 1", "head 2"},
			entries: [][]string{
				{
					"entry 1.1",
					"entry 1.2",
				},
			},

			assertErr: require.Error,
		},
		{
			name:   "json encoding error",
			format: "json",
			raw:    func() {}, // func type can not be encoded to JSON.

			assertErr: require.Error,
		},
		{
			name:   "yaml encoding error",
			format: "yaml",
			raw:    errTextMarshaler{},

			assertErr: require.Error,
		},
		{
			name:   "invalid format",
			format: "invalid",

			assertErr: require.Error,
		},
		{
			name:   "invalid format modifier",
			format: "table,unknown",

			assertErr: require.Error,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := errWriter{}

			err := util.RenderTable(w, tc.format, tc.headers, tc.entries, tc.raw)
			tc.assertErr(t, err)
		})
	}
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, boom.Error
}

type errTextMarshaler struct{}

func (errTextMarshaler) MarshalText() ([]byte, error) {
	return nil, boom.Error
}
