package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	incusUtil "github.com/lxc/incus/v6/shared/util"
	"golang.org/x/sync/errgroup"

	"github.com/FuturFusion/workload-migrator/cmd/workload-migratord/internal/config"
	"github.com/FuturFusion/workload-migrator/internal/db"
	"github.com/FuturFusion/workload-migrator/internal/logger"
	"github.com/FuturFusion/workload-migrator/internal/migration"
	"github.com/FuturFusion/workload-migrator/internal/migration/repo/sqlite"
	"github.com/FuturFusion/workload-migrator/internal/server/response"
	"github.com/FuturFusion/workload-migrator/internal/server/sys"
	"github.com/FuturFusion/workload-migrator/internal/transaction"
	"github.com/FuturFusion/workload-migrator/internal/version"
)

// APIEndpoint represents a URL in our API.
type APIEndpoint struct {
	Path   string // Path pattern for this endpoint.
	Get    APIEndpointAction
	Put    APIEndpointAction
	Post   APIEndpointAction
	Delete APIEndpointAction
}

// APIEndpointAction represents an action on an API endpoint.
type APIEndpointAction struct {
	Handler func(d *Daemon, r *http.Request) response.Response
}

type Daemon struct {
	db *db.Node
	os *sys.OS

	config *config.DaemonConfig

	workload  migration.WorkloadService
	migration migration.MigrationService

	errgroup *errgroup.Group

	listener net.Listener
	server   *http.Server

	ShutdownCtx    context.Context    // Canceled when shutdown starts.
	ShutdownCancel context.CancelFunc // Cancels the shutdownCtx to indicate shutdown starting.
	ShutdownDoneCh chan error         // Receives the result of the d.Stop() function and tells the daemon to end.
}

func NewDaemon() *Daemon {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	d := &Daemon{
		db:             &db.Node{},
		os:             sys.DefaultOS(),
		ShutdownCtx:    shutdownCtx,
		ShutdownCancel: shutdownCancel,
		ShutdownDoneCh: make(chan error),
	}

	return d
}

func (d *Daemon) Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	err = config.Validate(*cfg)
	if err != nil {
		return err
	}

	d.config = cfg

	slog.Info("Starting up", slog.String("version", version.Version))

	// Open the local sqlite database.
	d.db, err = db.OpenDatabase(d.os.LocalDatabaseDir())
	if err != nil {
		slog.Error("Failed to open sqlite database", logger.Err(err))
		return err
	}

	dbWithTransaction := transaction.Enable(d.db.DB())

	d.workload = migration.NewWorkloadService(sqlite.NewWorkload(dbWithTransaction))
	d.migration = migration.NewMigrationService(sqlite.NewMigration(dbWithTransaction))

	// Setup web server
	d.server = restServer(d)

	group, errgroupCtx := errgroup.WithContext(context.Background())
	d.errgroup = group

	group.Go(func() error {
		_, err := net.Dial("unix", d.os.GetUnixSocket())
		if err == nil {
			return fmt.Errorf("Active unix socket found at %q", d.os.GetUnixSocket())
		}

		if incusUtil.PathExists(d.os.GetUnixSocket()) {
			err := os.RemoveAll(d.os.GetUnixSocket())
			if err != nil {
				return fmt.Errorf("Failed to delete stale unix socket at %q: %w", d.os.GetUnixSocket(), err)
			}
		}

		unixListener, err := net.Listen("unix", d.os.GetUnixSocket())
		if err != nil {
			return err
		}

		slog.Info("Start unix socket listener", slog.Any("addr", unixListener.Addr()))

		err = d.server.Serve(unixListener)
		if errors.Is(err, http.ErrServerClosed) {
			// Ignore error from graceful shutdown.
			return nil
		}

		return err
	})

	if d.config.Network.Address != "" {
		group.Go(func() error {
			tcpListener, err := net.Listen("tcp", d.config.Network.Address)
			if err != nil {
				return err
			}

			d.listener = tcpListener

			slog.Info("Start http listener", slog.Any("addr", tcpListener.Addr()))

			err = d.server.Serve(tcpListener)
			if errors.Is(err, http.ErrServerClosed) {
				// Ignore error from graceful shutdown.
				return nil
			}

			return err
		})
	}

	select {
	case <-errgroupCtx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer shutdownCancel()
		return d.Stop(shutdownCtx)
	case <-time.After(500 * time.Millisecond):
		// Grace period we wait for potential immediate errors from serving the http server.
	}

	slog.Info("Daemon started")

	return nil
}

func (d *Daemon) Stop(ctx context.Context) error {
	d.ShutdownCancel()

	shutdownErr := d.server.Shutdown(ctx)

	errgroupWaitErr := d.errgroup.Wait()

	err := errors.Join(shutdownErr, errgroupWaitErr, d.db.Close())

	slog.Info("Daemon stopped")

	return err
}

func (d *Daemon) createCmd(restAPI *http.ServeMux, apiVersion string, c APIEndpoint) {
	var uri string
	if c.Path == "" {
		uri = fmt.Sprintf("/%s", apiVersion)
	} else if apiVersion != "" {
		uri = fmt.Sprintf("/%s/%s", apiVersion, c.Path)
	} else {
		uri = fmt.Sprintf("/%s", c.Path)
	}

	restAPI.HandleFunc(uri, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		slog.Debug("Handling API request", slog.String("method", r.Method), slog.String("url", r.URL.RequestURI()), slog.String("ip", r.RemoteAddr))

		// Return Unavailable Error (503) if daemon is shutting down.
		// There are some exceptions:
		// - the API root endpoint
		// - GET queries
		allowedDuringShutdown := func() bool {
			if c.Path == "" {
				return true
			}

			if r.Method == "GET" {
				return true
			}

			return false
		}

		if d.ShutdownCtx.Err() == context.Canceled && !allowedDuringShutdown() {
			_ = response.Unavailable(fmt.Errorf("Shutting down")).Render(w)
			return
		}

		handleRequest := func(action APIEndpointAction) response.Response {
			if action.Handler == nil {
				return response.NotImplemented(nil)
			}

			return action.Handler(d, r)
		}

		var resp response.Response

		switch r.Method {
		case "GET":
			resp = handleRequest(c.Get)
		case "PUT":
			resp = handleRequest(c.Put)
		case "POST":
			resp = handleRequest(c.Post)
		case "DELETE":
			resp = handleRequest(c.Delete)
		default:
			resp = response.NotFound(fmt.Errorf("Method %q not found", r.Method))
		}

		// Handle errors
		err := resp.Render(w)
		if err != nil {
			writeErr := response.SmartError(err).Render(w)
			if writeErr != nil {
				slog.Error("Failed writing error for HTTP response", slog.String("url", uri), logger.Err(err), slog.Any("write_err", writeErr))
			}
		}
	})
}
