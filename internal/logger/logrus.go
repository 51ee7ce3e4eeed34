package logger

import (
	"io"
	"log/slog"

	sloghook "github.com/shogo82148/logrus-slog-hook"
	"github.com/sirupsen/logrus"
)

// Libraries logging through logrus are redirected to the default slog
// handler.
func init() {
	logrus.AddHook(sloghook.New(slog.Default().Handler()))
	logrus.SetFormatter(sloghook.NewFormatter())
	logrus.SetOutput(io.Discard)
}

// SlogBackedLogrus returns a logrus logger that forwards to slog.
func SlogBackedLogrus() *logrus.Logger {
	return logrus.StandardLogger()
}
