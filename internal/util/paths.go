package util

import (
	"os"
	"path/filepath"
)

// CachePath returns the directory that the workload migrator should use for
// caching assets. If WORKLOAD_MIGRATOR_DIR is set, this path is
// $WORKLOAD_MIGRATOR_DIR/cache, otherwise it is /var/cache/workload-migrator.
func CachePath(path ...string) string {
	varDir := os.Getenv("WORKLOAD_MIGRATOR_DIR")
	cacheDir := "/var/cache/workload-migrator"
	if varDir != "" {
		cacheDir = filepath.Join(varDir, "cache")
	}

	items := []string{cacheDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// LogPath returns the directory that the workload migrator should put logs
// under. If WORKLOAD_MIGRATOR_DIR is set, this path is
// $WORKLOAD_MIGRATOR_DIR/logs, otherwise it is /var/log.
func LogPath(path ...string) string {
	varDir := os.Getenv("WORKLOAD_MIGRATOR_DIR")
	logDir := "/var/log"
	if varDir != "" {
		logDir = filepath.Join(varDir, "logs")
	}

	items := []string{logDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// RunPath returns the directory that the workload migrator should put runtime
// data under. If WORKLOAD_MIGRATOR_DIR is set, this path is
// $WORKLOAD_MIGRATOR_DIR/run, otherwise it is /run/workload-migrator.
func RunPath(path ...string) string {
	varDir := os.Getenv("WORKLOAD_MIGRATOR_DIR")
	runDir := "/run/workload-migrator"
	if varDir != "" {
		runDir = filepath.Join(varDir, "run")
	}

	items := []string{runDir}
	items = append(items, path...)
	return filepath.Join(items...)
}

// VarPath returns the provided path elements joined by a slash and appended
// to the end of $WORKLOAD_MIGRATOR_DIR, which defaults to
// /var/lib/workload-migrator.
func VarPath(path ...string) string {
	varDir := os.Getenv("WORKLOAD_MIGRATOR_DIR")
	if varDir == "" {
		varDir = "/var/lib/workload-migrator"
	}

	items := []string{varDir}
	items = append(items, path...)
	return filepath.Join(items...)
}
