package util

import (
	"fmt"
	"io"
	"os"
)

// FileCopy copies the file at sourcePath to destPath, preserving the file
// mode. An existing destination file is truncated.
func FileCopy(sourcePath string, destPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return err
	}

	defer func() { _ = source.Close() }()

	info, err := source.Stat()
	if err != nil {
		return err
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	defer func() { _ = dest.Close() }()

	_, err = io.Copy(dest, source)
	if err != nil {
		return fmt.Errorf("Failed to copy %q to %q: %w", sourcePath, destPath, err)
	}

	return dest.Close()
}
