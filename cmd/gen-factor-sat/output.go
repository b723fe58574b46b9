package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// resolveOutputPath mirrors the original CLI's write_cnf path logic:
// "-" means stdout, an empty filename means "use the default name in
// the current directory", an existing directory means "use the default
// name inside that directory", and
// anything else is used literally after its parent directory is
// created — spec §6.
func resolveOutputPath(filename, defaultName string) (string, error) {
	if filename == "-" {
		return "-", nil
	}

	var target, directory string
	if filename == "" {
		target = defaultName
		directory = "."
	} else {
		info, statErr := os.Stat(filename)
		isDir := statErr == nil && info.IsDir()

		if isDir {
			directory = filename
			target = filepath.Join(directory, defaultName)
		} else {
			target = filename
			abs, err := filepath.Abs(filename)
			if err != nil {
				return "", fmt.Errorf("resolve output path: %w", err)
			}
			directory = filepath.Dir(abs)
		}
	}

	if _, err := os.Stat(directory); os.IsNotExist(err) {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return "", fmt.Errorf("create output directory %s: %w", directory, err)
		}
	}

	return target, nil
}

// writeOutput writes content to path, or to stdout when path is "-".
func writeOutput(path, content string) error {
	if path == "-" {
		_, err := fmt.Print(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
