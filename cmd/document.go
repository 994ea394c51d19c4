package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/mdtoc/internal/config"
)

// readmeNames are tried in order when no file argument is given.
var readmeNames = []string{"README.md", "readme.md"}

// resolveInput returns the file named on the command line, or the README in
// the working directory.
func resolveInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	for _, name := range readmeNames {
		info, err := os.Stat(name)
		if err == nil && !info.IsDir() {
			slog.Debug("using README from working directory", "path", name)
			return name, nil
		}
	}

	return "", errors.New("no input file given and no README.md found in the current directory")
}

// loadConfig loads the file at path, or the defaults when path is empty.
// Environment overrides apply in both cases. Validation happens when the TOC
// is built.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return config.Config{}, err
		}
		slog.Debug("using default configuration", "levels", cfg.SortedLevels(), "title", cfg.TOCTitle)
		return cfg, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("loaded configuration", "path", path, "levels", cfg.SortedLevels(), "title", cfg.TOCTitle)
	return cfg, nil
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	slog.Debug("read document", "path", path, "bytes", len(data))
	return string(data), nil
}

// writeDocument writes content to output, keeping the input file's
// permissions.
func writeDocument(input, output, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(input); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(output, []byte(content), perm); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	slog.Debug("wrote document", "path", output, "bytes", len(content))
	return nil
}
