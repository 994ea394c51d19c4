// Package config loads and validates the TOC generator configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/mdtoc/internal/markdown"
)

// NumberingStyle selects how TOC entries are numbered.
type NumberingStyle string

// LinkFormatting selects the heading-to-anchor convention.
type LinkFormatting string

const (
	// NumberingNumeric numbers entries 1, 2, 3 with a counter per nesting level
	NumberingNumeric NumberingStyle = "numeric"
	// LinkGitHub generates anchors the way GitHub renders heading ids
	LinkGitHub LinkFormatting = "github"
)

// Defaults
const (
	DefaultTOCTitle = "## Table of Contents"
)

// Environment variables that override file values.
const (
	EnvHeaderLevels = "MDTOC_HEADER_LEVELS"
	EnvTOCTitle     = "MDTOC_TOC_TITLE"
)

// Config holds the options for generating a table of contents.
type Config struct {
	// HeaderLevels lists the ATX levels (1-6) that produce TOC entries
	HeaderLevels []int `yaml:"header_levels"`

	// TOCTitle is the header line placed above the list
	TOCTitle string `yaml:"toc_title"`

	// NumberingStyle must be "numeric"
	NumberingStyle NumberingStyle `yaml:"numbering_style"`

	// LinkFormatting must be "github"
	LinkFormatting LinkFormatting `yaml:"link_formatting"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Error describes a configuration value that failed validation.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalid, e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HeaderLevels:   []int{2, 3},
		TOCTitle:       DefaultTOCTitle,
		NumberingStyle: NumberingNumeric,
		LinkFormatting: LinkGitHub,
	}
}

// Load reads a YAML configuration file on top of the defaults and applies
// environment overrides. Keys missing from the file keep their default value.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv loads a .env file from the working directory when one exists and
// overrides fields from MDTOC_* environment variables.
func (c *Config) ApplyEnv() error {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if raw := os.Getenv(EnvHeaderLevels); raw != "" {
		levels, err := parseLevels(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeaderLevels, err)
		}
		c.HeaderLevels = levels
	}
	if title := os.Getenv(EnvTOCTitle); title != "" {
		c.TOCTitle = title
	}
	return nil
}

// parseLevels parses a comma-separated list like "2,3,4".
func parseLevels(raw string) ([]int, error) {
	var levels []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, &Error{Field: "header_levels", Reason: fmt.Sprintf("%q is not an integer", field)}
		}
		levels = append(levels, n)
	}
	return levels, nil
}

// Validate checks every field and returns an *Error for the first problem.
func (c Config) Validate() error {
	if len(c.HeaderLevels) == 0 {
		return &Error{Field: "header_levels", Reason: "must list at least one level"}
	}
	for _, level := range c.HeaderLevels {
		if level < 1 || level > 6 {
			return &Error{Field: "header_levels", Reason: fmt.Sprintf("level %d is outside 1-6", level)}
		}
	}

	if _, ok := markdown.ParseHeader(c.TOCTitle); !ok {
		return &Error{Field: "toc_title", Reason: fmt.Sprintf("%q is not a markdown header line", c.TOCTitle)}
	}

	switch c.NumberingStyle {
	case NumberingNumeric:
	default:
		return &Error{Field: "numbering_style", Reason: fmt.Sprintf("unsupported value %q (valid options: numeric)", c.NumberingStyle)}
	}

	switch c.LinkFormatting {
	case LinkGitHub:
	default:
		return &Error{Field: "link_formatting", Reason: fmt.Sprintf("unsupported value %q (valid options: github)", c.LinkFormatting)}
	}

	return nil
}

// Levels returns the configured header levels as a set.
func (c Config) Levels() map[int]bool {
	set := make(map[int]bool, len(c.HeaderLevels))
	for _, level := range c.HeaderLevels {
		set[level] = true
	}
	return set
}

// SortedLevels returns the distinct configured levels in ascending order.
func (c Config) SortedLevels() []int {
	set := c.Levels()
	levels := make([]int, 0, len(set))
	for level := range set {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
