package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/mdtoc/internal/report"
	"github.com/itsmostafa/mdtoc/internal/toc"
	"github.com/itsmostafa/mdtoc/internal/version"
)

var configPath string
var debug bool

var outputPath string
var toStdout bool
var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "mdtoc [file]",
	Short: "Generate a Table of Contents for a markdown file",
	Long: `mdtoc reads a markdown file, collects its headers and writes a numbered
Table of Contents with GitHub anchor links below the document title.

An existing Table of Contents is replaced in place, so running mdtoc again
after editing the document only refreshes the list. Without a file argument
mdtoc uses README.md in the current directory.`,
	Example: `  mdtoc
  mdtoc docs/guide.md
  mdtoc README.md -c .mdtoc.yaml
  mdtoc README.md -o README.out.md
  mdtoc check README.md`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runGenerate,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to the input file)")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the updated document instead of writing it")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the entries without writing anything")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.FormatError(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger for the command run
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if toStdout && dryRun {
		return errors.New("--stdout and --dry-run cannot be used together")
	}

	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	content, err := readDocument(input)
	if err != nil {
		return err
	}

	result, err := toc.Build(content, cfg)
	if err != nil {
		return err
	}
	slog.Debug("built table of contents", "entries", len(result.Entries), "replaced", result.Replaced, "changed", result.Changed)

	out := cmd.OutOrStdout()

	if dryRun {
		report.FormatEntries(out, cfg.TOCTitle, result.Entries)
		return nil
	}

	if toStdout {
		fmt.Fprint(out, result.Content)
		return nil
	}

	output := outputPath
	if output == "" {
		output = input
	}

	if result.Changed || output != input {
		if err := writeDocument(input, output, result.Content); err != nil {
			return err
		}
	} else {
		slog.Debug("document unchanged, skipping write", "path", output)
	}

	report.FormatSummary(out, report.Summary{
		Input:    input,
		Output:   outputPath,
		Entries:  len(result.Entries),
		Replaced: result.Replaced,
		Changed:  result.Changed,
	})
	return nil
}
