package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/mdtoc/internal/report"
	"github.com/itsmostafa/mdtoc/internal/toc"
)

// ErrStale is returned by check when the document's TOC needs regenerating.
var ErrStale = errors.New("table of contents is missing or stale")

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify that a file's Table of Contents is current",
	Long: `Check regenerates the Table of Contents in memory and exits non-zero when
the result differs from the file, without writing anything. Use it in CI to
catch documents whose TOC was not refreshed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		slog.Debug("checked table of contents", "path", input, "entries", len(result.Entries), "changed", result.Changed)

		report.FormatCheck(cmd.OutOrStdout(), input, !result.Changed)
		if result.Changed {
			return ErrStale
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
