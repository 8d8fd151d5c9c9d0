package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/fixsql/cli/internal/config"
	"github.com/satishbabariya/fixsql/cli/internal/ui"
	"github.com/satishbabariya/fixsql/cli/internal/version"
	"github.com/satishbabariya/fixsql/internal/debug"
	"github.com/satishbabariya/fixsql/rewrite"
)

const commandName = "fixsql"

// ErrUsage is returned when fixsql is not given exactly one file. The usage
// text has already been printed by the time it is returned.
var ErrUsage = errors.New("usage: expected exactly one file argument")

// NewRootCommand builds the fixsql command against the given filesystem.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   commandName + " <file>",
		Short: "Migrate SQLite-style data-access code to PostgreSQL",
		Long: `Rewrite a single source file in place for PostgreSQL.

The file goes through four fixed passes:
- ? placeholders inside backtick queries become $1, $2, ... (per line)
- = 1 / = 0 flag comparisons and ? 1 : 0 become true / false
- getOne, getAll and runQuery calls get an await
- exported void/Response functions become async when the file needs it

The passes are textual heuristics. Review the result before committing it.`,
		Version:       version.Get().String(),
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, fs, args[0])
		},
	}

	cmd.Flags().Bool("debug", false, "Log each pass to stderr")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("summary", false, "Print changed lines per pass to stderr")

	return cmd
}

// exactlyOneFile rejects the call before anything touches the filesystem.
func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		ui.PrintUsage(cmd.OutOrStdout(), commandName)
		return ErrUsage
	}
	return nil
}

func runRewrite(cmd *cobra.Command, fs afero.Fs, path string) error {
	cfg, err := config.LoadConfig(fs, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	debug.Init(cmd.ErrOrStderr(), cfg.Debug)
	ui.SetNoColor(cfg.NoColor)

	result, err := rewrite.RewriteFile(fs, path)
	if err != nil {
		return err
	}
	debug.Info("rewrite complete", "path", path, "changed", result.Changed())

	ui.PrintSuccess(cmd.OutOrStdout(), "Converted %s", path)

	if cfg.Summary {
		rows := make([]ui.SummaryRow, 0, len(result.Passes))
		for _, p := range result.Passes {
			rows = append(rows, ui.SummaryRow{Pass: p.Name, ChangedLines: p.ChangedLines})
		}
		if err := ui.PrintSummary(cmd.ErrOrStderr(), rows); err != nil {
			return fmt.Errorf("failed to print summary: %w", err)
		}
	}

	return nil
}
