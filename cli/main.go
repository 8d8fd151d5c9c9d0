package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/satishbabariya/fixsql/cli/commands"
	"github.com/satishbabariya/fixsql/cli/internal/config"
	"github.com/satishbabariya/fixsql/cli/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], config.AppFs, os.Stdout, os.Stderr))
}

// run executes fixsql and returns the process exit code.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	cmd := commands.NewRootCommand(fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrUsage) {
			ui.PrintError(stderr, "Error: %v", err)
		}
		return 1
	}
	return 0
}
