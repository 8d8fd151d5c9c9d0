package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	// Colors
	SuccessColor   = lipgloss.Color("#00FF88")
	ErrorColor     = lipgloss.Color("#FF4444")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

var plain bool

// SetNoColor turns styling off for everything this package prints.
func SetNoColor(disable bool) {
	plain = disable
	color.NoColor = disable
	if disable {
		pterm.DisableStyling()
	} else {
		pterm.EnableStyling()
	}
}

func render(style lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return style.Render(s)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, render(SuccessStyle, "✓ "+message))
}

// PrintError prints an error message
func PrintError(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, render(ErrorStyle, "✗ "+message))
}

// PrintUsage prints the one-line invocation help.
func PrintUsage(w io.Writer, command string) {
	fmt.Fprintf(w, "Usage: %s <file>\n", command)
	fmt.Fprintln(w, render(SecondaryStyle, "Rewrites SQLite-style queries in <file> for PostgreSQL, in place."))
}

// SummaryRow is one line of the per-pass summary table.
type SummaryRow struct {
	Pass         string
	ChangedLines int
}

// PrintSummary renders the per-pass changed-line counts as a table.
func PrintSummary(w io.Writer, rows []SummaryRow) error {
	changed := color.New(color.FgGreen, color.Bold)
	unchanged := color.New(color.FgHiBlack)

	data := pterm.TableData{{"Pass", "Changed lines"}}
	for _, r := range rows {
		count := strconv.Itoa(r.ChangedLines)
		if r.ChangedLines > 0 {
			count = changed.Sprint(count)
		} else {
			count = unchanged.Sprint(count)
		}
		data = append(data, []string{r.Pass, count})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
