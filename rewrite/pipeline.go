// Package rewrite migrates SQLite-flavoured data-access code to PostgreSQL
// conventions with a fixed sequence of lexical passes.
//
// The passes are heuristics over raw text, not parsers. They will happily
// rewrite a numeric `= 1 AND` that has nothing to do with SQL, and they never
// check that the result still compiles.
package rewrite

import (
	"strings"

	"github.com/satishbabariya/fixsql/internal/debug"
)

// Pass is one named text transformation.
type Pass struct {
	Name  string
	Apply func(string) string
}

// PassResult records what a single pass did to the text.
type PassResult struct {
	Name         string
	ChangedLines int
}

// DefaultPipeline returns the passes in the order they must run.
func DefaultPipeline() []Pass {
	return []Pass{
		{Name: "placeholders", Apply: ConvertPlaceholders},
		{Name: "booleans", Apply: NormalizeBooleans},
		{Name: "await", Apply: InsertAwait},
		{Name: "async", Apply: PromoteAsync},
	}
}

// Run feeds text through every pass in order. Each pass always receives the
// previous pass's output, whether or not it changed anything.
func Run(text string, passes []Pass) (string, []PassResult) {
	results := make([]PassResult, 0, len(passes))
	for _, p := range passes {
		out := p.Apply(text)
		changed := ChangedLines(text, out)
		debug.Debug("pass applied", "pass", p.Name, "changed_lines", changed)
		results = append(results, PassResult{Name: p.Name, ChangedLines: changed})
		text = out
	}
	return text, results
}

// ChangedLines counts lines that differ between before and after, including
// lines present in only one of them.
func ChangedLines(before, after string) int {
	if before == after {
		return 0
	}
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")

	n := 0
	for i := 0; i < len(a) || i < len(b); i++ {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			n++
		}
	}
	return n
}
