package rewrite

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const awaitMarker = "await"

var (
	// assignedDataCall matches `const rows = getAll(` and friends.
	assignedDataCall = mustCompile(`^\s*(const|let|var)?\s*\w+\s*=\s*(getOne|getAll|runQuery)\(`, regexp2.None)
	// bareDataCall matches a statement that starts with the call itself.
	bareDataCall = mustCompile(`^\s*(getOne|getAll|runQuery)\(`, regexp2.None)
	// dataCall is any direct call on a qualifying line. Member calls such as
	// db.getAll( and longer names such as getOneOrNone( are not data calls.
	dataCall = mustCompile(`(?<![\w.$])(getOne|getAll|runQuery)(?=\()`, regexp2.None)
)

// InsertAwait puts an await marker in front of data-access calls that are not
// already awaited.
func InsertAwait(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = awaitLine(line)
	}
	return strings.Join(lines, "\n")
}

// awaitLine marks every data call on a line that starts with one, either as
// an assignment or as a bare statement.
func awaitLine(line string) string {
	if strings.Contains(line, awaitMarker) {
		return line
	}
	if !matches(assignedDataCall, line) && !matches(bareDataCall, line) {
		return line
	}
	return replaceAll(dataCall, line, awaitMarker+" $1")
}
