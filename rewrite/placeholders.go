package rewrite

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/dlclark/regexp2"
)

// queryLineLexer splits a source line into query delimiters, placeholder
// markers and everything in between.
var queryLineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Delimiter", Pattern: "`"},
	{Name: "Marker", Pattern: `\?`},
	{Name: "Text", Pattern: "[^`?]+"},
})

var (
	delimiterToken = queryLineLexer.Symbols()["Delimiter"]
	markerToken    = queryLineLexer.Symbols()["Marker"]
)

var (
	// sqlLineKeywords gates which lines are scanned at all.
	sqlLineKeywords = mustCompile(`\b(SELECT|INSERT|UPDATE|DELETE|WHERE|FROM|VALUES|SET|AND|OR|JOIN)\b`, regexp2.IgnoreCase)
	// sqlClauseKeywords is narrower than sqlLineKeywords and case-sensitive.
	sqlClauseKeywords = mustCompile(`\b(SELECT|INSERT|UPDATE|DELETE|WHERE|FROM|VALUES)\b`, regexp2.None)
)

const (
	queryDelimiter    = "`"
	placeholderMarker = "?"

	// lookaheadRunes is how far past a marker the ternary check reads.
	lookaheadRunes = 49
	// colonWindow is how close a colon must be for the marker to count as a ternary.
	colonWindow = 20
)

type scanState int

const (
	outsideLiteral scanState = iota
	insideLiteral
)

// ConvertPlaceholders rewrites positional `?` markers inside backtick query
// literals into numbered `$N` placeholders. Numbering restarts on every line.
func ConvertPlaceholders(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = convertLinePlaceholders(line)
	}
	return strings.Join(lines, "\n")
}

func convertLinePlaceholders(line string) string {
	if !matches(sqlLineKeywords, line) {
		return line
	}
	if !strings.Contains(line, queryDelimiter) || !strings.Contains(line, placeholderMarker) {
		return line
	}

	lex, err := queryLineLexer.LexString("", line)
	if err != nil {
		return line
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return line
	}

	var out strings.Builder
	out.Grow(len(line) + 8)

	state := outsideLiteral
	param := 1
	for _, tok := range tokens {
		switch {
		case tok.EOF():
			continue
		case tok.Type == delimiterToken:
			if state == outsideLiteral {
				state = insideLiteral
			} else {
				state = outsideLiteral
			}
			out.WriteString(tok.Value)
		case tok.Type == markerToken && state == insideLiteral:
			if isTernaryMarker(line[tok.Pos.Offset+len(tok.Value):]) {
				out.WriteString(tok.Value)
				continue
			}
			out.WriteString("$")
			out.WriteString(strconv.Itoa(param))
			param++
		default:
			out.WriteString(tok.Value)
		}
	}
	return out.String()
}

// isTernaryMarker reports whether the text following a marker looks like the
// `: else` half of a conditional expression rather than more SQL.
func isTernaryMarker(rest string) bool {
	after := strings.TrimSpace(headRunes(rest, lookaheadRunes))
	if !strings.Contains(headRunes(after, colonWindow), ":") {
		return false
	}
	between := after[:strings.Index(after, ":")]
	return !matches(sqlClauseKeywords, between)
}

func headRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
