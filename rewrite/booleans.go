package rewrite

import (
	"github.com/dlclark/regexp2"
)

// Boolean flags stored as 0/1 integers become real boolean literals. The
// trailing lookahead keeps the match to comparisons that end a condition, but
// a plain numeric `= 1 AND` elsewhere in the file is rewritten as well.
var booleanRewrites = []struct {
	pattern     *regexp2.Regexp
	replacement string
}{
	{mustCompile(`=\s*1(?=\s*(?:AND|OR|\)|;|$))`, regexp2.None), "= true"},
	{mustCompile(`=\s*0(?=\s*(?:AND|OR|\)|;|$))`, regexp2.None), "= false"},
	{mustCompile(`\?\s*1\s*:\s*0`, regexp2.None), "? true : false"},
}

// NormalizeBooleans rewrites integer boolean comparisons and `? 1 : 0`
// conditionals across the whole text.
func NormalizeBooleans(text string) string {
	for _, r := range booleanRewrites {
		text = replaceAll(r.pattern, text, r.replacement)
	}
	return text
}
