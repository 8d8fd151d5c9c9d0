package rewrite

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const asyncMarker = "async"

var asyncRewrites = []struct {
	pattern     *regexp2.Regexp
	replacement string
}{
	{
		mustCompile(`\bexport\s+const\s+(\w+)\s*=\s*\(([^)]*)\):\s*(void|Response)\s*=>`, regexp2.None),
		"export const $1 = async ($2): Promise<$3> =>",
	},
	{
		mustCompile(`\bexport\s+function\s+(\w+)\s*\(([^)]*)\):\s*(void)\b`, regexp2.None),
		"export async function $1($2): Promise<$3>",
	},
}

// NeedsAsync reports whether the file awaits something but declares nothing
// async. It is a file-wide decision and never looks at individual lines.
func NeedsAsync(text string) bool {
	return strings.Contains(text, awaitMarker) && !strings.Contains(text, asyncMarker)
}

// PromoteAsync marks exported single-line `void`/`Response` declarations as
// async and wraps their return type in Promise. Nothing changes unless
// NeedsAsync holds for the whole text.
func PromoteAsync(text string) string {
	if !NeedsAsync(text) {
		return text
	}
	for _, r := range asyncRewrites {
		text = replaceAll(r.pattern, text, r.replacement)
	}
	return text
}
