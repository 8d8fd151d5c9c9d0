package rewrite

import "github.com/dlclark/regexp2"

// Patterns use regexp2 so that \b and \w treat non-ASCII letters as word
// characters. The helpers below drop errors because regexp2 only fails on a
// match timeout, and none is configured.

func mustCompile(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, opts)
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func replaceAll(re *regexp2.Regexp, s, replacement string) string {
	out, err := re.Replace(s, replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}
