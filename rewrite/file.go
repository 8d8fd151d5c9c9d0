package rewrite

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/satishbabariya/fixsql/internal/debug"
)

// ErrInvalidEncoding is returned when the input file is not UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// Result describes a completed file rewrite.
type Result struct {
	Path   string
	Passes []PassResult
}

// Changed reports whether any pass modified the file.
func (r *Result) Changed() bool {
	for _, p := range r.Passes {
		if p.ChangedLines > 0 {
			return true
		}
	}
	return false
}

// RewriteFile reads path, runs the default pipeline and overwrites the file
// with the result. The file is always written back, even when nothing changed.
func RewriteFile(fs afero.Fs, path string) (*Result, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidEncoding)
	}
	debug.Debug("read source", "path", path, "bytes", len(content))

	out, passes := Run(string(content), DefaultPipeline())

	if err := afero.WriteFile(fs, path, []byte(out), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	debug.Debug("wrote source", "path", path, "bytes", len(out))

	return &Result{Path: path, Passes: passes}, nil
}
