package fixer

import (
	"github.com/yosssi/gohtml"
)

// PrettyFixer reindents an HTML fragment for human review. Normalized
// output is compact by contract; this stage exists for diffing and
// inspection, so it belongs at the end of a chain.
type PrettyFixer struct{}

// NewPretty creates a new pretty-printing fixer.
func NewPretty() *PrettyFixer {
	return &PrettyFixer{}
}

// Fix reindents the fragment. The content itself is not modified.
func (f *PrettyFixer) Fix(html string) (string, error) {
	return gohtml.Format(html), nil
}

// Name returns the fixer type.
func (f *PrettyFixer) Name() string {
	return "pretty"
}
