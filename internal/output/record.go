package output

import "github.com/jmylchreest/uplyft/pkg/fixer/html5"

// Record is the per-file entry the command line tools emit.
type Record struct {
	File     string       `json:"file,omitempty" yaml:"file,omitempty"`
	Fixer    string       `json:"fixer" yaml:"fixer"`
	Content  string       `json:"content" yaml:"content"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stats    *html5.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}
