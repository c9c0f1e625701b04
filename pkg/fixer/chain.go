package fixer

import (
	"strings"
)

// ChainFixer applies multiple fixers in sequence.
// This allows composing the upgrade pipeline with output stages.
type ChainFixer struct {
	fixers []Fixer
}

// NewChain creates a fixer that applies the given fixers in order.
//
// Example:
//
//	chain := fixer.NewChain(
//	    html5.New(html5.DefaultConfig()),
//	    fixer.NewPretty(),
//	)
func NewChain(fixers ...Fixer) *ChainFixer {
	return &ChainFixer{
		fixers: fixers,
	}
}

// Fix applies all fixers in sequence. The first error aborts the chain;
// an empty chain passes the input through unchanged.
func (c *ChainFixer) Fix(content string) (string, error) {
	var err error
	for _, f := range c.fixers {
		content, err = f.Fix(content)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// Name returns the names of all chained fixers.
func (c *ChainFixer) Name() string {
	names := make([]string, len(c.fixers))
	for i, f := range c.fixers {
		names[i] = f.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
