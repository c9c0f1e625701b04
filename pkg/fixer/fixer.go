// Package fixer provides interfaces and implementations for rewriting HTML
// fragments. Fixers upgrade legacy markup into its modern equivalent, one
// fragment at a time: text in, rewritten text out.
package fixer

// Fixer rewrites an HTML fragment.
// Implementations hold no state between calls: each Fix parses, mutates and
// serializes a fresh tree, so one Fixer is safe for concurrent use across
// independent fragments.
type Fixer interface {
	// Fix transforms the input HTML and returns the rewritten fragment.
	Fix(html string) (string, error)

	// Name returns the fixer type for logging/debugging.
	Name() string
}
