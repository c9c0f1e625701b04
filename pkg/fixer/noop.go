package fixer

// NoopFixer passes content through without modification.
// Use it as a chain placeholder for stages disabled by configuration.
type NoopFixer struct{}

// NewNoop creates a new no-op fixer.
func NewNoop() *NoopFixer {
	return &NoopFixer{}
}

// Fix returns the input unchanged.
func (f *NoopFixer) Fix(html string) (string, error) {
	return html, nil
}

// Name returns the fixer type.
func (f *NoopFixer) Name() string {
	return "noop"
}
