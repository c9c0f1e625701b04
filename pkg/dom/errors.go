package dom

import "fmt"

// InvalidInputError reports input text that could not be parsed as HTML.
// The parser recovers from malformed markup, so in practice this surfaces
// only reader-level failures, but callers should still treat it as the
// terminal "no output produced" case.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// InvalidNodeError reports a structural operation invoked on a node that is
// detached, missing or not an element. It indicates a programming error in
// rule composition, not bad input; selector-driven rules guard their matches
// before calling into this package.
type InvalidNodeError struct {
	Op     string
	Reason string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("%s: invalid node: %s", e.Op, e.Reason)
}
