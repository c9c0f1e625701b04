// Package dom adapts parsed HTML fragments for in-place mutation.
//
// Parsing, selection and serialization are delegated to goquery and
// golang.org/x/net/html; this package supplies what they lack for tree
// rewriting: tag renaming, element construction, attachment-checked
// structural edits, validated selector compilation and the fragment
// serialization conventions used across uplyft.
//
// A fragment round-trips as: Parse wraps the text in a synthetic document,
// mutations edit the tree in place, Serialize returns the body subtree.
// Trees are single-use; nothing in this package caches across calls.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Parse parses an HTML fragment into a mutable document. The parser is
// tolerant: malformed markup is recovered, never rejected. Bare fragments
// are wrapped in a synthetic html/head/body scaffold, so the body subtree
// always holds the fragment content.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &InvalidInputError{Err: err}
	}
	return doc, nil
}

// Serialize renders the processed fragment back to text. Only the body
// subtree is returned; a document without a body falls back to the full
// render. Output follows x/net/html conventions: compact, attribute order
// preserved, void elements closed with "/>".
func Serialize(doc *goquery.Document) (string, error) {
	body := doc.Find("body")
	if body.Length() > 0 {
		return body.Html()
	}
	return goquery.OuterHtml(doc.Selection)
}

// Compile validates a CSS selector and returns a matcher usable with
// Selection.FindMatcher. Selectors built into the engine are known-good;
// this exists for caller-supplied selectors, where a typo should be an
// error rather than a silent zero-match.
func Compile(selector string) (goquery.Matcher, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	return sel, nil
}
