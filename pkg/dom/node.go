package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement builds a detached element node for the given tag.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Retag renames every element in the selection, keeping children and
// attributes untouched. The whole selection is validated before any node is
// renamed, so a failing call leaves the tree unmodified.
func Retag(s *goquery.Selection, tag string) error {
	if s.Length() == 0 {
		return &InvalidNodeError{Op: "retag", Reason: "empty selection"}
	}
	for _, n := range s.Nodes {
		if n.Type != html.ElementNode {
			return &InvalidNodeError{Op: "retag", Reason: "not an element node"}
		}
	}
	for _, n := range s.Nodes {
		n.Data = tag
		n.DataAtom = atom.Lookup([]byte(tag))
	}
	return nil
}

// Unwrap replaces each matched node with its own children, preserving child
// order. A node without children is removed outright.
func Unwrap(s *goquery.Selection) error {
	if s.Length() == 0 {
		return &InvalidNodeError{Op: "unwrap", Reason: "empty selection"}
	}
	for _, n := range s.Nodes {
		if n.Parent == nil {
			return &InvalidNodeError{Op: "unwrap", Reason: "detached node"}
		}
	}
	s.Each(func(_ int, el *goquery.Selection) {
		el.ReplaceWithSelection(el.Contents())
	})
	return nil
}

// PrependChild inserts child as the first child of the first matched node,
// detaching the child from any previous position.
func PrependChild(s *goquery.Selection, child *html.Node) error {
	if s.Length() == 0 {
		return &InvalidNodeError{Op: "prepend child", Reason: "empty selection"}
	}
	if child == nil {
		return &InvalidNodeError{Op: "prepend child", Reason: "nil child"}
	}
	parent := s.Nodes[0]
	if parent.Type != html.ElementNode {
		return &InvalidNodeError{Op: "prepend child", Reason: "parent is not an element node"}
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.InsertBefore(child, parent.FirstChild)
	return nil
}

// DropEmptyClass removes class attributes left blank by earlier mutations.
// goquery already drops the attribute when RemoveClass strips the last
// token; this catches whitespace-only values arriving from the input itself.
func DropEmptyClass(s *goquery.Selection) {
	s.Each(func(_ int, el *goquery.Selection) {
		if v, ok := el.Attr("class"); ok && strings.TrimSpace(v) == "" {
			el.RemoveAttr("class")
		}
	})
}

// Classes returns the class tokens of the first matched node in document
// order, nil when the attribute is absent.
func Classes(s *goquery.Selection) []string {
	v, ok := s.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}
