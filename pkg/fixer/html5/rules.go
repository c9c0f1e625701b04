package html5

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jmylchreest/uplyft/pkg/dom"
)

// mutation rewrites one matched element and records what it did on the
// result. A missing precondition (no child to hoist, class already gone)
// is not an error; errors signal a node the mutation cannot operate on.
type mutation func(s *goquery.Selection, res *Result) error

// rule pairs a selector with the mutation applied to each of its matches.
// Matches are snapshotted before the first mutation runs, so a rule never
// re-matches its own output within a pass.
type rule struct {
	name     string
	selector string
	mutate   mutation
}

// run applies the rule to every match in the document, stopping at the
// first mutation error.
func (r rule) run(doc *goquery.Document, res *Result) error {
	matches := doc.Find(r.selector)
	if matches.Length() == 0 {
		return nil
	}
	res.Stats.RecordRule(r.name, matches.Length())

	var firstErr error
	matches.Each(func(_ int, s *goquery.Selection) {
		if firstErr != nil {
			return
		}
		if err := r.mutate(s, res); err != nil {
			firstErr = fmt.Errorf("rule %s: %w", r.name, err)
		}
	})
	return firstErr
}

// pointPattern matches the separator points legacy generators put in
// anchor ids ("a.b.c").
var pointPattern = regexp.MustCompile(`\.`)

// removeClass drops a class token, removing the class attribute entirely
// when the last token goes.
func removeClass(class string) mutation {
	return func(s *goquery.Selection, res *Result) error {
		if !s.HasClass(class) {
			return nil
		}
		s.RemoveClass(class)
		dom.DropEmptyClass(s)
		res.Stats.ClassesStripped++
		return nil
	}
}

// retagTo renames the element and strips the marker class that selected it.
func retagTo(tag, classToStrip string) mutation {
	return func(s *goquery.Selection, res *Result) error {
		if err := dom.Retag(s, tag); err != nil {
			return err
		}
		res.Stats.ElementsRetagged++
		if classToStrip == "" {
			return nil
		}
		return removeClass(classToStrip)(s, res)
	}
}

// stripAttr removes an attribute outright.
func stripAttr(attr string) mutation {
	return func(s *goquery.Selection, res *Result) error {
		if _, ok := s.Attr(attr); !ok {
			return nil
		}
		s.RemoveAttr(attr)
		res.Stats.AttributesRemoved++
		return nil
	}
}

// rewriteAttr applies a pattern substitution to an attribute value.
func rewriteAttr(attr string, pattern *regexp.Regexp, repl string) mutation {
	return func(s *goquery.Selection, res *Result) error {
		val, ok := s.Attr(attr)
		if !ok {
			return nil
		}
		rewritten := pattern.ReplaceAllString(val, repl)
		if rewritten != val {
			s.SetAttr(attr, rewritten)
			res.Stats.AttributesRewritten++
		}
		return nil
	}
}

// collapseIntoParent replaces the matched element's parent with the element
// itself. Other children of the parent are dropped with it; the legacy
// generator only nests these wrappers alone, so the loss is recorded as a
// warning rather than treated as fatal.
func collapseIntoParent() mutation {
	return func(s *goquery.Selection, res *Result) error {
		parent := s.Parent()
		if parent.Length() == 0 {
			return &dom.InvalidNodeError{Op: "collapse wrapper", Reason: "matched node has no parent"}
		}

		dropped := 0
		parent.Contents().Each(func(_ int, c *goquery.Selection) {
			n := c.Nodes[0]
			if n == s.Nodes[0] {
				return
			}
			if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
				return
			}
			dropped++
		})

		s.Remove()
		parent.ReplaceWithSelection(s)

		if dropped > 0 {
			res.Stats.NodesDropped += dropped
			res.AddWarning("transform", "collapsed wrapper dropped sibling content",
				fmt.Sprintf("%d node(s)", dropped))
		}
		return nil
	}
}

// hoistChild swaps the matched wrapper with its first childTag descendant:
// the child takes the wrapper's place in the tree and the wrapper, carrying
// the child's text, becomes the child's only content.
func hoistChild(childTag string) mutation {
	return func(s *goquery.Selection, res *Result) error {
		child := s.Find(childTag).First()
		if child.Length() == 0 {
			return nil
		}

		text := child.Text()
		child.SetText("")
		s.ReplaceWithSelection(child)
		child.AppendSelection(s)
		s.SetText(text)
		return nil
	}
}

// promoteToHead moves a header row out of the table body into a fresh head
// section prepended to the table. Remaining body rows keep their order.
func promoteToHead() mutation {
	return func(s *goquery.Selection, res *Result) error {
		// The selector guarantees tbody above the row and table above that.
		table := s.Parent().Parent()
		row := s.Nodes[0]

		s.Remove()
		thead := dom.NewElement("thead")
		thead.AppendChild(row)
		if err := dom.PrependChild(table, thead); err != nil {
			return err
		}
		res.Stats.RowsPromoted++
		return nil
	}
}

// unwrap replaces the element with its children.
func unwrap() mutation {
	return func(s *goquery.Selection, res *Result) error {
		if err := dom.Unwrap(s); err != nil {
			return err
		}
		res.Stats.LinksUnwrapped++
		return nil
	}
}

// Rule tables, one per config toggle. Order matters inside a table where
// one step feeds the next; the tables themselves are independent.
var (
	sectionRules = []rule{
		{name: "section-divs", selector: "div.section", mutate: retagTo("section", "section")},
	}

	codeRules = []rule{
		{name: "collapse-source-wrappers", selector: "div.source > div.source", mutate: collapseIntoParent()},
		{name: "hoist-pre-blocks", selector: "div.source:has(pre)", mutate: hoistChild("pre")},
		{name: "source-to-code", selector: "div.source", mutate: retagTo("code", "source")},
	}

	tableRules = []rule{
		{name: "strip-body-table-class", selector: "table.bodyTable", mutate: removeClass("bodyTable")},
		{name: "promote-header-rows", selector: "table > tbody > tr:has(th)", mutate: promoteToHead()},
		{name: "strip-table-border", selector: "table[border]", mutate: stripAttr("border")},
		{name: "strip-alternating-row-a", selector: "tr.a", mutate: removeClass("a")},
		{name: "strip-alternating-row-b", selector: "tr.b", mutate: removeClass("b")},
	}

	internalLinkRules = []rule{
		{name: "strip-id-points", selector: "[id]", mutate: rewriteAttr("id", pointPattern, "")},
		{name: "strip-fragment-points", selector: `[href^="#"]`, mutate: rewriteAttr("href", pointPattern, "")},
	}

	deadLinkRules = []rule{
		{name: "unwrap-dead-links", selector: "a:not([href])", mutate: unwrap()},
	}

	externalLinkRules = []rule{
		{name: "strip-external-link-class", selector: "a.externalLink", mutate: removeClass("externalLink")},
	}
)
