package site

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/uplyft/pkg/dom"
)

// knownReports lists the generated report pages whose heading hierarchy
// needs repair: they title their content with an h2 and ship no h1.
var knownReports = map[string]bool{
	"changes-report":  true,
	"checkstyle":      true,
	"cpd":             true,
	"dependencies":    true,
	"failsafe-report": true,
	"license":         true,
	"plugins":         true,
	"pmd":             true,
	"project-summary": true,
	"surefire-report": true,
	"taglist":         true,
	"team-list":       true,
}

// FixReport repairs the heading hierarchy of a known report page by
// promoting its first h2 to the page h1. Pages that already have an h1,
// and unknown report ids, are left untouched.
func (t *Transformer) FixReport(html, report string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		return t.fixReport(doc, report)
	})
}

func (t *Transformer) fixReport(doc *goquery.Document, report string) error {
	if !knownReports[report] {
		return nil
	}
	if doc.Find("h1").Length() > 0 {
		return nil
	}
	title := doc.Find("h2").First()
	if title.Length() == 0 {
		return nil
	}
	return dom.Retag(title, "h1")
}
