// Package site applies cosmetic rewrites for generated documentation
// sites: legacy icon images become icon font markup, content images gain
// figure wrappers, headings and anchors get matching slugged ids, and
// tables pick up the styling hooks the skin expects.
package site

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/uplyft/pkg/dom"
	"github.com/jmylchreest/uplyft/pkg/pageconfig"
)

// Config defines which site rewrites run on a page.
type Config struct {
	// Icons replaces legacy icon images with icon font markup.
	Icons bool `json:"icons"`

	// Figures wraps content images in figure elements, using the alt
	// text as a caption.
	Figures bool `json:"figures"`

	// HeadingIDs gives every heading an id slugged from its text.
	HeadingIDs bool `json:"heading_ids"`

	// AnchorLinks slugs fragment hrefs so they keep pointing at slugged
	// heading ids.
	AnchorLinks bool `json:"anchor_links"`

	// Tables adds the skin's table classes and a responsive wrapper.
	Tables bool `json:"tables"`

	// ReportID names the report page being rendered. Known reports get
	// their heading hierarchy repaired before the other rewrites run.
	ReportID string `json:"report_id,omitempty"`
}

// DefaultConfig returns the configuration used for full page rewrites:
// every transform enabled, no report repair.
func DefaultConfig() *Config {
	return &Config{
		Icons:       true,
		Figures:     true,
		HeadingIDs:  true,
		AnchorLinks: true,
		Tables:      true,
	}
}

// Transformer applies the configured site rewrites to page fragments.
// It implements the fixer.Fixer interface.
type Transformer struct {
	config *Config
}

// New creates a Transformer with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Transformer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Transformer{config: config}
}

// Name returns the fixer name for logging.
func (t *Transformer) Name() string {
	return "site"
}

// Fix runs the enabled rewrites in order: report repair, icons, figures,
// heading ids, anchor links, tables. Icons run before figures so icon
// images never get figure wrappers; report repair runs before heading ids
// so a promoted title is slugged like any other heading.
// This method implements the fixer.Fixer interface.
func (t *Transformer) Fix(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		if t.config.ReportID != "" {
			if err := t.fixReport(doc, t.config.ReportID); err != nil {
				return err
			}
		}
		if t.config.Icons {
			t.transformIcons(doc)
		}
		if t.config.Figures {
			t.transformImagesToFigures(doc)
		}
		if t.config.HeadingIDs {
			t.fixHeadingIDs(doc)
		}
		if t.config.AnchorLinks {
			t.fixAnchorLinks(doc)
		}
		if t.config.Tables {
			t.transformTables(doc)
		}
		return nil
	})
}

// TransformIcons replaces legacy icon images with icon font markup.
func (t *Transformer) TransformIcons(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		t.transformIcons(doc)
		return nil
	})
}

// TransformImagesToFigures wraps content images in figure elements. An
// image's alt text becomes its figcaption; images already inside a figure
// are left alone.
func (t *Transformer) TransformImagesToFigures(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		t.transformImagesToFigures(doc)
		return nil
	})
}

// FixHeadingIDs gives every heading an id slugged from its text.
func (t *Transformer) FixHeadingIDs(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		t.fixHeadingIDs(doc)
		return nil
	})
}

// FixAnchorLinks slugs the fragment of every internal link so it matches
// the ids produced by FixHeadingIDs.
func (t *Transformer) FixAnchorLinks(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		t.fixAnchorLinks(doc)
		return nil
	})
}

// TransformTables adds the skin's table classes and wraps each table in a
// responsive container. Tables that already carry the classes or the
// wrapper are left alone.
func (t *Transformer) TransformTables(html string) (string, error) {
	return t.run(html, func(doc *goquery.Document) error {
		t.transformTables(doc)
		return nil
	})
}

// run parses the fragment, applies step and serializes the body subtree.
func (t *Transformer) run(html string, step func(*goquery.Document) error) (string, error) {
	doc, err := dom.Parse(html)
	if err != nil {
		return "", err
	}
	if err := step(doc); err != nil {
		return "", err
	}
	return dom.Serialize(doc)
}

func (t *Transformer) transformImagesToFigures(doc *goquery.Document) {
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if img.Closest("figure").Length() > 0 {
			return
		}
		img.WrapHtml("<figure></figure>")
		if alt, ok := img.Attr("alt"); ok && alt != "" {
			img.AfterHtml("<figcaption></figcaption>")
			img.Next().SetText(alt)
		}
	})
}

func (t *Transformer) fixHeadingIDs(doc *goquery.Document) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		if slug := pageconfig.Slug(h.Text()); slug != "" {
			h.SetAttr("id", slug)
		}
	})
}

func (t *Transformer) fixAnchorLinks(doc *goquery.Document) {
	doc.Find(`a[href^="#"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		fragment := strings.TrimPrefix(href, "#")
		if fragment == "" {
			return
		}
		a.SetAttr("href", "#"+pageconfig.Slug(fragment))
	})
}

func (t *Transformer) transformTables(doc *goquery.Document) {
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if !table.HasClass("table") {
			table.AddClass("table table-striped table-hover")
		}
		if !table.Parent().Is("div.table-responsive") {
			table.WrapHtml(`<div class="table-responsive"></div>`)
		}
	})
}
