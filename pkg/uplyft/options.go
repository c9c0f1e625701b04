// Package uplyft provides the public API for upgrading legacy
// documentation HTML. It assembles the html5 upgrade engine, the
// optional site transformer and an output stage into a single
// pipeline behind a small functional-options constructor.
package uplyft

import (
	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
	"github.com/jmylchreest/uplyft/pkg/fixer/site"
	"github.com/jmylchreest/uplyft/pkg/pageconfig"
)

// Config holds all Uplyft configuration.
type Config struct {
	// === Upgrade stages ===

	// HTML5 configures the structural upgrade engine. Nil selects
	// html5.DefaultConfig.
	HTML5 *html5.Config

	// Site configures the site-level rewrites (icons, figures, heading
	// ids, anchors, tables). Nil leaves the site stage out of the
	// pipeline.
	Site *site.Config

	// ReportID names the generated report being processed. When set it
	// enables title repair for that report in the site stage, adding
	// the stage if Site is nil.
	ReportID string

	// === Output ===

	// Markdown converts the upgraded fragment to Markdown as the final
	// stage. Mutually exclusive with Pretty.
	Markdown bool

	// Pretty reindents the upgraded HTML for human review. Mutually
	// exclusive with Markdown.
	Pretty bool

	// === Per-page overrides ===

	// PageConfig binds a page's skin configuration. Pages can switch
	// stages off through it ("html5", "site", "icons", "figures",
	// "headingIDs", "anchorLinks", "tables" keys).
	PageConfig *pageconfig.Config
}

// DefaultConfig returns a Config with sensible defaults: the full
// structural upgrade, no site stage, compact HTML output.
func DefaultConfig() Config {
	return Config{
		HTML5: html5.DefaultConfig(),
	}
}

// Option is a functional option for configuring Uplyft.
type Option func(*Config)

// WithHTML5 sets the configuration for the structural upgrade stage.
func WithHTML5(cfg *html5.Config) Option {
	return func(c *Config) {
		c.HTML5 = cfg
	}
}

// WithSite enables the site stage with the given configuration. Nil
// enables it with site.DefaultConfig.
func WithSite(cfg *site.Config) Option {
	return func(c *Config) {
		if cfg == nil {
			cfg = site.DefaultConfig()
		}
		c.Site = cfg
	}
}

// WithReportID enables title repair for the named report page.
func WithReportID(id string) Option {
	return func(c *Config) {
		c.ReportID = id
	}
}

// WithMarkdown converts the result to Markdown.
func WithMarkdown() Option {
	return func(c *Config) {
		c.Markdown = true
	}
}

// WithPretty reindents the resulting HTML.
func WithPretty() Option {
	return func(c *Config) {
		c.Pretty = true
	}
}

// WithPageConfig binds per-page skin configuration.
func WithPageConfig(pc *pageconfig.Config) Option {
	return func(c *Config) {
		c.PageConfig = pc
	}
}
