package uplyft

import (
	"errors"
	"runtime/debug"

	"github.com/jmylchreest/uplyft/pkg/fixer"
	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
	"github.com/jmylchreest/uplyft/pkg/fixer/site"
	"github.com/jmylchreest/uplyft/pkg/pageconfig"
)

// Uplyft upgrades legacy documentation HTML through a configured
// pipeline of fixers.
type Uplyft struct {
	config   Config
	upgrader *html5.Upgrader
	rest     []fixer.Fixer
	chain    *fixer.ChainFixer
}

// New creates an Uplyft instance with the given options.
//
// The pipeline always starts with the structural upgrade stage. The
// site stage joins when Site or ReportID is configured, followed by
// the Markdown or pretty-print output stage.
func New(opts ...Option) (*Uplyft, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Markdown && cfg.Pretty {
		return nil, errors.New("markdown and pretty output are mutually exclusive")
	}

	if cfg.ReportID != "" {
		sc := site.Config{ReportID: cfg.ReportID}
		if cfg.Site != nil {
			sc = *cfg.Site
			sc.ReportID = cfg.ReportID
		}
		cfg.Site = &sc
	}
	applyPageConfig(&cfg)

	u := &Uplyft{
		config:   cfg,
		upgrader: html5.New(cfg.HTML5),
	}
	if cfg.Site != nil {
		u.rest = append(u.rest, site.New(cfg.Site))
	}
	if cfg.Markdown {
		u.rest = append(u.rest, fixer.NewMarkdown())
	} else if cfg.Pretty {
		u.rest = append(u.rest, fixer.NewPretty())
	}

	stages := append([]fixer.Fixer{u.upgrader}, u.rest...)
	u.chain = fixer.NewChain(stages...)
	return u, nil
}

// applyPageConfig folds per-page stage switches into cfg. A stage key
// that is present and not true switches the stage off for this page;
// absent keys leave the defaults alone.
func applyPageConfig(cfg *Config) {
	pc := cfg.PageConfig
	if pc == nil {
		return
	}
	if !stageEnabled(pc, "html5") {
		cfg.HTML5 = &html5.Config{}
	}
	if cfg.Site == nil {
		return
	}
	if !stageEnabled(pc, "site") {
		cfg.Site = nil
		return
	}
	sc := *cfg.Site
	sc.Icons = sc.Icons && stageEnabled(pc, "icons")
	sc.Figures = sc.Figures && stageEnabled(pc, "figures")
	sc.HeadingIDs = sc.HeadingIDs && stageEnabled(pc, "headingIDs")
	sc.AnchorLinks = sc.AnchorLinks && stageEnabled(pc, "anchorLinks")
	sc.Tables = sc.Tables && stageEnabled(pc, "tables")
	cfg.Site = &sc
}

func stageEnabled(pc *pageconfig.Config, key string) bool {
	if pc.Get(key) == nil {
		return true
	}
	return pc.IsTrue(key)
}

// Fix runs the full pipeline on an HTML fragment.
func (u *Uplyft) Fix(html string) (string, error) {
	return u.chain.Fix(html)
}

// FixWithStats runs the full pipeline and reports what the structural
// upgrade did. Content holds the output of the whole pipeline; Stats
// and Warnings describe the upgrade stage, which is where the
// interesting mutations happen.
func (u *Uplyft) FixWithStats(html string) (*html5.Result, error) {
	result, err := u.upgrader.FixWithStats(html)
	if err != nil {
		return nil, err
	}
	for _, f := range u.rest {
		content, err := f.Fix(result.Content)
		if err != nil {
			return nil, err
		}
		result.Content = content
	}
	return result, nil
}

// Pipeline returns the assembled fixer chain, useful for composing
// with additional stages.
func (u *Uplyft) Pipeline() fixer.Fixer {
	return u.chain
}

// Version returns the module version embedded in the binary.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown)"
}
