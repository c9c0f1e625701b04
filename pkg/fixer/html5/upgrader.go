package html5

import (
	"fmt"
	"time"

	"github.com/jmylchreest/uplyft/pkg/dom"
)

// Upgrader applies HTML5 upgrade rules to legacy documentation fragments.
// An Upgrader holds no state between calls, so a single instance is safe
// for concurrent use across independent fragments.
type Upgrader struct {
	config *Config
}

// New creates an Upgrader with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Upgrader {
	if config == nil {
		config = DefaultConfig()
	}
	return &Upgrader{config: config}
}

// Name returns the fixer name for logging.
func (u *Upgrader) Name() string {
	return "html5"
}

// Fix runs every rule enabled by the configuration and returns the
// upgraded fragment. This method implements the fixer.Fixer interface.
func (u *Upgrader) Fix(html string) (string, error) {
	result, err := u.FixWithStats(html)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// FixWithStats runs every enabled rule and returns the upgraded fragment
// together with detailed stats. Unlike rules that simply find nothing to
// match, a parse failure or an invalid configured selector is an error,
// and no partial output is produced.
func (u *Upgrader) FixWithStats(html string) (*Result, error) {
	for _, cs := range u.config.ExtraClassStrips {
		if _, err := dom.Compile(cs.Selector); err != nil {
			return nil, fmt.Errorf("extra class strip %q: %w", cs.Selector, err)
		}
	}
	return u.apply(html, u.pipeline())
}

// UpdateSectionDivs retags div.section wrappers as HTML5 section elements,
// dropping the section marker class.
func (u *Upgrader) UpdateSectionDivs(html string) (string, error) {
	return u.applyContent(html, sectionRules)
}

// UpdateCodeSections rebuilds legacy source blocks as pre > code: nested
// source wrappers collapse to one, the pre is hoisted above its wrapper
// and the wrapper becomes a code element.
func (u *Upgrader) UpdateCodeSections(html string) (string, error) {
	return u.applyContent(html, codeRules)
}

// UpdateTables upgrades legacy tables: header rows found in the body move
// into a thead, and the bodyTable class, border attribute and alternating
// row classes are stripped.
func (u *Upgrader) UpdateTables(html string) (string, error) {
	return u.applyContent(html, tableRules)
}

// FixInternalLinks removes point characters from element ids and from
// fragment hrefs, so "#a.b.c" and id="a.b.c" both become "abc" and keep
// pointing at each other.
func (u *Upgrader) FixInternalLinks(html string) (string, error) {
	return u.applyContent(html, internalLinkRules)
}

// RemoveDeadLinks unwraps anchors that have no href, leaving their
// content in place.
func (u *Upgrader) RemoveDeadLinks(html string) (string, error) {
	return u.applyContent(html, deadLinkRules)
}

// RemoveExternalLinkClass drops the legacy externalLink class from
// anchors.
func (u *Upgrader) RemoveExternalLinkClass(html string) (string, error) {
	return u.applyContent(html, externalLinkRules)
}

// RemoveClass strips class from every node matched by selector. The
// selector is caller-supplied: an invalid one is an error, a valid one
// matching nothing is not.
func (u *Upgrader) RemoveClass(html, selector, class string) (string, error) {
	if _, err := dom.Compile(selector); err != nil {
		return "", fmt.Errorf("selector %q: %w", selector, err)
	}
	return u.applyContent(html, []rule{{
		name:     "remove-class(" + selector + ")",
		selector: selector,
		mutate:   removeClass(class),
	}})
}

// Retag renames every node matched by selector to newTag and strips
// classToStrip from it. Pass an empty classToStrip to keep classes.
func (u *Upgrader) Retag(html, selector, newTag, classToStrip string) (string, error) {
	if _, err := dom.Compile(selector); err != nil {
		return "", fmt.Errorf("selector %q: %w", selector, err)
	}
	return u.applyContent(html, []rule{{
		name:     "retag(" + selector + ")",
		selector: selector,
		mutate:   retagTo(newTag, classToStrip),
	}})
}

// pipeline assembles the enabled rule tables in fixed order.
func (u *Upgrader) pipeline() []rule {
	var rules []rule
	if u.config.SectionDivs {
		rules = append(rules, sectionRules...)
	}
	if u.config.CodeSections {
		rules = append(rules, codeRules...)
	}
	if u.config.Tables {
		rules = append(rules, tableRules...)
	}
	if u.config.InternalLinks {
		rules = append(rules, internalLinkRules...)
	}
	if u.config.DeadLinks {
		rules = append(rules, deadLinkRules...)
	}
	if u.config.ExternalLinkClass {
		rules = append(rules, externalLinkRules...)
	}
	for _, cs := range u.config.ExtraClassStrips {
		rules = append(rules, rule{
			name:     "extra-class-strip(" + cs.Selector + ")",
			selector: cs.Selector,
			mutate:   removeClass(cs.Class),
		})
	}
	return rules
}

// applyContent runs a fixed rule list and returns only the content.
func (u *Upgrader) applyContent(html string, rules []rule) (string, error) {
	result, err := u.apply(html, rules)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// apply parses the fragment, runs the rules in order and serializes the
// body subtree back to a fragment.
func (u *Upgrader) apply(html string, rules []rule) (*Result, error) {
	startTime := time.Now()
	result := &Result{Stats: NewStats()}
	result.Stats.InputBytes = len(html)

	parseStart := time.Now()
	doc, err := dom.Parse(html)
	result.Stats.ParseDuration = time.Since(parseStart)
	if err != nil {
		return nil, err
	}

	transformStart := time.Now()
	for _, r := range rules {
		if err := r.run(doc, result); err != nil {
			return nil, err
		}
	}
	result.Stats.TransformDuration = time.Since(transformStart)

	outputStart := time.Now()
	output, err := dom.Serialize(doc)
	result.Stats.OutputDuration = time.Since(outputStart)
	if err != nil {
		return nil, err
	}

	result.Content = output
	result.Stats.OutputBytes = len(output)
	result.Stats.TotalDuration = time.Since(startTime)

	return result, nil
}
