// Package html5 upgrades legacy XHTML documentation fragments into modern
// HTML5. Old static-site generators emit outdated structures (section divs,
// nested source wrappers, header rows inside table bodies, pointed anchor
// ids); each rule here locates one such pattern with a CSS selector and
// rewrites it in place. Rules tolerate absent matches and malformed input,
// and applying a rule to its own output changes nothing.
package html5

// Config defines which upgrade rules run on a fragment.
type Config struct {
	// === Structure rules ===

	// SectionDivs retags div.section wrappers as section elements.
	SectionDivs bool `json:"section_divs"`

	// CodeSections rebuilds legacy source blocks as pre > code.
	CodeSections bool `json:"code_sections"`

	// Tables promotes header rows into thead and strips presentation
	// attributes and classes from legacy tables.
	Tables bool `json:"tables"`

	// === Link rules ===

	// InternalLinks strips point characters from element ids and from
	// fragment hrefs so internal anchors stay consistent.
	InternalLinks bool `json:"internal_links"`

	// DeadLinks unwraps anchors without an href, keeping their content.
	DeadLinks bool `json:"dead_links"`

	// ExternalLinkClass drops the legacy externalLink marker class.
	ExternalLinkClass bool `json:"external_link_class"`

	// === Ad hoc rules ===

	// ExtraClassStrips lists selector/class pairs stripped after the
	// built-in rules. Selectors are validated before the run starts.
	ExtraClassStrips []ClassStrip `json:"extra_class_strips,omitempty"`
}

// ClassStrip pairs a selector with a class to remove from its matches.
type ClassStrip struct {
	Selector string `json:"selector"`
	Class    string `json:"class"`
}

// DefaultConfig returns the configuration used for full page upgrades:
// every rule enabled.
func DefaultConfig() *Config {
	return &Config{
		SectionDivs:       true,
		CodeSections:      true,
		Tables:            true,
		InternalLinks:     true,
		DeadLinks:         true,
		ExternalLinkClass: true,
	}
}

// PresetStructure returns a configuration that rewrites markup structure
// (sections, code blocks, tables) and leaves links alone. Use when link
// cleanup happens elsewhere in the build.
func PresetStructure() *Config {
	return &Config{
		SectionDivs:  true,
		CodeSections: true,
		Tables:       true,
	}
}

// PresetLinks returns a configuration that only cleans up links and
// anchors, leaving document structure untouched.
func PresetLinks() *Config {
	return &Config{
		InternalLinks:     true,
		DeadLinks:         true,
		ExternalLinkClass: true,
	}
}

// Merge merges another config into this one.
// Rule toggles from other win when set; extra class strips are appended,
// not replaced.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c

	if other.SectionDivs {
		merged.SectionDivs = true
	}
	if other.CodeSections {
		merged.CodeSections = true
	}
	if other.Tables {
		merged.Tables = true
	}
	if other.InternalLinks {
		merged.InternalLinks = true
	}
	if other.DeadLinks {
		merged.DeadLinks = true
	}
	if other.ExternalLinkClass {
		merged.ExternalLinkClass = true
	}

	if len(other.ExtraClassStrips) > 0 {
		seen := make(map[ClassStrip]bool)
		for _, cs := range merged.ExtraClassStrips {
			seen[cs] = true
		}
		for _, cs := range other.ExtraClassStrips {
			if !seen[cs] {
				merged.ExtraClassStrips = append(merged.ExtraClassStrips, cs)
				seen[cs] = true
			}
		}
	}

	return &merged
}
