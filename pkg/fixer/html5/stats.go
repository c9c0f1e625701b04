package html5

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures metrics about an upgrade run.
type Stats struct {
	// Byte counts
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// RuleMatches counts matched nodes per rule name.
	RuleMatches map[string]int `json:"rule_matches,omitempty"`

	// Mutation counts
	ElementsRetagged    int `json:"elements_retagged"`
	RowsPromoted        int `json:"rows_promoted"`
	LinksUnwrapped      int `json:"links_unwrapped"`
	ClassesStripped     int `json:"classes_stripped"`
	AttributesRemoved   int `json:"attributes_removed"`
	AttributesRewritten int `json:"attributes_rewritten"`
	NodesDropped        int `json:"nodes_dropped"`

	// Timing
	ParseDuration     time.Duration `json:"parse_duration_ms"`
	TransformDuration time.Duration `json:"transform_duration_ms"`
	OutputDuration    time.Duration `json:"output_duration_ms"`
	TotalDuration     time.Duration `json:"total_duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		RuleMatches: make(map[string]int),
	}
}

// RecordRule records that a rule matched count nodes.
func (s *Stats) RecordRule(name string, count int) {
	if count > 0 {
		s.RuleMatches[name] += count
	}
}

// TotalMatches returns the total number of nodes matched across all rules.
func (s *Stats) TotalMatches() int {
	total := 0
	for _, count := range s.RuleMatches {
		total += count
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString("Upgrade stats:\n")
	sb.WriteString(fmt.Sprintf("  Size: %d -> %d bytes\n", s.InputBytes, s.OutputBytes))
	sb.WriteString(fmt.Sprintf("  Nodes matched: %d\n", s.TotalMatches()))

	if len(s.RuleMatches) > 0 {
		sb.WriteString("  Rules:\n")
		names := make([]string, 0, len(s.RuleMatches))
		for name := range s.RuleMatches {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("    %s: %d\n", name, s.RuleMatches[name]))
		}
	}

	sb.WriteString(fmt.Sprintf("  Retagged: %d, rows promoted: %d, links unwrapped: %d\n",
		s.ElementsRetagged, s.RowsPromoted, s.LinksUnwrapped))
	sb.WriteString(fmt.Sprintf("  Classes stripped: %d, attrs removed: %d, attrs rewritten: %d\n",
		s.ClassesStripped, s.AttributesRemoved, s.AttributesRewritten))
	sb.WriteString(fmt.Sprintf("  Duration: %v (parse %v, transform %v, output %v)\n",
		s.TotalDuration, s.ParseDuration, s.TransformDuration, s.OutputDuration))

	return sb.String()
}

// Warning represents a non-fatal issue found during an upgrade.
type Warning struct {
	Phase   string `json:"phase"`   // parse, transform, output
	Message string `json:"message"` // human-readable description
	Context string `json:"context,omitempty"`
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (%s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the outcome of an upgrade run.
type Result struct {
	Content  string    `json:"content"`
	Stats    *Stats    `json:"stats"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
