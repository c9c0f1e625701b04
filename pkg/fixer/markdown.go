package fixer

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownFixer converts upgraded HTML into Markdown. It is an export stage
// for migrating legacy pages onto Markdown-based site generators, not part
// of the normalization contract; run it last in a chain, after the markup
// fixers.
type MarkdownFixer struct{}

// NewMarkdown creates a new Markdown export fixer.
func NewMarkdown() *MarkdownFixer {
	return &MarkdownFixer{}
}

// Fix converts HTML to Markdown.
func (f *MarkdownFixer) Fix(html string) (string, error) {
	markdown, err := md.ConvertString(html)
	if err != nil {
		return "", err
	}
	return collapseBlankLines(markdown), nil
}

// Name returns the fixer type.
func (f *MarkdownFixer) Name() string {
	return "markdown"
}

// collapseBlankLines keeps at most one blank line between blocks.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	blankCount := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankCount++
			if blankCount <= 1 {
				result = append(result, "")
			}
		} else {
			blankCount = 0
			result = append(result, line)
		}
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
