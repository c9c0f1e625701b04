package site

import "testing"

func TestFixReport(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		report string
		want   string
	}{
		{
			name:   "first h2 becomes the page title",
			html:   `<h2>Surefire Report</h2><p>10 tests</p>`,
			report: "surefire-report",
			want:   `<h1>Surefire Report</h1><p>10 tests</p>`,
		},
		{
			name:   "only the first h2 is promoted",
			html:   `<h2>Checkstyle Results</h2><h2>Rules</h2>`,
			report: "checkstyle",
			want:   `<h1>Checkstyle Results</h1><h2>Rules</h2>`,
		},
		{
			name:   "page with an h1 is untouched",
			html:   `<h1>Licenses</h1><h2>Overview</h2>`,
			report: "license",
			want:   `<h1>Licenses</h1><h2>Overview</h2>`,
		},
		{
			name:   "unknown report is untouched",
			html:   `<h2>Custom Page</h2>`,
			report: "custom-page",
			want:   `<h2>Custom Page</h2>`,
		},
		{
			name:   "page without headings is untouched",
			html:   `<p>nothing here</p>`,
			report: "plugins",
			want:   `<p>nothing here</p>`,
		},
		{
			name:   "empty page stays empty",
			html:   "",
			report: "plugins",
			want:   "",
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.FixReport(tt.html, tt.report)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestKnownReports(t *testing.T) {
	for _, report := range []string{
		"changes-report", "checkstyle", "cpd", "dependencies",
		"failsafe-report", "license", "plugins", "pmd",
		"project-summary", "surefire-report", "taglist", "team-list",
	} {
		if !knownReports[report] {
			t.Errorf("expected %q to be a known report", report)
		}
	}
}
