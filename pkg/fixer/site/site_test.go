package site

import "testing"

func TestNewTransformer(t *testing.T) {
	t.Run("nil config uses default", func(t *testing.T) {
		tr := New(nil)
		if tr == nil {
			t.Fatal("expected non-nil transformer")
		}
		if !tr.config.Icons || !tr.config.Tables {
			t.Error("expected default config to enable every transform")
		}
		if tr.config.ReportID != "" {
			t.Errorf("expected no report id by default, got %q", tr.config.ReportID)
		}
	})

	t.Run("custom config is used", func(t *testing.T) {
		tr := New(&Config{Icons: true})
		if tr.config.Figures {
			t.Error("expected Figures to be false")
		}
	})
}

func TestTransformerName(t *testing.T) {
	if New(nil).Name() != "site" {
		t.Errorf("expected name 'site', got '%s'", New(nil).Name())
	}
}

func TestTransformIcons(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "addition icon",
			html: `<img src="images/add.gif" alt="An image">`,
			want: `<span><span class="fa fa-plus" aria-hidden="true"></span><span class="sr-only">Addition</span></span>`,
		},
		{
			name: "success icon",
			html: `<img src="images/icon_success_sml.gif">`,
			want: `<span><span class="fa fa-check" aria-hidden="true"></span><span class="sr-only">Passed</span></span>`,
		},
		{
			name: "icon path prefix does not matter",
			html: `<img src="./images/fix.gif">`,
			want: `<span><span class="fa fa-wrench" aria-hidden="true"></span><span class="sr-only">Fix</span></span>`,
		},
		{
			name: "content without icons is untouched",
			html: `<p>Some text</p>`,
			want: `<p>Some text</p>`,
		},
		{
			name: "ordinary images are untouched",
			html: `<img src="imgs/diagram.png"/>`,
			want: `<img src="imgs/diagram.png"/>`,
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.TransformIcons(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTransformImagesToFigures(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "alt text becomes a caption",
			html: `<img src="imgs/diagram.png" alt="A diagram">`,
			want: `<figure><img src="imgs/diagram.png" alt="A diagram"/><figcaption>A diagram</figcaption></figure>`,
		},
		{
			name: "image without alt gets no caption",
			html: `<img src="imgs/diagram.png">`,
			want: `<figure><img src="imgs/diagram.png"/></figure>`,
		},
		{
			name: "empty alt gets no caption",
			html: `<img src="imgs/diagram.png" alt="">`,
			want: `<figure><img src="imgs/diagram.png" alt=""/></figure>`,
		},
		{
			name: "image already in a figure is untouched",
			html: `<figure><img src="imgs/diagram.png"/></figure>`,
			want: `<figure><img src="imgs/diagram.png"/></figure>`,
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.TransformImagesToFigures(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFixHeadingIDs(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "heading text is slugged into an id",
			html: `<h1>Some Heading</h1>`,
			want: `<h1 id="some-heading">Some Heading</h1>`,
		},
		{
			name: "every heading level gets an id",
			html: `<h2>First Part</h2><h3>The Details</h3>`,
			want: `<h2 id="first-part">First Part</h2><h3 id="the-details">The Details</h3>`,
		},
		{
			name: "existing ids are replaced",
			html: `<h2 id="old">New Name</h2>`,
			want: `<h2 id="new-name">New Name</h2>`,
		},
		{
			name: "heading without sluggable text keeps no id",
			html: `<h3>!!!</h3>`,
			want: `<h3>!!!</h3>`,
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.FixHeadingIDs(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFixAnchorLinks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "fragment is slugged",
			html: `<a href="#An Anchor">x</a>`,
			want: `<a href="#an-anchor">x</a>`,
		},
		{
			name: "pointed fragment matches slugged headings",
			html: `<a href="#sub.section">x</a>`,
			want: `<a href="#sub-section">x</a>`,
		},
		{
			name: "bare hash is untouched",
			html: `<a href="#">x</a>`,
			want: `<a href="#">x</a>`,
		},
		{
			name: "external links are untouched",
			html: `<a href="https://example.com/page#A B">x</a>`,
			want: `<a href="https://example.com/page#A B">x</a>`,
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.FixAnchorLinks(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTransformTables(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "table gains classes and a responsive wrapper",
			html: `<table><tbody><tr><td>x</td></tr></tbody></table>`,
			want: `<div class="table-responsive"><table class="table table-striped table-hover"><tbody><tr><td>x</td></tr></tbody></table></div>`,
		},
		{
			name: "existing classes are kept",
			html: `<table class="data"><tbody><tr><td>x</td></tr></tbody></table>`,
			want: `<div class="table-responsive"><table class="data table table-striped table-hover"><tbody><tr><td>x</td></tr></tbody></table></div>`,
		},
		{
			name: "already transformed table is untouched",
			html: `<div class="table-responsive"><table class="table table-striped table-hover"><tbody><tr><td>x</td></tr></tbody></table></div>`,
			want: `<div class="table-responsive"><table class="table table-striped table-hover"><tbody><tr><td>x</td></tr></tbody></table></div>`,
		},
	}

	tr := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.TransformTables(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

const reportPage = `<h2>Surefire Report</h2><p><img src="images/icon_success_sml.gif" alt="ok"> 10 tests</p><a href="#Surefire Report">back</a><table><tbody><tr><td>r</td></tr></tbody></table>`

const reportPageFixed = `<h1 id="surefire-report">Surefire Report</h1><p><span><span class="fa fa-check" aria-hidden="true"></span><span class="sr-only">Passed</span></span> 10 tests</p><a href="#surefire-report">back</a><div class="table-responsive"><table class="table table-striped table-hover"><tbody><tr><td>r</td></tr></tbody></table></div>`

func TestTransformerFix(t *testing.T) {
	t.Run("runs every enabled rewrite in order", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ReportID = "surefire-report"
		tr := New(cfg)

		got, err := tr.Fix(reportPage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != reportPageFixed {
			t.Errorf("expected %q, got %q", reportPageFixed, got)
		}
	})

	t.Run("disabled rewrites do not run", func(t *testing.T) {
		tr := New(&Config{HeadingIDs: true})

		got, err := tr.Fix(`<h2>Part One</h2><table><tbody><tr><td>x</td></tr></tbody></table>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `<h2 id="part-one">Part One</h2><table><tbody><tr><td>x</td></tr></tbody></table>`
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestTransformerFixIdempotent(t *testing.T) {
	inputs := []struct {
		name string
		html string
	}{
		{"report page", reportPage},
		{"image with caption", `<img src="imgs/diagram.png" alt="A diagram">`},
		{"plain table", `<table><tbody><tr><td>x</td></tr></tbody></table>`},
		{"headings and anchors", `<h2>Sub Section</h2><a href="#Sub Section">x</a>`},
	}

	cfg := DefaultConfig()
	cfg.ReportID = "surefire-report"
	tr := New(cfg)

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			once, err := tr.Fix(tt.html)
			if err != nil {
				t.Fatalf("unexpected error on first pass: %v", err)
			}
			twice, err := tr.Fix(once)
			if err != nil {
				t.Fatalf("unexpected error on second pass: %v", err)
			}
			if once != twice {
				t.Errorf("expected fixed output to be stable\nfirst:  %q\nsecond: %q", once, twice)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	tr := New(nil)

	ops := map[string]func(string) (string, error){
		"Fix":                      tr.Fix,
		"TransformIcons":           tr.TransformIcons,
		"TransformImagesToFigures": tr.TransformImagesToFigures,
		"FixHeadingIDs":            tr.FixHeadingIDs,
		"FixAnchorLinks":           tr.FixAnchorLinks,
		"TransformTables":          tr.TransformTables,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, err := op("")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "" {
				t.Errorf("expected empty output for empty input, got %q", got)
			}
		})
	}
}
