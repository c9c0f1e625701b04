package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []Format{FormatJSON, FormatJSONL, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			w, err := NewWriter(&buf, format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w == nil {
				t.Fatal("expected non-nil writer")
			}
		})
	}

	t.Run("unsupported format is an error", func(t *testing.T) {
		_, err := NewWriter(&buf, Format("xml"))
		if err == nil {
			t.Fatal("expected error for unsupported format")
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.json", FormatJSON},
		{"out.jsonl", FormatJSONL},
		{"out.ndjson", FormatJSONL},
		{"out.yaml", FormatYAML},
		{"out.yml", FormatYAML},
		{"OUT.YAML", FormatYAML},
		{"out.txt", FormatJSON},
		{"", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestJSONWriter(t *testing.T) {
	t.Run("single record is emitted bare", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSON)

		if err := w.Write(Record{Fixer: "html5", Content: "<p>x</p>"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.HasPrefix(out, "{") {
			t.Errorf("expected bare object, got %q", out)
		}

		var rec Record
		if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if rec.Fixer != "html5" {
			t.Errorf("expected fixer 'html5', got %q", rec.Fixer)
		}
		if rec.Content != "<p>x</p>" {
			t.Errorf("expected content to round-trip, got %q", rec.Content)
		}
	})

	t.Run("multiple records become an array", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSON)

		_ = w.Write(Record{File: "a.html", Fixer: "html5", Content: "<p>a</p>"})
		_ = w.Write(Record{File: "b.html", Fixer: "html5", Content: "<p>b</p>"})
		if err := w.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(buf.String(), "[") {
			t.Errorf("expected array output, got %q", buf.String())
		}

		var recs []Record
		if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("expected 2 records, got %d", len(recs))
		}
		if recs[1].File != "b.html" {
			t.Errorf("expected record order preserved, got %q", recs[1].File)
		}
	})

	t.Run("pretty printing is the default", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSON)

		_ = w.Write(Record{Fixer: "html5", Content: "x"})
		_ = w.Close()

		if !strings.Contains(buf.String(), "  \"fixer\"") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("compact output fits one line", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSON, WithPretty(false))

		_ = w.Write(Record{Fixer: "html5", Content: "x"})
		_ = w.Close()

		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected single-line output, got %q", buf.String())
		}
	})

	t.Run("empty fields are omitted", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSON)

		_ = w.Write(Record{Fixer: "html5", Content: "x"})
		_ = w.Close()

		for _, absent := range []string{"file", "warnings", "stats"} {
			if strings.Contains(buf.String(), absent) {
				t.Errorf("expected %q to be omitted, got %q", absent, buf.String())
			}
		}
	})
}

func TestJSONLWriter(t *testing.T) {
	t.Run("each record is its own line", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSONL)

		recs := []any{
			Record{File: "a.html", Fixer: "html5", Content: "<p>a</p>"},
			Record{File: "b.html", Fixer: "html5", Content: "<p>b</p>"},
			Record{File: "c.html", Fixer: "html5", Content: "<p>c</p>"},
		}
		if err := w.WriteAll(recs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = w.Close()

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		for _, line := range lines {
			var rec Record
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				t.Errorf("line is not valid JSON: %v", err)
			}
		}
	})

	t.Run("records are written immediately", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatJSONL)

		_ = w.Write(Record{Fixer: "html5", Content: "x"})
		if buf.Len() == 0 {
			t.Error("expected record to be flushed on write")
		}
	})
}

func TestYAMLWriter(t *testing.T) {
	t.Run("single record is emitted bare", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatYAML)

		_ = w.Write(Record{Fixer: "html5", Content: "<p>x</p>"})
		if err := w.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "fixer: html5") {
			t.Errorf("expected fixer field, got %q", out)
		}
		if strings.HasPrefix(out, "-") {
			t.Errorf("expected bare document, got %q", out)
		}
	})

	t.Run("multiple records become a sequence", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf, FormatYAML)

		_ = w.Write(Record{File: "a.html", Fixer: "html5", Content: "a"})
		_ = w.Write(Record{File: "b.html", Fixer: "html5", Content: "b"})
		_ = w.Close()

		if !strings.Contains(buf.String(), "- file: a.html") {
			t.Errorf("expected sequence output, got %q", buf.String())
		}
	})
}

func TestRecordStats(t *testing.T) {
	stats := html5.NewStats()
	stats.InputBytes = 42
	stats.RecordRule("section-divs", 1)

	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatJSON)
	_ = w.Write(Record{Fixer: "html5", Content: "x", Stats: stats})
	_ = w.Close()

	for _, want := range []string{"input_bytes", "rule_matches", "section-divs"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected stats field %q in output, got %q", want, buf.String())
		}
	}
}
