// uplyft-filter is a standalone filter for upgrading legacy documentation
// HTML, intended for build pipelines and for developing the fixer rules.
//
// Usage:
//
//	uplyft-filter [options] <url-or-file>
//
// Examples:
//
//	# Fix a generated page and show stats
//	uplyft-filter target/site/index.html
//
//	# Fix as part of a pipeline
//	uplyft-filter -q < index.html > index.fixed.html
//
//	# Structure fixes only
//	uplyft-filter -preset structure page.html
//
//	# Strip additional classes
//	uplyft-filter -strip "div.note=note,span.hint=hint" page.html
//
//	# Apply site rewrites and output Markdown
//	uplyft-filter -site -format markdown -o page.md page.html
//
//	# Show only stats, don't output content
//	uplyft-filter -stats-only page.html
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
	"github.com/jmylchreest/uplyft/pkg/uplyft"
)

var (
	// Input options
	fileInput = flag.String("f", "", "Read HTML from file instead of URL")

	// Config options
	preset       = flag.String("preset", "", "Use preset: structure, links")
	strip        = flag.String("strip", "", "Comma-separated selector=class pairs to strip")
	outputFormat = flag.String("format", "html", "Output format: html, markdown")
	site         = flag.Bool("site", false, "Apply site-level rewrites (icons, figures, heading ids, tables)")
	reportID     = flag.String("report-id", "", "Report page id for title repair")
	pretty       = flag.Bool("pretty", false, "Reindent HTML output")

	// Output options
	outputFile = flag.String("o", "", "Write fixed output to file")
	statsOnly  = flag.Bool("stats-only", false, "Only show stats, don't output content")
	jsonStats  = flag.Bool("json", false, "Output stats as JSON")
	verbose    = flag.Bool("v", false, "Verbose output (show warnings)")
	quiet      = flag.Bool("q", false, "Quiet mode (no stats, only content)")

	// Compare mode
	compare = flag.Bool("compare", false, "Compare the rule presets")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "uplyft-filter - Filter tool for the uplyft HTML fixer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: uplyft-filter [options] <url-or-file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  uplyft-filter target/site/index.html\n")
		fmt.Fprintf(os.Stderr, "  uplyft-filter -preset structure page.html\n")
		fmt.Fprintf(os.Stderr, "  uplyft-filter -site -format markdown page.html\n")
		fmt.Fprintf(os.Stderr, "  uplyft-filter -compare page.html\n")
	}

	flag.Parse()

	// Get input source
	var html string
	var source string
	var err error

	if *fileInput != "" {
		html, err = readFile(*fileInput)
		source = *fileInput
	} else if flag.NArg() > 0 {
		arg := flag.Arg(0)
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			html, err = fetchURL(arg)
			source = arg
		} else {
			html, err = readFile(arg)
			source = arg
		}
	} else {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		html = string(data)
		source = "stdin"
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(html) == 0 {
		fmt.Fprintf(os.Stderr, "Error: empty input\n")
		os.Exit(1)
	}

	// Compare mode
	if *compare {
		runComparison(html, source)
		return
	}

	// Build pipeline
	u, err := uplyft.New(buildOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := u.FixWithStats(html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Output stats
	if !*quiet {
		if *jsonStats {
			outputJSONStats(result, source)
		} else {
			outputTextStats(result, source)
		}
	}

	// Output warnings
	if *verbose && result.HasWarnings() {
		fmt.Fprintf(os.Stderr, "\nWarnings:\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "  %s\n", w.String())
		}
	}

	// Output content
	if !*statsOnly {
		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, []byte(result.Content), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
				os.Exit(1)
			}
			if !*quiet {
				fmt.Fprintf(os.Stderr, "\nWritten to %s\n", *outputFile)
			}
		} else if !*quiet {
			fmt.Println("\n--- Fixed Content ---")
			fmt.Println(result.Content)
		} else {
			fmt.Println(result.Content)
		}
	}
}

func buildOptions() []uplyft.Option {
	var cfg *html5.Config

	// Start with preset or default
	switch *preset {
	case "structure":
		cfg = html5.PresetStructure()
	case "links":
		cfg = html5.PresetLinks()
	default:
		cfg = html5.DefaultConfig()
	}

	// Override with flags
	if *strip != "" {
		for _, pair := range strings.Split(*strip, ",") {
			selector, class, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok || selector == "" || class == "" {
				fmt.Fprintf(os.Stderr, "Error: invalid -strip entry %q (want selector=class)\n", pair)
				os.Exit(1)
			}
			cfg.ExtraClassStrips = append(cfg.ExtraClassStrips, html5.ClassStrip{
				Selector: selector,
				Class:    class,
			})
		}
	}

	opts := []uplyft.Option{uplyft.WithHTML5(cfg)}

	if *site {
		opts = append(opts, uplyft.WithSite(nil))
	}
	if *reportID != "" {
		opts = append(opts, uplyft.WithReportID(*reportID))
	}

	if *outputFormat == "markdown" {
		opts = append(opts, uplyft.WithMarkdown())
	}
	if *pretty {
		opts = append(opts, uplyft.WithPretty())
	}

	return opts
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

func fetchURL(url string) (string, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", "uplyft-filter/1.0 (testing tool)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(data), nil
}

func outputTextStats(result *html5.Result, source string) {
	fmt.Fprintf(os.Stderr, "\n=== Uplyft Fix Stats ===\n")
	fmt.Fprintf(os.Stderr, "Source: %s\n", source)
	fmt.Fprintf(os.Stderr, "%s", result.Stats.String())
}

func outputJSONStats(result *html5.Result, source string) {
	stats := struct {
		Source  string       `json:"source"`
		Stats   *html5.Stats `json:"stats"`
		Matches int          `json:"total_matches"`
	}{
		Source:  source,
		Stats:   result.Stats,
		Matches: result.Stats.TotalMatches(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}

func runComparison(html string, source string) {
	presets := []struct {
		name string
		cfg  *html5.Config
	}{
		{"default", html5.DefaultConfig()},
		{"structure", html5.PresetStructure()},
		{"links", html5.PresetLinks()},
	}

	fmt.Printf("\n=== Preset Comparison for %s ===\n", source)
	fmt.Printf("Input size: %d bytes\n\n", len(html))
	fmt.Printf("%-12s %10s %10s %10s\n", "Preset", "Output", "Matches", "Time")
	fmt.Printf("%-12s %10s %10s %10s\n", "------", "------", "-------", "----")

	for _, p := range presets {
		upgrader := html5.New(p.cfg)
		result, err := upgrader.FixWithStats(html)
		if err != nil {
			fmt.Printf("%-12s %10s %10s %10s (error: %v)\n", p.name, "ERROR", "-", "-", err)
			continue
		}

		fmt.Printf("%-12s %10d %10d %10v\n",
			p.name,
			result.Stats.OutputBytes,
			result.Stats.TotalMatches(),
			result.Stats.TotalDuration.Round(time.Millisecond))
	}

	fmt.Println()
}
