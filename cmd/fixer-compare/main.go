// fixer-compare compares all available fixers on the same input.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/uplyft/pkg/fixer"
	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
	"github.com/jmylchreest/uplyft/pkg/fixer/site"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: fixer-compare <url-or-file>\n")
		os.Exit(1)
	}

	input := os.Args[1]
	var html string
	var err error

	if strings.HasPrefix(input, "http") {
		html, err = fetchURL(input)
	} else {
		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		html = string(data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Input: %d bytes\n\n", len(html))
	fmt.Printf("%-25s %10s %8s %10s\n", "Fixer", "Output", "Delta%", "Time")
	fmt.Printf("%-25s %10s %8s %10s\n", "-----", "------", "------", "----")

	// Test each fixer
	fixers := []struct {
		name  string
		fixer fixer.Fixer
	}{
		{"noop", fixer.NewNoop()},
		{"html5 (default)", html5.New(nil)},
		{"html5 (structure)", html5.New(html5.PresetStructure())},
		{"html5 (links)", html5.New(html5.PresetLinks())},
		{"site", site.New(nil)},
		{"markdown", fixer.NewMarkdown()},
		{"pretty", fixer.NewPretty()},
		// Chains
		{"html5 -> site", fixer.NewChain(
			html5.New(nil),
			site.New(nil),
		)},
		{"html5 -> site -> md", fixer.NewChain(
			html5.New(nil),
			site.New(nil),
			fixer.NewMarkdown(),
		)},
		{"html5 -> pretty", fixer.NewChain(
			html5.New(nil),
			fixer.NewPretty(),
		)},
	}

	for _, f := range fixers {
		start := time.Now()
		output, err := f.fixer.Fix(html)
		duration := time.Since(start)

		if err != nil {
			fmt.Printf("%-25s %10s %8s %10v (error: %v)\n",
				f.name, "ERROR", "-", duration.Round(time.Millisecond), err)
			continue
		}

		delta := float64(len(output)-len(html)) / float64(len(html)) * 100
		fmt.Printf("%-25s %10d %+7.1f%% %10v\n",
			f.name, len(output), delta, duration.Round(time.Millisecond))
	}

	// Rule detail for the default preset
	result, err := html5.New(nil).FixWithStats(html)
	if err == nil {
		fmt.Printf("\n%s", result.Stats.String())
	}

	fmt.Println()
}

func fetchURL(url string) (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "fixer-compare/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	return string(data), err
}
