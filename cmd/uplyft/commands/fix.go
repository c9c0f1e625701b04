package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/uplyft/internal/logger"
	"github.com/jmylchreest/uplyft/internal/output"
	"github.com/jmylchreest/uplyft/pkg/fixer/html5"
	"github.com/jmylchreest/uplyft/pkg/pageconfig"
	"github.com/jmylchreest/uplyft/pkg/uplyft"
)

var fixCmd = &cobra.Command{
	Use:   "fix [file|-] ...",
	Short: "Upgrade legacy HTML files",
	Long: `Fix legacy documentation pages and write the upgraded markup.

Each argument is a file to process; "-" or no arguments reads from
stdin. Output goes to stdout, to the --output file, or into the
--output directory when several files are given.

Examples:
  # Single page to stdout
  uplyft fix target/site/index.html

  # Structure fixes only, reindented for review
  uplyft fix --preset structure --pretty target/site/index.html

  # A whole site into a directory, with a JSONL fix report
  uplyft fix --output fixed/ --report report.jsonl target/site/*.html

  # Per-page behaviour from the skin configuration
  uplyft fix --site-config skin.yaml --project my-project \
      target/site/usage.html`,
	RunE:         runFix,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	flags := fixCmd.Flags()

	// Output settings
	flags.StringP("output", "o", "", "output file or directory (default: stdout)")
	flags.String("format", "html", "output format: html, markdown")
	flags.Bool("pretty", false, "reindent HTML output for review")

	// Pipeline settings
	flags.String("preset", "", "rule preset: default, structure, links")
	flags.Bool("no-site", false, "skip site-level rewrites (icons, figures, heading ids, tables)")
	flags.String("report-id", "", "report page id for title repair (e.g. surefire-report)")

	// Per-page configuration
	flags.String("site-config", "", "skin configuration file (YAML)")
	flags.String("project", "", "project id used when resolving per-page configuration")

	// Machine-readable report
	flags.String("report", "", "write a fix report with stats to this file")
	flags.String("report-format", "", "report format: json, jsonl, yaml (default: by extension)")
}

func runFix(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Debug("fix command starting")

	presetStr, _ := cmd.Flags().GetString("preset")
	htmlCfg, err := presetConfig(presetStr)
	if err != nil {
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	var markdown bool
	switch formatStr {
	case "html", "":
	case "markdown":
		markdown = true
	default:
		return fmt.Errorf("unknown format: %s (use 'html' or 'markdown')", formatStr)
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	noSite, _ := cmd.Flags().GetBool("no-site")
	reportID, _ := cmd.Flags().GetString("report-id")
	siteConfigPath, _ := cmd.Flags().GetString("site-config")
	project, _ := cmd.Flags().GetString("project")

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	logger.Debug("inputs to process", "count", len(inputs))

	// Resolve output destination
	outPath, _ := cmd.Flags().GetString("output")
	outDir := false
	if outPath != "" {
		if info, err := os.Stat(outPath); err == nil && info.IsDir() {
			outDir = true
		} else if len(inputs) > 1 {
			outDir = true
		}
		if outDir {
			if err := os.MkdirAll(outPath, 0o755); err != nil {
				logger.Error("failed to create output directory", "path", outPath, "error", err)
				return err
			}
		}
	}

	// Set up the fix report if requested
	var reportWriter output.Writer
	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		f, err := os.Create(reportPath) //#nosec G304 -- CLI tool writes to user-specified report file
		if err != nil {
			logger.Error("failed to create report file", "path", reportPath, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()

		format := output.DetectFormat(reportPath)
		if formatFlag, _ := cmd.Flags().GetString("report-format"); formatFlag != "" {
			format = output.Format(formatFlag)
		}
		reportWriter, err = output.NewWriter(f, format)
		if err != nil {
			logger.Error("failed to create report writer", "format", format, "error", err)
			return err
		}
		defer func() { _ = reportWriter.Close() }()
	}

	count := 0
	errorCount := 0

	for _, in := range inputs {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "remaining", len(inputs)-count-errorCount)
			break
		}

		content, name, err := readInput(in)
		if err != nil {
			logger.Error("failed to read input", "input", in, "error", err)
			errorCount++
			continue
		}

		opts := []uplyft.Option{uplyft.WithHTML5(htmlCfg)}
		if !noSite {
			opts = append(opts, uplyft.WithSite(nil))
		}
		if reportID != "" {
			opts = append(opts, uplyft.WithReportID(reportID))
		}
		if markdown {
			opts = append(opts, uplyft.WithMarkdown())
		}
		if pretty {
			opts = append(opts, uplyft.WithPretty())
		}
		if siteConfigPath != "" {
			pc, err := pageconfig.Load(siteConfigPath, filepath.Base(name), project)
			if err != nil {
				logger.Error("failed to load site config", "path", siteConfigPath, "error", err)
				return err
			}
			opts = append(opts, uplyft.WithPageConfig(pc))
		}

		u, err := uplyft.New(opts...)
		if err != nil {
			return err
		}

		result, err := u.FixWithStats(content)
		if err != nil {
			logger.Error("fix failed", "file", name, "error", err)
			errorCount++
			continue
		}

		for _, w := range result.Warnings {
			logger.Warn(w.Message, "file", name, "phase", w.Phase, "context", w.Context)
		}

		if err := writeResult(outPath, outDir, in, markdown, result.Content); err != nil {
			logger.Error("failed to write output", "file", name, "error", err)
			errorCount++
			continue
		}

		if reportWriter != nil {
			rec := output.Record{
				File:     name,
				Fixer:    u.Pipeline().Name(),
				Content:  result.Content,
				Warnings: warningStrings(result.Warnings),
				Stats:    result.Stats,
			}
			if err := reportWriter.Write(rec); err != nil {
				logger.Error("failed to write report record", "file", name, "error", err)
				return err
			}
		}

		logger.Debug("fixed",
			"file", name,
			"matches", result.Stats.TotalMatches(),
			"bytes_in", result.Stats.InputBytes,
			"bytes_out", result.Stats.OutputBytes,
			"duration", result.Stats.TotalDuration)
		count++
	}

	logger.Info("fix complete", "fixed", count, "errors", errorCount)

	if errorCount > 0 {
		return fmt.Errorf("%d input(s) failed", errorCount)
	}
	return nil
}

// presetConfig maps the --preset flag to an engine configuration.
func presetConfig(name string) (*html5.Config, error) {
	switch name {
	case "", "default":
		return html5.DefaultConfig(), nil
	case "structure":
		return html5.PresetStructure(), nil
	case "links":
		return html5.PresetLinks(), nil
	default:
		return nil, fmt.Errorf("unknown preset: %s (use 'default', 'structure' or 'links')", name)
	}
}

// readInput returns the content and display name for an input argument.
func readInput(in string) (string, string, error) {
	if in == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "stdin", err
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(in) //#nosec G304 -- CLI tool reads user-specified input files
	if err != nil {
		return "", in, err
	}
	return string(data), in, nil
}

// writeResult places fixed content at its destination. An empty outPath
// means stdout.
func writeResult(outPath string, outDir bool, in string, markdown bool, content string) error {
	if outPath == "" {
		fmt.Println(content)
		return nil
	}
	dest := outPath
	if outDir {
		dest = filepath.Join(outPath, outputName(in, markdown))
	}
	return os.WriteFile(dest, []byte(content), 0o644) //#nosec G306 -- generated documentation is world-readable
}

// outputName derives the destination file name for an input.
func outputName(in string, markdown bool) string {
	base := filepath.Base(in)
	if in == "-" {
		base = "stdin.html"
	}
	if markdown {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
	}
	return base
}

func warningStrings(warnings []html5.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
