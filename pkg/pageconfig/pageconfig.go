// Package pageconfig resolves per-page skin configuration for a site
// build. Values live in a site-wide skin block; a pages map inside it,
// keyed by page id (the slugged file name), overrides them for single
// pages.
package pageconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// pagesKey names the skin section holding per-page overrides.
const pagesKey = "pages"

var validate = validator.New()

// Options configure a page config lookup.
type Options struct {
	// CurrentFile is the name of the page being rendered, e.g. "deps.html".
	CurrentFile string
	// Project identifies the project the page belongs to.
	Project string
	// Skin holds the site-wide skin configuration block.
	Skin map[string]any `validate:"required"`
}

// Config resolves configuration values for one page.
type Config struct {
	fileID    string
	projectID string
	skin      map[string]any
	page      map[string]any
}

// New creates a Config bound to the page named in the options.
func New(opts Options) (*Config, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	cfg := &Config{
		fileID:    fileIDFor(opts.CurrentFile),
		projectID: Slug(opts.Project),
		skin:      opts.Skin,
	}

	if pages, ok := opts.Skin[pagesKey].(map[string]any); ok {
		if page, ok := pages[cfg.fileID].(map[string]any); ok {
			cfg.page = page
		}
	}

	return cfg, nil
}

// Load reads a YAML skin configuration file and binds it to currentFile.
// The skin block sits at the top level of the file:
//
//	skin:
//	  keepSections: true
//	  pages:
//	    dependencies:
//	      keepSections: false
func Load(path, currentFile, project string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin config: %w", err)
	}

	var file struct {
		Skin map[string]any `yaml:"skin"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skin config: %w", err)
	}

	return New(Options{
		CurrentFile: currentFile,
		Project:     project,
		Skin:        file.Skin,
	})
}

// Get returns the value for key, checking the page overrides before the
// site-wide block. Missing keys return nil.
func (c *Config) Get(key string) any {
	if c.page != nil {
		if v, ok := c.page[key]; ok {
			return v
		}
	}
	if v, ok := c.skin[key]; ok {
		return v
	}
	return nil
}

// GetString returns the value for key rendered as a string, or the empty
// string when the key is missing.
func (c *Config) GetString(key string) string {
	v := c.Get(key)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// IsTrue reports whether the value for key parses as true. Missing keys
// and values that do not parse as booleans are false.
func (c *Config) IsTrue(key string) bool {
	switch v := c.Get(key).(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

// FileID returns the id of the bound page: the slug of the file name with
// its extension dropped.
func (c *Config) FileID() string {
	return c.fileID
}

// ProjectID returns the slugged project identifier.
func (c *Config) ProjectID() string {
	return c.projectID
}

func fileIDFor(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		filename = filename[:i]
	}
	return Slug(filename)
}
