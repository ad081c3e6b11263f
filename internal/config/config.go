// Package config holds the settings of a page build.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fantravel1/chronicsoreness/internal/article"
)

// Config is the full configuration of a build.
type Config struct {
	Site Site `yaml:"site"`

	// ContentDir is the directory holding one YAML record per page.
	ContentDir string `yaml:"content_dir"`

	// OutputDir is the directory pages are written to. It must exist.
	OutputDir string `yaml:"output_dir"`

	// Workers is how many pages are rendered at once.
	Workers int `yaml:"workers"`
}

// Site is the boilerplate shared by every page.
type Site struct {
	Name       string        `yaml:"name"`
	BaseURL    string        `yaml:"base_url"`
	Section    string        `yaml:"section"`
	Tagline    string        `yaml:"tagline"`
	Disclaimer string        `yaml:"disclaimer"`
	Copyright  string        `yaml:"copyright"`
	Logo       article.Logo  `yaml:"logo"`
	Theme      article.Theme `yaml:"theme"`
}

// Default returns the configuration of the hormonal health section.
func Default() Config {
	return Config{
		Site: Site{
			Name:       "ChronicSoreness",
			BaseURL:    "https://chronicsoreness.com",
			Section:    "hormonal-health",
			Tagline:    "Evidence-based information for women managing chronic pain.",
			Disclaimer: "This website provides general information for educational purposes only. Always consult qualified healthcare providers for medical advice.",
			Copyright:  "2025 ChronicSoreness.com. All rights reserved.",
			Logo:       article.Logo{Lead: "Chronic", Emphasis: "Soreness"},
			Theme: article.Theme{
				Accent:      "#be185d",
				AccentLight: "#ec4899",
				Background:  "#fdf2f8",
			},
		},
		ContentDir: "content/hormonal-health",
		OutputDir:  "hormonal-health",
		Workers:    1,
	}
}

// Load reads the YAML file at path over the defaults. A file that doesn't
// exist leaves the defaults untouched; an empty path does the same.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// ArticleOptions converts the site settings for article.NewSite.
func (c Config) ArticleOptions() article.Options {
	return article.Options{
		Name:       c.Site.Name,
		BaseURL:    c.Site.BaseURL,
		Section:    c.Site.Section,
		Tagline:    c.Site.Tagline,
		Disclaimer: c.Site.Disclaimer,
		Copyright:  c.Site.Copyright,
		Logo:       c.Site.Logo,
		Theme:      c.Site.Theme,
	}
}
