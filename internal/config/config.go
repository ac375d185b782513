// Package config provides configuration types and defaults for folio.
package config

import (
	"fmt"
	"strings"

	"github.com/nbrandt/folio/internal/urlutil"
)

// DefaultRegistryPath is the project-relative location of the registry
// source document.
const DefaultRegistryPath = "content/projects.yaml"

// Config holds all configuration options for folio. Every base URL is
// optional; an unset base collapses the placeholders that reference it.
type Config struct {
	// SiteURL is the public site base, e.g. "https://nbrandt.dev".
	SiteURL string `mapstructure:"site_url"`

	// DocsURL is the published documentation base,
	// e.g. "https://docs.nbrandt.dev".
	DocsURL string `mapstructure:"docs_url"`

	// GitHubURL is the source-code host base,
	// e.g. "https://github.com/nbrandt".
	GitHubURL string `mapstructure:"github_url"`

	// DocsRepoURL is the documentation-host code base,
	// e.g. "https://github.com/nbrandt/docs".
	DocsRepoURL string `mapstructure:"docs_repo_url"`

	// RegistryPath points at the YAML registry document.
	RegistryPath string `mapstructure:"registry_path"`

	// Debug enables file logging.
	Debug bool `mapstructure:"debug"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		RegistryPath: DefaultRegistryPath,
	}
}

// NormalizeBaseURL strips trailing slashes so placeholder substitution
// and link joining never produce double slashes.
func NormalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// BaseURLs returns the placeholder substitution table: token name to
// normalized base URL. Unconfigured bases map to the empty string.
func (c Config) BaseURLs() map[string]string {
	return map[string]string{
		"SITE_URL":      NormalizeBaseURL(c.SiteURL),
		"DOCS_URL":      NormalizeBaseURL(c.DocsURL),
		"GITHUB_URL":    NormalizeBaseURL(c.GitHubURL),
		"DOCS_REPO_URL": NormalizeBaseURL(c.DocsRepoURL),
	}
}

// Validate checks configured values for errors. Empty values are valid
// (they use defaults or disable the corresponding placeholder).
func (c Config) Validate() error {
	bases := map[string]string{
		"site_url":      c.SiteURL,
		"docs_url":      c.DocsURL,
		"github_url":    c.GitHubURL,
		"docs_repo_url": c.DocsRepoURL,
	}
	for name, base := range bases {
		if base == "" {
			continue
		}
		if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
			return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, base)
		}
	}
	if c.RegistryPath == "" {
		return fmt.Errorf("registry_path must not be empty")
	}
	return nil
}

// DocsLink joins the documentation base with a relative path. Returns
// empty string when no documentation base is configured.
func (c Config) DocsLink(parts ...string) string {
	return urlutil.Join(NormalizeBaseURL(c.DocsURL), parts...)
}
