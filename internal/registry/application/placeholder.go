package registry

import (
	"regexp"
	"strings"
)

// Placeholder tokens recognized in repoUrl, demoUrl and
// evidence.github. The set is fixed; anything else brace-shaped left
// after substitution marks the value as unresolved.
const (
	TokenGitHubURL   = "GITHUB_URL"    // source-code host base
	TokenDocsRepoURL = "DOCS_REPO_URL" // documentation-host code base
	TokenDocsURL     = "DOCS_URL"      // documentation base
	TokenSiteURL     = "SITE_URL"      // public site base
)

// Tokens lists the recognized placeholder token names.
func Tokens() []string {
	return []string{TokenGitHubURL, TokenDocsRepoURL, TokenDocsURL, TokenSiteURL}
}

var unresolvedToken = regexp.MustCompile(`\{[A-Z0-9_]+\}`)

// ResolvePlaceholders substitutes the recognized tokens in value
// against bases (token name -> base URL, already normalized). Tokens
// without a configured base are left in place so the leftover-marker
// check collapses the whole value: a resolved field is either a real
// URL or absent, never a literal token or a half-built path.
func ResolvePlaceholders(value *string, bases map[string]string) *string {
	if value == nil {
		return nil
	}

	resolved := *value
	for _, token := range Tokens() {
		if base := bases[token]; base != "" {
			resolved = strings.ReplaceAll(resolved, "{"+token+"}", base)
		}
	}

	if resolved == "" || unresolvedToken.MatchString(resolved) {
		return nil
	}
	return &resolved
}
