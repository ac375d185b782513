package registry

import (
	"fmt"
	"strings"

	domain "github.com/nbrandt/folio/internal/registry/domain"
	"github.com/nbrandt/folio/internal/urlutil"
)

// Links holds the materialized absolute evidence links for a project.
// An empty field means the corresponding source path was absent.
type Links struct {
	Dossier     string `json:"dossier,omitempty"`
	ThreatModel string `json:"threatModel,omitempty"`
	ADRs        string `json:"adrs,omitempty"`
	Runbooks    string `json:"runbooks,omitempty"`
}

// EvidenceLinks joins the documentation base URL with each present
// evidence path. Total for every schema-valid project, including one
// without an evidence block.
func EvidenceLinks(docsBase string, p domain.Project) Links {
	if p.Evidence == nil {
		return Links{}
	}
	ev := p.Evidence
	return Links{
		Dossier:     joinIfPresent(docsBase, ev.DossierPath),
		ThreatModel: joinIfPresent(docsBase, ev.ThreatModelPath),
		ADRs:        joinIfPresent(docsBase, ev.ADRIndexPath),
		Runbooks:    joinIfPresent(docsBase, ev.RunbooksPath),
	}
}

func joinIfPresent(base, path string) string {
	if path == "" {
		return ""
	}
	return urlutil.Join(base, path)
}

// Evidence-link conventions. Violations are advisory: they produce
// warnings for the validate command and never fail a load.
const (
	dossierPrefixDocs    = "docs/dossiers/"
	dossierPrefixPlain   = "dossiers/"
	threatModelSubstring = "threat-model"
	docsRelativePrefix   = "docs/"
)

// LintEvidenceLinks flags evidence fields that stray from the
// documentation layout conventions. A project without an evidence
// block yields no warnings.
func LintEvidenceLinks(p domain.Project) []string {
	if p.Evidence == nil {
		return nil
	}

	var warnings []string
	ev := p.Evidence

	if ev.DossierPath != "" &&
		!strings.HasPrefix(ev.DossierPath, dossierPrefixDocs) &&
		!strings.HasPrefix(ev.DossierPath, dossierPrefixPlain) {
		warnings = append(warnings, fmt.Sprintf(
			"%s: evidence.dossierPath %q should start with %q or %q",
			p.Slug, ev.DossierPath, dossierPrefixDocs, dossierPrefixPlain))
	}

	if ev.ThreatModelPath != "" && !strings.Contains(ev.ThreatModelPath, threatModelSubstring) {
		warnings = append(warnings, fmt.Sprintf(
			"%s: evidence.threatModelPath %q should contain %q",
			p.Slug, ev.ThreatModelPath, threatModelSubstring))
	}

	warnings = append(warnings, lintLinkList(p.Slug, "adr", ev.ADR)...)
	warnings = append(warnings, lintLinkList(p.Slug, "runbooks", ev.Runbooks)...)

	return warnings
}

func lintLinkList(slug, field string, links []domain.EvidenceLink) []string {
	var warnings []string
	for i, link := range links {
		if domain.AbsoluteURL(link.URL) || strings.HasPrefix(link.URL, docsRelativePrefix) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"%s: evidence.%s[%d].url %q should be an absolute URL or start with %q",
			slug, field, i, link.URL, docsRelativePrefix))
	}
	return warnings
}
