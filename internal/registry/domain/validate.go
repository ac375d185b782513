package registry

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidSlug reports whether s is a well-formed slug: lowercase ASCII
// letter/digit segments joined by single hyphens, no leading, trailing
// or consecutive hyphens.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// AbsoluteURL reports whether s parses as an absolute http(s) URL.
func AbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks every schema constraint on p. It returns the first
// violation found as a *SchemaViolationError naming the field and the
// broken constraint, or nil when p is well formed. Normalize must run
// first so status carries its default.
func (p *Project) Validate() error {
	entry := p.Slug
	if entry == "" {
		entry = "(no slug)"
	}
	fail := func(field, constraint string) error {
		return &SchemaViolationError{Entry: entry, Field: field, Constraint: constraint}
	}

	if !ValidSlug(p.Slug) {
		return fail("slug", "must be lowercase, hyphenated, no spaces")
	}
	if utf8.RuneCountInString(p.Title) < 3 {
		return fail("title", "must be at least 3 characters")
	}
	if utf8.RuneCountInString(p.Summary) < 10 {
		return fail("summary", "must be at least 10 characters")
	}
	if p.Category != "" && !p.Category.Valid() {
		return fail("category", fmt.Sprintf("must be one of fullstack, frontend, backend, devops, data, mobile, other (got %q)", p.Category))
	}
	if len(p.Tags) == 0 {
		return fail("tags", "must list at least one tag")
	}
	for i, tag := range p.Tags {
		if tag == "" {
			return fail(fmt.Sprintf("tags[%d]", i), "must not be empty")
		}
	}
	if p.StartDate != "" && !monthPattern.MatchString(p.StartDate) {
		return fail("startDate", "must match YYYY-MM")
	}
	if p.EndDate != "" && !monthPattern.MatchString(p.EndDate) {
		return fail("endDate", "must match YYYY-MM")
	}
	if !p.Status.Valid() {
		return fail("status", fmt.Sprintf("must be one of featured, active, archived, planned (got %q)", p.Status))
	}
	if p.TechStack != nil && len(p.TechStack) == 0 {
		return fail("techStack", "must not be empty when present")
	}
	for i, ts := range p.TechStack {
		if ts.Name == "" {
			return fail(fmt.Sprintf("techStack[%d].name", i), "must not be empty")
		}
		if !ts.Category.Valid() {
			return fail(fmt.Sprintf("techStack[%d].category", i), fmt.Sprintf("must be one of language, framework, library, tool, platform (got %q)", ts.Category))
		}
	}
	if p.KeyProofs != nil && len(p.KeyProofs) == 0 {
		return fail("keyProofs", "must not be empty when present")
	}
	for i, proof := range p.KeyProofs {
		if proof == "" {
			return fail(fmt.Sprintf("keyProofs[%d]", i), "must not be empty")
		}
	}
	if p.RepoURL != nil && !AbsoluteURL(*p.RepoURL) {
		return fail("repoUrl", fmt.Sprintf("must be an absolute URL (got %q)", *p.RepoURL))
	}
	if p.DemoURL != nil && !AbsoluteURL(*p.DemoURL) {
		return fail("demoUrl", fmt.Sprintf("must be an absolute URL (got %q)", *p.DemoURL))
	}
	if p.Evidence != nil {
		if err := p.validateEvidence(fail); err != nil {
			return err
		}
	}
	return nil
}

func (p *Project) validateEvidence(fail func(field, constraint string) error) error {
	ev := p.Evidence
	if ev.GitHub != nil && !AbsoluteURL(*ev.GitHub) {
		return fail("evidence.github", fmt.Sprintf("must be an absolute URL (got %q)", *ev.GitHub))
	}
	for i, link := range ev.ADR {
		if link.Title == "" {
			return fail(fmt.Sprintf("evidence.adr[%d].title", i), "must not be empty")
		}
		if link.URL == "" {
			return fail(fmt.Sprintf("evidence.adr[%d].url", i), "must not be empty")
		}
	}
	for i, link := range ev.Runbooks {
		if link.Title == "" {
			return fail(fmt.Sprintf("evidence.runbooks[%d].title", i), "must not be empty")
		}
		if link.URL == "" {
			return fail(fmt.Sprintf("evidence.runbooks[%d].url", i), "must not be empty")
		}
	}
	return nil
}
