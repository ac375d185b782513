package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/nbrandt/folio/internal/registry/domain"
)

var testBases = map[string]string{
	TokenGitHubURL:   "https://github.com/acme",
	TokenDocsRepoURL: "https://github.com/acme/docs",
	TokenDocsURL:     "https://docs.acme.dev",
	TokenSiteURL:     "https://acme.dev",
}

const minimalProject = `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
`

func TestParseProjects_SequenceShape(t *testing.T) {
	projects, err := ParseProjects([]byte(minimalProject), testBases)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "portfolio-app", projects[0].Slug)
	require.Equal(t, domain.StatusActive, projects[0].Status, "status defaults to active")
}

func TestParseProjects_MappingShape(t *testing.T) {
	yamlContent := `
metadata:
  version: 3
  lastUpdated: "2026-08"
projects:
  - slug: portfolio-app
    title: Portfolio App
    summary: A statically rendered portfolio site.
    tags: [go]
  - slug: registry-linter
    title: Registry Linter
    summary: Convention checks for the registry.
    tags: [go, linting]
    status: featured
`
	projects, err := ParseProjects([]byte(yamlContent), testBases)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "portfolio-app", projects[0].Slug, "file order preserved")
	require.Equal(t, "registry-linter", projects[1].Slug)
	require.Equal(t, domain.StatusFeatured, projects[1].Status)
}

func TestParseProjects_FormatErrors(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
	}{
		{name: "scalar document", yamlContent: `42`},
		{name: "empty document", yamlContent: ``},
		{name: "mapping without projects", yamlContent: "metadata:\n  version: 1\n"},
		{name: "projects is not a sequence", yamlContent: "projects:\n  slug: x\n"},
		{name: "unexpected top-level key", yamlContent: "entries:\n  - slug: x\n"},
		{name: "unparseable yaml", yamlContent: "projects: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProjects([]byte(tt.yamlContent), testBases)

			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
			require.NotEmpty(t, formatErr.Sample)
		})
	}
}

func TestParseProjects_FormatError_TruncatesSample(t *testing.T) {
	long := make([]byte, 0, 4096)
	long = append(long, []byte("bad: [\nvalue: ")...)
	for i := 0; i < 4000; i++ {
		long = append(long, 'x')
	}

	_, err := ParseProjects(long, testBases)

	var formatErr *domain.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.LessOrEqual(t, len(formatErr.Sample), sampleLimit+3)
}

func TestParseProjects_InvalidEntry(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
- "just a string"
`
	_, err := ParseProjects([]byte(yamlContent), testBases)

	var entryErr *domain.InvalidEntryError
	require.ErrorAs(t, err, &entryErr)
	require.Equal(t, 1, entryErr.Index)
	require.Equal(t, "scalar", entryErr.Kind)
}

func TestParseProjects_UnknownFieldRejected(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
  stars: 9000
`
	_, err := ParseProjects([]byte(yamlContent), testBases)

	var violation *domain.SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Contains(t, err.Error(), "stars")
}

func TestParseProjects_SchemaViolation(t *testing.T) {
	yamlContent := `
- slug: Portfolio App
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
`
	_, err := ParseProjects([]byte(yamlContent), testBases)

	var violation *domain.SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "slug", violation.Field)
	require.Contains(t, violation.Constraint, "lowercase")
}

func TestParseProjects_DuplicateSlug(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
- slug: portfolio-app
  title: Another App
  summary: Same slug, different everything else.
  tags: [misc]
`
	_, err := ParseProjects([]byte(yamlContent), testBases)

	var dup *domain.DuplicateSlugError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "portfolio-app", dup.Slug)
	require.Contains(t, err.Error(), "portfolio-app")
}

func TestParseProjects_SchemaErrorWinsOverDuplicate(t *testing.T) {
	// An invalid entry surfaces before the duplicate check runs.
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
- slug: bad slug
  title: Broken
  summary: This one fails schema validation.
  tags: [misc]
- slug: portfolio-app
  title: Duplicate
  summary: Would also be a duplicate slug error.
  tags: [misc]
`
	_, err := ParseProjects([]byte(yamlContent), testBases)

	var violation *domain.SchemaViolationError
	require.ErrorAs(t, err, &violation)
	require.Equal(t, "slug", violation.Field)
}

func TestParseProjects_PlaceholdersResolvedBeforeValidation(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
  repoUrl: "{GITHUB_URL}/portfolio-app"
  demoUrl: "{SITE_URL}"
  evidence:
    github: "{GITHUB_URL}/portfolio-app"
`
	projects, err := ParseProjects([]byte(yamlContent), testBases)
	require.NoError(t, err)

	p := projects[0]
	require.NotNil(t, p.RepoURL)
	require.Equal(t, "https://github.com/acme/portfolio-app", *p.RepoURL)
	require.NotNil(t, p.DemoURL)
	require.Equal(t, "https://acme.dev", *p.DemoURL)
	require.NotNil(t, p.Evidence.GitHub)
	require.Equal(t, "https://github.com/acme/portfolio-app", *p.Evidence.GitHub)
}

func TestParseProjects_UnconfiguredBaseCollapsesToAbsent(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
  repoUrl: "{GITHUB_URL}/portfolio-app"
`
	// No bases configured: the placeholder collapses to absent and the
	// entry still validates.
	projects, err := ParseProjects([]byte(yamlContent), map[string]string{})
	require.NoError(t, err)
	require.Nil(t, projects[0].RepoURL)
}

func TestParseProjects_NullURLStaysAbsent(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  tags: [go]
  repoUrl: null
`
	projects, err := ParseProjects([]byte(yamlContent), testBases)
	require.NoError(t, err)
	require.Nil(t, projects[0].RepoURL)
}

func TestParseProjects_FullRecord(t *testing.T) {
	yamlContent := `
- slug: portfolio-app
  title: Portfolio App
  summary: A statically rendered portfolio site.
  category: fullstack
  tags: [go, yaml]
  startDate: "2025-11"
  endDate: "2026-02"
  status: featured
  techStack:
    - name: Go
      category: language
      rationale: Single binary deploys.
  keyProofs:
    - CI gate on registry validation.
  isGoldStandard: true
  goldStandardReason: Most complete documentation trail.
  evidence:
    dossierPath: docs/dossiers/portfolio-app
    threatModelPath: docs/dossiers/portfolio-app/threat-model.md
    adrIndexPath: docs/dossiers/portfolio-app/adrs
    runbooksPath: docs/dossiers/portfolio-app/runbooks
    adr:
      - title: Fail closed
        url: docs/dossiers/portfolio-app/adrs/001.md
    runbooks:
      - title: Redeploy
        url: https://docs.acme.dev/runbooks/redeploy
`
	projects, err := ParseProjects([]byte(yamlContent), testBases)
	require.NoError(t, err)

	p := projects[0]
	require.Equal(t, domain.CategoryFullstack, p.Category)
	require.Equal(t, "2025-11", p.StartDate)
	require.Equal(t, "2026-02", p.EndDate)
	require.Len(t, p.TechStack, 1)
	require.Equal(t, domain.TechLanguage, p.TechStack[0].Category)
	require.True(t, p.IsGoldStandard)
	require.Equal(t, "docs/dossiers/portfolio-app", p.Evidence.DossierPath)
	require.Len(t, p.Evidence.ADR, 1)
	require.Len(t, p.Evidence.Runbooks, 1)
}

func TestLoadProjects_MissingFile(t *testing.T) {
	_, err := LoadProjects(filepath.Join(t.TempDir(), "nope.yaml"), testBases)

	var missing *domain.MissingFileError
	require.ErrorAs(t, err, &missing)
	require.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadProjects_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalProject), 0o644))

	projects, err := LoadProjects(path, testBases)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}
