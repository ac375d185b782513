package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nbrandt/folio/internal/config"
	"github.com/nbrandt/folio/internal/log"
	domain "github.com/nbrandt/folio/internal/registry/domain"
)

// CLI modes. The empty mode validates; "list" (or "--list") prints the
// registry index.
const (
	ModeValidate = ""
	ModeList     = "list"
)

// Deps are the collaborators of the CLI runner. Zero fields fall back
// to the real implementations, so tests and callers override only what
// they need.
type Deps struct {
	Load   Loader
	Links  func(domain.Project) Links
	Lint   func(domain.Project) []string
	Stdout io.Writer
	Stderr io.Writer
}

// NewDeps builds the production dependency set from configuration.
func NewDeps(cfg config.Config) Deps {
	docsBase := config.NormalizeBaseURL(cfg.DocsURL)
	return Deps{
		Load: func(ctx context.Context) ([]domain.Project, error) {
			return LoadProjects(cfg.RegistryPath, cfg.BaseURLs())
		},
		Links: func(p domain.Project) Links {
			return EvidenceLinks(docsBase, p)
		},
		Lint: LintEvidenceLinks,
	}
}

func (d Deps) withDefaults() Deps {
	if d.Load == nil {
		d.Load = NewDeps(config.Defaults()).Load
	}
	if d.Links == nil {
		d.Links = func(p domain.Project) Links { return EvidenceLinks("", p) }
	}
	if d.Lint == nil {
		d.Lint = LintEvidenceLinks
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	return d
}

// Run executes the registry CLI in the given mode and returns the
// process status code: 0 for success, 1 for any caught failure. Load
// errors are reported on stderr and converted to the status code; they
// never escape.
func Run(mode string, deps Deps) int {
	deps = deps.withDefaults()

	switch strings.TrimPrefix(mode, "--") {
	case ModeList:
		return runList(deps)
	case ModeValidate, "validate":
		return runValidate(deps)
	default:
		fmt.Fprintf(deps.Stderr, "unknown mode %q (expected --list or no argument)\n", mode)
		return 1
	}
}

func runList(deps Deps) int {
	projects, err := deps.Load(context.Background())
	if err != nil {
		fmt.Fprintln(deps.Stderr, err.Error())
		return 1
	}
	for _, p := range projects {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", p.Slug, p.Title)
	}
	return 0
}

func runValidate(deps Deps) int {
	projects, err := deps.Load(context.Background())
	if err != nil {
		fmt.Fprintln(deps.Stderr, err.Error())
		return 1
	}

	var warnings []string
	for _, p := range projects {
		// Materialization is exercised even though its output is
		// unused here: a panic in link construction should fail the
		// integrity gate, not a later page build.
		_ = deps.Links(p)
		warnings = append(warnings, deps.Lint(p)...)
	}

	for _, w := range warnings {
		fmt.Fprintf(deps.Stdout, "WARN %s\n", w)
	}
	fmt.Fprintf(deps.Stdout, "Registry OK (projects: %d)\n", len(projects))

	log.Info(log.CatCLI, "registry validated", "projects", len(projects), "warnings", len(warnings))
	return 0
}
