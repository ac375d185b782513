// Package registry implements the application layer of the project
// registry: YAML loading and validation, placeholder resolution, the
// cached registry service, evidence link materialization and linting,
// and the CLI runner consumed by cmd.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	domain "github.com/nbrandt/folio/internal/registry/domain"
)

// The source file is accepted in two shapes: a bare top-level sequence
// of projects, or a mapping with a "projects" sequence optionally
// alongside an ignored metadata block:
//
//	metadata:
//	  version: 3
//	  lastUpdated: "2026-08"
//	projects:
//	  - slug: portfolio-app
//	    ...

// projectDoc is the raw YAML shape of a single entry. Unknown fields
// are rejected during decoding, not ignored.
type projectDoc struct {
	Slug               string       `yaml:"slug"`
	Title              string       `yaml:"title"`
	Summary            string       `yaml:"summary"`
	Category           string       `yaml:"category"`
	Tags               []string     `yaml:"tags"`
	StartDate          string       `yaml:"startDate"`
	EndDate            string       `yaml:"endDate"`
	Status             string       `yaml:"status"`
	TechStack          []techDoc    `yaml:"techStack"`
	KeyProofs          []string     `yaml:"keyProofs"`
	RepoURL            *string      `yaml:"repoUrl"`
	DemoURL            *string      `yaml:"demoUrl"`
	Evidence           *evidenceDoc `yaml:"evidence"`
	IsGoldStandard     bool         `yaml:"isGoldStandard"`
	GoldStandardReason string       `yaml:"goldStandardReason"`
}

type techDoc struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Rationale string `yaml:"rationale"`
}

type evidenceDoc struct {
	DossierPath     string    `yaml:"dossierPath"`
	ThreatModelPath string    `yaml:"threatModelPath"`
	ADRIndexPath    string    `yaml:"adrIndexPath"`
	RunbooksPath    string    `yaml:"runbooksPath"`
	ADR             []linkDoc `yaml:"adr"`
	Runbooks        []linkDoc `yaml:"runbooks"`
	GitHub          *string   `yaml:"github"`
}

type linkDoc struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// LoadProjects reads, parses and validates the registry document at
// path. Placeholders in repoUrl, demoUrl and evidence.github are
// resolved against bases before schema validation. A single malformed
// entry fails the whole load; there is no partial registry.
func LoadProjects(path string, bases map[string]string) ([]domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: registry path comes from config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	return ParseProjects(data, bases)
}

// ParseProjects validates a raw registry document. See LoadProjects.
func ParseProjects(data []byte, bases map[string]string) ([]domain.Project, error) {
	entries, err := projectNodes(data)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(entries))
	for i, node := range entries {
		if node.Kind != yaml.MappingNode {
			return nil, &domain.InvalidEntryError{Index: i, Kind: nodeKind(node)}
		}

		var doc projectDoc
		if err := decodeStrict(node, &doc); err != nil {
			return nil, schemaErrorFromDecode(entryName(doc.Slug, i), err)
		}

		// Placeholder resolution runs before schema validation so an
		// unconfigured base collapses the field to absent instead of
		// failing the URL check with a literal token.
		doc.RepoURL = ResolvePlaceholders(doc.RepoURL, bases)
		doc.DemoURL = ResolvePlaceholders(doc.DemoURL, bases)
		if doc.Evidence != nil {
			doc.Evidence.GitHub = ResolvePlaceholders(doc.Evidence.GitHub, bases)
		}

		project := doc.toDomain()
		project.Normalize()
		if err := project.Validate(); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	// Uniqueness is checked after every entry validated individually,
	// so a file that is both malformed and duplicated reports the
	// schema violation first.
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.Slug]; dup {
			return nil, &domain.DuplicateSlugError{Slug: p.Slug}
		}
		seen[p.Slug] = struct{}{}
	}

	return projects, nil
}

// projectNodes extracts the entry nodes from either accepted top-level
// shape: a bare sequence, or a mapping holding a "projects" sequence
// plus an optional ignored "metadata" block.
func projectNodes(data []byte) ([]*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.FormatError{Sample: sample(data)}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &domain.FormatError{Sample: sample(data)}
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return root.Content, nil
	case yaml.MappingNode:
		var projects *yaml.Node
		for i := 0; i+1 < len(root.Content); i += 2 {
			switch root.Content[i].Value {
			case "projects":
				projects = root.Content[i+1]
			case "metadata":
				// Advisory bookkeeping only; never validated.
			default:
				return nil, &domain.FormatError{Sample: sample(data)}
			}
		}
		if projects == nil || projects.Kind != yaml.SequenceNode {
			return nil, &domain.FormatError{Sample: sample(data)}
		}
		return projects.Content, nil
	default:
		return nil, &domain.FormatError{Sample: sample(data)}
	}
}

// decodeStrict re-decodes a single node with unknown fields rejected.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

var unknownField = regexp.MustCompile(`field (\S+) not found`)

// schemaErrorFromDecode converts a strict-decode failure into a schema
// violation naming the offending field when the decoder reported one.
func schemaErrorFromDecode(entry string, err error) error {
	if m := unknownField.FindStringSubmatch(err.Error()); m != nil {
		return &domain.SchemaViolationError{
			Entry:      entry,
			Field:      m[1],
			Constraint: "is not a recognized project field",
		}
	}
	return &domain.SchemaViolationError{
		Entry:      entry,
		Field:      "entry",
		Constraint: fmt.Sprintf("does not match the project schema: %v", err),
	}
}

func entryName(slug string, index int) string {
	if slug != "" {
		return slug
	}
	return fmt.Sprintf("entry %d", index)
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

const sampleLimit = 120

// sample renders a truncated single-line view of the offending input.
func sample(data []byte) string {
	s := strings.Join(strings.Fields(string(data)), " ")
	if s == "" {
		return "(empty document)"
	}
	if len(s) > sampleLimit {
		s = s[:sampleLimit] + "..."
	}
	return s
}

func (d projectDoc) toDomain() domain.Project {
	p := domain.Project{
		Slug:               d.Slug,
		Title:              d.Title,
		Summary:            d.Summary,
		Category:           domain.Category(d.Category),
		Tags:               d.Tags,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		Status:             domain.Status(d.Status),
		KeyProofs:          d.KeyProofs,
		RepoURL:            d.RepoURL,
		DemoURL:            d.DemoURL,
		IsGoldStandard:     d.IsGoldStandard,
		GoldStandardReason: d.GoldStandardReason,
	}

	if d.TechStack != nil {
		p.TechStack = make([]domain.TechStackEntry, len(d.TechStack))
		for i, ts := range d.TechStack {
			p.TechStack[i] = domain.TechStackEntry{
				Name:      ts.Name,
				Category:  domain.TechCategory(ts.Category),
				Rationale: ts.Rationale,
			}
		}
	}

	if d.Evidence != nil {
		p.Evidence = &domain.Evidence{
			DossierPath:     d.Evidence.DossierPath,
			ThreatModelPath: d.Evidence.ThreatModelPath,
			ADRIndexPath:    d.Evidence.ADRIndexPath,
			RunbooksPath:    d.Evidence.RunbooksPath,
			ADR:             toDomainLinks(d.Evidence.ADR),
			Runbooks:        toDomainLinks(d.Evidence.Runbooks),
			GitHub:          d.Evidence.GitHub,
		}
	}

	return p
}

func toDomainLinks(links []linkDoc) []domain.EvidenceLink {
	if links == nil {
		return nil
	}
	out := make([]domain.EvidenceLink, len(links))
	for i, l := range links {
		out[i] = domain.EvidenceLink{Title: l.Title, URL: l.URL}
	}
	return out
}
