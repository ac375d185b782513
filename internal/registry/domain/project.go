// Package registry defines the portfolio project registry domain model:
// the Project record, its field-level validation rules, and the typed
// errors a registry load can fail with.
package registry

// Status describes a project's lifecycle state on the site.
type Status string

const (
	StatusFeatured Status = "featured"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusPlanned  Status = "planned"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusFeatured, StatusActive, StatusArchived, StatusPlanned:
		return true
	}
	return false
}

// Category groups projects by discipline. Empty means uncategorized.
type Category string

const (
	CategoryFullstack Category = "fullstack"
	CategoryFrontend  Category = "frontend"
	CategoryBackend   Category = "backend"
	CategoryDevOps    Category = "devops"
	CategoryData      Category = "data"
	CategoryMobile    Category = "mobile"
	CategoryOther     Category = "other"
)

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFullstack, CategoryFrontend, CategoryBackend,
		CategoryDevOps, CategoryData, CategoryMobile, CategoryOther:
		return true
	}
	return false
}

// TechCategory classifies a tech stack entry.
type TechCategory string

const (
	TechLanguage  TechCategory = "language"
	TechFramework TechCategory = "framework"
	TechLibrary   TechCategory = "library"
	TechTool      TechCategory = "tool"
	TechPlatform  TechCategory = "platform"
)

// Valid reports whether tc is one of the recognized tech categories.
func (tc TechCategory) Valid() bool {
	switch tc {
	case TechLanguage, TechFramework, TechLibrary, TechTool, TechPlatform:
		return true
	}
	return false
}

// TechStackEntry names one technology a project uses and why.
type TechStackEntry struct {
	Name      string
	Category  TechCategory
	Rationale string // optional
}

// EvidenceLink points at a single external documentation artifact.
type EvidenceLink struct {
	Title string
	URL   string
}

// Evidence collects pointers from a project to its documentation
// artifacts (dossier, threat model, ADR index, runbooks).
type Evidence struct {
	DossierPath     string // relative path, optional
	ThreatModelPath string // relative path, optional
	ADRIndexPath    string // relative path, optional
	RunbooksPath    string // relative path, optional
	ADR             []EvidenceLink
	Runbooks        []EvidenceLink
	GitHub          *string // absolute URL, nil when unset
}

// Project is one validated entry in the registry. Instances are
// immutable after a successful load; nothing mutates them afterwards.
type Project struct {
	Slug      string
	Title     string
	Summary   string
	Category  Category // empty = uncategorized
	Tags      []string
	StartDate string // YYYY-MM, optional
	EndDate   string // YYYY-MM, optional
	Status    Status // defaults to active
	TechStack []TechStackEntry
	KeyProofs []string
	RepoURL   *string // nil when absent or placeholder collapsed
	DemoURL   *string
	Evidence  *Evidence

	IsGoldStandard     bool
	GoldStandardReason string
}

// Normalize applies field defaults. Called once by the loader before
// validation so a validated Project always carries a concrete status.
func (p *Project) Normalize() {
	if p.Status == "" {
		p.Status = StatusActive
	}
}
