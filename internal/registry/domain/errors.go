package registry

import "fmt"

// Load failures are typed so callers (and tests) can distinguish the
// failure class. All of them abort the load; the registry is never
// partially populated. Precedence when a file has several problems:
// format > invalid entry > schema violation > duplicate slug.

// FormatError indicates the top-level YAML shape is neither a project
// sequence nor a mapping with a "projects" sequence. Sample holds a
// truncated rendering of the offending input for diagnostics.
type FormatError struct {
	Sample string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("registry has unrecognized top-level shape (expected a project list or a mapping with a \"projects\" list): %s", e.Sample)
}

// InvalidEntryError indicates an entry in the projects sequence is not
// a structured record (e.g. a bare scalar).
type InvalidEntryError struct {
	Index int
	Kind  string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("entry %d is not a project record (got %s)", e.Index, e.Kind)
}

// SchemaViolationError indicates a single entry failed field-level
// validation. Entry is the slug when known, otherwise "entry N".
type SchemaViolationError struct {
	Entry      string
	Field      string
	Constraint string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Entry, e.Field, e.Constraint)
}

// DuplicateSlugError indicates two entries share a slug.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("duplicate project slug %q", e.Slug)
}

// MissingFileError indicates the registry source file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("registry file not found at %s", e.Path)
}
