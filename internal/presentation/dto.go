package presentation

import (
	application "github.com/nbrandt/folio/internal/registry/application"
	domain "github.com/nbrandt/folio/internal/registry/domain"
)

// ProjectDTO represents a project for presentation
type ProjectDTO struct {
	Slug               string             `json:"slug"`
	Title              string             `json:"title"`
	Summary            string             `json:"summary"`
	Category           string             `json:"category,omitempty"`
	Tags               []string           `json:"tags"`
	StartDate          string             `json:"startDate,omitempty"`
	EndDate            string             `json:"endDate,omitempty"`
	Status             string             `json:"status"`
	TechStack          []TechStackDTO     `json:"techStack,omitempty"`
	KeyProofs          []string           `json:"keyProofs,omitempty"`
	RepoURL            *string            `json:"repoUrl,omitempty"`
	DemoURL            *string            `json:"demoUrl,omitempty"`
	Evidence           *application.Links `json:"evidence,omitempty"`
	IsGoldStandard     bool               `json:"isGoldStandard,omitempty"`
	GoldStandardReason string             `json:"goldStandardReason,omitempty"`
}

// TechStackDTO represents one tech stack entry for presentation
type TechStackDTO struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Rationale string `json:"rationale,omitempty"`
}

// FromDomainProject converts a domain project to a DTO with its
// evidence links materialized against the docs base.
func FromDomainProject(p domain.Project, docsBase string) ProjectDTO {
	dto := ProjectDTO{
		Slug:               p.Slug,
		Title:              p.Title,
		Summary:            p.Summary,
		Category:           string(p.Category),
		Tags:               p.Tags,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Status:             string(p.Status),
		KeyProofs:          p.KeyProofs,
		RepoURL:            p.RepoURL,
		DemoURL:            p.DemoURL,
		IsGoldStandard:     p.IsGoldStandard,
		GoldStandardReason: p.GoldStandardReason,
	}

	for _, ts := range p.TechStack {
		dto.TechStack = append(dto.TechStack, TechStackDTO{
			Name:      ts.Name,
			Category:  string(ts.Category),
			Rationale: ts.Rationale,
		})
	}

	if p.Evidence != nil {
		links := application.EvidenceLinks(docsBase, p)
		dto.Evidence = &links
	}

	return dto
}

// FromDomainProjects converts a list of domain projects to DTOs.
func FromDomainProjects(projects []domain.Project, docsBase string) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = FromDomainProject(p, docsBase)
	}
	return dtos
}
