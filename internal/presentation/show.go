package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	application "github.com/nbrandt/folio/internal/registry/application"
	domain "github.com/nbrandt/folio/internal/registry/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(12)
	goldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusFeatured: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		domain.StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		domain.StatusArchived: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		domain.StatusPlanned:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
)

// RenderProject renders a single project as a styled detail view for
// the registry:show command.
func RenderProject(p domain.Project, links application.Links) string {
	var b strings.Builder

	header := titleStyle.Render(p.Title) + "  " + statusStyles[p.Status].Render(string(p.Status))
	if p.IsGoldStandard {
		header += "  " + goldStyle.Render("gold standard")
	}
	b.WriteString(header + "\n")
	b.WriteString(p.Summary + "\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label) + " " + value + "\n")
	}

	row("slug", p.Slug)
	row("category", string(p.Category))
	row("tags", strings.Join(p.Tags, ", "))
	row("timeline", timeline(p.StartDate, p.EndDate))
	if p.RepoURL != nil {
		row("repo", *p.RepoURL)
	}
	if p.DemoURL != nil {
		row("demo", *p.DemoURL)
	}
	for _, ts := range p.TechStack {
		row("tech", fmt.Sprintf("%s (%s)", ts.Name, ts.Category))
	}
	for _, proof := range p.KeyProofs {
		row("proof", proof)
	}
	row("dossier", links.Dossier)
	row("threat model", links.ThreatModel)
	row("adrs", links.ADRs)
	row("runbooks", links.Runbooks)
	if p.IsGoldStandard && p.GoldStandardReason != "" {
		row("gold", p.GoldStandardReason)
	}

	return b.String()
}

func timeline(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - present"
	case start == "":
		return "until " + end
	default:
		return start + " - " + end
	}
}
