package formatter

import (
	"fmt"
	"strings"

	"github.com/mseverin/brandforge/internal/domain"
)

// FormatProjectList renders the project overview table.
func FormatProjectList(projects []*domain.ProjectSummary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-38s %-24s %8s %8s  %s",
		"ID", "NAME", "ANSWERS", "ASSETS", "UPDATED")))
	b.WriteString("\n")

	for _, p := range projects {
		b.WriteString(fmt.Sprintf("%-38s %-24s %8d %8d  %s\n",
			StyleDim.Render(p.ID),
			StyleBold.Render(Truncate(p.Name, 24)),
			p.AnswerCount,
			p.AssetCount,
			StyleDim.Render(RelativeDate(p.UpdatedAt))))
	}

	return strings.TrimRight(b.String(), "\n")
}

