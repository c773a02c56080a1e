package formatter

import (
	"fmt"
	"strings"

	"github.com/mseverin/brandforge/internal/coverage"
)

// FormatCoverage renders the full per-area coverage report.
func FormatCoverage(snap coverage.Snapshot) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("DISCOVERY COVERAGE"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Overall: %s  (%d/%d fields)\n",
		RenderProgress(float64(snap.OverallPercent)/100, 20),
		snap.TotalFilled, snap.TotalKeys))
	b.WriteString(fmt.Sprintf("Required: %d/%d  %s\n\n",
		snap.TotalRequiredFilled, snap.TotalRequired,
		ReadyIndicator(snap.ReadyForBrandscript)))

	for _, area := range snap.Areas {
		b.WriteString(fmt.Sprintf("%-22s %s", area.Area.Label,
			RenderProgress(float64(area.PercentFilled)/100, 12)))
		if len(area.MissingRequiredKeys) > 0 {
			b.WriteString("  " + StyleRed.Render("needs: "+strings.Join(area.MissingRequiredKeys, ", ")))
		} else if len(area.MissingKeys) > 0 {
			b.WriteString("  " + StyleDim.Render("optional: "+strings.Join(area.MissingKeys, ", ")))
		} else {
			b.WriteString("  " + StyleGreen.Render("complete"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCoverageSummary renders the one-line coverage footer shown after
// writes to the answer store.
func FormatCoverageSummary(snap coverage.Snapshot) string {
	return fmt.Sprintf("Coverage: %s  %s",
		RenderProgress(float64(snap.OverallPercent)/100, 16),
		ReadyIndicator(snap.ReadyForBrandscript))
}
