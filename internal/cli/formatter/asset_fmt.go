package formatter

import (
	"fmt"
	"strings"

	"github.com/mseverin/brandforge/internal/domain"
)

// AssetRow pairs an asset with its type's version count for list rendering.
// Mirrors the service list item without importing the service package here.
type AssetRow struct {
	Asset        *domain.Asset
	VersionCount int
}

// FormatAssetList renders the asset overview table.
func FormatAssetList(rows []AssetRow) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-38s %-26s %4s %9s  %s",
		"ID", "TITLE", "VER", "VERSIONS", "CREATED")))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-38s %-26s %4d %9d  %s\n",
			StyleDim.Render(row.Asset.ID),
			StyleBold.Render(Truncate(row.Asset.Title, 26)),
			row.Asset.Version,
			row.VersionCount,
			StyleDim.Render(RelativeDate(row.Asset.CreatedAt))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatAsset renders one asset with its content in a box.
func FormatAsset(a *domain.Asset) string {
	meta := StyleDim.Render(fmt.Sprintf("%s · version %d · %s",
		a.Type, a.Version, RelativeDate(a.CreatedAt)))
	return RenderBox(a.Title, meta+"\n\n"+a.Content)
}
