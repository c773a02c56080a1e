package cli

import (
	"github.com/mseverin/brandforge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects     service.ProjectService
	Discovery    service.DiscoveryService
	Story        service.StoryService
	Import       service.ImportService
	Brandscripts service.BrandscriptService
	Assets       service.AssetService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Conversational commands refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "brandforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "brandforge",
		Short: "StoryBrand messaging workbench",
		Long:  "Guided StoryBrand discovery, brandscript generation, and marketing asset drafting.",
	}

	root.AddCommand(
		newProjectCmd(app),
		newDiscoverCmd(app),
		newCoverageCmd(app),
		newStoryCmd(app),
		newImportCmd(app),
		newBrandscriptCmd(app),
		newAssetCmd(app),
	)

	return root
}
