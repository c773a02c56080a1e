package cli

import (
	"context"
	"fmt"

	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/mseverin/brandforge/internal/coverage"
	"github.com/spf13/cobra"
)

func newCoverageCmd(app *App) *cobra.Command {
	var gaps bool

	cmd := &cobra.Command{
		Use:   "coverage PROJECT",
		Short: "Show discovery coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			snap, err := app.Discovery.Coverage(ctx, projectID)
			if err != nil {
				return err
			}

			if gaps {
				fmt.Println(coverage.FormatGaps(snap))
				return nil
			}

			fmt.Println(formatter.FormatCoverage(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&gaps, "gaps", false, "Print the plain gap list instead of the full report")

	return cmd
}
