package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBrandscriptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brandscript",
		Short: "Generate and inspect the SB7 brandscript",
	}

	cmd.AddCommand(
		newBrandscriptGenerateCmd(app),
		newBrandscriptShowCmd(app),
		newBrandscriptEditCmd(app),
	)

	return cmd
}

func newBrandscriptGenerateCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate PROJECT",
		Short: "Generate a brandscript from the discovery answers",
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
			if !snap.ReadyForBrandscript && !force {
				fmt.Println("Discovery is not complete yet:")
				fmt.Println()
				fmt.Println(formatter.FormatCoverage(snap))
				fmt.Println("Use --force to generate anyway.")
				return nil
			}

			b, err := app.Brandscripts.Generate(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("Generated brandscript %s\n\n", b.ID)
			return printJSON(b.Content)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Generate even with incomplete discovery")

	return cmd
}

func newBrandscriptShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show the latest brandscript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			b, err := app.Brandscripts.Latest(ctx, projectID)
			if err != nil {
				return err
			}
			if b == nil {
				fmt.Println("No brandscript yet. Run `brandforge brandscript generate` first.")
				return nil
			}
			return printJSON(b.Content)
		},
	}
}

func newBrandscriptEditCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "edit PROJECT",
		Short: "Replace the latest brandscript with edited JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			var content map[string]any
			if err := json.Unmarshal(data, &content); err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}

			if err := app.Brandscripts.Update(ctx, projectID, content); err != nil {
				return err
			}
			fmt.Println("Brandscript updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the edited brandscript")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
