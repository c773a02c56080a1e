package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/mseverin/brandforge/internal/schema"
	"github.com/spf13/cobra"
)

func newDiscoverCmd(app *App) *cobra.Command {
	var step int

	cmd := &cobra.Command{
		Use:   "discover PROJECT",
		Short: "Run the guided discovery wizard",
		Long:  "Walk through the discovery steps as interactive forms. Answers are saved after each step; rerunning a step overwrites its answers.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("discover requires an interactive terminal")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			steps := schema.Steps
			if cmd.Flags().Changed("step") {
				s := schema.StepByNumber(step)
				if s == nil {
					return fmt.Errorf("unknown discovery step %d", step)
				}
				steps = []schema.Step{*s}
			}

			for _, s := range steps {
				if err := runDiscoveryStep(ctx, app, projectID, s); err != nil {
					return err
				}
			}

			snap, err := app.Discovery.Coverage(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(formatter.FormatCoverage(snap))
			return nil
		},
	}

	cmd.Flags().IntVar(&step, "step", 0, "Run a single step (1-9) instead of the full wizard")

	return cmd
}

// runDiscoveryStep shows one wizard page pre-filled with existing answers
// and saves whatever comes back.
func runDiscoveryStep(ctx context.Context, app *App, projectID string, step schema.Step) error {
	existing, err := app.Discovery.Answers(ctx, projectID)
	if err != nil {
		return err
	}
	current := make(map[string]string, len(existing))
	for _, a := range existing {
		current[a.Key] = a.Value
	}

	values := make([]string, len(step.Fields))
	fields := make([]huh.Field, 0, len(step.Fields)+1)
	fields = append(fields, huh.NewNote().
		Title(fmt.Sprintf("Step %d — %s", step.Number, step.Title)).
		Description(step.Description))

	for i, f := range step.Fields {
		values[i] = current[f.Key]
		switch f.Kind {
		case schema.InputTextarea:
			fields = append(fields, huh.NewText().
				Title(f.Label).
				Placeholder(f.Placeholder).
				Value(&values[i]))
		default:
			fields = append(fields, huh.NewInput().
				Title(f.Label).
				Placeholder(f.Placeholder).
				Value(&values[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(brandforgeHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	answers := make(map[string]string, len(step.Fields))
	for i, f := range step.Fields {
		answers[f.Key] = values[i]
	}

	saved, err := app.Discovery.SubmitStepAnswers(ctx, projectID, step.Number, answers)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %d answers for step %d.\n", saved, step.Number)
	return nil
}
