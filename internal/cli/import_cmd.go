package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/mseverin/brandforge/internal/intelligence"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import PROJECT",
		Short: "Extract discovery answers from pasted content",
		Long:  "Reads freeform content (a brand doc, customer research, competitor notes) from --file or stdin and extracts discovery answers from it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var content []byte
			if file != "" {
				content, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
			} else {
				content, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}
			if len(strings.TrimSpace(string(content))) == 0 {
				return fmt.Errorf("no content to import")
			}

			result, err := app.Import.ImportFreeform(ctx, projectID, string(content))
			if err != nil {
				var unparseable *intelligence.UnparseableExtractionError
				if errors.As(err, &unparseable) {
					fmt.Fprintln(os.Stderr, "The model reply could not be parsed. Raw reply:")
					fmt.Fprintln(os.Stderr, unparseable.Raw)
				}
				return err
			}

			keys := make([]string, 0, len(result.Extracted))
			for k := range result.Extracted {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Printf("Extracted %d fields, saved %d:\n", len(result.Extracted), result.Saved)
			for _, k := range keys {
				if v, ok := result.Extracted[k].(string); ok && strings.TrimSpace(v) != "" {
					fmt.Printf("  %s: %s\n", k, formatter.Truncate(v, 70))
				}
			}
			fmt.Println()
			fmt.Println(formatter.FormatCoverageSummary(result.Coverage))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read content from a file instead of stdin")

	return cmd
}
