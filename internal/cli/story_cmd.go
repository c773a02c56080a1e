package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/spf13/cobra"
)

func newStoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Free-form discovery conversation",
	}

	cmd.AddCommand(
		newStoryChatCmd(app),
		newStorySayCmd(app),
		newStoryTranscriptCmd(app),
	)

	return cmd
}

func newStoryChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat PROJECT",
		Short: "Start an interactive story session",
		Long:  "Talk freely about the business; discovery fields are captured from the conversation as it goes. End with Ctrl-D or /quit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("story chat requires an interactive terminal; use `story say` for one-shot messages")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleHeader.Render("STORY SESSION"))
			fmt.Println(formatter.StyleDim.Render("Tell me about your business. Ctrl-D or /quit to end."))
			fmt.Println()

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for {
				fmt.Print(formatter.StyleBold.Render("you> "))
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "/quit" || line == "/exit" {
					return nil
				}

				if err := submitStoryTurn(ctx, app, projectID, line); err != nil {
					return err
				}
			}
		},
	}
}

func newStorySayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "say PROJECT MESSAGE",
		Short: "Send a single story session message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return submitStoryTurn(ctx, app, projectID, args[1])
		},
	}
}

func submitStoryTurn(ctx context.Context, app *App, projectID, message string) error {
	turn, err := app.Story.SubmitTurn(ctx, projectID, message)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(turn.Reply)
	fmt.Println()

	if len(turn.ParsedFields) > 0 {
		keys := make([]string, 0, len(turn.ParsedFields))
		for k := range turn.ParsedFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println(formatter.StyleDim.Render("captured: " + strings.Join(keys, ", ")))
	}
	fmt.Println(formatter.FormatCoverageSummary(turn.Coverage))
	fmt.Println()
	return nil
}

func newStoryTranscriptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript PROJECT",
		Short: "Print the story session transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			messages, err := app.Story.Transcript(ctx, projectID)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println("No story session yet.")
				return nil
			}

			for _, m := range messages {
				label := formatter.StyleBold.Render("you")
				if m.Role == domain.RoleAssistant {
					label = formatter.StyleHeader.Render("wizard")
				}
				fmt.Printf("%s: %s\n", label, m.Message)
				if len(m.ParsedFields) > 0 {
					keys := make([]string, 0, len(m.ParsedFields))
					for k := range m.ParsedFields {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					fmt.Println(formatter.StyleDim.Render("  captured: " + strings.Join(keys, ", ")))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
