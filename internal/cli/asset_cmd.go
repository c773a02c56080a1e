package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mseverin/brandforge/internal/cli/formatter"
	"github.com/mseverin/brandforge/internal/domain"
	"github.com/spf13/cobra"
)

func newAssetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Generate and refine marketing assets",
	}

	cmd.AddCommand(
		newAssetGenerateCmd(app),
		newAssetListCmd(app),
		newAssetShowCmd(app),
		newAssetRefineCmd(app),
		newAssetTypesCmd(),
	)

	return cmd
}

func newAssetGenerateCmd(app *App) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "generate PROJECT TYPE",
		Short: "Generate a marketing asset from the brandscript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			assetType := domain.AssetType(args[1])
			if !domain.IsValidAssetType(assetType) {
				return fmt.Errorf("unknown asset type %q; run `brandforge asset types`", args[1])
			}

			a, err := app.Assets.Generate(ctx, projectID, assetType, platform)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAsset(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Target platform (e.g. LinkedIn, Instagram)")

	return cmd
}

func newAssetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List generated assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			items, err := app.Assets.List(ctx, projectID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No assets yet. Run `brandforge asset generate` first.")
				return nil
			}

			rows := make([]formatter.AssetRow, len(items))
			for i, item := range items {
				rows[i] = formatter.AssetRow{Asset: item.Asset, VersionCount: item.VersionCount}
			}
			fmt.Printf("%s\n", formatter.FormatAssetList(rows))
			return nil
		},
	}
}

func newAssetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ASSET_ID",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Assets.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAsset(a))
			return nil
		},
	}
}

func newAssetRefineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refine PROJECT ASSET_ID MESSAGE",
		Short: "Refine an asset with feedback",
		Long:  "Sends feedback about an asset and stores the reworked copy as a new version linked to the original.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			refined, err := app.Assets.Refine(ctx, projectID, args[1], args[2])
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAsset(refined))
			return nil
		},
	}
}

func newAssetTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List available asset types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]string, 0, len(domain.AssetLabels))
			for t := range domain.AssetLabels {
				types = append(types, string(t))
			}
			sort.Strings(types)

			var b strings.Builder
			for _, t := range types {
				b.WriteString(fmt.Sprintf("%-24s %s\n", t, formatter.StyleDim.Render(domain.AssetLabels[domain.AssetType(t)])))
			}
			fmt.Print(b.String())
			return nil
		},
	}
}
