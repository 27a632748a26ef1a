package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"thumbforge.studio/site/internal/content"
	"thumbforge.studio/site/internal/export"
	"thumbforge.studio/site/internal/views/landing"
	"thumbforge.studio/site/public"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the landing page as a static site",
		Long: `Build cleans the output directory, writes index.html rendered with
the current year and copies the bundled assets next to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := runBuild(cmd.Context(), a, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", report.Files, report.OutputDir)
			return nil
		},
	}
	cmd.Flags().String("out", "", "output directory (default \"dist\")")
	return cmd
}

func runBuild(ctx context.Context, a *app, now time.Time) (export.Report, error) {
	deck, err := content.Default()
	if err != nil {
		return export.Report{}, err
	}
	assets, err := public.AssetsFS()
	if err != nil {
		return export.Report{}, fmt.Errorf("embed assets: %w", err)
	}

	data := landing.BuildPageData(deck, landing.Site{
		BaseURL:   a.cfg.Site.BaseURL,
		SceneURL:  a.cfg.Site.SceneURL,
		AssetBase: "assets",
	}, now)

	return export.Site(ctx, export.Options{
		OutputDir: a.cfg.Build.OutputDir,
		Page:      landing.Page(data),
		Assets:    assets,
		AssetsDir: "assets",
		Logger:    a.logger,
	})
}
