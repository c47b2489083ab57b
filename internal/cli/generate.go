package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/backdrop/pkg/config"
	"github.com/matzehuels/backdrop/pkg/render"
	"github.com/matzehuels/backdrop/pkg/styles"
)

// generateOpts holds the command-line flags for the generate command.
// Only flags the user set override the config file.
type generateOpts struct {
	output string // output file for a single style
	width  int    // canvas width in pixels
	height int    // canvas height in pixels
	seed   uint64 // 0 picks a fresh seed
	all    bool   // render every style
	dir    string // output directory for --all
}

// apply overlays explicitly set flags onto cfg.
func (o generateOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("dir") {
		cfg.Dir = o.dir
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [style]",
		Short: "Render a background to PNG",
		Long: `Render a background to PNG.

The style defaults to the one in the config file (ai_neural if unset). Run
'backdrop styles' for the list. Every render prints its seed; pass it back
with --seed to reproduce the image.

With --all, every style is rendered into --dir as <style>.png.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: styles.Default().Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			if len(args) == 1 {
				if opts.all {
					return fmt.Errorf("--all renders every style; drop the %q argument", args[0])
				}
				cfg.Style = args[0]
			}

			if opts.all {
				return c.runGenerateAll(cmd.Context(), cfg)
			}
			return c.runGenerate(cmd.Context(), cfg)
		},
	}

	def := config.Default()
	cmd.Flags().StringVarP(&opts.output, "output", "o", def.Output, "output file")
	cmd.Flags().IntVar(&opts.width, "width", def.Width, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", def.Height, "canvas height in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks a fresh one)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every style")
	cmd.Flags().StringVar(&opts.dir, "dir", def.Dir, "output directory for --all")

	return cmd
}

// runGenerate renders cfg.Style to cfg.Output.
func (c *CLI) runGenerate(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	logger.Debug("generate", "style", cfg.Style, "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)

	var s render.Surface
	res, err := c.newDispatcher(cfg.Seed).Generate(ctx, &s, cfg.Style, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	n, err := render.Export(ctx, &s, cfg.Output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", res.Title)
	printFile(cfg.Output)
	printDetail("%s · %s", describeResult(res), formatBytes(n))
	printNewline()
	printNextStep("Reproduce", fmt.Sprintf("%s generate %s --seed %d --width %d --height %d",
		appName, res.Style, res.Seed, res.Width, res.Height))
	return nil
}

// runGenerateAll renders every style into cfg.Dir, one file per style.
// Styles are rendered in registry order on a single surface.
func (c *CLI) runGenerateAll(ctx context.Context, cfg config.Config) error {
	reg := styles.Default()
	d := c.newDispatcher(cfg.Seed)
	prog := newProgress(loggerFromContext(ctx))
	printInfo("Rendering %d styles into %s", reg.Len(), cfg.Dir)

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	var s render.Surface
	paths := make([]string, 0, reg.Len())
	results := make([]render.Result, 0, reg.Len())
	for _, key := range reg.Keys() {
		spinner.SetMessage(fmt.Sprintf("Rendering %s (%d/%d)...", key, len(paths)+1, reg.Len()))

		res, err := d.Generate(ctx, &s, key, cfg.Width, cfg.Height)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Rendering %s failed", key))
			return err
		}
		path := filepath.Join(cfg.Dir, key+".png")
		if _, err := render.Export(ctx, &s, path); err != nil {
			spinner.StopWithError(fmt.Sprintf("Writing %s failed", path))
			return err
		}
		paths = append(paths, path)
		results = append(results, res)
	}
	spinner.Stop()

	printSuccess("Rendered %d styles", len(paths))
	for i, path := range paths {
		printFile(path)
		printDetail("%s", describeResult(results[i]))
	}
	prog.done(fmt.Sprintf("Rendered %d styles", len(paths)))
	return nil
}
