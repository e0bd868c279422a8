package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/cli/config"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdRender() *cli.Command {
	var (
		datasetCfg config.Dataset
		renderCfg  config.Render
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render both charts for one selection to image files",
		Flags: joinFlags(datasetCfg.Flags(), renderCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ds, sites, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}

			renderer, format, err := renderCfg.Configure()
			if err != nil {
				return err
			}

			dashboard, err := usecase.NewDashboard(ds, usecase.WithSites(sites))
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard")
			}

			sel := renderCfg.Selection(c, ds)
			ctxlog.From(ctx).Info("Rendering charts",
				slog.Any("render", renderCfg),
				slog.Any("selection", sel),
			)

			paths, err := renderOutputs(ctx, dashboard, renderer, sel, format, renderCfg.OutDir)
			if err != nil {
				return err
			}

			for _, p := range paths {
				ctxlog.From(ctx).Info("Chart written", slog.String("path", p))
			}
			return nil
		},
	}
}

// renderOutputs writes one image per output into dir, named after the
// output. Outputs are rendered concurrently.
func renderOutputs(
	ctx context.Context,
	dashboard *usecase.Dashboard,
	renderer interfaces.ChartRenderer,
	sel model.Selection,
	format types.ImageFormat,
	dir string,
) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	outputs := dashboard.Outputs()
	paths := make([]string, len(outputs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, output := range outputs {
		paths[i] = filepath.Join(dir, output.String()+"."+format.String())
		eg.Go(func() error {
			result, err := dashboard.Compute(ctx, output, sel)
			if err != nil {
				return err
			}
			return writeChart(paths[i], renderer, result, format)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeChart(path string, renderer interfaces.ChartRenderer, result *model.ChartResult, format types.ImageFormat) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create chart file", goerr.V("path", path))
	}

	if err := renderer.Render(f, result, format); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to render chart", goerr.V("path", path))
	}

	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close chart file", goerr.V("path", path))
	}
	return nil
}
