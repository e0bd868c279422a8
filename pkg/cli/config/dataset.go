package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Dataset holds the launch table and site catalog locations
type Dataset struct {
	Path      string
	SitesPath string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Aliases:     []string{"d"},
			Usage:       "Path to the launch records CSV file",
			Category:    "Dataset",
			Required:    true,
			Sources:     cli.EnvVars("LAUNCHDASH_DATASET"),
			Destination: &d.Path,
		},
		&cli.StringFlag{
			Name:        "sites",
			Usage:       "Path to a YAML site catalog (default: built-in launch sites)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("LAUNCHDASH_SITES"),
			Destination: &d.SitesPath,
		},
	}
}

// Configure loads the dataset and the site catalog. Sites present in the
// data but absent from the catalog are only reported.
func (d *Dataset) Configure(ctx context.Context) (*model.Dataset, *model.SitesConfig, error) {
	ds, err := repository.LoadFile(d.Path)
	if err != nil {
		return nil, nil, err
	}

	sites := model.DefaultSites()
	if d.SitesPath != "" {
		sites, err = LoadSitesFromFile(d.SitesPath)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to load site catalog")
		}
	}

	logger := ctxlog.From(ctx)
	if missing := sites.Missing(ds); len(missing) > 0 {
		logger.Warn("dataset contains sites not offered by the selector",
			slog.Any("sites", missing))
	}

	bounds := ds.PayloadBounds()
	logger.Info("dataset loaded",
		slog.String("path", d.Path),
		slog.Int("rows", ds.Len()),
		slog.Float64("payload_min", bounds.Low),
		slog.Float64("payload_max", bounds.High),
	)

	return ds, sites, nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
		slog.String("sites", d.SitesPath),
	)
}
