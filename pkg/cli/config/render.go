package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/render"
	"github.com/urfave/cli/v3"
)

const (
	flagPayloadLow  = "payload-low"
	flagPayloadHigh = "payload-high"
)

// Render holds the settings of an offline chart export
type Render struct {
	Site        string
	PayloadLow  float64
	PayloadHigh float64
	Format      string
	OutDir      string
	Width       int
	Height      int
}

// Flags returns CLI flags for Render configuration
func (r *Render) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "site",
			Usage:       "Launch site to render, or ALL",
			Category:    "Render",
			Value:       types.AllSites.String(),
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_SITE"),
			Destination: &r.Site,
		},
		&cli.FloatFlag{
			Name:        flagPayloadLow,
			Usage:       "Lower payload bound in kg (default: dataset minimum)",
			Category:    "Render",
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_PAYLOAD_LOW"),
			Destination: &r.PayloadLow,
		},
		&cli.FloatFlag{
			Name:        flagPayloadHigh,
			Usage:       "Upper payload bound in kg (default: dataset maximum)",
			Category:    "Render",
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_PAYLOAD_HIGH"),
			Destination: &r.PayloadHigh,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Image format (png, svg)",
			Category:    "Render",
			Value:       types.ImageFormatPNG.String(),
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_FORMAT"),
			Destination: &r.Format,
		},
		&cli.StringFlag{
			Name:        "out-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory the chart images are written to",
			Category:    "Render",
			Value:       ".",
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_OUT_DIR"),
			Destination: &r.OutDir,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "Image width in pixels",
			Category:    "Render",
			Value:       800,
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_WIDTH"),
			Destination: &r.Width,
		},
		&cli.IntFlag{
			Name:        "height",
			Usage:       "Image height in pixels",
			Category:    "Render",
			Value:       500,
			Sources:     cli.EnvVars("LAUNCHDASH_RENDER_HEIGHT"),
			Destination: &r.Height,
		},
	}
}

// Selection returns the selection to render. Bounds that were not given
// on the command line default to the dataset bounds.
func (r *Render) Selection(c *cli.Command, ds *model.Dataset) model.Selection {
	sel := model.NewSelection(ds)
	if r.Site != "" {
		sel.Site = types.SiteID(r.Site)
	}
	if c.IsSet(flagPayloadLow) {
		sel.Payload.Low = r.PayloadLow
	}
	if c.IsSet(flagPayloadHigh) {
		sel.Payload.High = r.PayloadHigh
	}
	return sel
}

// Configure validates the output settings and builds the renderer
func (r *Render) Configure() (*render.Renderer, types.ImageFormat, error) {
	format := types.ImageFormat(r.Format)
	if !format.IsValid() {
		return nil, "", goerr.New("invalid image format",
			goerr.V("format", r.Format),
			goerr.T(render.ErrTagUnsupportedFormat))
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, "", goerr.New("image size must be positive",
			goerr.V("width", r.Width),
			goerr.V("height", r.Height))
	}

	return render.New(render.WithSize(r.Width, r.Height)), format, nil
}

// LogValue returns structured log value
func (r Render) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("site", r.Site),
		slog.String("format", r.Format),
		slog.String("out_dir", r.OutDir),
		slog.Int("width", r.Width),
		slog.Int("height", r.Height),
	)
}
