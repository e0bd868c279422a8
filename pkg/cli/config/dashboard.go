package config

import (
	"log/slog"

	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Dashboard holds the presentation settings of the page
type Dashboard struct {
	Title      string
	SliderMin  float64
	SliderMax  float64
	SliderStep float64
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	layout := model.DefaultLayout()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Dashboard title",
			Category:    "Dashboard",
			Value:       layout.Title,
			Sources:     cli.EnvVars("LAUNCHDASH_TITLE"),
			Destination: &d.Title,
		},
		&cli.FloatFlag{
			Name:        "payload-slider-min",
			Usage:       "Lower end of the payload range selector (kg)",
			Category:    "Dashboard",
			Value:       layout.SliderMin,
			Sources:     cli.EnvVars("LAUNCHDASH_PAYLOAD_SLIDER_MIN"),
			Destination: &d.SliderMin,
		},
		&cli.FloatFlag{
			Name:        "payload-slider-max",
			Usage:       "Upper end of the payload range selector (kg)",
			Category:    "Dashboard",
			Value:       layout.SliderMax,
			Sources:     cli.EnvVars("LAUNCHDASH_PAYLOAD_SLIDER_MAX"),
			Destination: &d.SliderMax,
		},
		&cli.FloatFlag{
			Name:        "payload-slider-step",
			Usage:       "Step of the payload range selector (kg)",
			Category:    "Dashboard",
			Value:       layout.SliderStep,
			Sources:     cli.EnvVars("LAUNCHDASH_PAYLOAD_SLIDER_STEP"),
			Destination: &d.SliderStep,
		},
	}
}

// Configure validates the settings and returns the layout
func (d *Dashboard) Configure() (model.Layout, error) {
	layout := model.Layout{
		Title:      d.Title,
		SliderMin:  d.SliderMin,
		SliderMax:  d.SliderMax,
		SliderStep: d.SliderStep,
	}
	if err := layout.Validate(); err != nil {
		return model.Layout{}, err
	}
	return layout, nil
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", d.Title),
		slog.Float64("slider_min", d.SliderMin),
		slog.Float64("slider_max", d.SliderMax),
		slog.Float64("slider_step", d.SliderStep),
	)
}
