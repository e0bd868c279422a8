package render

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrTagUnsupportedFormat = goerr.NewTag("unsupported_format")
	ErrTagUnsupportedChart  = goerr.NewTag("unsupported_chart")
)

// palette follows the slice/series order of a chart
var palette = []drawing.Color{
	drawing.ColorFromHex("636EFA"),
	drawing.ColorFromHex("EF553B"),
	drawing.ColorFromHex("00CC96"),
	drawing.ColorFromHex("AB63FA"),
	drawing.ColorFromHex("FFA15A"),
	drawing.ColorFromHex("19D3F3"),
	drawing.ColorFromHex("FF6692"),
	drawing.ColorFromHex("B6E880"),
}

var placeholderColor = drawing.ColorFromHex("D3D3D3")

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

// Renderer draws chart results as images with go-chart
type Renderer struct {
	width  int
	height int
}

// Option configures a Renderer
type Option func(*Renderer)

// WithSize sets the image size in pixels
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// New creates a new Renderer
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  800,
		height: 500,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func provider(format types.ImageFormat) (chart.RendererProvider, error) {
	switch format {
	case types.ImageFormatPNG:
		return chart.PNG, nil
	case types.ImageFormatSVG:
		return chart.SVG, nil
	default:
		return nil, goerr.New("unsupported image format",
			goerr.V("format", format),
			goerr.T(ErrTagUnsupportedFormat))
	}
}

// Render writes result to w in the given format
func (r *Renderer) Render(w io.Writer, result *model.ChartResult, format types.ImageFormat) error {
	if result == nil {
		return goerr.New("chart result is nil")
	}

	rp, err := provider(format)
	if err != nil {
		return err
	}

	switch result.Kind {
	case model.ChartKindProportion:
		err = r.pie(result).Render(rp, w)
	case model.ChartKindScatter:
		err = r.scatter(result).Render(rp, w)
	default:
		return goerr.New("unsupported chart kind",
			goerr.V("kind", result.Kind),
			goerr.T(ErrTagUnsupportedChart))
	}
	if err != nil {
		return goerr.Wrap(err, "failed to render chart",
			goerr.V("kind", result.Kind),
			goerr.V("title", result.Title),
			goerr.V("format", format))
	}

	return nil
}
