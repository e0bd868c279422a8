package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// ProportionChart is the success-pie-chart pipeline. For all sites it
// counts successes per site; for one site it counts launches per outcome.
func ProportionChart(ds *model.Dataset, sel model.Selection) *model.ChartResult {
	if sel.Site.IsAll() {
		return &model.ChartResult{
			Kind:      model.ChartKindProportion,
			Title:     "Total Successful Launches by Site",
			NameField: "Launch Site",
			Slices:    ds.SuccessCountsBySite(),
		}
	}

	return &model.ChartResult{
		Kind:      model.ChartKindProportion,
		Title:     fmt.Sprintf("Launch Outcomes for Site %s", sel.Site),
		NameField: "class",
		Slices:    model.OutcomeCounts(ds.BySite(sel.Site)),
	}
}

// ScatterChart is the success-payload-scatter-chart pipeline: payload range
// and site filters applied together in one pass.
func ScatterChart(ds *model.Dataset, sel model.Selection) *model.ChartResult {
	title := "Payload vs. Outcome for All Sites"
	if !sel.Site.IsAll() {
		title = fmt.Sprintf("Payload vs. Outcome for %s", sel.Site)
	}

	return &model.ChartResult{
		Kind:   model.ChartKindScatter,
		Title:  title,
		Points: model.ScatterPointsOf(ds.Select(sel)),
	}
}

// Dashboard wires the two chart bindings to the site and payload inputs
type Dashboard struct {
	dataset *model.Dataset
	options *model.DashboardOptions
	binder  *Binder
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// DashboardOption configures a Dashboard
type DashboardOption func(*dashboardConfig)

type dashboardConfig struct {
	sites    *model.SitesConfig
	layout   model.Layout
	observer interfaces.BindingObserver
}

// WithSites sets the site catalog offered by the selector
func WithSites(sites *model.SitesConfig) DashboardOption {
	return func(c *dashboardConfig) {
		c.sites = sites
	}
}

// WithLayout sets the title and payload slider configuration
func WithLayout(layout model.Layout) DashboardOption {
	return func(c *dashboardConfig) {
		c.layout = layout
	}
}

// WithObserver sets an observer notified after each recomputation
func WithObserver(observer interfaces.BindingObserver) DashboardOption {
	return func(c *dashboardConfig) {
		c.observer = observer
	}
}

// NewDashboard creates the dashboard over a loaded dataset
func NewDashboard(ds *model.Dataset, opts ...DashboardOption) (*Dashboard, error) {
	if ds == nil {
		return nil, goerr.New("dataset is required")
	}

	cfg := &dashboardConfig{
		sites:  model.DefaultSites(),
		layout: model.DefaultLayout(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.sites.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid site catalog")
	}
	if err := cfg.layout.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid layout")
	}

	binder := NewBinder(ds, cfg.observer)
	bindings := []Binding{
		{
			Output:  types.OutputSuccessPie,
			Inputs:  []types.InputID{types.InputSite},
			Compute: ProportionChart,
		},
		{
			Output:  types.OutputPayloadScatter,
			Inputs:  []types.InputID{types.InputSite, types.InputPayload},
			Compute: ScatterChart,
		},
	}
	for _, binding := range bindings {
		if err := binder.Register(binding); err != nil {
			return nil, goerr.Wrap(err, "failed to register binding")
		}
	}

	return &Dashboard{
		dataset: ds,
		options: model.NewDashboardOptions(cfg.layout, cfg.sites, ds),
		binder:  binder,
	}, nil
}

// Options returns a copy of the selector configuration built at startup
func (d *Dashboard) Options(ctx context.Context) *model.DashboardOptions {
	return d.options.Clone()
}

// DefaultSelection returns all sites over the full payload range
func (d *Dashboard) DefaultSelection(ctx context.Context) model.Selection {
	return model.NewSelection(d.dataset)
}

// Compute evaluates a single output
func (d *Dashboard) Compute(ctx context.Context, output types.OutputID, sel model.Selection) (*model.ChartResult, error) {
	return d.binder.Compute(ctx, output, sel)
}

// Dispatch recomputes the outputs subscribed to the changed input
func (d *Dashboard) Dispatch(ctx context.Context, event model.InputEvent) ([]model.OutputUpdate, error) {
	return d.binder.Dispatch(ctx, event)
}

// Outputs returns the chart outputs in registration order
func (d *Dashboard) Outputs() []types.OutputID {
	return d.binder.Outputs()
}
