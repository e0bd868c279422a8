package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
	"github.com/secmon-lab/launchdash/pkg/service/metrics"
)

func scrape(t *testing.T, c *metrics.Collector) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)
	gt.Equal(t, rec.Code, http.StatusOK)

	body, err := io.ReadAll(rec.Body)
	gt.NoError(t, err).Required()
	return string(body)
}

func TestCollector(t *testing.T) {
	c := metrics.New()

	ds, err := model.NewDataset([]model.LaunchRecord{
		{Site: "KSC LC-39A", PayloadMassKg: 2000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: types.OutcomeFailure, BoosterVersionCategory: "v1.1"},
	})
	gt.NoError(t, err).Required()
	c.SetDataset(ds)

	pie := &model.ChartResult{
		Kind:   model.ChartKindProportion,
		Slices: []model.Slice{{Label: "KSC LC-39A", Count: 3}, {Label: "VAFB SLC-4E", Count: 2}},
	}
	c.ObserveRecompute(types.OutputSuccessPie, 2*time.Millisecond, pie)
	c.ObserveRecompute(types.OutputSuccessPie, time.Millisecond, pie)
	c.ObserveRecompute(types.OutputPayloadScatter, time.Millisecond, &model.ChartResult{
		Kind:   model.ChartKindScatter,
		Points: []model.ScatterPoint{{PayloadMassKg: 100}},
	})

	body := scrape(t, c)
	gt.S(t, body).Contains("launchdash_dataset_rows 2")
	gt.S(t, body).Contains(`launchdash_recompute_total{kind="proportion",output="success-pie-chart"} 2`)
	gt.S(t, body).Contains(`launchdash_recompute_total{kind="scatter",output="success-payload-scatter-chart"} 1`)
	gt.S(t, body).Contains(`launchdash_output_rows{output="success-pie-chart"} 5`)
	gt.S(t, body).Contains(`launchdash_output_rows{output="success-payload-scatter-chart"} 1`)
	gt.S(t, body).Contains(`launchdash_recompute_duration_seconds_count{output="success-pie-chart"} 2`)
}

func TestCollector_Isolated(t *testing.T) {
	// each collector owns its registry, so creating two must not panic
	a := metrics.New()
	b := metrics.New()
	a.ObserveRecompute(types.OutputSuccessPie, time.Millisecond, nil)

	gt.S(t, scrape(t, a)).Contains(`launchdash_recompute_total{kind="",output="success-pie-chart"} 1`)
	gt.False(t, strings.Contains(scrape(t, b), "launchdash_recompute_total{"))
}
