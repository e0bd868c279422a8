package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

func sumCounts(slices []model.Slice) int {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	return total
}

func TestSuccessCountsBySite(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		got := model.SuccessCountsBySite(scenarioRecords())
		want := []model.Slice{
			{Label: "KSC LC-39A", Count: 1},
			{Label: "CCAFS LC-40", Count: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("success counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sites without success are omitted", func(t *testing.T) {
		records := append(scenarioRecords(), model.LaunchRecord{
			Site: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: types.OutcomeFailure, BoosterVersionCategory: "FT",
		})
		got := model.SuccessCountsBySite(records)
		gt.A(t, got).Length(2)
		for _, s := range got {
			gt.NotEqual(t, s.Label, "VAFB SLC-4E")
		}
	})

	t.Run("sum equals number of successes", func(t *testing.T) {
		records := scenarioRecords()
		successes := 0
		for _, r := range records {
			if r.Outcome == types.OutcomeSuccess {
				successes++
			}
		}
		gt.Equal(t, sumCounts(model.SuccessCountsBySite(records)), successes)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.A(t, model.SuccessCountsBySite(nil)).Length(0)
	})
}

func TestOutcomeCounts(t *testing.T) {
	records := scenarioRecords()

	t.Run("scenario KSC LC-39A", func(t *testing.T) {
		subset := model.FilterBySite(records, "KSC LC-39A")
		got := model.OutcomeCounts(subset)
		want := []model.Slice{
			{Label: "1", Count: 1},
			{Label: "0", Count: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("outcome counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent class is omitted", func(t *testing.T) {
		subset := model.FilterBySite(records, "CCAFS LC-40")
		got := model.OutcomeCounts(subset)
		want := []model.Slice{{Label: "1", Count: 2}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("outcome counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sum equals site subset size", func(t *testing.T) {
		for _, site := range []types.SiteID{"KSC LC-39A", "CCAFS LC-40", "VAFB SLC-4E"} {
			subset := model.FilterBySite(records, site)
			gt.Equal(t, sumCounts(model.OutcomeCounts(subset)), len(subset))
		}
	})
}

func TestScatterPointsOf(t *testing.T) {
	records := model.FilterByPayloadRange(scenarioRecords(), model.PayloadRange{Low: 3000, High: 7000})
	points := model.ScatterPointsOf(records)

	gt.A(t, points).Length(3)
	for _, p := range points {
		gt.NotEqual(t, p.PayloadMassKg, 2000.0)
	}
	gt.Equal(t, points[0], model.ScatterPoint{
		PayloadMassKg:          5000,
		Outcome:                types.OutcomeSuccess,
		BoosterVersionCategory: "v1",
		Site:                   "KSC LC-39A",
	})
}
