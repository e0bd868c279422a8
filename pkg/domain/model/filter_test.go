package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// scenarioRecords returns the four-launch dataset used across tests
func scenarioRecords() []model.LaunchRecord {
	return []model.LaunchRecord{
		{Site: "KSC LC-39A", PayloadMassKg: 5000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "v1"},
		{Site: "KSC LC-39A", PayloadMassKg: 3000, Outcome: types.OutcomeFailure, BoosterVersionCategory: "v1"},
		{Site: "CCAFS LC-40", PayloadMassKg: 7000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "v2"},
		{Site: "CCAFS LC-40", PayloadMassKg: 2000, Outcome: types.OutcomeSuccess, BoosterVersionCategory: "v2"},
	}
}

func TestFilterBySite(t *testing.T) {
	records := scenarioRecords()

	t.Run("ALL returns every record", func(t *testing.T) {
		result := model.FilterBySite(records, types.AllSites)
		gt.A(t, result).Length(len(records))
		gt.Equal(t, result, records)
	})

	t.Run("specific site returns only matching records", func(t *testing.T) {
		for _, site := range []types.SiteID{"KSC LC-39A", "CCAFS LC-40"} {
			result := model.FilterBySite(records, site)
			gt.A(t, result).Length(2)
			for _, rec := range result {
				gt.Equal(t, rec.Site, site)
			}
		}
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		result := model.FilterBySite(records, "ksc lc-39a")
		gt.A(t, result).Length(0)
	})

	t.Run("absent site yields empty subset", func(t *testing.T) {
		result := model.FilterBySite(records, "VAFB SLC-4E")
		gt.A(t, result).Length(0)
	})

	t.Run("input is not modified", func(t *testing.T) {
		_ = model.FilterBySite(records, "KSC LC-39A")
		gt.Equal(t, records, scenarioRecords())
	})
}

func TestFilterByPayloadRange(t *testing.T) {
	records := scenarioRecords()

	testCases := []struct {
		name     string
		rng      model.PayloadRange
		expected int
	}{
		{name: "full range", rng: model.PayloadRange{Low: 0, High: 10000}, expected: 4},
		{name: "inclusive bounds", rng: model.PayloadRange{Low: 3000, High: 7000}, expected: 3},
		{name: "single point", rng: model.PayloadRange{Low: 5000, High: 5000}, expected: 1},
		{name: "no match", rng: model.PayloadRange{Low: 8000, High: 9000}, expected: 0},
		{name: "inverted range", rng: model.PayloadRange{Low: 7000, High: 3000}, expected: 0},
		{name: "outside dataset bounds", rng: model.PayloadRange{Low: -100, High: 1e9}, expected: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := model.FilterByPayloadRange(records, tc.rng)
			gt.A(t, result).Length(tc.expected)
			for _, rec := range result {
				gt.True(t, tc.rng.Low <= rec.PayloadMassKg && rec.PayloadMassKg <= tc.rng.High)
			}

			// filtering again by the same bounds changes nothing
			gt.Equal(t, model.FilterByPayloadRange(result, tc.rng), result)
		})
	}
}

func TestFiltersCommute(t *testing.T) {
	records := scenarioRecords()
	rng := model.PayloadRange{Low: 2500, High: 7000}

	for _, site := range []types.SiteID{types.AllSites, "KSC LC-39A", "CCAFS LC-40", "VAFB SLC-4E"} {
		a := model.FilterByPayloadRange(model.FilterBySite(records, site), rng)
		b := model.FilterBySite(model.FilterByPayloadRange(records, rng), site)
		c := model.FilterSelection(records, model.Selection{Site: site, Payload: rng})
		gt.Equal(t, a, b)
		gt.Equal(t, a, c)
	}
}

func TestPayloadRange(t *testing.T) {
	rng := model.PayloadRange{Low: 1000, High: 2000}
	gt.True(t, rng.Contains(1000))
	gt.True(t, rng.Contains(2000))
	gt.False(t, rng.Contains(999.9))
	gt.False(t, rng.IsEmpty())
	gt.True(t, model.PayloadRange{Low: 2, High: 1}.IsEmpty())
}
