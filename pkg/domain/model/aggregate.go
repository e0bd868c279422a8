package model

import "github.com/secmon-lab/launchdash/pkg/domain/types"

// countBy groups records by key and counts them. Records for which key
// reports false are skipped. Groups are emitted in order of first
// occurrence; keys with no records never appear.
func countBy(records []LaunchRecord, key func(LaunchRecord) (string, bool)) []Slice {
	index := make(map[string]int)
	var slices []Slice

	for _, rec := range records {
		k, ok := key(rec)
		if !ok {
			continue
		}
		i, exists := index[k]
		if !exists {
			i = len(slices)
			index[k] = i
			slices = append(slices, Slice{Label: k})
		}
		slices[i].Count++
	}

	return slices
}

// SuccessCountsBySite counts successful launches per site. Sites without
// any success are omitted rather than reported as zero.
func SuccessCountsBySite(records []LaunchRecord) []Slice {
	return countBy(records, func(r LaunchRecord) (string, bool) {
		return r.Site.String(), r.Outcome == types.OutcomeSuccess
	})
}

// OutcomeCounts counts records per outcome class ("1" / "0"). A class
// that does not occur is omitted.
func OutcomeCounts(records []LaunchRecord) []Slice {
	return countBy(records, func(r LaunchRecord) (string, bool) {
		return r.Outcome.String(), true
	})
}

// ScatterPointsOf emits one point per record
func ScatterPointsOf(records []LaunchRecord) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, ScatterPoint{
			PayloadMassKg:          rec.PayloadMassKg,
			Outcome:                rec.Outcome,
			BoosterVersionCategory: rec.BoosterVersionCategory,
			Site:                   rec.Site,
		})
	}
	return points
}
