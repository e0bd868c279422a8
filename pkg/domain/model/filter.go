package model

import "github.com/secmon-lab/launchdash/pkg/domain/types"

// FilterBySite returns the records launched from site. AllSites returns
// every record; any other value is an exact, case-sensitive match and an
// unknown site yields an empty subset. The input is never modified.
func FilterBySite(records []LaunchRecord, site types.SiteID) []LaunchRecord {
	result := make([]LaunchRecord, 0, len(records))
	for _, rec := range records {
		if site.IsAll() || rec.Site == site {
			result = append(result, rec)
		}
	}
	return result
}

// FilterByPayloadRange returns the records whose payload lies within rng
// (inclusive). An inverted range yields an empty subset.
func FilterByPayloadRange(records []LaunchRecord, rng PayloadRange) []LaunchRecord {
	if rng.IsEmpty() {
		return []LaunchRecord{}
	}

	result := make([]LaunchRecord, 0, len(records))
	for _, rec := range records {
		if rng.Contains(rec.PayloadMassKg) {
			result = append(result, rec)
		}
	}
	return result
}

// FilterSelection applies both filters in a single pass
func FilterSelection(records []LaunchRecord, sel Selection) []LaunchRecord {
	if sel.Payload.IsEmpty() {
		return []LaunchRecord{}
	}

	result := make([]LaunchRecord, 0, len(records))
	for _, rec := range records {
		if !sel.Payload.Contains(rec.PayloadMassKg) {
			continue
		}
		if !sel.Site.IsAll() && rec.Site != sel.Site {
			continue
		}
		result = append(result, rec)
	}
	return result
}
