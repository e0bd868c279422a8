package model

import (
	"math"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// LaunchRecord is one row of the launch table
type LaunchRecord struct {
	Site                   types.SiteID       `json:"launch_site"`
	PayloadMassKg          float64            `json:"payload_mass_kg"`
	Outcome                types.OutcomeClass `json:"class"`
	BoosterVersionCategory string             `json:"booster_version_category"`
}

// Validate validates the record
func (r LaunchRecord) Validate() error {
	if r.Site == "" {
		return goerr.New("launch site is empty")
	}
	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) || r.PayloadMassKg < 0 {
		return goerr.New("payload mass must be a non-negative number",
			goerr.V("payload", r.PayloadMassKg))
	}
	if !r.Outcome.IsValid() {
		return goerr.New("invalid outcome class", goerr.V("class", int(r.Outcome)))
	}
	return nil
}

// Dataset is the launch table loaded once at startup. It has no mutators;
// every accessor hands out copies.
type Dataset struct {
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
}

// NewDataset validates records and computes the payload bounds
func NewDataset(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, goerr.New("dataset has no records", goerr.T(ErrTagEmptyDataset))
	}

	ds := &Dataset{
		records:    slices.Clone(records),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}
	for i, rec := range ds.records {
		if err := rec.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid launch record",
				goerr.V("index", i),
				goerr.T(ErrTagInvalidRow))
		}
		ds.minPayload = min(ds.minPayload, rec.PayloadMassKg)
		ds.maxPayload = max(ds.maxPayload, rec.PayloadMassKg)
	}

	return ds, nil
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in load order
func (d *Dataset) Records() []LaunchRecord {
	return slices.Clone(d.records)
}

// Select returns the records matching sel, filtered in a single pass over
// the table
func (d *Dataset) Select(sel Selection) []LaunchRecord {
	return FilterSelection(d.records, sel)
}

// BySite returns the records launched from site
func (d *Dataset) BySite(site types.SiteID) []LaunchRecord {
	return FilterBySite(d.records, site)
}

// SuccessCountsBySite counts successes per site over the whole table
func (d *Dataset) SuccessCountsBySite() []Slice {
	return SuccessCountsBySite(d.records)
}

// PayloadBounds returns the global payload range observed at load time
func (d *Dataset) PayloadBounds() PayloadRange {
	return PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Sites returns the distinct sites in first-occurrence order
func (d *Dataset) Sites() []types.SiteID {
	seen := make(map[types.SiteID]bool)
	var result []types.SiteID
	for _, rec := range d.records {
		if !seen[rec.Site] {
			seen[rec.Site] = true
			result = append(result, rec.Site)
		}
	}
	return result
}
