package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

func TestSitesConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		config  model.SitesConfig
		wantErr bool
	}{
		{
			name:   "default sites",
			config: *model.DefaultSites(),
		},
		{
			name:    "no sites",
			config:  model.SitesConfig{},
			wantErr: true,
		},
		{
			name:    "empty ID",
			config:  model.SitesConfig{Sites: []model.Site{{Label: "x"}}},
			wantErr: true,
		},
		{
			name:    "reserved ID",
			config:  model.SitesConfig{Sites: []model.Site{{ID: types.AllSites}}},
			wantErr: true,
		},
		{
			name: "duplicate ID",
			config: model.SitesConfig{Sites: []model.Site{
				{ID: "KSC LC-39A"},
				{ID: "KSC LC-39A"},
			}},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestSitesConfig_Missing(t *testing.T) {
	ds, err := model.NewDataset(scenarioRecords())
	gt.NoError(t, err).Required()

	cfg := &model.SitesConfig{Sites: []model.Site{{ID: "KSC LC-39A"}}}
	gt.Equal(t, cfg.Missing(ds), []types.SiteID{"CCAFS LC-40"})
	gt.A(t, model.DefaultSites().Missing(ds)).Length(0)
}

func TestSite_DisplayLabel(t *testing.T) {
	gt.Equal(t, model.Site{ID: "KSC LC-39A"}.DisplayLabel(), "KSC LC-39A")
	gt.Equal(t, model.Site{ID: "KSC LC-39A", Label: "Kennedy"}.DisplayLabel(), "Kennedy")
}
