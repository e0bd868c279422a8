package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/types"
)

// Site is an entry of the site selector
type Site struct {
	ID    types.SiteID `yaml:"id" json:"value"`
	Label string       `yaml:"label,omitempty" json:"label"`
}

// DisplayLabel returns the label, falling back to the ID
func (s Site) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID.String()
}

// Validate validates the site
func (s *Site) Validate() error {
	if s.ID == "" {
		return goerr.New("site ID is required")
	}
	if s.ID.IsAll() {
		return goerr.New("site ID is reserved", goerr.V("id", s.ID))
	}
	return nil
}

// SitesConfig is the fixed set of sites offered by the selector
type SitesConfig struct {
	Sites []Site `yaml:"sites"`
}

// DefaultSites returns the launch sites of the SpaceX dataset
func DefaultSites() *SitesConfig {
	return &SitesConfig{
		Sites: []Site{
			{ID: "CCAFS LC-40", Label: "CCAFS LC-40"},
			{ID: "CCAFS SLC-40", Label: "CCAFS SLC-40"},
			{ID: "KSC LC-39A", Label: "KSC LC-39A"},
			{ID: "VAFB SLC-4E", Label: "VAFB SLC-4E"},
		},
	}
}

// Validate validates the sites configuration
func (c *SitesConfig) Validate() error {
	if len(c.Sites) == 0 {
		return goerr.New("at least one site is required")
	}

	idMap := make(map[types.SiteID]bool)
	for i, site := range c.Sites {
		if err := site.Validate(); err != nil {
			return goerr.Wrap(err, "invalid site at index",
				goerr.V("index", i),
				goerr.V("id", site.ID))
		}

		if idMap[site.ID] {
			return goerr.New("duplicate site ID",
				goerr.V("id", site.ID))
		}
		idMap[site.ID] = true
	}

	return nil
}

// Has checks if the given site ID is part of the catalog
func (c *SitesConfig) Has(id types.SiteID) bool {
	for _, site := range c.Sites {
		if site.ID == id {
			return true
		}
	}
	return false
}

// Missing returns the dataset sites the catalog does not offer
func (c *SitesConfig) Missing(ds *Dataset) []types.SiteID {
	var result []types.SiteID
	for _, id := range ds.Sites() {
		if !c.Has(id) {
			result = append(result, id)
		}
	}
	return result
}
