package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadSitesFromFile loads the site catalog from a YAML file
func LoadSitesFromFile(path string) (*model.SitesConfig, error) {
	if path == "" {
		return nil, goerr.New("site catalog file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "site catalog file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read site catalog file",
			goerr.V("path", path))
	}

	var sites model.SitesConfig
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML site catalog",
			goerr.V("path", path))
	}

	if err := sites.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid site catalog",
			goerr.V("path", path))
	}

	return &sites, nil
}
