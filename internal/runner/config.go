package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/urlcomplete"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultCatalogConfig returns path of the catalog config used when -tc is not set
func defaultCatalogConfig() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "urlcomplete", "catalog.yaml")
}

// loadDefaultCatalog uses the default catalog config if present
// and creates it with default values otherwise
func loadDefaultCatalog() {
	cfgPath := defaultCatalogConfig()
	if cfgPath == "" {
		return
	}
	if fileutil.FileExists(cfgPath) {
		cfg, err := urlcomplete.NewConfig(cfgPath)
		if err != nil {
			gologger.Warning().Msgf("failed to read default catalog %v got: %v", cfgPath, err)
			return
		}
		applyConfig(cfg)
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		gologger.Verbose().Msgf("failed to create config dir for %v got: %v", cfgPath, err)
		return
	}
	if err := urlcomplete.GenerateSample(cfgPath); err != nil {
		gologger.Error().Msgf("failed to save default catalog to %v got: %v", cfgPath, err)
	}
}

// applyConfig overrides defaults with values present in cfg
func applyConfig(cfg *urlcomplete.Config) {
	if len(cfg.TLDs) > 0 {
		urlcomplete.DefaultConfig.TLDs = cfg.TLDs
	}
	if cfg.MaxSuggestions > 0 {
		urlcomplete.DefaultConfig.MaxSuggestions = cfg.MaxSuggestions
	}
	if cfg.MinInputLength > 0 {
		urlcomplete.DefaultConfig.MinInputLength = cfg.MinInputLength
	}
}
