package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the embedded default configuration, written to
// the XDG config path the first time the engine runs without one.
const DefaultConfigYAML = `
pageSize: 20
recentYearsWindow: 15
metaFederations:
  - name: IPFAndAffiliates
    federations: [IPF, USAPL, USPA]
  - name: AllTested
    testedOnly: true
`

// Path returns the XDG config file path for the engine.
func Path() (string, error) {
	return xdg.ConfigFile(filepath.Join("oplcore", "config.yaml"))
}

// LoadOrCreate loads the config file if it exists and creates a
// default one otherwise, mirroring aretext's LoadOrCreateConfig: the
// default is embedded so a fresh checkout always has something valid
// to load.
func LoadOrCreate(forceDefault bool) (Config, error) {
	if forceDefault {
		log.Printf("Using default config\n")
		return unmarshal([]byte(DefaultConfigYAML))
	}

	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	log.Printf("Loading config from %q\n", path)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Writing default config to %q\n", path)
		if err := saveDefault(path); err != nil {
			return Config{}, errors.Wrapf(err, "writing default config to %q", path)
		}
		return unmarshal([]byte(DefaultConfigYAML))
	} else if err != nil {
		return Config{}, errors.Wrapf(err, "loading config from %q", path)
	}

	cfg, err := unmarshal(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration at %q: %w", path, err)
	}
	return cfg, nil
}

func unmarshal(data []byte) (Config, error) {
	cfg := Default()
	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, errors.Wrapf(err, "yaml.Unmarshal")
	}
	cfg.Apply(overlay)
	return cfg, nil
}

func saveDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "os.MkdirAll")
	}
	return os.WriteFile(path, []byte(DefaultConfigYAML), 0o644)
}
