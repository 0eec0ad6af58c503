package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Name     string `default:"The Music Store" usage:"Store name shown in the heading"`
	Currency string `default:"£" usage:"Currency symbol placed before every amount"`
	Bold     bool   `default:"true" usage:"Emphasize the heading and table header with ANSI bold"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files.
func LoadConfig() (*Config, error) {
	return loadConfig(false)
}

func loadConfig(skipFlags bool) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: skipFlags,
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/music-store/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.Name == "" {
		return nil, errors.New("store name is required: set STORE_NAME")
	}

	return &cfg, nil
}
