package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/outage-ua/gpvbot/infra/metrics"
	"github.com/outage-ua/gpvbot/infra/notify"
	"github.com/outage-ua/gpvbot/infra/sources"
)

// Config is the full service configuration.
type Config struct {
	// Groups lists the grid groups to report, in output order.
	Groups    []string              `json:"groups"`
	CacheFile string                `json:"cache_file"`
	Github    sources.GithubConfig  `json:"github"`
	Yasno     sources.YasnoConfig   `json:"yasno"`
	Telegram  notify.TelegramConfig `json:"telegram"`
	MQTT      notify.MQTTConfig     `json:"mqtt"`
	Metrics   metrics.Config        `json:"metrics"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if len(c.Groups) == 0 {
		c.Groups = []string{"GPV12.1", "GPV18.1"}
	}
	if c.CacheFile == "" {
		c.CacheFile = "last_hash.txt"
	}
	c.Github.SetDefaults()
	c.Yasno.SetDefaults()
	c.Telegram.SetDefaults()
	c.MQTT.SetDefaults()
	c.Metrics.SetDefaults()
}

// Load reads the configuration file (JSON or YAML, by extension) and
// applies GPVBOT_ environment overrides. A missing file is not an error:
// the defaults cover the common single-region deployment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	// Optional environment overrides, e.g. GPVBOT_TELEGRAM__TOKEN. The
	// callback rewrites __ to the koanf delimiter, so the provider must
	// unflatten on "." for the keys to land in the nested structs.
	if err := k.Load(env.Provider("GPVBOT_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gpvbot_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return &cfg, nil
}
