package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Groups) != 2 || cfg.Groups[0] != "GPV12.1" || cfg.Groups[1] != "GPV18.1" {
		t.Fatalf("bad default groups %v", cfg.Groups)
	}
	if cfg.CacheFile != "last_hash.txt" {
		t.Fatalf("bad cache file %q", cfg.CacheFile)
	}
	if cfg.Github.Region != "kyiv" || cfg.Yasno.RegionID != "25" || cfg.Yasno.DSOID != "902" {
		t.Fatalf("bad source defaults %+v %+v", cfg.Github, cfg.Yasno)
	}
	if cfg.Telegram.Enabled() {
		t.Fatalf("telegram should be disabled without credentials")
	}
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"groups":["GPV3.2"],"github":{"region":"lviv"},"yasno":{"region_id":"1","dso_id":"7"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0] != "GPV3.2" {
		t.Fatalf("bad groups %v", cfg.Groups)
	}
	if cfg.Github.Region != "lviv" || cfg.Yasno.RegionID != "1" || cfg.Yasno.DSOID != "7" {
		t.Fatalf("bad sources %+v %+v", cfg.Github, cfg.Yasno)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "cache_file: /var/lib/gpvbot/hash\nmqtt:\n  enabled: true\n  broker: tcp://localhost:1883\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CacheFile != "/var/lib/gpvbot/hash" {
		t.Fatalf("bad cache file %q", cfg.CacheFile)
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Fatalf("bad mqtt config %+v", cfg.MQTT)
	}
	if cfg.MQTT.Topic != "gpvbot/schedule" {
		t.Fatalf("bad mqtt topic default %q", cfg.MQTT.Topic)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GPVBOT_TELEGRAM__TOKEN", "tok")
	t.Setenv("GPVBOT_TELEGRAM__CHAT_ID", "chan")
	t.Setenv("GPVBOT_GITHUB__REGION", "dnipro")
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Telegram.Enabled() {
		t.Fatalf("telegram credentials not picked up from env: %+v", cfg.Telegram)
	}
	if cfg.Telegram.Token != "tok" || cfg.Telegram.ChatID != "chan" {
		t.Fatalf("bad telegram config %+v", cfg.Telegram)
	}
	if cfg.Github.Region != "dnipro" {
		t.Fatalf("github region override not applied: %+v", cfg.Github)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
