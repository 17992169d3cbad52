package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Practice.Words != nil || cfg.Log.Level != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[practice]
dictionary = "/tmp/words.txt"
words = 12
caps = 0.25
show-stats = false

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Dictionary == nil || *cfg.Practice.Dictionary != "/tmp/words.txt" {
		t.Fatalf("unexpected dictionary: %v", cfg.Practice.Dictionary)
	}
	if cfg.Practice.Words == nil || *cfg.Practice.Words != 12 {
		t.Fatalf("unexpected words: %v", cfg.Practice.Words)
	}
	if cfg.Practice.CapsPct == nil || *cfg.Practice.CapsPct != 0.25 {
		t.Fatalf("unexpected caps: %v", cfg.Practice.CapsPct)
	}
	if cfg.Practice.ShowStats == nil || *cfg.Practice.ShowStats {
		t.Fatalf("unexpected show-stats: %v", cfg.Practice.ShowStats)
	}
	if cfg.Practice.PunctPct != nil {
		t.Fatalf("expected punct unset")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice\nwords = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "failed to decode config") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	words := 40
	cfg := FileConfig{Practice: PracticeConfig{Words: &words}}
	env := map[string]string{
		"MONCLITYPE_WORDS":      "10",
		"MONCLITYPE_DICTIONARY": " /data/en.txt ",
		"MONCLITYPE_SHOW_STATS": "false",
		"MONCLITYPE_LOG_LEVEL":  "warn",
		"MONCLITYPE_PUNCT":      "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if *cfg.Practice.Words != 10 {
		t.Fatalf("expected env to override words, got %d", *cfg.Practice.Words)
	}
	if *cfg.Practice.Dictionary != "/data/en.txt" {
		t.Fatalf("unexpected dictionary %q", *cfg.Practice.Dictionary)
	}
	if *cfg.Practice.ShowStats {
		t.Fatalf("expected show-stats false")
	}
	if *cfg.Log.Level != "warn" {
		t.Fatalf("unexpected log level %q", *cfg.Log.Level)
	}
	if cfg.Practice.PunctPct != nil {
		t.Fatalf("expected empty env value to be ignored")
	}
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "MONCLITYPE_WORDS" {
			return "many", true
		}
		return "", false
	}
	var cfg FileConfig
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Fatalf("expected error for invalid number")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MONCLITYPE_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("MONCLITYPE_TEST_DOTENV") })
	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv("MONCLITYPE_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "monclitype", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDictionaryPath(); got != filepath.Join("/cfg", "monclitype", "dictionaries", "default.txt") {
		t.Fatalf("unexpected dictionary path %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "monclitype", "monclitype.log") {
		t.Fatalf("unexpected log path %q", got)
	}
}
