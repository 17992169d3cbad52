package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MONCLITYPE_"

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored and existing variables win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to stat env file: %w", err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overlays MONCLITYPE_* variables from lookup onto cfg.
func ApplyEnv(cfg *FileConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookupEnv(lookup, "DICTIONARY"); ok {
		cfg.Practice.Dictionary = &v
	}
	if v, ok := lookupEnv(lookup, "WORDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sWORDS: %w", EnvPrefix, err)
		}
		cfg.Practice.Words = &n
	}
	if v, ok := lookupEnv(lookup, "CAPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sCAPS: %w", EnvPrefix, err)
		}
		cfg.Practice.CapsPct = &f
	}
	if v, ok := lookupEnv(lookup, "PUNCT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sPUNCT: %w", EnvPrefix, err)
		}
		cfg.Practice.PunctPct = &f
	}
	if v, ok := lookupEnv(lookup, "PUNCT_SET"); ok {
		cfg.Practice.PunctSet = &v
	}
	if v, ok := lookupEnv(lookup, "SHOW_STATS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sSHOW_STATS: %w", EnvPrefix, err)
		}
		cfg.Practice.ShowStats = &b
	}
	if v, ok := lookupEnv(lookup, "LOG_LEVEL"); ok {
		cfg.Log.Level = &v
	}
	if v, ok := lookupEnv(lookup, "LOG_FILE"); ok {
		cfg.Log.File = &v
	}
	return nil
}

func lookupEnv(lookup func(string) (string, bool), name string) (string, bool) {
	v, ok := lookup(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
