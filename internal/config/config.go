package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"
)

// Defaults. The shipped dataset fixes "today" at the window's last day.
const (
	DefaultDataFile        = "data/malaysia_api_daily.txt"
	DefaultReferenceDate   = "2025-11-29"
	DefaultUtteranceMaxLen = 280

	referenceDateLayout = "2006-01-02"
)

// Config holds assistant configuration loaded from YAML and env.
type Config struct {
	DataFile        string
	ReferenceDate   string // ISO date, or "auto" to use the wall clock
	Color           bool
	RandomSeed      int64 // 0 = seed from the clock
	DiagAddr        string
	UtteranceMaxLen int
}

type fileConfig struct {
	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`

	Chat struct {
		ReferenceDate   string `yaml:"reference_date"`
		Color           *bool  `yaml:"color"`
		RandomSeed      int64  `yaml:"random_seed"`
		UtteranceMaxLen int    `yaml:"utterance_max_len"`
	} `yaml:"chat"`

	Diag struct {
		Addr string `yaml:"addr"`
	} `yaml:"diag"`
}

// Load reads configuration from config/{ENV_NAME}.yaml (default dev),
// then applies env overrides (AIR_DATA_FILE, AIR_REFERENCE_DATE,
// AIR_COLOR, DIAG_ADDR). A missing config file is not an error: the
// defaults run the shipped dataset as-is.
func Load() (*Config, error) {
	env := os.Getenv("ENV_NAME")
	if env == "" {
		env = "dev"
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: get working directory: %w", err)
	}

	var fc fileConfig
	configPath := filepath.Join(cwd, "config", env+".yaml")
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Run on defaults.
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{
		DataFile:        fc.Data.File,
		ReferenceDate:   fc.Chat.ReferenceDate,
		Color:           true,
		RandomSeed:      fc.Chat.RandomSeed,
		DiagAddr:        fc.Diag.Addr,
		UtteranceMaxLen: fc.Chat.UtteranceMaxLen,
	}
	if fc.Chat.Color != nil {
		cfg.Color = *fc.Chat.Color
	}

	if v := os.Getenv("AIR_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("AIR_REFERENCE_DATE"); v != "" {
		cfg.ReferenceDate = v
	}
	if v := os.Getenv("AIR_COLOR"); v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("parse AIR_COLOR: %w", err)
		}
		cfg.Color = enabled
	}
	if v := os.Getenv("DIAG_ADDR"); v != "" {
		cfg.DiagAddr = v
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.ReferenceDate == "" {
		cfg.ReferenceDate = DefaultReferenceDate
	}
	if cfg.UtteranceMaxLen <= 0 {
		cfg.UtteranceMaxLen = DefaultUtteranceMaxLen
	}

	if cfg.ReferenceDate != "auto" {
		if _, err := time.Parse(referenceDateLayout, cfg.ReferenceDate); err != nil {
			return nil, fmt.Errorf("parse reference date %q: %w", cfg.ReferenceDate, err)
		}
	}
	return cfg, nil
}

// ReferenceTime resolves the configured "today". With "auto" the clock
// supplies it, truncated to midnight UTC.
func (c *Config) ReferenceTime(clock clockwork.Clock) time.Time {
	if c.ReferenceDate == "auto" {
		now := clock.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	t, _ := time.Parse(referenceDateLayout, c.ReferenceDate)
	return t
}
