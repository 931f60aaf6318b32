package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
)

type Config struct {
	LogLevel string                `yaml:"log_level"`
	Timezone string                `yaml:"timezone"`
	Scraper  ScraperConfig         `yaml:"scraper"`
	Schedule ScheduleConfig        `yaml:"schedule"`
	Books    map[string]BookConfig `yaml:"books"`
	Postgres PostgresConfig        `yaml:"postgres"`
	Export   ExportConfig          `yaml:"export"`
	Metrics  MetricsConfig         `yaml:"metrics"`
	Telegram TelegramConfig        `yaml:"telegram"`
}

type ScraperConfig struct {
	Leagues        []string          `yaml:"leagues"`
	Books          []string          `yaml:"books"`
	Workers        int               `yaml:"workers"`
	MatchTolerance time.Duration     `yaml:"match_tolerance"`
	Retry          fetch.RetryPolicy `yaml:"retry"`
	Headless       bool              `yaml:"headless"`
	UserAgent      string            `yaml:"user_agent"`
}

type ScheduleConfig struct {
	// URLs maps a league to its schedule page on the canonical source.
	URLs map[string]string `yaml:"urls"`
}

type BookConfig struct {
	// Domain is prepended to relative event links discovered on listings.
	Domain string `yaml:"domain"`
	// Leagues maps a league to the book's listing URL for it.
	Leagues map[string]string `yaml:"leagues"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

type TelegramConfig struct {
	BotToken   string  `yaml:"bot_token"`
	ChatID     int64   `yaml:"chat_id"`
	MinROI     float64 `yaml:"min_roi"`
	Investment float64 `yaml:"investment"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.Scraper.Workers <= 0 {
		c.Scraper.Workers = 4
	}
	if c.Scraper.MatchTolerance <= 0 {
		c.Scraper.MatchTolerance = 10 * time.Minute
	}
	c.Scraper.Retry = c.Scraper.Retry.Normalized()
}

func (c *Config) validate() error {
	if len(c.Scraper.Leagues) == 0 {
		return fmt.Errorf("config: scraper.leagues must not be empty")
	}
	if len(c.Scraper.Books) == 0 {
		return fmt.Errorf("config: scraper.books must not be empty")
	}
	for _, league := range c.Scraper.Leagues {
		if c.Schedule.URLs[league] == "" {
			return fmt.Errorf("config: no schedule url for league %q", league)
		}
	}
	for _, book := range c.Scraper.Books {
		if _, ok := c.Books[book]; !ok {
			return fmt.Errorf("config: enabled book %q has no books.%s section", book, book)
		}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone. Validation already checked
// that it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
