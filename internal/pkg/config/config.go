package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Parser   ParserConfig   `yaml:"parser"`
	Matcher  MatcherConfig  `yaml:"matcher"`
	Output   OutputConfig   `yaml:"output"`
	Postgres PostgresConfig `yaml:"postgres"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type ParserConfig struct {
	UserAgent  string            `yaml:"user_agent"`
	Timeout    time.Duration     `yaml:"timeout"`
	Headers    map[string]string `yaml:"headers"`
	DraftKings DraftKingsConfig  `yaml:"draftkings"`
	PrizePicks PrizePicksConfig  `yaml:"prizepicks"`
}

type DraftKingsConfig struct {
	BaseURL               string `yaml:"base_url"`
	LeagueID              string `yaml:"league_id"`
	StrikesSubcategoryID  string `yaml:"strikes_subcategory_id"`
	DistanceSubcategoryID string `yaml:"distance_subcategory_id"`
}

type PrizePicksConfig struct {
	BaseURL    string   `yaml:"base_url"`
	LeagueID   string   `yaml:"league_id"`
	PerPage    int      `yaml:"per_page"`
	StatTypes  []string `yaml:"stat_types"`
	OddsType   string   `yaml:"odds_type"`
	UseBrowser bool     `yaml:"use_browser"` // headless-browser fallback for the Cloudflare wall
}

type MatcherConfig struct {
	Cutoff  int `yaml:"cutoff"`  // minimum fuzzy-match confidence, 0..100
	Workers int `yaml:"workers"` // matching goroutines; 0 or 1 runs serial
}

type OutputConfig struct {
	CSVPath string `yaml:"csv_path"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
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
	return &config, nil
}

// applyDefaults fills unset fields. Secrets may come from the environment
// to keep them out of committed configs.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Parser.UserAgent == "" {
		c.Parser.UserAgent = "Mozilla/5.0"
	}
	if c.Parser.Timeout == 0 {
		c.Parser.Timeout = 30 * time.Second
	}
	if c.Parser.DraftKings.BaseURL == "" {
		c.Parser.DraftKings.BaseURL = "https://sportsbook-nash.draftkings.com/sites/US-OH-SB/api/sportscontent/controldata/league"
	}
	if c.Parser.DraftKings.LeagueID == "" {
		c.Parser.DraftKings.LeagueID = "9034"
	}
	if c.Parser.DraftKings.StrikesSubcategoryID == "" {
		c.Parser.DraftKings.StrikesSubcategoryID = "16618"
	}
	if c.Parser.DraftKings.DistanceSubcategoryID == "" {
		c.Parser.DraftKings.DistanceSubcategoryID = "17644"
	}
	if c.Parser.PrizePicks.BaseURL == "" {
		c.Parser.PrizePicks.BaseURL = "https://api.prizepicks.com/projections"
	}
	if c.Parser.PrizePicks.LeagueID == "" {
		c.Parser.PrizePicks.LeagueID = "12"
	}
	if c.Parser.PrizePicks.PerPage == 0 {
		c.Parser.PrizePicks.PerPage = 250
	}
	if len(c.Parser.PrizePicks.StatTypes) == 0 {
		c.Parser.PrizePicks.StatTypes = []string{"Significant Strikes"}
	}
	if c.Parser.PrizePicks.OddsType == "" {
		c.Parser.PrizePicks.OddsType = "standard"
	}
	if c.Matcher.Cutoff == 0 {
		c.Matcher.Cutoff = 70
	}
	if c.Output.CSVPath == "" {
		c.Output.CSVPath = "merged_ufc_props.csv"
	}
	if c.Postgres.DSN == "" {
		c.Postgres.DSN = os.Getenv("POSTGRES_DSN")
	}
	if c.Telegram.BotToken == "" {
		c.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
}
