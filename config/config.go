package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/journal"
	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Journal       JournalConfig   `json:"journal" yaml:"journal"`
	ActiveAccount string          `json:"active_account" yaml:"active_account"`
	Accounts      []AccountConfig `json:"accounts" yaml:"accounts"`
}

// JournalConfig locates the persisted trade collection
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// AccountConfig contains one account's goal and risk parameters. Deadline is
// a YYYY-MM-DD string in the file.
type AccountConfig struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	InitialBalance    float64 `json:"initial_balance" yaml:"initial_balance"`
	Goal              float64 `json:"goal" yaml:"goal"`
	MaxDrawdownLimit  float64 `json:"max_drawdown_limit" yaml:"max_drawdown_limit"`
	DailyLossLimit    float64 `json:"daily_loss_limit,omitempty" yaml:"daily_loss_limit,omitempty"`
	DailyProfitTarget float64 `json:"daily_profit_target,omitempty" yaml:"daily_profit_target,omitempty"`
	Deadline          string  `json:"deadline" yaml:"deadline"`
}

// Account converts the file form into the model form.
func (a AccountConfig) Account() (journal.Account, error) {
	deadline, err := time.ParseInLocation("2006-01-02", a.Deadline, time.Local)
	if err != nil {
		return journal.Account{}, fmt.Errorf("account %s: bad deadline: %w", a.ID, err)
	}
	return journal.Account{
		ID:                a.ID,
		Name:              a.Name,
		InitialBalance:    a.InitialBalance,
		Goal:              a.Goal,
		MaxDrawdownLimit:  a.MaxDrawdownLimit,
		DailyLossLimit:    a.DailyLossLimit,
		DailyProfitTarget: a.DailyProfitTarget,
		Deadline:          deadline,
	}, nil
}

// Active returns the configured active account, falling back to the first
// one when active_account is unset or unknown.
func (c *Config) Active() AccountConfig {
	for _, a := range c.Accounts {
		if a.ID == c.ActiveAccount {
			return a
		}
	}
	return c.Accounts[0]
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if len(c.Accounts) == 0 {
		return fmt.Errorf("at least one account is required")
	}
	for _, a := range c.Accounts {
		if a.ID == "" {
			return fmt.Errorf("account id is required")
		}
		if a.InitialBalance <= 0 {
			return fmt.Errorf("account %s: initial_balance must be positive", a.ID)
		}
		if a.MaxDrawdownLimit <= 0 {
			return fmt.Errorf("account %s: max_drawdown_limit must be positive", a.ID)
		}
		if a.DailyLossLimit < 0 {
			return fmt.Errorf("account %s: daily_loss_limit must not be negative", a.ID)
		}
		if a.DailyProfitTarget < 0 {
			return fmt.Errorf("account %s: daily_profit_target must not be negative", a.ID)
		}
		if _, err := a.Account(); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./tradebook.sqlite",
		},
		ActiveAccount: "ACC-001",
		Accounts: []AccountConfig{
			{
				ID:               "ACC-001",
				Name:             "Main",
				InitialBalance:   50000,
				Goal:             60000,
				MaxDrawdownLimit: 2500,
				DailyLossLimit:   500,
				Deadline:         time.Now().AddDate(0, 6, 0).Format("2006-01-02"),
			},
		},
	}
}
