package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"cryptorates/internal/rates"
)

const (
	// DefaultURL is the altcoin INR rate listing
	DefaultURL      = "https://www.buyucoin.com/altcoin-rate-inr-india"
	DefaultCSVPath  = "Crypto.csv"
	DefaultXLSXPath = "Crypto.xlsx"
	DefaultSheet    = "Prices"
)

// Config holds everything a single scrape run needs.
type Config struct {
	// Page to fetch and the id of the table to read from it
	URL     string `mapstructure:"url"`
	TableID string `mapstructure:"table_id"`

	// Output locations, relative paths resolve against the working directory
	CSVPath   string `mapstructure:"csv_path"`
	XLSXPath  string `mapstructure:"xlsx_path"`
	SheetName string `mapstructure:"sheet_name"`

	// Row width policy: passthrough, strict or pad
	Validation string `mapstructure:"validation"`

	LogLevel string `mapstructure:"log_level"`

	// OTLP/HTTP endpoint spans are exported to, tracing is off when empty
	TraceEndpoint string `mapstructure:"trace_endpoint"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		URL:        DefaultURL,
		TableID:    rates.DefaultTableID,
		CSVPath:    DefaultCSVPath,
		XLSXPath:   DefaultXLSXPath,
		SheetName:  DefaultSheet,
		Validation: string(rates.PassThrough),
		LogLevel:   "info",
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("url", d.URL)
	v.SetDefault("table_id", d.TableID)
	v.SetDefault("csv_path", d.CSVPath)
	v.SetDefault("xlsx_path", d.XLSXPath)
	v.SetDefault("sheet_name", d.SheetName)
	v.SetDefault("validation", d.Validation)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("trace_endpoint", d.TraceEndpoint)
}

// Load reads configuration from v, layered over the defaults.
// A nil v gets a fresh viper reading environment variables and an
// optional config file.
//
// Environment variables use the CRYPTORATES_ prefix:
//   - CRYPTORATES_URL
//   - CRYPTORATES_TABLE_ID
//   - CRYPTORATES_CSV_PATH
//   - CRYPTORATES_XLSX_PATH
//   - CRYPTORATES_SHEET_NAME
//   - CRYPTORATES_VALIDATION
//   - CRYPTORATES_LOG_LEVEL
//   - CRYPTORATES_TRACE_ENDPOINT
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	SetDefaults(v)

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ConfigName is the base name of the optional config file
const ConfigName = "cryptorates"

// New creates a viper instance bound to CRYPTORATES_* environment
// variables and cryptorates.yaml in the working directory or
// $HOME/.cryptorates.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CRYPTORATES")
	v.AutomaticEnv()

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cryptorates")
	return v
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		problems = append(problems, fmt.Sprintf("url %q must be an absolute URL", c.URL))
	}
	if c.TableID == "" {
		problems = append(problems, "table_id must not be empty")
	}
	if c.CSVPath == "" {
		problems = append(problems, "csv_path must not be empty")
	}
	if c.XLSXPath == "" {
		problems = append(problems, "xlsx_path must not be empty")
	}
	if c.SheetName == "" {
		problems = append(problems, "sheet_name must not be empty")
	}
	if _, err := rates.ParseValidation(c.Validation); err != nil {
		problems = append(problems, err.Error())
	}
	if c.TraceEndpoint != "" {
		if u, err := url.Parse(c.TraceEndpoint); err != nil || !u.IsAbs() || u.Host == "" {
			problems = append(problems, fmt.Sprintf("trace_endpoint %q must be an absolute URL", c.TraceEndpoint))
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidationLevel returns the parsed row width policy.
func (c *Config) ValidationLevel() rates.Validation {
	v, err := rates.ParseValidation(c.Validation)
	if err != nil {
		return rates.PassThrough
	}
	return v
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
