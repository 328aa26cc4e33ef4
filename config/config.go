package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"voice-timesheet/internal/model"
)

// Catalog sources and timesheet sinks.
const (
	CatalogSourceSheets = "sheets"
	CatalogSourceFile   = "file"

	TimesheetSinkSheets = "sheets"
	TimesheetSinkSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice timesheet specifics
	GoogleSheets  GoogleSheetsConfig
	Catalog       CatalogConfig
	Timesheet     TimesheetConfig
	Transcription TranscriptionConfig
	Upload        UploadConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleSheetsConfig struct {
	CredentialsPath  string
	ReferenceSheetID string
	ReferenceRange   string
	TimesheetSheetID string
	TimesheetRange   string
}

type CatalogConfig struct {
	Source    string
	FilePath  string
	CacheTTL  time.Duration
	CacheSize int
}

type TimesheetConfig struct {
	Sink       string
	SQLitePath string
}

type TranscriptionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type UploadConfig struct {
	Dir             string
	MaxBytes        int64
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Sheets
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.ReferenceSheetID = viper.GetString("google_sheets.reference_sheet_id")
	cfg.GoogleSheets.ReferenceRange = viper.GetString("google_sheets.reference_range")
	cfg.GoogleSheets.TimesheetSheetID = viper.GetString("google_sheets.timesheet_sheet_id")
	cfg.GoogleSheets.TimesheetRange = viper.GetString("google_sheets.timesheet_range")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.GoogleSheets.CredentialsPath = googleCreds
	}

	// Catalog & timesheet
	cfg.Catalog.Source = viper.GetString("catalog.source")
	cfg.Catalog.FilePath = viper.GetString("catalog.file_path")
	cfg.Catalog.CacheTTL = viper.GetDuration("catalog.cache_ttl")
	cfg.Catalog.CacheSize = viper.GetInt("catalog.cache_size")
	cfg.Timesheet.Sink = viper.GetString("timesheet.sink")
	cfg.Timesheet.SQLitePath = viper.GetString("timesheet.sqlite_path")

	// Transcription
	cfg.Transcription.APIKey = viper.GetString("transcription.api_key")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" && cfg.Transcription.APIKey == "" {
		cfg.Transcription.APIKey = apiKey
	}
	cfg.Transcription.BaseURL = viper.GetString("transcription.base_url")
	cfg.Transcription.Model = viper.GetString("transcription.model")
	cfg.Transcription.Timeout = viper.GetDuration("transcription.timeout")

	// Upload
	cfg.Upload.Dir = viper.GetString("upload.dir")
	cfg.Upload.MaxBytes = viper.GetInt64("upload.max_bytes")
	cfg.Upload.RateLimitPerMin = viper.GetInt("upload.rate_limit_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_sheets.credentials_path", "google-credentials.json")
	viper.SetDefault("google_sheets.reference_range", "Sheet1!A1:C")
	viper.SetDefault("google_sheets.timesheet_range", "Sheet1!A1")

	viper.SetDefault("catalog.source", CatalogSourceSheets)
	viper.SetDefault("catalog.cache_ttl", "5m")
	viper.SetDefault("catalog.cache_size", 1)
	viper.SetDefault("timesheet.sink", TimesheetSinkSheets)
	viper.SetDefault("timesheet.sqlite_path", "timesheet.db")

	viper.SetDefault("transcription.base_url", "https://api.openai.com/v1")
	viper.SetDefault("transcription.model", "whisper-1")
	viper.SetDefault("transcription.timeout", "2m")

	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.max_bytes", 25<<20)
	viper.SetDefault("upload.rate_limit_per_min", 30)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Environment,
		validation.Field(&c.Environment.Name, validation.Required, validation.By(validEnvironment)),
	); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	if err := validation.ValidateStruct(&c.HTTPServer,
		validation.Field(&c.HTTPServer.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.HTTPServer.Mode, validation.Required, validation.In("debug", "release", "test")),
	); err != nil {
		return fmt.Errorf("http_server: %w", err)
	}

	if err := validation.ValidateStruct(&c.Catalog,
		validation.Field(&c.Catalog.Source, validation.Required, validation.In(CatalogSourceSheets, CatalogSourceFile)),
		validation.Field(&c.Catalog.FilePath, validation.When(c.Catalog.Source == CatalogSourceFile, validation.Required)),
		validation.Field(&c.Catalog.CacheTTL, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := validation.ValidateStruct(&c.Timesheet,
		validation.Field(&c.Timesheet.Sink, validation.Required, validation.In(TimesheetSinkSheets, TimesheetSinkSQLite)),
		validation.Field(&c.Timesheet.SQLitePath, validation.When(c.Timesheet.Sink == TimesheetSinkSQLite, validation.Required)),
	); err != nil {
		return fmt.Errorf("timesheet: %w", err)
	}

	usesSheets := c.Catalog.Source == CatalogSourceSheets || c.Timesheet.Sink == TimesheetSinkSheets
	if err := validation.ValidateStruct(&c.GoogleSheets,
		validation.Field(&c.GoogleSheets.CredentialsPath, validation.When(usesSheets, validation.Required)),
		validation.Field(&c.GoogleSheets.ReferenceSheetID, validation.When(c.Catalog.Source == CatalogSourceSheets, validation.Required)),
		validation.Field(&c.GoogleSheets.TimesheetSheetID, validation.When(c.Timesheet.Sink == TimesheetSinkSheets, validation.Required)),
	); err != nil {
		return fmt.Errorf("google_sheets: %w", err)
	}

	if err := validation.ValidateStruct(&c.Upload,
		validation.Field(&c.Upload.Dir, validation.Required),
		validation.Field(&c.Upload.MaxBytes, validation.Required, validation.Min(int64(1))),
	); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

func validEnvironment(value interface{}) error {
	name, _ := value.(string)
	if !model.Environment(name).IsValid() {
		return fmt.Errorf("unknown environment %q", name)
	}
	return nil
}
