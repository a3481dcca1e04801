package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// External collaborators
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig

	// Domain behavior
	Scheduler SchedulerConfig
	FollowUp  FollowUpConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the structured-generation client.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Timeout     string // e.g. "30s", parsed by the caller
	Temperature float64
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// SchedulerConfig tunes candidate slot search and scoring.
type SchedulerConfig struct {
	SearchWindowDays    int // default window when no preferred date extracted
	PreferredWindowDays int // window used when a preferred date is extracted
	BufferMinutes       int // gap enforced between consecutive meetings
	WorkingDayStartHour int
	WorkingDayEndHour   int
	SlotStepMinutes     int
}

// FollowUpConfig tunes the action-item triage batch.
type FollowUpConfig struct {
	UpcomingWindowDays int // how far ahead "upcoming" items are considered
	ReportWindowDays   int // lookahead for the summary report
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetString("gemini.timeout")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required - set it in config.yaml or GEMINI_API_KEY")
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Scheduler
	cfg.Scheduler.SearchWindowDays = viper.GetInt("scheduler.search_window_days")
	cfg.Scheduler.PreferredWindowDays = viper.GetInt("scheduler.preferred_window_days")
	cfg.Scheduler.BufferMinutes = viper.GetInt("scheduler.buffer_minutes")
	cfg.Scheduler.WorkingDayStartHour = viper.GetInt("scheduler.working_day_start_hour")
	cfg.Scheduler.WorkingDayEndHour = viper.GetInt("scheduler.working_day_end_hour")
	cfg.Scheduler.SlotStepMinutes = viper.GetInt("scheduler.slot_step_minutes")

	// Follow-up
	cfg.FollowUp.UpcomingWindowDays = viper.GetInt("follow_up.upcoming_window_days")
	cfg.FollowUp.ReportWindowDays = viper.GetInt("follow_up.report_window_days")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.temperature", 0.2)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")

	viper.SetDefault("scheduler.search_window_days", 14)
	viper.SetDefault("scheduler.preferred_window_days", 7)
	viper.SetDefault("scheduler.buffer_minutes", 15)
	viper.SetDefault("scheduler.working_day_start_hour", 8)
	viper.SetDefault("scheduler.working_day_end_hour", 18)
	viper.SetDefault("scheduler.slot_step_minutes", 30)

	viper.SetDefault("follow_up.upcoming_window_days", 3)
	viper.SetDefault("follow_up.report_window_days", 7)
}
