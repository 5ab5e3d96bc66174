package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`

	DBSource      string        `mapstructure:"DB_SOURCE"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`

	PlaceStore     string `mapstructure:"PLACE_STORE"`
	PlaceTablePath string `mapstructure:"PLACE_TABLE_PATH"`

	InferenceProvider string        `mapstructure:"INFERENCE_PROVIDER"`
	InferenceTimeout  time.Duration `mapstructure:"INFERENCE_TIMEOUT"`
	GroqAPIKey        string        `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL       string        `mapstructure:"GROQ_BASE_URL"`
	GroqModel         string        `mapstructure:"GROQ_MODEL"`
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`

	BaselineOffset float64 `mapstructure:"BASELINE_OFFSET"`
	BaselineZone   string  `mapstructure:"BASELINE_ZONE"`

	AdminIDs             string `mapstructure:"ADMIN_IDS"`
	PaymentProviderToken string `mapstructure:"PAYMENT_PROVIDER_TOKEN"`
}

var defaults = map[string]interface{}{
	"SERVER_ADDRESS":         "0.0.0.0:8080",
	"GIN_MODE":               "release",
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
	"DB_SOURCE":              "",
	"REDIS_ADDR":             "",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"SESSION_TTL":            "24h",
	"PLACE_STORE":            "csv",
	"PLACE_TABLE_PATH":       "towns.csv",
	"INFERENCE_PROVIDER":     "groq",
	"INFERENCE_TIMEOUT":      "60s",
	"GROQ_API_KEY":           "",
	"GROQ_BASE_URL":          "",
	"GROQ_MODEL":             "",
	"GEMINI_API_KEY":         "",
	"GEMINI_MODEL":           "",
	"BASELINE_OFFSET":        3.0,
	"BASELINE_ZONE":          "Europe/Moscow",
	"ADMIN_IDS":              "",
	"PAYMENT_PROVIDER_TOKEN": "",
}

// LoadConfig reads configuration from app.env in path, a .env file in the
// working directory and the environment, in increasing priority.
func LoadConfig(path string) (config Config, err error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("config: failed to read .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}
	return config, nil
}

// Admins parses the comma separated ADMIN_IDS list. Malformed entries are skipped.
func (c Config) Admins() []int64 {
	var ids []int64
	for _, part := range strings.Split(c.AdminIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Warn().Str("value", part).Msg("config: skipping malformed admin id")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// SetupLogger configures the global zerolog logger
func (c Config) SetupLogger() {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = log.Output(logWriter(c.LogFormat, os.Stderr))
}

// logWriter wraps out in a console writer for LOG_FORMAT=text; any other
// value keeps JSON lines.
func logWriter(format string, out io.Writer) io.Writer {
	if strings.EqualFold(format, "text") {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return out
}
