// Package config loads runtime settings from defaults, an optional
// config.yaml, a .env file and PORTFOLIO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string        `mapstructure:"port"`
	LogLevel     string        `mapstructure:"logLevel"`
	LogFormat    string        `mapstructure:"logFormat"`
	Dev          bool          `mapstructure:"dev"`
	TemplatesDir string        `mapstructure:"templatesDir"`
	OutputDir    string        `mapstructure:"outputDir"`
	BaseURL      string        `mapstructure:"baseURL"`
	SiteTitle    string        `mapstructure:"siteTitle"`
	CommentTTL   time.Duration `mapstructure:"commentTTL"`
	RateLimit    int           `mapstructure:"rateLimit"`
}

// Load resolves the configuration. An empty cfgFile searches the working
// directory for config.yaml; a missing one there is not an error. A
// missing envFile is ignored too.
func Load(cfgFile, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "text")
	v.SetDefault("dev", false)
	v.SetDefault("templatesDir", "web/templates")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("siteTitle", "Ricardo Dominguez | Sports Business")
	v.SetDefault("commentTTL", 30*time.Minute)
	v.SetDefault("rateLimit", 500)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("failed to bind PORT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

// Logger builds the process logger from LogLevel and LogFormat.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
}
