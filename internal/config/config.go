package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/keyring"
	"github.com/julianstephens/edusync/internal/logger"
)

// ErrEmbeddedCredentials is returned when a plain-text source carries a
// password inside the API URL
var ErrEmbeddedCredentials = errors.New("API URL must not embed credentials outside the OS keyring")

// Source records where the API URL was resolved from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

// Config is the resolved application configuration
type Config struct {
	APIURL         string        `mapstructure:"api_url" validate:"required,http_url"`
	Debug          bool          `mapstructure:"debug"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`

	Path      string `mapstructure:"-"`
	ConfigDir string `mapstructure:"-"`
	Source    Source `mapstructure:"-"`
}

// Overrides are values given on the command line. Zero values are ignored.
type Overrides struct {
	APIURL string
	Debug  bool
}

var validate = validator.New()

// Load resolves configuration from flags, environment (including a .env
// file in the working directory), the config file at path, the OS keyring
// and finally the built-in defaults.
func Load(path string, ov Overrides) (Config, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("request_timeout", constants.DefaultRequestTimeout)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_url"); err != nil {
		return Config{}, err
	}

	fileURL := ""
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		fileURL = v.GetString("api_url")
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}

	if ov.APIURL != "" {
		v.Set("api_url", ov.APIURL)
	}
	if ov.Debug {
		v.Set("debug", true)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Path = path
	cfg.ConfigDir = filepath.Dir(path)

	switch {
	case ov.APIURL != "":
		cfg.Source = SourceFlag
	case os.Getenv(constants.EnvPrefix+"_API_URL") != "":
		cfg.Source = SourceEnv
	case fileURL != "":
		cfg.Source = SourceFile
	default:
		cfg.APIURL, cfg.Source = fromKeyring()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromKeyring() (string, Source) {
	apiURL, err := keyring.GetAPIURL()
	if err == nil && apiURL != "" {
		return apiURL, SourceKeyring
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed, using default API URL", "error", err)
	}
	return constants.DefaultAPIURL, SourceDefault
}

// Validate checks field constraints and the credential rule
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Source != SourceKeyring && HasEmbeddedCredentials(c.APIURL) {
		return ErrEmbeddedCredentials
	}
	return nil
}

// Save writes the file-backed settings to c.Path. A keyring-sourced URL is
// never written to disk.
func Save(c Config) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	if c.Source != SourceKeyring {
		v.Set("api_url", c.APIURL)
	}
	v.Set("debug", c.Debug)
	v.Set("request_timeout", c.RequestTimeout.String())
	if err := v.WriteConfigAs(c.Path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// HasEmbeddedCredentials reports whether rawURL carries a password
func HasEmbeddedCredentials(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath resolves a leading "~" to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
