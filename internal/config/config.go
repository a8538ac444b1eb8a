// Package config loads application settings from defaults, an optional
// youshallpass.yaml file, YOUSHALLPASS_* environment variables and CLI flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/youshallpass/internal/crypto"
	"github.com/iudanet/youshallpass/internal/generator"
	"github.com/iudanet/youshallpass/internal/logging"
	"github.com/iudanet/youshallpass/internal/storage"
	"github.com/iudanet/youshallpass/internal/validation"
)

const (
	// AppName используется для каталогов, имени конфига и префикса переменных окружения
	AppName = "youshallpass"

	envPrefix = "YOUSHALLPASS"
)

// Ключи конфигурации
const (
	KeyDataDir             = "data_dir"
	KeyStorageBackend      = "storage.backend"
	KeyHashAlgorithm       = "hash.algorithm"
	KeyHashSalt            = "hash.salt"
	KeyGeneratorLength     = "generator.length"
	KeyGeneratorMaxAttempt = "generator.max_attempts"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
)

// Config is the complete application configuration
type Config struct {
	DataDir   string          `mapstructure:"data_dir"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Hash      HashConfig      `mapstructure:"hash"`
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// StorageConfig selects the profile store backend
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// HashConfig selects the secret hasher
type HashConfig struct {
	Algorithm string `mapstructure:"algorithm"`
	Salt      string `mapstructure:"salt"` // base64, только для argon2id
}

// GeneratorConfig holds password generator settings
type GeneratorConfig struct {
	Length      int `mapstructure:"length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// flagKeys связывает имена CLI флагов с ключами конфигурации
var flagKeys = map[string]string{
	"data-dir":   KeyDataDir,
	"storage":    KeyStorageBackend,
	"hash":       KeyHashAlgorithm,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

// Defaults returns the built-in configuration values
func Defaults() map[string]any {
	return map[string]any{
		KeyDataDir:             DefaultDataDir(),
		KeyStorageBackend:      storage.BackendFile,
		KeyHashAlgorithm:       crypto.AlgorithmSHA256,
		KeyHashSalt:            "",
		KeyGeneratorLength:     generator.DefaultLength,
		KeyGeneratorMaxAttempt: generator.DefaultMaxAttempts,
		KeyLogLevel:            "info",
		KeyLogFormat:           logging.FormatText,
	}
}

// DefaultDataDir returns $XDG_DATA_HOME/youshallpass, falling back to the
// user config directory and finally to ./.youshallpass
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return "." + AppName
}

// Load builds the configuration.
// cmd may be nil; configFile, when set, must exist.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(AppName)
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Отсутствие файла допустимо, только если путь не задан явно
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, KeyDataDir)
	}

	if !slices.Contains(storage.Backends, c.Storage.Backend) {
		return fmt.Errorf("%w: %s must be one of %s, got %q",
			ErrInvalidConfig, KeyStorageBackend, strings.Join(storage.Backends, ", "), c.Storage.Backend)
	}

	switch c.Hash.Algorithm {
	case crypto.AlgorithmSHA256:
	case crypto.AlgorithmArgon2id:
		if c.Hash.Salt == "" {
			return fmt.Errorf("%w: %s is required for %s", ErrInvalidConfig, KeyHashSalt, crypto.AlgorithmArgon2id)
		}
	default:
		return fmt.Errorf("%w: %s must be %s or %s, got %q",
			ErrInvalidConfig, KeyHashAlgorithm, crypto.AlgorithmSHA256, crypto.AlgorithmArgon2id, c.Hash.Algorithm)
	}

	if c.Generator.Length < validation.MinPasswordLen {
		return fmt.Errorf("%w: %s must be at least %d", ErrInvalidConfig, KeyGeneratorLength, validation.MinPasswordLen)
	}
	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyGeneratorMaxAttempt)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
	}

	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, c.Log.Format)
	}

	return nil
}
