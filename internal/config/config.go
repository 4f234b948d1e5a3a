// Package config loads the tutor configuration from a TOML file, TUTOR_
// environment variables and the secret store.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/course-tutor/internal/domain"
)

const (
	appName    = "course-tutor"
	configName = "config"
	configType = "toml"
	envPrefix  = "TUTOR"
)

type Config struct {
	Platform  PlatformConfig  `mapstructure:"platform"`
	Reasoning ReasoningConfig `mapstructure:"reasoning"`
	Server    ServerConfig    `mapstructure:"server"`
	Index     IndexConfig     `mapstructure:"index"`
	Log       LogConfig       `mapstructure:"log"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
}

type PlatformConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	LoginPath   string        `mapstructure:"login_path"`
	CatalogPath string        `mapstructure:"catalog_path"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	PasswordRef string        `mapstructure:"password_ref"`
	Timeout     time.Duration `mapstructure:"timeout"`
	// SummaryKeywords mark the link to a course's summary page.
	SummaryKeywords    []string `mapstructure:"summary_keywords"`
	WebServicePath     string   `mapstructure:"webservice_path"`
	WebServiceToken    string   `mapstructure:"webservice_token"`
	WebServiceTokenRef string   `mapstructure:"webservice_token_ref"`
}

type ReasoningConfig struct {
	APIKey         string  `mapstructure:"api_key"`
	APIKeyRef      string  `mapstructure:"api_key_ref"`
	BaseURL        string  `mapstructure:"base_url"`
	Model          string  `mapstructure:"model"`
	RewriteModel   string  `mapstructure:"rewrite_model"`
	SuggestModel   string  `mapstructure:"suggest_model"`
	EmbeddingModel string  `mapstructure:"embedding_model"`
	Temperature    float32 `mapstructure:"temperature"`
	MaxIterations  int     `mapstructure:"max_iterations"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Debug          bool     `mapstructure:"debug"`
}

type IndexConfig struct {
	Path            string        `mapstructure:"path"`
	SnapshotPath    string        `mapstructure:"snapshot_path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	// FAQPath points at a text file replacing the built-in platform FAQ.
	FAQPath string `mapstructure:"faq_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SecretsConfig struct {
	FileRoot string `mapstructure:"file_root"`
}

// SetDefaults registers every key so environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper, configDir string, cacheDir string) {
	v.SetDefault("platform.base_url", "")
	v.SetDefault("platform.login_path", "/login/index.php")
	v.SetDefault("platform.catalog_path", "/course/index.php")
	v.SetDefault("platform.username", "")
	v.SetDefault("platform.password", "")
	v.SetDefault("platform.password_ref", "")
	v.SetDefault("platform.timeout", 10*time.Second)
	v.SetDefault("platform.summary_keywords", []string{"ementa"})
	v.SetDefault("platform.webservice_path", "/webservice/rest/server.php")
	v.SetDefault("platform.webservice_token", "")
	v.SetDefault("platform.webservice_token_ref", "")

	v.SetDefault("reasoning.api_key", "")
	v.SetDefault("reasoning.api_key_ref", "")
	v.SetDefault("reasoning.base_url", "")
	v.SetDefault("reasoning.model", "gpt-4.1-mini")
	v.SetDefault("reasoning.rewrite_model", "gpt-4.1-mini")
	v.SetDefault("reasoning.suggest_model", "gpt-4o-mini")
	v.SetDefault("reasoning.embedding_model", "text-embedding-3-small")
	v.SetDefault("reasoning.temperature", 0.7)
	v.SetDefault("reasoning.max_iterations", 3)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.debug", false)

	v.SetDefault("index.path", filepath.Join(cacheDir, "index.db"))
	v.SetDefault("index.snapshot_path", filepath.Join(cacheDir, "index.toml"))
	v.SetDefault("index.refresh_interval", 24*time.Hour)
	v.SetDefault("index.faq_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("secrets.file_root", filepath.Join(configDir, "secrets"))
}

// Load reads configFile, or config.toml from the user config directory when
// configFile is empty. A missing default file is not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	configDir, err := DefaultConfigDir()
	if err != nil {
		return Config{}, err
	}
	cacheDir, err := defaultCacheDir()
	if err != nil {
		return Config{}, err
	}

	SetDefaults(v, configDir, cacheDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Reasoning.MaxIterations < 1 {
		return fmt.Errorf("reasoning.max_iterations must be at least 1, got %d", c.Reasoning.MaxIterations)
	}
	if c.Platform.Timeout <= 0 {
		return fmt.Errorf("platform.timeout must be positive, got %s", c.Platform.Timeout)
	}
	return nil
}

// RequirePlatform reports the platform settings a login needs.
func (c Config) RequirePlatform() error {
	var missing []string
	if c.Platform.BaseURL == "" {
		missing = append(missing, "platform.base_url")
	}
	if c.Platform.Username == "" {
		missing = append(missing, "platform.username")
	}
	if c.Platform.Password == "" {
		missing = append(missing, "platform.password")
	}
	return missingKeys(missing)
}

func (c Config) RequireReasoning() error {
	if c.Reasoning.APIKey == "" {
		return missingKeys([]string{"reasoning.api_key"})
	}
	return nil
}

func (c Config) RequireWebService() error {
	var missing []string
	if c.Platform.BaseURL == "" {
		missing = append(missing, "platform.base_url")
	}
	if c.Platform.WebServiceToken == "" {
		missing = append(missing, "platform.webservice_token")
	}
	return missingKeys(missing)
}

func missingKeys(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return fmt.Errorf("missing configuration: %s (set it in config.toml, as %s_* env or through a *_ref secret)",
		strings.Join(keys, ", "), envPrefix)
}

type SecretResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// ResolveSecrets fills empty secret values from the store. An explicit *_ref
// must resolve; otherwise the well-known key is tried and may be absent.
func (c *Config) ResolveSecrets(ctx context.Context, resolver SecretResolver) error {
	fields := []struct {
		name     string
		value    *string
		ref      string
		fallback string
	}{
		{name: "platform.password", value: &c.Platform.Password, ref: c.Platform.PasswordRef, fallback: domain.SecretPlatformPassword},
		{name: "platform.webservice_token", value: &c.Platform.WebServiceToken, ref: c.Platform.WebServiceTokenRef, fallback: domain.SecretWebServiceToken},
		{name: "reasoning.api_key", value: &c.Reasoning.APIKey, ref: c.Reasoning.APIKeyRef, fallback: domain.SecretReasoningAPIKey},
	}

	for _, field := range fields {
		if *field.value != "" {
			continue
		}

		ref := field.ref
		explicit := ref != ""
		if !explicit {
			ref = field.fallback
		}

		value, err := resolver.Resolve(ctx, ref)
		if err != nil {
			if !explicit && errors.Is(err, domain.ErrSecretNotFound) {
				continue
			}
			return fmt.Errorf("resolve %s: %w", field.name, err)
		}
		*field.value = value
	}
	return nil
}

func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

func defaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(dir, appName), nil
}
