package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv names the environment variable holding the dev.to API key.
const APIKeyEnv = "DEVTO_API_KEY"

type Config struct {
	Publish      PublishConfig `mapstructure:"publish" yaml:"publish"`
	Log          LogConfig     `mapstructure:"log" yaml:"log"`
	Feed         FeedConfig    `mapstructure:"feed" yaml:"feed"`
	ArticlesFile string        `mapstructure:"articles_file" yaml:"articles_file,omitempty"`
}

type PublishConfig struct {
	// Published false turns every publish into a draft.
	Published bool `mapstructure:"published" yaml:"published"`
	// Describe fills a missing description from the article's first paragraph.
	Describe bool `mapstructure:"describe" yaml:"describe"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type FeedConfig struct {
	Username string `mapstructure:"username" yaml:"username,omitempty"`
}

func Default() *Config {
	return &Config{
		Publish: PublishConfig{
			Published: true,
			Describe:  false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func Dir() string {
	if dir := os.Getenv("DEVPUB_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".devpub")
}

func DBPath() string {
	return filepath.Join(Dir(), "devpub.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// APIKey reads the credential from the environment. Call it once at startup
// and pass the value on; an empty string means no key is configured.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

// Load reads config.yaml if present. Any key can be overridden with a
// DEVPUB_ environment variable, e.g. DEVPUB_LOG_LEVEL=debug.
func Load() (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("publish.published", def.Publish.Published)
	v.SetDefault("publish.describe", def.Publish.Describe)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("feed.username", "")
	v.SetDefault("articles_file", "")

	v.SetEnvPrefix("DEVPUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath()); err == nil {
		v.SetConfigFile(configPath())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
