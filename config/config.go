package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Repositories struct {
		Postgres struct {
			URL      string `mapstructure:"url"`
			Host     string `mapstructure:"host"`
			Password string `mapstructure:"password"`
			Port     string `mapstructure:"port"`
			Username string `mapstructure:"username"`
			DB       string `mapstructure:"db"`
			SSLMODE  string `mapstructure:"SSLMODE"`
			MaxConns int32  `mapstructure:"maxConns"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	LLM struct {
		APIKey              string        `mapstructure:"apiKey"`
		Model               string        `mapstructure:"model"`
		Temperature         float32       `mapstructure:"temperature"`
		Timeout             time.Duration `mapstructure:"timeout"`
		RankRecommendations bool          `mapstructure:"rankRecommendations"`
	} `mapstructure:"llm"`
	Cache struct {
		MarketDataTTL time.Duration `mapstructure:"marketDataTTL"`
	} `mapstructure:"cache"`
}

// envBindings maps config keys to the environment variables the deployment
// is expected to provide.
var envBindings = map[string]string{
	"mode":                      "APP_ENV",
	"server.HTTPPort":           "HTTP_PORT",
	"repositories.postgres.url": "DATABASE_URL",
	"repositories.postgres.db":  "DB_NAME",
	"llm.apiKey":                "GEMINI_API_KEY",
	"llm.model":                 "GEMINI_MODEL",
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&config)
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func applyDefaults(c *Config) {
	if c.Server.HTTPPort == "" {
		c.Server.HTTPPort = "8000"
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = 60 * time.Second
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.0-flash"
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.Cache.MarketDataTTL <= 0 {
		c.Cache.MarketDataTTL = 5 * time.Minute
	}
}
