package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	GenAI    GenAIConfig    `mapstructure:"genai"`
	Search   SearchConfig   `mapstructure:"search"`
	Goals    GoalsConfig    `mapstructure:"goals"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN builds the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

// GenAIConfig holds settings for the generative-language service used
// to expand a job description into search queries.
type GenAIConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	NumQueries int    `mapstructure:"num_queries"`
}

// SearchConfig holds settings for the outbound job-search provider.
type SearchConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	DefaultLocation string        `mapstructure:"default_location"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// GoalsConfig holds the fixed weekly/monthly targets shown on the dashboard.
type GoalsConfig struct {
	ApplicationsPerWeek int     `mapstructure:"applications_per_week"`
	RevenuePerMonth     float64 `mapstructure:"revenue_per_month"`
	ContactsPerWeek     int     `mapstructure:"contacts_per_week"`
	PostsPerWeek        int     `mapstructure:"posts_per_week"`
}

// Capabilities describes which external services are usable, derived once
// from credential presence at load time. The search pipeline receives this
// descriptor instead of probing the environment at arbitrary depth.
type Capabilities struct {
	GenAI  bool
	Search bool
}

// Capabilities reports which outbound integrations have credentials configured.
func (c *Config) Capabilities() Capabilities {
	return Capabilities{
		GenAI:  c.GenAI.APIKey != "",
		Search: c.Search.APIKey != "",
	}
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/huntboard.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "huntboard")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("genai.model", "gemini-2.0-flash-exp")
	v.SetDefault("genai.num_queries", 3)
	v.SetDefault("search.base_url", "https://serpapi.com/search.json")
	v.SetDefault("search.default_location", "United States")
	v.SetDefault("search.timeout", 30*time.Second)
	v.SetDefault("goals.applications_per_week", 50)
	v.SetDefault("goals.revenue_per_month", 8000)
	v.SetDefault("goals.contacts_per_week", 5)
	v.SetDefault("goals.posts_per_week", 3)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("genai.api_key", "GEMINI_API_KEY")
	v.BindEnv("genai.model", "GEMINI_MODEL")
	v.BindEnv("search.api_key", "SERP_API_KEY")
	v.BindEnv("search.base_url", "SERP_BASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
