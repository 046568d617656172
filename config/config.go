package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Server      ServerConfig      `yaml:"server"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Quota       QuotaConfig       `yaml:"quota"`
	Mongo       MongoConfig       `yaml:"mongo"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	Translation TranslationConfig `yaml:"translation"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GeminiConfig describes the hosted model used for summarization and
// translation. The API key itself comes from the GEMINI_API_KEY env var.
type GeminiConfig struct {
	ModelName string `yaml:"model_name"`
	// TimeoutSeconds bounds a single generate call. 0 means 60s.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type FetchConfig struct {
	// TimeoutSeconds bounds the static HTML fetch. 0 means 15s.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// MinContentChars is the minimum extracted-text length before the
	// fetcher falls back to headless rendering.
	MinContentChars int `yaml:"min_content_chars"`
	// RenderFallback enables the chromedp rendering fallback for
	// client-side-rendered blogs.
	RenderFallback bool `yaml:"render_fallback"`
}

// QuotaConfig defines rate/daily limits for outbound LLM calls.
// Zero or negative values mean no limit in that direction.
type QuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type MongoConfig struct {
	// URI and DBName may be overridden by MONGO_URI / MONGO_DB env vars.
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type PostgresConfig struct {
	// DSN may be overridden by the POSTGRES_DSN env var.
	DSN string `yaml:"dsn"`
}

type KafkaConfig struct {
	// Brokers empty disables event publishing entirely.
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

type TranslationConfig struct {
	// MaxAttempts bounds translate-only retries against the model.
	MaxAttempts int `yaml:"max_attempts"`
	// BackoffSeconds is the initial backoff; doubled per attempt.
	BackoffSeconds int `yaml:"backoff_seconds"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyEnvOverrides(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// applyEnvOverrides lets deployment secrets win over config.yaml values.
func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		c.Mongo.DBName = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
