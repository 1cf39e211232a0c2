package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
	APIAddress     string   `env:"API_ADDRESS" envDefault:":8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://localhost:3000"`

	Postgres      PostgresConfig
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`

	SessionSecret string        `env:"SESSION_SECRET,required,notEmpty"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	Redis     RedisConfig
	RateLimit RateLimitConfig

	Rewriter      RewriterConfig
	NegativeWords []string      `env:"NEGATIVE_WORDS" envSeparator:","`
	ApprovalTTL   time.Duration `env:"APPROVAL_TTL" envDefault:"30m"`

	Streak StreakConfig
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB"`
}

type RedisConfig struct {
	Address  string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type RateLimitConfig struct {
	MaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"10"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}

type RewriterConfig struct {
	APIKey      string  `env:"REWRITER_API_KEY"`
	GroqAPIKey  string  `env:"GROQ_API_KEY"`
	BaseURL     string  `env:"REWRITER_BASE_URL" envDefault:"https://api.groq.com/openai/v1/"`
	Model       string  `env:"REWRITER_MODEL" envDefault:"llama3-8b-8192"`
	MaxTokens   int64   `env:"REWRITER_MAX_TOKENS" envDefault:"500"`
	Temperature float64 `env:"REWRITER_TEMPERATURE" envDefault:"0.7"`
}

// Key prefers the dedicated key and falls back to the Groq one.
func (rc RewriterConfig) Key() string {
	if rc.APIKey != "" {
		return rc.APIKey
	}
	return rc.GroqAPIKey
}

type StreakConfig struct {
	GraceDays int    `env:"STREAK_GRACE_DAYS" envDefault:"2"`
	Timezone  string `env:"STREAK_TIMEZONE" envDefault:"UTC"`
	// Daily rollover time, HH:MM in Timezone.
	RolloverAt string `env:"STREAK_ROLLOVER_AT" envDefault:"00:05"`
}

func (sc StreakConfig) Location() *time.Location {
	loc, err := time.LoadLocation(sc.Timezone)
	if err != nil {
		log.Printf("unknown STREAK_TIMEZONE %q, using UTC", sc.Timezone)
		return time.UTC
	}
	return loc
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		cfg, err := Parse()
		if err != nil {
			log.Fatal("parsing config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.New("parse env: " + err.Error())
	}
	return &cfg, nil
}
