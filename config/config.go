package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	UI       UIConfig       `yaml:"ui"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address               string `yaml:"address"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// DatabaseConfig selects the storage backend. Driver "sqlite" uses Path,
// driver "postgres" uses DSN.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
	Seed   bool   `yaml:"seed"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	HoldTTLSeconds    int                `yaml:"hold_ttl_seconds"`
	ReferenceCacheTTL int                `yaml:"reference_cache_ttl_seconds"`
	MaxSeats          int                `yaml:"max_seats"`
	ClassPrices       map[string]float64 `yaml:"class_prices"`
	DefaultClassPrice float64            `yaml:"default_class_price"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type UIConfig struct {
	Locale string `yaml:"locale"`
	Theme  string `yaml:"theme"`
}

type WorkerConfig struct {
	QRDir string `yaml:"qr_dir"`
	From  string `yaml:"from"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080", RequestTimeoutSeconds: 15},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "al_kawthar_flights.db",
			Seed:   true,
		},
		Kafka: KafkaConfig{
			BookingTopic:       "booking_events",
			NotificationsTopic: "booking_notifications",
			GroupID:            "alkawthar-worker",
		},
		Booking: BookingConfig{
			HoldTTLSeconds:    30,
			ReferenceCacheTTL: 300,
			MaxSeats:          10,
			ClassPrices: map[string]float64{
				"Economy":  450,
				"Business": 850,
				"First":    1200,
			},
			DefaultClassPrice: 500,
		},
		Auth: AuthConfig{
			JWTSecret:       "change-me",
			TokenTTLMinutes: 480,
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		UI:     UIConfig{Locale: "en", Theme: "light"},
		Worker: WorkerConfig{QRDir: "boarding_passes", From: "noreply@alkawthar.com"},
	}
}

// LoadConfig reads path on top of Default. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
