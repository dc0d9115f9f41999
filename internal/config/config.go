package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	Log            Log            `yaml:"log"`
	Http           Http           `yaml:"http"`
	Infrastructure Infrastructure `yaml:"infrastructure"`
	Clients        Clients        `yaml:"clients"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Http struct {
	Addr        string   `yaml:"addr" env:"HTTP_ADDR" env-default:":5000"`
	BodyLimit   int      `yaml:"body_limit" env:"HTTP_BODY_LIMIT" env-default:"33554432"`
	CorsOrigins []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

type Infrastructure struct {
	Db Db `yaml:"db"`
}

type Db struct {
	Driver          string        `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	Dsn             string        `yaml:"dsn" env:"DATABASE_URL"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	InsertBatchSize int           `yaml:"insert_batch_size" env:"DB_INSERT_BATCH_SIZE" env-default:"100"`
	MigrateOnStart  bool          `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START" env-default:"true"`
}

type Clients struct {
	RabbitMQ RabbitMQ `yaml:"rabbitmq"`
}

// RabbitMQ publishing is disabled while Url is empty.
type RabbitMQ struct {
	Url        string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"vapt.events"`
	RoutingKey string `yaml:"routing_key" env:"RABBITMQ_ROUTING_KEY" env-default:"report.ingested"`
}

// Load reads .env (if present), then CONFIG_PATH (if set) and the environment on top of it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (this *Config) Validate() error {
	if this.Infrastructure.Db.Dsn == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	switch this.Infrastructure.Db.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("config: unsupported db driver %q", this.Infrastructure.Db.Driver)
	}
	if this.Infrastructure.Db.InsertBatchSize <= 0 {
		return fmt.Errorf("config: insert batch size must be positive")
	}
	return nil
}

func Usage() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return err.Error()
	}
	return text
}
