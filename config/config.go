package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Cash     CashConfig
}

type ServerConfig struct {
	AppEnv          string `env:"APP_ENV" envDefault:"dev"`
	GRPCPort        string `env:"GRPC_PORT" envDefault:":8085"`
	// ExtraLocalePath is an optional go-i18n message file loaded on top of
	// the embedded catalogs.
	ExtraLocalePath string `env:"I18N_EXTRA_LOCALE"`
}

type LoggerConfig struct {
	Level             string `env:"LOGGER_LEVEL" envDefault:"debug"`
	Encoding          string `env:"LOGGER_ENCODING" envDefault:"console"`
	DisableCaller     bool   `env:"LOGGER_DISABLE_CALLER" envDefault:"false"`
	DisableStacktrace bool   `env:"LOGGER_DISABLE_STACKTRACE" envDefault:"true"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver          string `env:"DB_DRIVER" envDefault:"postgres"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"omnipos_shift.sqlite"`
	Host            string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port            string `env:"POSTGRES_PORT" envDefault:"5433"`
	User            string `env:"POSTGRES_USER" envDefault:"omnipos"`
	Password        string `env:"POSTGRES_PASSWORD" envDefault:"omnipos"`
	DBName          string `env:"POSTGRES_DB" envDefault:"omnipos_shift"`
	SSLMode         string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime int    `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"300"`
	ConnMaxIdleTime int    `env:"POSTGRES_CONN_MAX_IDLE_TIME" envDefault:"60"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"true"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type KafkaConfig struct {
	Enabled       bool     `env:"KAFKA_ENABLED" envDefault:"true"`
	Brokers       []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	TimelineTopic string   `env:"KAFKA_TOPIC_TIMELINE" envDefault:"shift.timeline"`
	RestockTopic  string   `env:"KAFKA_TOPIC_RESTOCK" envDefault:"inventory.restocked"`
	GroupID       string   `env:"KAFKA_GROUP_SHIFT" envDefault:"shift"`
}

type ElasticsearchConfig struct {
	Addresses []string `env:"ELASTICSEARCH_ADDRESSES" envDefault:"http://localhost:9200" envSeparator:","`
	Username  string   `env:"ELASTICSEARCH_USERNAME" envDefault:""`
	Password  string   `env:"ELASTICSEARCH_PASSWORD" envDefault:""`
	Index     string   `env:"ELASTICSEARCH_TIMELINE_INDEX" envDefault:"shift-timeline"`
}

// CashConfig holds the register policy thresholds.
type CashConfig struct {
	MinCashRecommended  decimal.Decimal `env:"MIN_CASH_RECOMMENDED" envDefault:"200.00"`
	MinCoinsRecommended decimal.Decimal `env:"MIN_COINS_RECOMMENDED" envDefault:"50.00"`
	MaxCashDivergence   decimal.Decimal `env:"MAX_CASH_DIVERGENCE" envDefault:"5.00"`
	MinReasonLength     int             `env:"ADJUSTMENT_MIN_REASON_LENGTH" envDefault:"10"`
	BootstrapCash       decimal.Decimal `env:"BOOTSTRAP_INITIAL_CASH" envDefault:"200.00"`
	BootstrapCoins      decimal.Decimal `env:"BOOTSTRAP_INITIAL_COINS" envDefault:"50.00"`
	ConsistencyEpsilon  decimal.Decimal `env:"PAYMENT_CONSISTENCY_EPSILON" envDefault:"0.01"`
}

// LoadEnv reads an optional .env file and parses the process environment.
func LoadEnv() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the process environment without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("parse env: unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}
