package config

import (
	"strconv"
	"time"
)

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
}

type PostgresConfig struct {
	// Either DSN directly (e.g. from a managed secret),
	// or components to build it if DSN is empty.
	DSN      string `env:"DSN"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DBNAME"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

func (c PostgresConfig) EffectiveDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "postgres://" + c.User + ":" + c.Password +
		"@" + c.Host + ":" + strconv.Itoa(c.Port) +
		"/" + c.DBName + "?sslmode=" + c.SSLMode
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// KafkaConfig configures the inbound side: the topic the event bus
// redelivers domain events on, and the consumer group identity.
type KafkaConfig struct {
	Enabled  bool     `env:"ENABLED" envDefault:"false"`
	Brokers  []string `env:"BROKERS" envDefault:"localhost:9092"`
	ClientID string   `env:"CLIENT_ID" envDefault:"musafir"`
	GroupID  string   `env:"GROUP_ID" envDefault:"musafir-consumer"`
	Topic    string   `env:"TOPIC" envDefault:"flight-events"`
}

// IngressConfig configures the outbound side: the shared event-bus
// ingress this service POSTs its own domain events to.
type IngressConfig struct {
	BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8081"`
	APIKey         string `env:"API_KEY"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"10"`
	// Producer identifies this service in outbound envelopes.
	Producer string `env:"PRODUCER" envDefault:"musafir"`
}

func (c IngressConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"musafir-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "http://otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Postgres      PostgresConfig      `envPrefix:"PG_"`
	Redis         RedisConfig         `envPrefix:"REDIS_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Ingress       IngressConfig       `envPrefix:"BUS_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
