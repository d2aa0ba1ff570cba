package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Elastic  ElasticsearchConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// ElasticsearchConfig leaves search disabled when Addresses is empty.
type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
}

func (c ElasticsearchConfig) Enabled() bool {
	return len(c.Addresses) > 0
}

type CatalogConfig struct {
	TreeCacheTTL    time.Duration
	ProductCacheTTL time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

var defaults = map[string]interface{}{
	"app.env":   "dev",
	"grpc.port": ":8082",
	"http.port": ":8080",

	"logger.level":              "debug",
	"logger.encoding":           "console",
	"logger.disable_caller":     false,
	"logger.disable_stacktrace": true,

	"postgres.host":               "localhost",
	"postgres.port":               "5433",
	"postgres.user":               "omnipos",
	"postgres.password":           "omnipos",
	"postgres.db":                 "omnipos_catalog",
	"postgres.sslmode":            "disable",
	"postgres.max_open_conns":     10,
	"postgres.max_idle_conns":     5,
	"postgres.conn_max_lifetime":  300,
	"postgres.conn_max_idle_time": 60,

	"redis.addr":     "localhost:6379",
	"redis.password": "",
	"redis.db":       0,

	"kafka.brokers":  "localhost:9092",
	"kafka.topic":    "catalog.categories",
	"kafka.group_id": "catalog-service",

	"elasticsearch.addresses": "",
	"elasticsearch.username":  "",
	"elasticsearch.password":  "",

	"catalog.tree_cache_ttl":    "5m",
	"catalog.product_cache_ttl": "5m",
	"catalog.default_page_size": 20,
	"catalog.max_page_size":     100,
}

// LoadEnv reads the configuration from the environment. Keys map to upper-case
// variables with dots replaced by underscores: postgres.host is POSTGRES_HOST.
func LoadEnv() *Config {
	return load(viper.New())
}

func load(v *viper.Viper) *Config {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			AppEnv:   v.GetString("app.env"),
			GRPCPort: v.GetString("grpc.port"),
			HTTPPort: v.GetString("http.port"),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("logger.level"),
			Encoding:          v.GetString("logger.encoding"),
			DisableCaller:     v.GetBool("logger.disable_caller"),
			DisableStacktrace: v.GetBool("logger.disable_stacktrace"),
		},
		Postgres: PostgresConfig{
			Host:            v.GetString("postgres.host"),
			Port:            v.GetString("postgres.port"),
			User:            v.GetString("postgres.user"),
			Password:        v.GetString("postgres.password"),
			DBName:          v.GetString("postgres.db"),
			SSLMode:         v.GetString("postgres.sslmode"),
			MaxOpenConns:    v.GetInt("postgres.max_open_conns"),
			MaxIdleConns:    v.GetInt("postgres.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("postgres.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("postgres.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Kafka: KafkaConfig{
			Brokers: list(v.GetString("kafka.brokers")),
			Topic:   v.GetString("kafka.topic"),
			GroupID: v.GetString("kafka.group_id"),
		},
		Elastic: ElasticsearchConfig{
			Addresses: list(v.GetString("elasticsearch.addresses")),
			Username:  v.GetString("elasticsearch.username"),
			Password:  v.GetString("elasticsearch.password"),
		},
		Catalog: CatalogConfig{
			TreeCacheTTL:    v.GetDuration("catalog.tree_cache_ttl"),
			ProductCacheTTL: v.GetDuration("catalog.product_cache_ttl"),
			DefaultPageSize: v.GetInt("catalog.default_page_size"),
			MaxPageSize:     v.GetInt("catalog.max_page_size"),
		},
	}
}

// list splits a comma separated value, dropping blanks.
func list(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
