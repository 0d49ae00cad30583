package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Service   string        `yaml:"service"`
	HTTPAddr  string        `yaml:"http_addr"`
	Verbose   bool          `yaml:"verbose"`
	Timezone  string        `yaml:"timezone"`
	PublicURL string        `yaml:"public_url"`
	Postgres  Postgres      `yaml:"postgres"`
	Redis     Redis         `yaml:"redis"`
	Kafka     Kafka         `yaml:"kafka"`
	Upstreams Upstreams     `yaml:"upstreams"`
	Nutrition Nutrition     `yaml:"nutrition"`
	Timeout   time.Duration `yaml:"http_timeout"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type Redis struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Kafka struct {
	Broker       string `yaml:"broker"`
	CareLogTopic string `yaml:"care_log_topic"`
	GroupID      string `yaml:"group_id"`
}

type Upstreams struct {
	MenuSvcURL      string `yaml:"menu_svc_url"`
	CareLogSvcURL   string `yaml:"carelog_svc_url"`
	NutritionSvcURL string `yaml:"nutrition_svc_url"`
}

type Nutrition struct {
	SummaryTTL      time.Duration       `yaml:"summary_ttl"`
	ComputeTimeout  time.Duration       `yaml:"compute_timeout"`
	DuplicateTTL    time.Duration       `yaml:"duplicate_ttl"`
	CareLogPageSize int                 `yaml:"care_log_page_size"`
	SlotKeywords    map[string][]string `yaml:"slot_keywords"`
}

// Default returns the configuration a service gets with no file and no
// environment overrides.
func Default(service string) *Config {
	return &Config{
		Service:   service,
		HTTPAddr:  ":8080",
		Timezone:  "Asia/Ho_Chi_Minh",
		PublicURL: "http://localhost:8080",
		Postgres: Postgres{
			Host:    "localhost",
			Port:    "5432",
			Name:    "carehome",
			User:    "postgres",
			SSLMode: "disable",
		},
		Redis: Redis{Host: "localhost", Port: "6379"},
		Kafka: Kafka{
			Broker:       "localhost:9092",
			CareLogTopic: "care-logs",
			GroupID:      service + "-consumer",
		},
		Upstreams: Upstreams{
			MenuSvcURL:      "http://localhost:8081",
			CareLogSvcURL:   "http://localhost:8082",
			NutritionSvcURL: "http://localhost:8083",
		},
		Nutrition: Nutrition{
			SummaryTTL:      10 * time.Minute,
			ComputeTimeout:  30 * time.Second,
			DuplicateTTL:    5 * time.Minute,
			CareLogPageSize: 100,
		},
		Timeout: 10 * time.Second,
	}
}

// Load layers defaults, the YAML file named by CONFIG_FILE (if any) and
// environment variables, in that order.
func Load(service string) (*Config, error) {
	cfg := Default(service)
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) ApplyEnv() {
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.PublicURL = getEnv("PUBLIC_URL", c.PublicURL)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)

	c.Postgres.Host = getEnv("DB_HOST", c.Postgres.Host)
	c.Postgres.Port = getEnv("DB_PORT", c.Postgres.Port)
	c.Postgres.Name = getEnv("DB_NAME", c.Postgres.Name)
	c.Postgres.User = getEnv("DB_USER", c.Postgres.User)
	c.Postgres.Password = getEnv("DB_PASSWORD", c.Postgres.Password)

	c.Redis.Host = getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getEnv("REDIS_PORT", c.Redis.Port)

	c.Kafka.Broker = getEnv("KAFKA_BROKER", c.Kafka.Broker)
	c.Kafka.CareLogTopic = getEnv("KAFKA_CARE_LOG_TOPIC", c.Kafka.CareLogTopic)

	c.Upstreams.MenuSvcURL = getEnv("MENU_SVC_URL", c.Upstreams.MenuSvcURL)
	c.Upstreams.CareLogSvcURL = getEnv("CARELOG_SVC_URL", c.Upstreams.CareLogSvcURL)
	c.Upstreams.NutritionSvcURL = getEnv("NUTRITION_SVC_URL", c.Upstreams.NutritionSvcURL)

	c.Nutrition.SummaryTTL = getEnvDuration("SUMMARY_TTL", c.Nutrition.SummaryTTL)
	c.Nutrition.ComputeTimeout = getEnvDuration("COMPUTE_TIMEOUT", c.Nutrition.ComputeTimeout)
	c.Timeout = getEnvDuration("HTTP_TIMEOUT", c.Timeout)
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (p Postgres) DSN() string {
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=" + p.SSLMode
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}
