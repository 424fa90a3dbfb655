package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type config struct {
	Server    ServerConfig    `yaml:"server"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Client    ClientConfig    `yaml:"client"`
	App       AppConfig       `yaml:"app"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New reads the yaml file named by CONFIG_FILE (data/config.yaml by default).
// A .env file, when present, is loaded into the environment first.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds a Service from raw yaml, filling defaults and validating.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		Server: ServerConfig{
			Address:        ":8080",
			MetricsAddress: ":8081",
			StorageBackend: BackendMemory,
		},
		Postgres:  PostgresConfig{PortNum: 5432, SSL: "disable"},
		Memcached: MemcachedConfig{TTLSeconds: 300},
		Client: ClientConfig{
			URL:       "http://localhost:8080",
			TimeoutMs: 5000,
		},
		Jaeger: JaegerConfig{Service: "expenses-ledger"},
	}
}

func (s *Service) Validate() error {
	switch s.config.Server.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if s.config.Postgres.Hostname == "" || s.config.Postgres.Db == "" {
			return errors.New("postgres backend needs host and db")
		}
	default:
		return errors.Errorf("unknown storage backend %q", s.config.Server.StorageBackend)
	}
	if s.config.Client.TimeoutMs <= 0 {
		return errors.New("client timeout-ms must be positive")
	}
	if s.config.Memcached.TTLSeconds < 0 {
		return errors.New("memcached ttl-seconds must not be negative")
	}
	if u := s.config.App.DefaultUserName; u != "" {
		if _, err := s.config.App.DefaultUser(); err != nil {
			return errors.Wrapf(err, "app default-user %q", u)
		}
	}
	return nil
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Client() *ClientConfig {
	return &s.config.Client
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
