package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
	apiKeyEnv     = "OXR_API_KEY"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	OXR       OXRConfig       `yaml:"openexchangerates"`
	Storage   StorageConfig   `yaml:"storage"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Redis     RedisConfig     `yaml:"redis"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Server    ServerConfig    `yaml:"server"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the file named by CONFIG_FILE, data/config.yaml by default.
// A .env file in the working directory is loaded first when present.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}
	return NewFromFile(path)
}

func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return parse(rawYAML)
}

func parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.config.App.ConvertTo = strings.ToUpper(s.config.App.ConvertTo)

	if err = validator.New().Struct(&s.config); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	if err = s.config.OXR.loadKey(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			ConvertTo:            "EUR",
			DecimalsNum:          2,
			UpdateFrequencyHours: 12,
			CurrenciesFile:       "data/currencies.json",
			NumberLocale:         "en",
			UpdatedLayout:        defaultUpdatedLayout,
			FontSizes: FontSizeConfig{
				Message:      10,
				Currencies:   12,
				RatesUpdated: 8,
				Usage:        8,
			},
			DisplayModules: DisplayModuleConfig{RatesUpdated: true, Usage: true},
		},
		OXR: OXRConfig{
			ApiKeyFile:     "data/api.key",
			Url:            "https://openexchangerates.org/api",
			TimeoutSeconds: 10,
		},
		Storage:  StorageConfig{Backend: BackendMemory, SnapshotKey: "conversionRates"},
		Telegram: TelegramConfig{TimeoutSec: 15},
		Server:   ServerConfig{Address: ":8080"},
		Tracing:  TracingConfig{Service: "currconv"},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) OXR() *OXRConfig {
	return &s.config.OXR
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Redis() *RedisConfig {
	return &s.config.Redis
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
