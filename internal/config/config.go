package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
)

const (
	configFile    = "data/config.yaml"
	envFile       = ".env"
	configPathKey = "CURRCONV_CONFIG"
	envPrefix     = "currconv"
)

var currencyCode = regexp.MustCompile(fmt.Sprintf(`^[A-Z]{%d}$`, currency.CodeLength))

type config struct {
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Rates    RatesConfig    `yaml:"rates"`
	Telegram TelegramConfig `yaml:"telegram"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// Service holds the settings of one process run. It is built once and never changed.
type Service struct {
	config config
}

func defaults() config {
	return config{
		App: AppConfig{
			Title:           "Currency Converter",
			DefaultFrom:     "EUR",
			DefaultTo:       "USD",
			DefaultAmount:   100,
			NotifyEnabled:   false,
			NotifyThreshold: 100,
			ExportTitle:     "Conversion History",
		},
		Storage: StorageConfig{
			DriverName: DriverSQLite,
			Source:     "history.sqlite3",
		},
		Kafka: KafkaConfig{
			Topic: "rate-alerts",
		},
		Tracing: TracingConfig{
			Service: "currconv",
		},
	}
}

// New loads .env, the yaml file and CURRCONV_* overrides, in that order.
// An empty path falls back to CURRCONV_CONFIG and then to data/config.yaml.
func New(path string) (*Service, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	if path == "" {
		path = os.Getenv(configPathKey)
	}
	if path == "" {
		path = configFile
	}

	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Info("config file not found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, errors.Wrap(err, "reading config file")
	default:
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if err = envconfig.Process(envPrefix, &s.config); err != nil {
		return nil, errors.Wrap(err, "applying env overrides")
	}

	if err = s.config.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return s, nil
}

func (c *config) validate() error {
	if !currencyCode.MatchString(c.App.DefaultFrom) {
		return errors.Errorf("default-from %q is not a currency code", c.App.DefaultFrom)
	}
	if !currencyCode.MatchString(c.App.DefaultTo) {
		return errors.Errorf("default-to %q is not a currency code", c.App.DefaultTo)
	}
	if c.App.DefaultAmount < 0 {
		return errors.New("default-amount must not be negative")
	}
	if c.App.NotifyThreshold < 0 {
		return errors.New("notify-threshold must not be negative")
	}
	switch c.Storage.DriverName {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.DriverName)
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Rates() *RatesConfig {
	return &s.config.Rates
}

func (s *Service) Fixer() *FixerConfig {
	return &s.config.Rates.Fixer
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
