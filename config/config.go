package config

import "github.com/kelseyhightower/envconfig"

const (
	PatientsSourceFixture = "fixture"
	PatientsSourceMongo   = "mongo"
)

type Config struct {
	HttpPort          uint16 `envconfig:"ROSTER_HTTP_PORT" default:"8080" required:"true"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	CatalogPath       string `envconfig:"ROSTER_CATALOG_PATH"`
	IntakeSlotsNeeded int    `envconfig:"ROSTER_INTAKE_SLOTS_NEEDED" default:"0"`
	PatientsSource    string `envconfig:"ROSTER_PATIENTS_SOURCE" default:"fixture"`
	FixturePath       string `envconfig:"ROSTER_FIXTURE_PATH"`
	SessionCacheSize  int    `envconfig:"ROSTER_SESSION_CACHE_SIZE" default:"1000"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
