package raagdna

import "github.com/raagdna/raagdna/pkg/models"

type Config struct {
	DBPath  string // when set (and no Catalog/Storage given), load from sqlite
	Catalog []models.Raga
	Storage Storage
	Logger  Logger
}

type Option func(*Config)

// WithCatalog supplies the reference table directly, bypassing storage.
func WithCatalog(ragas []models.Raga) Option {
	return func(c *Config) {
		c.Catalog = ragas
	}
}

// WithDBPath loads (seeding on first run) the catalog from a sqlite file.
func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

func WithStorage(storage Storage) Option {
	return func(c *Config) {
		c.Storage = storage
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() *Config {
	return &Config{}
}
