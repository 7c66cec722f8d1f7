// Package config holds the service configuration.
package config

// #region imports
import (
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region config

// Config holds the banking agent configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Models    ModelsConfig    `yaml:"models"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Account   AccountConfig   `yaml:"account"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8000"
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // SQLite file for accounts and logs
}

type ModelsConfig struct {
	BaseURL        string `yaml:"base_url"` // model sidecar, e.g. "http://localhost:9090"
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type KnowledgeConfig struct {
	VectorsPath  string `yaml:"vectors_path"`
	PassagesPath string `yaml:"passages_path"`
	CatalogPath  string `yaml:"catalog_path"` // empty = built-in catalog
}

type AccountConfig struct {
	ID             int64  `yaml:"id"`
	Name           string `yaml:"name"`
	OpeningBalance string `yaml:"opening_balance"`
}

// #endregion config

// #region load

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns the default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8000"},
		Database: DatabaseConfig{Path: "banking_system.db"},
		Models: ModelsConfig{
			BaseURL:        "http://localhost:9090",
			TimeoutSeconds: 30,
		},
		Knowledge: KnowledgeConfig{
			VectorsPath:  "data/vectors.bin",
			PassagesPath: "data/passages.txt",
		},
		Account: AccountConfig{
			ID:             1,
			Name:           "Admin",
			OpeningBalance: "5000",
		},
	}
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}
	if cfg.Models.BaseURL == "" {
		cfg.Models.BaseURL = def.Models.BaseURL
	}
	if cfg.Models.TimeoutSeconds == 0 {
		cfg.Models.TimeoutSeconds = def.Models.TimeoutSeconds
	}
	if cfg.Knowledge.VectorsPath == "" {
		cfg.Knowledge.VectorsPath = def.Knowledge.VectorsPath
	}
	if cfg.Knowledge.PassagesPath == "" {
		cfg.Knowledge.PassagesPath = def.Knowledge.PassagesPath
	}
	if cfg.Account.ID == 0 {
		cfg.Account.ID = def.Account.ID
	}
	if cfg.Account.Name == "" {
		cfg.Account.Name = def.Account.Name
	}
	if cfg.Account.OpeningBalance == "" {
		cfg.Account.OpeningBalance = def.Account.OpeningBalance
	}
}

// #endregion load
