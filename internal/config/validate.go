package config

// #region imports
import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// #endregion

// #region validate

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}
	if strings.TrimSpace(cfg.Database.Path) == "" {
		return errors.New("database.path must be set")
	}
	if strings.TrimSpace(cfg.Models.BaseURL) == "" {
		return errors.New("models.base_url must be set")
	}
	if cfg.Models.TimeoutSeconds <= 0 {
		return fmt.Errorf("models.timeout_seconds must be positive, got %d", cfg.Models.TimeoutSeconds)
	}
	if strings.TrimSpace(cfg.Knowledge.VectorsPath) == "" {
		return errors.New("knowledge.vectors_path must be set")
	}
	if strings.TrimSpace(cfg.Knowledge.PassagesPath) == "" {
		return errors.New("knowledge.passages_path must be set")
	}
	if cfg.Account.ID <= 0 {
		return fmt.Errorf("account.id must be positive, got %d", cfg.Account.ID)
	}

	opening, err := decimal.NewFromString(cfg.Account.OpeningBalance)
	if err != nil {
		return fmt.Errorf("account.opening_balance %q is not a decimal", cfg.Account.OpeningBalance)
	}
	if opening.IsNegative() {
		return fmt.Errorf("account.opening_balance must not be negative, got %s", opening)
	}

	return nil
}

// #endregion validate
