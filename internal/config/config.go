// Package config loads the import run configuration from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/finbridge/simplefin-import/internal/importer/simplefin"
)

// Environment variables read by Load.
const (
	EnvCurrency       = "SIMPLEFIN_CURRENCY"
	EnvExpenseAccount = "SIMPLEFIN_EXPENSE_ACCOUNT"
	EnvIncomeAccount  = "SIMPLEFIN_INCOME_ACCOUNT"
	EnvAccountMapping = "SIMPLEFIN_ACCOUNT_MAPPING"
)

// Config is the configuration for one import run.
type Config struct {
	Currency       string
	ExpenseAccount string
	IncomeAccount  string
	// MappingPath points at a JSON object mapping SimpleFIN account ids to
	// ledger accounts.
	MappingPath string
}

// Load reads configuration from the environment, falling back to the
// importer defaults. A .env file in the working directory is read first when
// present; real environment variables win over .env values.
func Load() Config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	return Config{
		Currency:       getenv(EnvCurrency, simplefin.DefaultCurrency),
		ExpenseAccount: getenv(EnvExpenseAccount, simplefin.DefaultExpenseAccount),
		IncomeAccount:  getenv(EnvIncomeAccount, simplefin.DefaultIncomeAccount),
		MappingPath:    os.Getenv(EnvAccountMapping),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadMapping reads the account mapping file.
func LoadMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse account mapping %q: %w", path, err)
	}
	return mapping, nil
}
