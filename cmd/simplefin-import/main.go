// Command simplefin-import extracts beancount entries from SimpleFIN
// per-account JSON exports.
//
// Usage:
//
//	simplefin-import -mapping accounts.json -data ./exports > new.beancount
//
// Files in the data directory that are not SimpleFIN exports for a mapped
// account are ignored. Entries extracted from overlapping exports are
// de-duplicated before rendering.
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/finbridge/simplefin-import/internal/config"
	"github.com/finbridge/simplefin-import/internal/importer/simplefin"
	"github.com/finbridge/simplefin-import/internal/ledger"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", ".", "Directory holding SimpleFIN JSON exports")
	mappingPath := flag.String("mapping", cfg.MappingPath, "JSON file mapping SimpleFIN account ids to ledger accounts")
	currency := flag.String("currency", cfg.Currency, "Default currency for records that don't declare one")
	expense := flag.String("expense", cfg.ExpenseAccount, "Counter account for outflows")
	income := flag.String("income", cfg.IncomeAccount, "Counter account for inflows")
	output := flag.String("o", "", "Output file (default: stdout)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *mappingPath == "" {
		logger.Fatal("no account mapping: set -mapping or " + config.EnvAccountMapping)
	}
	mapping, err := config.LoadMapping(*mappingPath)
	if err != nil {
		logger.Fatal("load account mapping", "err", err)
	}

	imp := simplefin.New(mapping,
		simplefin.WithCurrency(*currency),
		simplefin.WithExpenseAccount(*expense),
		simplefin.WithIncomeAccount(*income),
		simplefin.WithLogger(logger),
	)

	entries, err := extractDir(imp, logger, *dataDir)
	if err != nil {
		logger.Fatal("extract", "err", err)
	}
	logger.Info("extraction complete", "entries", len(entries))

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Fatal("create output file", "err", err)
		}
		defer f.Close()
		w = f
	}
	if err := ledger.Render(w, entries); err != nil {
		logger.Fatal("render", "err", err)
	}
}

// extractDir runs the importer over every identifiable file in dir, merging
// out duplicates across overlapping exports.
func extractDir(imp *simplefin.Importer, logger *log.Logger, dir string) ([]ledger.Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var all []ledger.Entry
	for _, path := range paths {
		if !imp.Identify(path) {
			logger.Debug("skipping unrecognized file", "file", path)
			continue
		}
		entries, err := imp.Extract(path)
		if err != nil {
			return nil, err
		}
		fresh := simplefin.Merge(all, entries)
		logger.Info("extracted",
			"file", imp.Filename(path),
			"account", imp.Account(path),
			"entries", len(entries),
			"new", len(fresh),
		)
		all = append(all, fresh...)
	}

	ledger.Sort(all)
	return all, nil
}
