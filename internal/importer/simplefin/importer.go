// Package simplefin imports SimpleFIN per-account JSON exports into the
// canonical ledger representation.
//
// Each file holds a single account with its transactions, as written by
// `simplefin fetch`. The importer maps the SimpleFIN account id to a ledger
// account, converts settled transactions into two-posting entries, and
// synthesizes a balance assertion when the export carries a balance
// snapshot. Records the importer cannot use (pending, malformed dates,
// missing amounts) are skipped individually so one bad record never aborts
// the rest of the import.
package simplefin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/finbridge/simplefin-import/internal/ledger"
)

const (
	DefaultCurrency       = "USD"
	DefaultExpenseAccount = "Expenses:Uncategorized"
	DefaultIncomeAccount  = "Income:Uncategorized"

	// UnknownAccount is returned by Account when the file cannot be read
	// or its id is outside the mapping.
	UnknownAccount = "Assets:Unknown"
)

// Importer converts SimpleFIN exports for a fixed account mapping. The
// configuration is immutable after New; an Importer is safe for concurrent
// use.
type Importer struct {
	mapping        map[string]string
	currency       string
	expenseAccount string
	incomeAccount  string
	logger         *log.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithCurrency sets the default currency used when a record does not
// declare its own. A record-level currency always wins.
func WithCurrency(currency string) Option {
	return func(imp *Importer) {
		imp.currency = currency
	}
}

// WithExpenseAccount sets the counter account for outflows.
func WithExpenseAccount(account string) Option {
	return func(imp *Importer) {
		imp.expenseAccount = account
	}
}

// WithIncomeAccount sets the counter account for inflows.
func WithIncomeAccount(account string) Option {
	return func(imp *Importer) {
		imp.incomeAccount = account
	}
}

// WithLogger enables debug logging of skipped records.
func WithLogger(logger *log.Logger) Option {
	return func(imp *Importer) {
		imp.logger = logger
	}
}

// New creates an importer for the given account mapping from SimpleFIN
// account ids to ledger accounts, e.g. {"ACT-abc123": "Assets:Checking"}.
func New(mapping map[string]string, opts ...Option) *Importer {
	imp := &Importer{
		mapping:        mapping,
		currency:       DefaultCurrency,
		expenseAccount: DefaultExpenseAccount,
		incomeAccount:  DefaultIncomeAccount,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Identify reports whether path is a SimpleFIN account export whose account
// id this importer is configured to handle.
func (imp *Importer) Identify(path string) bool {
	if !strings.HasSuffix(path, ".json") {
		return false
	}
	acct, err := readAccount(path)
	if err != nil {
		return false
	}
	_, ok := imp.mapping[acct.ID]
	return ok
}

// Account returns the ledger account the file maps to, for filing.
func (imp *Importer) Account(path string) string {
	acct, err := readAccount(path)
	if err != nil {
		return UnknownAccount
	}
	if dest, ok := imp.mapping[acct.ID]; ok {
		return dest
	}
	return UnknownAccount
}

// Filename returns the normalized name used when archiving the file.
func (imp *Importer) Filename(path string) string {
	return filepath.Base(path)
}

// Extract loads a SimpleFIN export from disk and converts it. File-level
// failures (unreadable file, invalid JSON) are returned as an *ImportError;
// record-level problems are skipped silently.
func (imp *Importer) Extract(path string) ([]ledger.Entry, error) {
	acct, err := readAccount(path)
	if err != nil {
		return nil, &ImportError{Path: path, Op: "extract", Cause: err}
	}
	return imp.ExtractAccount(acct), nil
}

// ExtractAccount converts one parsed account record into ledger entries,
// sorted by ascending date. Same-date entries keep source order, with the
// balance assertion last. A record whose id is outside the account mapping
// yields an empty result.
//
// The record is read-only; returned entries are freshly constructed and do
// not alias into it.
func (imp *Importer) ExtractAccount(acct *Account) []ledger.Entry {
	dest, ok := imp.mapping[acct.ID]
	if !ok {
		imp.debug("account not in mapping, skipping", "id", acct.ID)
		return nil
	}

	currency := acct.Currency
	if currency == "" {
		currency = imp.currency
	}

	entries := make([]ledger.Entry, 0, len(acct.Transactions)+1)
	for i := range acct.Transactions {
		txn := &acct.Transactions[i]
		entry, skip := imp.buildTransaction(txn, dest, currency)
		if skip != SkipNone {
			imp.debug("skipping transaction", "id", txn.ID, "reason", skip)
			continue
		}
		entries = append(entries, entry)
	}

	if acct.Balance != "" {
		bal, skip := imp.buildBalance(dest, acct.Balance, acct.BalanceDate, currency)
		if skip != SkipNone {
			imp.debug("skipping balance assertion", "account", acct.ID, "reason", skip)
		} else {
			entries = append(entries, bal)
		}
	}

	ledger.Sort(entries)
	return entries
}

func (imp *Importer) debug(msg string, keyvals ...any) {
	if imp.logger != nil {
		imp.logger.Debug(msg, keyvals...)
	}
}

func readAccount(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var acct Account
	if err := json.Unmarshal(data, &acct); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSimpleFIN, err)
	}
	return &acct, nil
}
