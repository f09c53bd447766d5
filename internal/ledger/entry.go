// Package ledger defines the canonical double-entry representation produced
// by importers: transactions, balance assertions, and their rendering as
// beancount text.
package ledger

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// FlagOkay marks a settled transaction.
const FlagOkay = "*"

// Amount is an exact decimal quantity of a single currency.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// Equal reports whether two amounts have the same numeric value and
// currency. "5.5" and "5.50" compare equal.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Number.Equal(b.Number)
}

func (a Amount) String() string {
	return formatNumber(a.Number) + " " + a.Currency
}

// formatNumber renders a decimal at its source scale, keeping trailing
// zeros ("1000.00" stays "1000.00").
func formatNumber(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Posting is one leg of a double-entry transaction. A nil Amount elides the
// amount and leaves it to the consuming ledger's balancing inference.
type Posting struct {
	Account string
	Amount  *Amount
	Meta    map[string]string
}

// Transaction is a dated double-entry movement with a narration and
// metadata. Importers produce exactly two postings: a primary posting
// carrying the signed amount, and an amount-less counter posting.
type Transaction struct {
	Date      civil.Date
	Flag      string
	Narration string
	Meta      map[string]string
	Postings  []Posting
}

// Balance asserts an account's balance on a given date.
type Balance struct {
	Date    civil.Date
	Account string
	Amount  Amount
	Meta    map[string]string
}

// Entry is a dated ledger directive: either a *Transaction or a *Balance.
type Entry interface {
	EntryDate() civil.Date
}

func (t *Transaction) EntryDate() civil.Date { return t.Date }

func (b *Balance) EntryDate() civil.Date { return b.Date }

// Sort orders entries by ascending date. The sort is stable: same-date
// entries keep the order they were appended in, so transactions stay in
// source order ahead of a same-day balance assertion.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryDate().Before(entries[j].EntryDate())
	})
}
