package simplefin

import (
	"github.com/shopspring/decimal"

	"github.com/finbridge/simplefin-import/internal/ledger"
)

// MetaKeyID is the metadata key carrying the SimpleFIN transaction id on an
// extracted transaction and its primary posting. It is the join key the
// duplicate comparator matches on.
const MetaKeyID = "simplefin_id"

// SkipReason explains why the builder produced no entry for a record.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipMissingPosted
	SkipPending
	SkipBadDate
	SkipMissingAmount
	SkipBadAmount
	SkipMissingBalanceDate
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipMissingPosted:
		return "missing posted date"
	case SkipPending:
		return "pending"
	case SkipBadDate:
		return "unparseable date"
	case SkipMissingAmount:
		return "missing amount"
	case SkipBadAmount:
		return "unparseable amount"
	case SkipMissingBalanceDate:
		return "missing balance date"
	}
	return "unknown"
}

// buildTransaction converts one raw transaction into a two-posting ledger
// transaction. Skip checks run in a fixed order: missing posted date,
// pending, unparseable date, missing amount, unparseable amount. Pending
// transactions never produce entries; only settled ones are imported.
//
// The amount is parsed as an exact decimal from the source text, never
// through a float. The counter account is chosen by sign alone: outflows go
// to the expense account, everything else to the income account. The counter
// posting carries no amount and no metadata.
func (imp *Importer) buildTransaction(txn *Transaction, account, currency string) (*ledger.Transaction, SkipReason) {
	if txn.Posted.IsZero() {
		return nil, SkipMissingPosted
	}
	if txn.Pending {
		return nil, SkipPending
	}
	date, err := CalendarDate(txn.Posted)
	if err != nil {
		return nil, SkipBadDate
	}
	if txn.Amount == "" {
		return nil, SkipMissingAmount
	}
	number, err := decimal.NewFromString(string(txn.Amount))
	if err != nil {
		return nil, SkipBadAmount
	}

	narration := "Unknown"
	if txn.Description != nil {
		narration = *txn.Description
	}

	primary := ledger.Posting{
		Account: account,
		Amount:  &ledger.Amount{Number: number, Currency: currency},
		Meta:    map[string]string{MetaKeyID: txn.ID},
	}
	counter := ledger.Posting{Account: imp.incomeAccount}
	if number.IsNegative() {
		counter.Account = imp.expenseAccount
	}

	return &ledger.Transaction{
		Date:      date,
		Flag:      ledger.FlagOkay,
		Narration: narration,
		Meta:      map[string]string{MetaKeyID: txn.ID},
		Postings:  []ledger.Posting{primary, counter},
	}, SkipNone
}

// buildBalance converts the record's balance snapshot into a balance
// assertion. Unlike transactions, balance assertions carry no provenance
// metadata.
func (imp *Importer) buildBalance(account string, balance Numeric, balanceDate DateValue, currency string) (*ledger.Balance, SkipReason) {
	if balanceDate.IsZero() {
		return nil, SkipMissingBalanceDate
	}
	date, err := CalendarDate(balanceDate)
	if err != nil {
		return nil, SkipBadDate
	}
	number, err := decimal.NewFromString(string(balance))
	if err != nil {
		return nil, SkipBadAmount
	}
	return &ledger.Balance{
		Date:    date,
		Account: account,
		Amount:  ledger.Amount{Number: number, Currency: currency},
	}, SkipNone
}
