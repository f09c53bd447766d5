package simplefin

import (
	"bytes"
	"encoding/json"
)

// Account is one SimpleFIN account export, as written by `simplefin fetch`
// (a single account object per file, with its transactions inline).
type Account struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Balance      Numeric       `json:"balance"`
	BalanceDate  DateValue     `json:"balance-date"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is one raw SimpleFIN transaction. Description is a pointer so
// an absent field can be told apart from an empty one: only an absent
// description gets the "Unknown" narration.
type Transaction struct {
	ID          string    `json:"id"`
	Posted      DateValue `json:"posted"`
	Pending     bool      `json:"pending"`
	Description *string   `json:"description"`
	Amount      Numeric   `json:"amount"`
}

// Numeric holds an amount as it appeared in the source document. SimpleFIN
// writes amounts as JSON strings, but some exporters emit bare numbers; both
// are kept as text so decimal parsing round-trips the source exactly. The
// empty string means the field was absent.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		// Wrong-typed amount (object, array, bool). Keep the raw text so
		// the builder skips this record instead of the whole document
		// failing to decode.
		*n = Numeric(data)
		return nil
	}
	*n = Numeric(num.String())
	return nil
}

type dateKind int

const (
	dateNone dateKind = iota
	dateEpoch
	dateISO
	dateInvalid
)

// DateValue is a SimpleFIN timestamp: either seconds since the Unix epoch or
// an ISO-8601 string. Absent and wrong-typed values decode to states the
// builder turns into per-record skips rather than document-level errors.
type DateValue struct {
	kind  dateKind
	epoch float64
	iso   string
}

// EpochSeconds returns a DateValue holding seconds since the Unix epoch.
// Fractional seconds are allowed.
func EpochSeconds(sec float64) DateValue {
	return DateValue{kind: dateEpoch, epoch: sec}
}

// IsoString returns a DateValue holding an ISO-8601 timestamp string.
func IsoString(s string) DateValue {
	return DateValue{kind: dateISO, iso: s}
}

// IsZero reports whether the value is absent or empty in the source
// encoding: no value at all, epoch zero, or an empty string.
func (d DateValue) IsZero() bool {
	switch d.kind {
	case dateNone:
		return true
	case dateEpoch:
		return d.epoch == 0
	case dateISO:
		return d.iso == ""
	}
	return false
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = DateValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*d = DateValue{kind: dateInvalid}
			return nil
		}
		*d = IsoString(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*d = DateValue{kind: dateInvalid}
		return nil
	}
	*d = EpochSeconds(f)
	return nil
}
