package simplefin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbridge/simplefin-import/internal/importer/testutil"
)

func TestAccount_UnmarshalFixture(t *testing.T) {
	data := testutil.LoadFixture(t, "simplefin", "checking")

	var acct Account
	require.NoError(t, json.Unmarshal(data, &acct))

	assert.Equal(t, "ACT-123", acct.ID)
	assert.Equal(t, "Chase Checking", acct.Name)
	assert.Empty(t, acct.Currency)
	assert.Equal(t, Numeric("982.20"), acct.Balance)
	assert.False(t, acct.BalanceDate.IsZero())
	require.Len(t, acct.Transactions, 5)

	// Absent description stays nil so the builder can tell it from "".
	assert.Nil(t, acct.Transactions[2].Description)
	require.NotNil(t, acct.Transactions[1].Description)
	assert.Equal(t, "GROCERY STORE", *acct.Transactions[1].Description)
	assert.True(t, acct.Transactions[3].Pending)
	assert.Equal(t, Numeric("-5.50"), acct.Transactions[1].Amount)
}

func TestDateValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		zero      bool
		parseable bool
	}{
		{name: "epoch number", in: `1736899200`, zero: false, parseable: true},
		{name: "iso string", in: `"2025-01-15T12:00:00Z"`, zero: false, parseable: true},
		{name: "null", in: `null`, zero: true, parseable: false},
		{name: "epoch zero is falsy", in: `0`, zero: true, parseable: false},
		{name: "empty string is falsy", in: `""`, zero: true, parseable: false},
		{name: "object is present but invalid", in: `{"ts": 1}`, zero: false, parseable: false},
		{name: "array is present but invalid", in: `[1736899200]`, zero: false, parseable: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d DateValue
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.Equal(t, tc.zero, d.IsZero())

			_, err := CalendarDate(d)
			if tc.parseable {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotADate)
			}
		})
	}
}

func TestNumeric_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Numeric
	}{
		{name: "string amount", in: `"-5.50"`, want: "-5.50"},
		{name: "number keeps source text", in: `10.50`, want: "10.50"},
		{name: "integer number", in: `1000`, want: "1000"},
		{name: "null is absent", in: `null`, want: ""},
		{name: "wrong type kept raw for later skip", in: `[1]`, want: "[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tc.in), &n))
			assert.Equal(t, tc.want, n)
		})
	}
}
