package ledger

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAmount_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Amount
		want bool
	}{
		{
			name: "same value same scale",
			a:    Amount{Number: mustDecimal(t, "5.50"), Currency: "USD"},
			b:    Amount{Number: mustDecimal(t, "5.50"), Currency: "USD"},
			want: true,
		},
		{
			name: "same value different scale",
			a:    Amount{Number: mustDecimal(t, "5.5"), Currency: "USD"},
			b:    Amount{Number: mustDecimal(t, "5.50"), Currency: "USD"},
			want: true,
		},
		{
			name: "different value",
			a:    Amount{Number: mustDecimal(t, "5.50"), Currency: "USD"},
			b:    Amount{Number: mustDecimal(t, "5.51"), Currency: "USD"},
			want: false,
		},
		{
			name: "different currency",
			a:    Amount{Number: mustDecimal(t, "5.50"), Currency: "USD"},
			b:    Amount{Number: mustDecimal(t, "5.50"), Currency: "EUR"},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

// Amounts keep their source scale when stringified: trailing zeros from the
// export are not stripped and no precision is lost.
func TestAmount_String_KeepsSourceScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-5.50", "-5.50 USD"},
		{"1000.00", "1000.00 USD"},
		{"-12.3456", "-12.3456 USD"},
		{"0.1234567890", "0.1234567890 USD"},
		{"42", "42 USD"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			a := Amount{Number: mustDecimal(t, tc.in), Currency: "USD"}
			assert.Equal(t, tc.want, a.String())
		})
	}
}

func TestSort_AscendingByDate(t *testing.T) {
	late := &Transaction{Date: date(t, "2025-01-20"), Narration: "late"}
	early := &Transaction{Date: date(t, "2025-01-15"), Narration: "early"}
	bal := &Balance{Date: date(t, "2025-01-22"), Account: "Assets:Checking"}

	entries := []Entry{bal, late, early}
	Sort(entries)

	assert.Equal(t, []Entry{early, late, bal}, entries)
}

// Same-date entries must keep their append order: transactions in source
// order first, then a same-day balance assertion.
func TestSort_StableForSameDate(t *testing.T) {
	first := &Transaction{Date: date(t, "2025-01-15"), Narration: "first"}
	second := &Transaction{Date: date(t, "2025-01-15"), Narration: "second"}
	third := &Transaction{Date: date(t, "2025-01-15"), Narration: "third"}
	bal := &Balance{Date: date(t, "2025-01-15"), Account: "Assets:Checking"}
	earlier := &Transaction{Date: date(t, "2025-01-10"), Narration: "earlier"}

	entries := []Entry{first, second, third, bal, earlier}
	Sort(entries)

	assert.Equal(t, []Entry{earlier, first, second, third, bal}, entries)
}
