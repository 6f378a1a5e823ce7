package convert

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/currconv/internal/entity/currency"
)

func snapshot() *currency.Snapshot {
	return &currency.Snapshot{
		Rates: map[string]float64{
			"USD": 1,
			"EUR": 0.9,
			"HUF": 360,
			"GBP": 0.8,
		},
		Timestamp: 1_700_000_000,
	}
}

func Test_Convert(t *testing.T) {
	calc := New("en")

	tests := []struct {
		name     string
		amount   string
		from     string
		to       string
		decimals int32
		want     string
	}{
		{name: "usd to eur", amount: "100", from: "USD", to: "EUR", decimals: 2, want: "90.00"},
		{name: "through pivot", amount: "10", from: "GBP", to: "HUF", decimals: 2, want: "4,500.00"},
		{name: "grouping", amount: "1000000", from: "USD", to: "HUF", decimals: 0, want: "360,000,000"},
		{name: "rounding half away from zero", amount: "0.125", from: "USD", to: "USD", decimals: 2, want: "0.13"},
		{name: "negative decimals clamp to zero", amount: "1.6", from: "USD", to: "USD", decimals: -1, want: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Convert(decimal.RequireFromString(tt.amount), tt.from, snapshot(), tt.to, tt.decimals)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Convert_RoundTripShouldKeepAmount(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "HUF", "GBP"} {
		amount := decimal.RequireFromString("1234.56")

		value, err := Value(amount, code, snapshot(), code)
		require.NoError(t, err)
		assert.True(t, amount.Equal(value.Round(2)), code)
	}
}

func Test_Convert_ShouldFailForMissingRates(t *testing.T) {
	calc := New("en")
	amount := decimal.NewFromInt(5)

	_, err := calc.Convert(amount, "XYZ", snapshot(), "EUR", 2)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = calc.Convert(amount, "USD", snapshot(), "XYZ", 2)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = calc.Convert(amount, "USD", nil, "EUR", 2)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	broken := &currency.Snapshot{Rates: map[string]float64{"USD": 0, "EUR": 0.9}}
	_, err = calc.Convert(amount, "USD", broken, "EUR", 2)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func Test_FormatAmount(t *testing.T) {
	calc := New("")

	assert.Equal(t, "100", calc.FormatAmount(decimal.RequireFromString("100")))
	assert.Equal(t, "1,234.5", calc.FormatAmount(decimal.RequireFromString("1234.5")))
}

func Test_Convert_ShouldKeepLargeAmountsExact(t *testing.T) {
	calc := New("en")
	amount := decimal.RequireFromString("12345678901234567.89")

	got, err := calc.Convert(amount, "USD", snapshot(), "USD", 2)

	require.NoError(t, err)
	assert.Equal(t, "12,345,678,901,234,567.89", got)
	assert.Equal(t, "12,345,678,901,234,567.89", calc.FormatAmount(amount))
}

func Test_New_ShouldUseLocaleSeparators(t *testing.T) {
	calc := New("de")
	amount := decimal.RequireFromString("1234567.5")

	got, err := calc.Convert(amount, "USD", snapshot(), "USD", 2)

	require.NoError(t, err)
	assert.Equal(t, "1.234.567,50", got)
	assert.Equal(t, "1.234.567,5", calc.FormatAmount(amount))
}
