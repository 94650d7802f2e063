package currency_test

import (
	"testing"

	"cargotrack/internal/pkg/currency"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.InDelta(t, 5970.0, currency.Round2(5970.004), 1e-9)
	assert.InDelta(t, 5970.01, currency.Round2(5970.005), 1e-9)
	assert.InDelta(t, 0.1, currency.Round2(0.1), 1e-9)
}

func TestFormatRUB(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{5970, "5970 ₽"},
		{5970.5, "5970.5 ₽"},
		{6220.25, "6220.25 ₽"},
		{0, "0 ₽"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, currency.FormatRUB(tt.amount))
	}
}

func TestParseRUB(t *testing.T) {
	t.Run("should round-trip formatted amounts", func(t *testing.T) {
		for _, amount := range []float64{0, 0.5, 800, 5970, 6220.25, 123456.7} {
			parsed, err := currency.ParseRUB(currency.FormatRUB(amount))
			require.NoError(t, err)
			assert.InDelta(t, amount, parsed, 1e-9)
		}
	})

	t.Run("should accept bare numbers", func(t *testing.T) {
		parsed, err := currency.ParseRUB("5970.50")
		require.NoError(t, err)
		assert.InDelta(t, 5970.5, parsed, 1e-9)
	})

	t.Run("should reject more than two fraction digits", func(t *testing.T) {
		_, err := currency.ParseRUB("5970.123")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := currency.ParseRUB(" ₽")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := currency.ParseRUB("dozen rubles")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
