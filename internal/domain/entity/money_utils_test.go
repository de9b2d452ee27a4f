package entity

import (
	"testing"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"500.00", 50000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"25.5", 2550},
			{"10.15", 1015},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				centavos, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, centavos)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"₱100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Edge cases", func(t *testing.T) {
		// Very large valid number
		centavos, err := ParseAmount("9999999999.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(999999999999), centavos)

		// Zero with decimal
		centavos, err = ParseAmount("0.00")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), centavos)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Rejects negative", func(t *testing.T) {
		_, err := ParsePositiveAmount("-5")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Accepts smallest donation", func(t *testing.T) {
		centavos, err := ParsePositiveAmount("0.01")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), centavos)
	})
}

func TestFormatCentavos(t *testing.T) {
	testCases := []struct {
		centavos int64
		expected string
	}{
		{50000, "500.00"},
		{1, "0.01"},
		{10, "0.10"},
		{100, "1.00"},
		{2550, "25.50"},
		{1015, "10.15"},
		{123456789, "1234567.89"},
		{0, "0.00"},
		{-50000, "-500.00"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatCentavos(tc.centavos)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// string -> centavos -> string
	testCases := []string{
		"0.00",
		"0.01",
		"1.00",
		"10.50",
		"1234.56",
		"9999999.99",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			centavos, err := ParseAmount(tc)
			assert.NoError(t, err)

			result := FormatCentavos(centavos)
			assert.Equal(t, tc, result)
		})
	}
}
