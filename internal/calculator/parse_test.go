package calculator

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  float64
		want float64
	}{
		{"empty uses default", "", 2000000, 2000000},
		{"blank uses default", "   ", 15, 15},
		{"plain", "1500000", 0, 1500000},
		{"decimal point", "4.5", 0, 4.5},
		{"decimal comma", "4,5", 0, 4.5},
		{"space grouping", "1 500 000", 0, 1500000},
		{"nbsp grouping", "1\u00a0500\u00a0000,25", 0, 1500000.25},
		{"negative", "-12", 0, -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat("value", tt.text, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat_InvalidFormat(t *testing.T) {
	_, err := ParseFloat("property cost", "abc", 0)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
	assert.Contains(t, err.Error(), "property cost")
	assert.Contains(t, err.Error(), `"abc"`)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "wraps the strconv error")
}

func TestParseFloat_NonFinite(t *testing.T) {
	for _, text := range []string{"NaN", "nan", "Inf", "+Inf", "-inf", "infinity", "1e400"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseFloat("property cost", text, 0)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidFormat, CodeOf(err))
		})
	}

	_, err := ParsePercent("interest rate", "NaN", 0.04)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
	_, err = RequireFloat("total rate of return", "Inf")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}

func TestParseInt(t *testing.T) {
	got, err := ParseInt("years", "", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	got, err = ParseInt("years", " 40 ", 20)
	require.NoError(t, err)
	assert.Equal(t, 40, got)

	_, err = ParseInt("years", "2.5", 20)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}

func TestParsePercent(t *testing.T) {
	got, err := ParsePercent("interest rate", "", 0.04)
	require.NoError(t, err)
	assert.Equal(t, 0.04, got)

	got, err = ParsePercent("interest rate", "15", 0.04)
	require.NoError(t, err)
	assert.InDelta(t, 0.15, got, 1e-12)

	got, err = ParsePercent("interest rate", "0", 0.04)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = ParsePercent("interest rate", "-1", 0.04)
	require.Error(t, err)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))
	assert.Contains(t, err.Error(), "percentage is outside interval")

	_, err = ParsePercent("interest rate", "x", 0.04)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		text string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"y", false, true},
		{"Yes", false, true},
		{"J", false, true},
		{"ja", false, true},
		{"n", true, false},
		{"no", true, false},
		{"maybe", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYesNo(tt.text, tt.def))
		})
	}
}

func TestParseReturns(t *testing.T) {
	got, err := ParseReturns("returns", "4 5,5 -2")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 0.04, got[0], 1e-12)
	assert.InDelta(t, 0.055, got[1], 1e-12)
	assert.InDelta(t, -0.02, got[2], 1e-12)

	got, err = ParseReturns("returns", "  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseReturns("returns", "4 five")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))

	_, err = ParseReturns("returns", "4 NaN")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
	_, err = ParseReturns("returns", "-Inf")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}

func TestInputError_Message(t *testing.T) {
	err := outOfRange("years", "number of years must be positive")
	assert.Equal(t, "years: number of years must be positive", err.Error())
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
}

func TestRequire(t *testing.T) {
	v, err := RequireFloat("total rate of return", "1,5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	n, err := RequireInt("years", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = RequireFloat("total rate of return", " ")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
	assert.EqualError(t, err, "total rate of return: a value is required")

	_, err = RequireInt("years", "")
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}
