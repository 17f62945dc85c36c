package isk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImputedIncomeRate(t *testing.T) {
	tests := []struct {
		name     string
		gbr      float64
		expected float64
	}{
		{"below floor", 0.0002, ImputedIncomeFloor},
		{"exactly at floor", 0.0025, 0.0125},
		{"above floor", 0.0262, 0.0362},
		{"negative rate", -0.01, ImputedIncomeFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ImputedIncomeRate(tt.gbr), 1e-12)
		})
	}
}

func TestCalculateFlatRateTax(t *testing.T) {
	tests := []struct {
		name     string
		quarters []float64
		deposits float64
		gbr      float64
		expected float64
	}{
		{"statutory floor", []float64{100, 100, 100, 100}, 0, 0.0002, 0.375},
		{"deposits count into base", []float64{100, 100, 100, 100}, 400, 0.0002, 0.75},
		{"rate above floor", []float64{1000, 1000, 1000, 1000}, 0, 0.02, 1000 * 0.03 * 0.30},
		{"empty year", nil, 0, 0.0002, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateFlatRateTax(tt.quarters, tt.deposits, tt.gbr), 1e-12)
		})
	}
}

func TestQuarterSnapshots(t *testing.T) {
	var q QuarterSnapshots
	for i := 0; i < QuartersPerYear; i++ {
		q.Add(100)
	}
	require.Equal(t, 4, q.Len())
	assert.Equal(t, []float64{100, 100, 100, 100}, q.Values())

	tax := q.Tax(0, DefaultGovernmentBorrowingRate)
	assert.InDelta(t, 0.375, tax, 1e-12)
	assert.Equal(t, 0, q.Len(), "Tax resets the buffer")
}
