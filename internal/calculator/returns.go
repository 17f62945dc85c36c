// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     calculator
// Description: Single-shot rate-of-return calculators
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package calculator

import (
	"math"

	"github.com/msto63/fincalc/internal/formulas"
)

// AverageReturn spreads a total return factor over years and returns the
// yearly rate as a fraction. totalReturnFactor is the growth factor of the
// whole period (1.5 for +50 %).
func AverageReturn(totalReturnFactor float64, years int) (float64, error) {
	if years <= 0 {
		return 0, outOfRange("years", "number of years must be positive")
	}
	r := formulas.AverageRateOfReturnPerYear(totalReturnFactor, float64(years))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, UndefinedResult("average return", r)
	}
	return r, nil
}

// GeometricReturn returns the geometric mean of yearly returns given as
// fractions. An empty list yields 0.
func GeometricReturn(returns []float64) (float64, error) {
	r := formulas.GeometricMeanReturn(returns)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, UndefinedResult("geometric mean return", r)
	}
	return r, nil
}
