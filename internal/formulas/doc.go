// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Closed-form financial formulas (TVM, annuities, loans, returns,
//              bonds, stock valuation, corporate ratios)
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package formulas is a collection of pure financial formulas.
//
// Every function takes float64 arguments and returns a float64 result. Rates
// are decimal fractions (0.05 means 5 %). Percent values entered by a user
// must be converted before calling into this package.
//
// The functions do not validate their input. A zero denominator or a
// negative logarithm argument yields the usual IEEE-754 result (+Inf, -Inf
// or NaN); callers that need a finite answer must check with math.IsInf and
// math.IsNaN.
//
// Example:
//
//	apy := formulas.AnnualPercentageYield(0.06, 12)   // 0.06168
//	pv := formulas.PresentValue(1061.68, 0.005, 12)    // ~1000
//
// Every formula is also reachable by name through the registry:
//
//	f, ok := formulas.Lookup("future-value")
//	v, err := f.Eval([]float64{1000, 0.005, 12}, nil)
package formulas
