// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Bond pricing and yields
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import "math"

// daysPerYear is the day count used by the yield and turnover formulas.
const daysPerYear = 365

// BondEquivalentYield annualises the discount of a bond bought below face
// value.
// Formula: (F - P) / P * (365 / d)
func BondEquivalentYield(faceValue, bondPrice, daysToMaturity float64) float64 {
	return ((faceValue - bondPrice) / bondPrice) * (daysPerYear / daysToMaturity)
}

// CurrentYield returns annual coupons / current bond price.
func CurrentYield(annualCoupons, currentBondPrice float64) float64 {
	return annualCoupons / currentBondPrice
}

// YieldToMaturity returns the approximate yield to maturity
// (C + (F - P) / n) / ((F + P) / 2).
func YieldToMaturity(couponOrInterestPayment, faceValue, price, yearsToMaturity float64) float64 {
	return (couponOrInterestPayment + (faceValue-price)/yearsToMaturity) / ((faceValue + price) / 2)
}

// ZeroCouponBondValue returns F / (1 + r)^t.
func ZeroCouponBondValue(faceValue, rateOrYield, timeToMaturity float64) float64 {
	return faceValue / math.Pow(1+rateOrYield, timeToMaturity)
}

// ZeroCouponBondEffectiveYield returns the periodic yield (F / PV)^(1/n) - 1.
func ZeroCouponBondEffectiveYield(faceValue, presentValue, numberOfPeriods float64) float64 {
	return math.Pow(faceValue/presentValue, 1/numberOfPeriods) - 1
}

// TaxEquivalentYield returns the taxable yield matching a tax free yield.
func TaxEquivalentYield(taxFreeYield, taxRate float64) float64 {
	return taxFreeYield / (1 - taxRate)
}
