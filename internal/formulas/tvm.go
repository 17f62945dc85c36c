// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Time value of money: present/future value, compounding,
//              doubling time and rate conversions
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import "math"

// FutureValue returns the value of a cash flow after numberOfPeriods.
// Formula: FV = C0 * (1 + r)^n
func FutureValue(initialCashFlow, rateOfReturn, numberOfPeriods float64) float64 {
	return initialCashFlow * math.Pow(1+rateOfReturn, numberOfPeriods)
}

// FutureValueFactor returns (1 + r)^n.
func FutureValueFactor(ratePerPeriod, numberOfPeriods float64) float64 {
	return math.Pow(1+ratePerPeriod, numberOfPeriods)
}

// FutureValueWithContinuousCompounding returns PV * e^(r*t).
func FutureValueWithContinuousCompounding(presentValue, rate, time float64) float64 {
	return presentValue * math.Exp(rate*time)
}

// PresentValue discounts a single cash flow back numberOfPeriods.
// Formula: PV = C1 / (1 + r)^n
func PresentValue(cashFlowAtFirstPeriod, rateOfReturn, numberOfPeriods float64) float64 {
	return cashFlowAtFirstPeriod / math.Pow(1+rateOfReturn, numberOfPeriods)
}

// PresentValueFactor returns 1 / (1 + r)^n.
func PresentValueFactor(rateOfReturn, numberOfPeriods float64) float64 {
	return 1 / math.Pow(1+rateOfReturn, numberOfPeriods)
}

// PresentValueWithContinuousCompounding returns C / e^(r*t).
func PresentValueWithContinuousCompounding(cashFlow, rate, time float64) float64 {
	return cashFlow / math.Exp(rate*time)
}

// PresentValueWithContinuousCompoundingFactor returns 1 / e^(r*t).
func PresentValueWithContinuousCompoundingFactor(rate, time float64) float64 {
	return 1 / math.Exp(rate*time)
}

// CompoundInterest returns only the interest earned, not the ending balance.
// Formula: P * ((1 + r)^n - 1)
func CompoundInterest(principal, ratePerPeriod, numberOfPeriods float64) float64 {
	return principal * (math.Pow(1+ratePerPeriod, numberOfPeriods) - 1)
}

// ContinuousCompounding returns the ending balance P * e^(r*t).
func ContinuousCompounding(principal, rate, time float64) float64 {
	return principal * math.Exp(rate*time)
}

// SimpleInterest returns P * r * t.
func SimpleInterest(principal, rate, time float64) float64 {
	return principal * rate * time
}

// AnnualPercentageYield converts a stated annual rate compounded
// numberOfTimesCompounded times a year into its effective annual rate.
// Formula: (1 + r/n)^n - 1
func AnnualPercentageYield(statedAnnualInterestRate, numberOfTimesCompounded float64) float64 {
	return math.Pow(1+statedAnnualInterestRate/numberOfTimesCompounded, numberOfTimesCompounded) - 1
}

// NumberOfPeriodsForPresentValueToReachFutureValue returns ln(FV/PV) / ln(1 + r).
func NumberOfPeriodsForPresentValueToReachFutureValue(futureValue, presentValue, ratePerPeriod float64) float64 {
	return math.Log(futureValue/presentValue) / math.Log(1+ratePerPeriod)
}

// DoublingTime returns the number of periods for a value to double at a
// compounded rate.
func DoublingTime(rateOfReturn float64) float64 {
	return math.Log(2) / math.Log(1+rateOfReturn)
}

// DoublingTimeWithContinuousCompounding returns ln(2) / r.
func DoublingTimeWithContinuousCompounding(rateOfReturn float64) float64 {
	return math.Log(2) / rateOfReturn
}

// DoublingTimeForSimpleInterest returns 1 / r.
func DoublingTimeForSimpleInterest(rateOfReturn float64) float64 {
	return 1 / rateOfReturn
}

// RuleOf72 approximates the doubling time as 72 / (r * 100).
func RuleOf72(rate float64) float64 {
	return 72 / (rate * 100)
}

// AverageRateOfReturnPerYear spreads a total growth factor over n periods.
// totalReturnFactor is the ending value per unit invested (1.08 for +8 %),
// the result is the equivalent per-period rate: factor^(1/n) - 1.
//
// The savings projection uses it with n = 12 to turn a yearly return into
// the monthly rate that compounds to the same yearly result.
func AverageRateOfReturnPerYear(totalReturnFactor, numberOfPeriods float64) float64 {
	return math.Pow(totalReturnFactor, 1/numberOfPeriods) - 1
}

// RealRateOfReturn adjusts a nominal rate for inflation.
// Formula: (1 + nominal) / (1 + inflation) - 1
func RealRateOfReturn(nominalRate, inflationRate float64) float64 {
	return (1+nominalRate)/(1+inflationRate) - 1
}

// RateOfInflation returns the relative change between two consumer price indices.
func RateOfInflation(initialConsumerPriceIndex, endingConsumerPriceIndex float64) float64 {
	return (endingConsumerPriceIndex - initialConsumerPriceIndex) / initialConsumerPriceIndex
}

// InterestRateParity returns the implied interest rate of currency X given
// the rate of currency Y and the forward/spot exchange rates X/Y.
func InterestRateParity(interestRateForCurrencyY, forwardExchangeRateXY, spotExchangeRateXY float64) float64 {
	return (forwardExchangeRateXY/spotExchangeRateXY)*(1+interestRateForCurrencyY) - 1
}
