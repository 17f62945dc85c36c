// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Ordinary annuities, annuities due, growing annuities and
//              perpetuities
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import "math"

// FutureValueOfAnnuity returns the value of equal end-of-period payments
// after numberOfPeriods.
// Formula: P * ((1 + r)^n - 1) / r
func FutureValueOfAnnuity(periodicPayment, ratePerPeriod, numberOfPeriods float64) float64 {
	return periodicPayment * ((math.Pow(1+ratePerPeriod, numberOfPeriods) - 1) / ratePerPeriod)
}

// FutureValueOfAnnuityWithContinuousCompounding returns
// C * (e^(r*t) - 1) / (e^r - 1).
func FutureValueOfAnnuityWithContinuousCompounding(cashFlow, rate, time float64) float64 {
	return cashFlow * ((math.Exp(time*rate) - 1) / (math.Exp(rate) - 1))
}

// NumberOfPeriodsForFutureValueOfAnnuity solves FutureValueOfAnnuity for n.
func NumberOfPeriodsForFutureValueOfAnnuity(futureValueOfAnnuity, ratePerPeriod, payment float64) float64 {
	return math.Log(1+(futureValueOfAnnuity*ratePerPeriod)/payment) / math.Log(1+ratePerPeriod)
}

// AnnuityPaymentPresentValue returns the payment of an ordinary annuity
// with a known present value. Inverse of PresentValueOfAnnuity.
// Formula: PV * r / (1 - (1 + r)^-n)
func AnnuityPaymentPresentValue(presentValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return (presentValue * ratePerPeriod) / (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods))
}

// AnnuityPaymentFutureValue returns the payment of an ordinary annuity with
// a known future value. Inverse of FutureValueOfAnnuity.
// Formula: FV * r / ((1 + r)^n - 1)
func AnnuityPaymentFutureValue(futureValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return (futureValue * ratePerPeriod) / (math.Pow(1+ratePerPeriod, numberOfPeriods) - 1)
}

// AnnuityPaymentFactor returns r / (1 - (1 + r)^-n).
func AnnuityPaymentFactor(ratePerPeriod, numberOfPeriods float64) float64 {
	return ratePerPeriod / (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods))
}

// PresentValueOfAnnuity returns the present value of equal end-of-period
// payments.
// Formula: P * (1 - (1 + r)^-n) / r
func PresentValueOfAnnuity(periodicPayment, ratePerPeriod, numberOfPeriods float64) float64 {
	return periodicPayment * ((1 - math.Pow(1+ratePerPeriod, -numberOfPeriods)) / ratePerPeriod)
}

// PresentValueOfAnnuityWithContinuousCompounding returns
// C * (1 - e^(-r*t)) / (e^r - 1).
func PresentValueOfAnnuityWithContinuousCompounding(cashFlow, ratePerPeriod, time float64) float64 {
	return cashFlow * ((1 - math.Exp(time*-ratePerPeriod)) / (math.Exp(ratePerPeriod) - 1))
}

// NumberOfPeriodsForPresentValueOfAnnuity solves PresentValueOfAnnuity for n.
func NumberOfPeriodsForPresentValueOfAnnuity(presentValueOfAnnuity, ratePerPeriod, payment float64) float64 {
	return math.Log(1/(1-(presentValueOfAnnuity*ratePerPeriod)/payment)) / math.Log(1+ratePerPeriod)
}

// PresentValueAnnuityFactor returns (1 - (1 + r)^-n) / r.
func PresentValueAnnuityFactor(ratePerPeriod, numberOfPeriods float64) float64 {
	return (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods)) / ratePerPeriod
}

// PresentValueOfAnnuityDue is the present value of payments made at the
// beginning of each period: the first payment is not discounted.
func PresentValueOfAnnuityDue(periodicPayment, ratePerPeriod, numberOfPeriods float64) float64 {
	return periodicPayment + periodicPayment*((1-math.Pow(1+ratePerPeriod, -(numberOfPeriods-1)))/ratePerPeriod)
}

// FutureValueOfAnnuityDue returns (1 + r) * FutureValueOfAnnuity.
func FutureValueOfAnnuityDue(periodicPayment, ratePerPeriod, numberOfPeriods float64) float64 {
	return (1 + ratePerPeriod) * (periodicPayment * ((math.Pow(1+ratePerPeriod, numberOfPeriods) - 1) / ratePerPeriod))
}

// AnnuityDuePaymentUsingPresentValue returns AnnuityPaymentPresentValue / (1 + r).
func AnnuityDuePaymentUsingPresentValue(presentValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return presentValue * (ratePerPeriod / (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods))) * (1 / (1 + ratePerPeriod))
}

// AnnuityDuePaymentUsingFutureValue returns AnnuityPaymentFutureValue / (1 + r).
func AnnuityDuePaymentUsingFutureValue(futureValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return futureValue * (ratePerPeriod / (math.Pow(1+ratePerPeriod, numberOfPeriods) - 1)) * (1 / (1 + ratePerPeriod))
}

// FutureValueOfGrowingAnnuity returns the future value of payments growing
// at growthRate per period.
// Formula: P * ((1 + r)^n - (1 + g)^n) / (r - g)
func FutureValueOfGrowingAnnuity(firstPayment, ratePerPeriod, growthRate, numberOfPeriods float64) float64 {
	return firstPayment * ((math.Pow(1+ratePerPeriod, numberOfPeriods) - math.Pow(1+growthRate, numberOfPeriods)) /
		(ratePerPeriod - growthRate))
}

// GrowingAnnuityPaymentFromPresentValue returns the first payment of a
// growing annuity with a known present value.
func GrowingAnnuityPaymentFromPresentValue(presentValue, ratePerPeriod, growthRate, numberOfPeriods float64) float64 {
	return presentValue * ((ratePerPeriod - growthRate) /
		(1 - math.Pow((1+growthRate)/(1+ratePerPeriod), numberOfPeriods)))
}

// GrowingAnnuityPaymentFromFutureValue returns the first payment of a
// growing annuity with a known future value.
func GrowingAnnuityPaymentFromFutureValue(futureValue, ratePerPeriod, growthRate, numberOfPeriods float64) float64 {
	return futureValue * ((ratePerPeriod - growthRate) /
		(math.Pow(1+ratePerPeriod, numberOfPeriods) - math.Pow(1+growthRate, numberOfPeriods)))
}

// PresentValueOfGrowingAnnuity returns
// P / (r - g) * (1 - ((1 + g) / (1 + r))^n).
func PresentValueOfGrowingAnnuity(firstPayment, ratePerPeriod, growthRate, numberOfPeriods float64) float64 {
	return (firstPayment / (ratePerPeriod - growthRate)) *
		(1 - math.Pow((1+growthRate)/(1+ratePerPeriod), numberOfPeriods))
}

// PresentValueOfGrowingPerpetuity returns D / (r - g).
func PresentValueOfGrowingPerpetuity(dividendOrCouponAtFirstPeriod, discountRate, growthRate float64) float64 {
	return dividendOrCouponAtFirstPeriod / (discountRate - growthRate)
}

// PresentValueOfPerpetuity returns D / r.
func PresentValueOfPerpetuity(dividendOrCouponPerPeriod, discountRate float64) float64 {
	return dividendOrCouponPerPeriod / discountRate
}

// PerpetuityPayment returns PV * r.
func PerpetuityPayment(presentValue, rate float64) float64 {
	return presentValue * rate
}

// PerpetuityYield returns payment / PV.
func PerpetuityYield(payment, presentValue float64) float64 {
	return payment / presentValue
}

// EquivalentAnnualAnnuity spreads a project's NPV into equal yearly amounts.
func EquivalentAnnualAnnuity(netPresentValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return (netPresentValue * ratePerPeriod) / (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods))
}
