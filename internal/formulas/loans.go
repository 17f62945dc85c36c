// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Loan payments, balances and lending ratios
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import "math"

// LoanPayment returns the periodic payment that pays off presentValue in
// numberOfPeriods. A zero rate yields NaN (0/0).
// Formula: r * PV / (1 - (1 + r)^-n)
func LoanPayment(presentValue, ratePerPeriod, numberOfPeriods float64) float64 {
	return (ratePerPeriod * presentValue) / (1 - math.Pow(1+ratePerPeriod, -numberOfPeriods))
}

// BalloonLoanPayment returns the periodic payment of a loan that leaves
// balloonAmount outstanding after numberOfPeriods.
func BalloonLoanPayment(presentValue, balloonAmount, ratePerPeriod, numberOfPeriods float64) float64 {
	return (presentValue - balloonAmount/math.Pow(1+ratePerPeriod, numberOfPeriods)) *
		AnnuityPaymentFactor(ratePerPeriod, numberOfPeriods)
}

// BalloonBalanceOfLoan returns the balance left after numberOfPayments
// payments of size payment.
func BalloonBalanceOfLoan(presentValue, payment, ratePerPayment, numberOfPayments float64) float64 {
	growth := math.Pow(1+ratePerPayment, numberOfPayments)
	return presentValue*growth - payment*((growth-1)/ratePerPayment)
}

// RemainingBalanceOnLoan returns the outstanding balance after
// numberOfPayments payments. It uses the same identity as
// BalloonBalanceOfLoan.
func RemainingBalanceOnLoan(presentValue, payment, ratePerPayment, numberOfPayments float64) float64 {
	return presentValue*math.Pow(1+ratePerPayment, numberOfPayments) -
		payment*((math.Pow(1+ratePerPayment, numberOfPayments)-1)/ratePerPayment)
}

// LoanToDepositRatio returns loans / deposits.
func LoanToDepositRatio(loans, deposits float64) float64 {
	return loans / deposits
}

// LoanToValueRatio returns loanAmount / valueOfCollateral.
func LoanToValueRatio(loanAmount, valueOfCollateral float64) float64 {
	return loanAmount / valueOfCollateral
}

// DebtToIncomeRatio returns monthly debt payments / gross monthly income.
func DebtToIncomeRatio(monthlyDebtPayments, grossMonthlyIncome float64) float64 {
	return monthlyDebtPayments / grossMonthlyIncome
}

// DebtCoverageRatio returns net operating income / debt service.
func DebtCoverageRatio(netOperatingIncome, debtService float64) float64 {
	return netOperatingIncome / debtService
}
