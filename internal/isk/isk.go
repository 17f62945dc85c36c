// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     isk
// Description: Flat-rate tax (schablonskatt) of a Swedish investment savings
//              account (investeringssparkonto)
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package isk computes the yearly flat-rate tax of an ISK account.
//
// An ISK account is not taxed on realised gains. Instead an imputed income
// is derived from the average capital of the year (four quarterly values
// plus the year's deposits, divided by four) and the government borrowing
// rate (statslåneräntan). The imputed income is then taxed as capital
// income at 30 %.
package isk

const (
	// ImputedIncomeMargin is added to the government borrowing rate.
	ImputedIncomeMargin = 0.01

	// ImputedIncomeFloor is the statutory lower limit of the imputed rate.
	ImputedIncomeFloor = 0.0125

	// CapitalGainsTaxRate is the tax on capital income.
	CapitalGainsTaxRate = 0.30

	// DefaultGovernmentBorrowingRate is the rate used by the projections
	// when none is configured.
	DefaultGovernmentBorrowingRate = 0.0002

	// QuartersPerYear is the number of capital snapshots per tax year.
	QuartersPerYear = 4
)

// ImputedIncomeRate returns max(gbr + 1 %, 1.25 %).
func ImputedIncomeRate(governmentBorrowingRate float64) float64 {
	rate := governmentBorrowingRate + ImputedIncomeMargin
	if rate < ImputedIncomeFloor {
		return ImputedIncomeFloor
	}
	return rate
}

// CapitalBase returns (sum(quarterValues) + annualDeposits) / 4.
func CapitalBase(quarterValues []float64, annualDeposits float64) float64 {
	sum := annualDeposits
	for _, v := range quarterValues {
		sum += v
	}
	return sum / QuartersPerYear
}

// CalculateFlatRateTax returns the tax for one year.
//
// quarterValues are the account values at the start of each quarter,
// annualDeposits is the sum of all deposits made during the year.
func CalculateFlatRateTax(quarterValues []float64, annualDeposits, governmentBorrowingRate float64) float64 {
	return CapitalBase(quarterValues, annualDeposits) * ImputedIncomeRate(governmentBorrowingRate) * CapitalGainsTaxRate
}

// QuarterSnapshots collects the quarterly account values of one year. The
// zero value is ready to use.
type QuarterSnapshots struct {
	values []float64
}

// Add records one account value.
func (q *QuarterSnapshots) Add(value float64) {
	q.values = append(q.values, value)
}

// Values returns the recorded values.
func (q *QuarterSnapshots) Values() []float64 {
	return q.values
}

// Len returns the number of recorded values.
func (q *QuarterSnapshots) Len() int {
	return len(q.values)
}

// Reset clears the buffer for the next year.
func (q *QuarterSnapshots) Reset() {
	q.values = q.values[:0]
}

// Tax computes the flat-rate tax of the recorded values and resets the
// buffer.
func (q *QuarterSnapshots) Tax(annualDeposits, governmentBorrowingRate float64) float64 {
	tax := CalculateFlatRateTax(q.values, annualDeposits, governmentBorrowingRate)
	q.Reset()
	return tax
}
