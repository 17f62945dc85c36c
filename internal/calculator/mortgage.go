// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     calculator
// Description: Straight-line mortgage amortization schedule
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"

	"go.uber.org/zap"
)

const monthsPerYear = 12

// MaxYears bounds every projection horizon and mortgage term.
const MaxYears = 200

// balanceTolerance is the share of one payment below which the remaining
// balance counts as paid off. The float residue of subtracting the same
// payment n times scales with the loan, so the tolerance does too.
const balanceTolerance = 1e-9

// MortgageConfig holds the mortgage inputs. Rates are fractions.
type MortgageConfig struct {
	PropertyCost float64
	DownPayment  float64
	Years        float64
	InterestRate float64
}

// DefaultMortgageConfig returns the documented defaults.
func DefaultMortgageConfig() MortgageConfig {
	return MortgageConfig{
		PropertyCost: 2000000,
		DownPayment:  0.15,
		Years:        15,
		InterestRate: 0.04,
	}
}

// Validate rejects non-finite values, a non-positive property cost or term,
// a term above MaxYears and negative rates.
func (c MortgageConfig) Validate() error {
	for _, v := range []struct {
		field string
		value float64
	}{
		{"property cost", c.PropertyCost},
		{"down payment", c.DownPayment},
		{"mortgage term", c.Years},
		{"interest rate", c.InterestRate},
	} {
		if !isFinite(v.value) {
			return notFinite(v.field, fmt.Sprint(v.value))
		}
	}
	if c.PropertyCost <= 0 {
		return outOfRange("property cost", "invalid property cost")
	}
	if c.Years <= 0 {
		return outOfRange("mortgage term", "invalid mortgage type")
	}
	if c.Years > MaxYears {
		return outOfRange("mortgage term", fmt.Sprintf("term is longer than %d years", MaxYears))
	}
	if c.DownPayment < 0 {
		return outOfRange("down payment", "percentage is outside interval")
	}
	if c.InterestRate < 0 {
		return outOfRange("interest rate", "percentage is outside interval")
	}
	return nil
}

// MortgageRow is one month of the schedule, or the totals row.
type MortgageRow struct {
	Month        int
	Amortization float64
	Interest     float64
	Payment      float64
	LoanLeft     float64
}

// MortgageResult is the complete schedule.
type MortgageResult struct {
	DownPaymentAmount float64
	LoanAmount        float64
	MonthlyPayment    float64
	Rows              []MortgageRow
	Total             MortgageRow
}

// Mortgage computes a straight-line amortization schedule: the same
// principal payment every month, interest on the remaining balance.
//
// The remaining balance is floored at zero once it would go negative. The
// fixed payment is not reduced for the last month, only the displayed
// balance is clamped.
func Mortgage(cfg MortgageConfig, logger *zap.Logger) (*MortgageResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loanAmount := cfg.PropertyCost * (1 - cfg.DownPayment)
	numberOfPayments := int(cfg.Years * monthsPerYear)
	if numberOfPayments < 1 {
		return nil, outOfRange("mortgage term", "term is shorter than one month")
	}
	payment := loanAmount / float64(numberOfPayments)
	monthlyRate := cfg.InterestRate / monthsPerYear

	logger.Debug("mortgage schedule",
		zap.Float64("loan_amount", loanAmount),
		zap.Int("payments", numberOfPayments),
		zap.Float64("payment", payment))

	res := &MortgageResult{
		DownPaymentAmount: cfg.PropertyCost - loanAmount,
		LoanAmount:        loanAmount,
		MonthlyPayment:    payment,
		Rows:              make([]MortgageRow, 0, numberOfPayments),
	}

	loanLeft := loanAmount
	interestTotal := 0.0
	for month := 1; month <= numberOfPayments; month++ {
		interest := loanLeft * monthlyRate
		interestTotal += interest
		loanLeft -= payment
		if loanLeft <= payment*balanceTolerance {
			loanLeft = 0
		}

		res.Rows = append(res.Rows, MortgageRow{
			Month:        month,
			Amortization: payment,
			Interest:     interest,
			Payment:      payment + interest,
			LoanLeft:     loanLeft,
		})
	}

	res.Total = MortgageRow{
		Amortization: loanAmount,
		Interest:     interestTotal,
		Payment:      loanAmount + interestTotal,
		LoanLeft:     loanLeft,
	}

	logger.Debug("mortgage schedule done", zap.Float64("interest_total", interestTotal))
	return res, nil
}
