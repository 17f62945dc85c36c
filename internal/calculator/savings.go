// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     calculator
// Description: Monthly compound-interest savings projection with the yearly
//              ISK flat-rate tax
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/formulas"
	"github.com/msto63/fincalc/internal/isk"
)

// SavingsConfig holds the inputs of a savings projection. YearlyReturn and
// GovernmentBorrowingRate are fractions.
type SavingsConfig struct {
	StartCapital            float64
	MonthlyDeposit          float64
	YearlyReturn            float64
	Years                   int
	FlatRateTax             bool
	GovernmentBorrowingRate float64
}

// DefaultSavingsConfig returns the defaults of the monthly projection.
func DefaultSavingsConfig() SavingsConfig {
	return SavingsConfig{
		StartCapital:            250000,
		MonthlyDeposit:          5000,
		YearlyReturn:            0.08,
		Years:                   20,
		FlatRateTax:             true,
		GovernmentBorrowingRate: isk.DefaultGovernmentBorrowingRate,
	}
}

// DefaultISKConfig returns the defaults of the yearly ISK projection.
func DefaultISKConfig() SavingsConfig {
	return SavingsConfig{
		StartCapital:            100000,
		MonthlyDeposit:          2000,
		YearlyReturn:            0.08,
		Years:                   40,
		FlatRateTax:             true,
		GovernmentBorrowingRate: isk.DefaultGovernmentBorrowingRate,
	}
}

// Validate rejects non-finite amounts and rates and a horizon outside
// 1..MaxYears.
func (c SavingsConfig) Validate() error {
	for _, v := range []struct {
		field string
		value float64
	}{
		{"start capital", c.StartCapital},
		{"monthly deposit", c.MonthlyDeposit},
		{"yearly return", c.YearlyReturn},
		{"government borrowing rate", c.GovernmentBorrowingRate},
	} {
		if !isFinite(v.value) {
			return notFinite(v.field, fmt.Sprint(v.value))
		}
	}
	if c.Years <= 0 {
		return outOfRange("years", "number of years must be positive")
	}
	if c.Years > MaxYears {
		return outOfRange("years", fmt.Sprintf("number of years must be at most %d", MaxYears))
	}
	return nil
}

// SavingsRow is one year of a projection.
type SavingsRow struct {
	Year           int
	Gained         float64
	GainedPerMonth float64
	Tax            float64
	TaxPercent     float64 // tax / gained * 100, 0 without a gain; yearly projection only
	TotalSaved     float64
	TotalGained    float64
	TotalCapital   float64
}

// SavingsResult holds one row per year.
type SavingsResult struct {
	Config SavingsConfig
	Rows   []SavingsRow
}

// Final returns the last row, or a zero row for an empty result.
func (r *SavingsResult) Final() SavingsRow {
	if len(r.Rows) == 0 {
		return SavingsRow{}
	}
	return r.Rows[len(r.Rows)-1]
}

// Savings projects a monthly savings plan.
//
// Each month the deposit is added first, then one month of interest at the
// monthly rate equivalent to YearlyReturn. The account value after months
// 1, 4, 7 and 10 of each year is used as the quarterly snapshot. After the
// twelfth month the flat-rate tax is computed from the snapshots and the
// year's deposits and, when FlatRateTax is set, taken from the capital.
func Savings(cfg SavingsConfig, logger *zap.Logger) (*SavingsResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	monthlyRate := formulas.AverageRateOfReturnPerYear(cfg.YearlyReturn+1, monthsPerYear)
	annualDeposits := cfg.MonthlyDeposit * monthsPerYear

	res := &SavingsResult{Config: cfg, Rows: make([]SavingsRow, 0, cfg.Years)}

	totalCapital := cfg.StartCapital
	totalSaved := cfg.StartCapital
	totalGained := 0.0
	yearlyGained := 0.0
	var quarters isk.QuarterSnapshots

	for month := 0; month < cfg.Years*monthsPerYear; month++ {
		totalCapital += cfg.MonthlyDeposit
		totalSaved += cfg.MonthlyDeposit

		gain := formulas.CompoundInterest(totalCapital, monthlyRate, 1)
		yearlyGained += gain
		totalGained += gain
		totalCapital += gain

		if month%3 == 0 {
			quarters.Add(totalCapital)
		}

		if month%monthsPerYear == monthsPerYear-1 {
			tax := quarters.Tax(annualDeposits, cfg.GovernmentBorrowingRate)
			if cfg.FlatRateTax {
				totalCapital -= tax
			}

			row := SavingsRow{
				Year:           month/monthsPerYear + 1,
				Gained:         yearlyGained,
				GainedPerMonth: yearlyGained / monthsPerYear,
				Tax:            tax,
				TotalSaved:     totalSaved,
				TotalGained:    totalGained,
				TotalCapital:   totalCapital,
			}
			res.Rows = append(res.Rows, row)

			logger.Debug("savings year",
				zap.Int("year", row.Year),
				zap.Float64("gained", row.Gained),
				zap.Float64("tax", row.Tax),
				zap.Float64("capital", row.TotalCapital))

			yearlyGained = 0
		}
	}

	return res, nil
}

// ISKProjection projects an ISK account with yearly compounding.
//
// Deposits accumulate monthly without interest; at each year end one year
// of return is credited on the accumulated sum. The quarterly snapshots are
// interpolated across the year's return (sum + return/3 * i for i = 0..3)
// and the year's deposits are not added to the tax base.
func ISKProjection(cfg SavingsConfig, logger *zap.Logger) (*SavingsResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &SavingsResult{Config: cfg, Rows: make([]SavingsRow, 0, cfg.Years)}

	totalSum := cfg.StartCapital
	totalSaved := cfg.StartCapital
	totalGained := 0.0
	var quarters isk.QuarterSnapshots

	for month := 1; month <= cfg.Years*monthsPerYear; month++ {
		totalSum += cfg.MonthlyDeposit
		totalSaved += cfg.MonthlyDeposit

		if month%monthsPerYear != 0 {
			continue
		}

		compound := formulas.CompoundInterest(totalSum, cfg.YearlyReturn, 1)
		totalGained += compound

		for i := 0; i < isk.QuartersPerYear; i++ {
			quarters.Add(totalSum + (compound/3)*float64(i))
		}
		tax := quarters.Tax(0, cfg.GovernmentBorrowingRate)

		totalSum += compound
		if cfg.FlatRateTax {
			totalSum -= tax
		}

		row := SavingsRow{
			Year:           month / monthsPerYear,
			Gained:         compound,
			GainedPerMonth: compound / monthsPerYear,
			Tax:            tax,
			TaxPercent:     taxShare(tax, compound),
			TotalSaved:     totalSaved,
			TotalGained:    totalGained,
			TotalCapital:   totalSum,
		}
		res.Rows = append(res.Rows, row)

		logger.Debug("isk year",
			zap.Int("year", row.Year),
			zap.Float64("gained", row.Gained),
			zap.Float64("tax", row.Tax),
			zap.Float64("capital", row.TotalCapital))
	}

	return res, nil
}

// taxShare returns tax as a percentage of gained. A year without a gain has
// no meaningful share and reports 0.
func taxShare(tax, gained float64) float64 {
	if gained == 0 {
		return 0
	}
	return tax / gained * 100
}
