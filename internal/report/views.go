// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     report
// Description: Table layouts of the mortgage, savings and ISK calculators
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/msto63/fincalc/internal/calculator"
)

// Mortgage writes the down payment, the loan amount and one line per month
// followed by the total line.
func Mortgage(w io.Writer, res *calculator.MortgageResult) error {
	st := newStyles(w)
	var b strings.Builder

	b.WriteByte('\n')
	sum := NewSummary(20)
	sum.Add("Down Payment:", FormatNumber(res.DownPaymentAmount))
	sum.Add("Loan Amount:", FormatNumber(res.LoanAmount))
	sum.write(&b, st)

	t := NewTable(68,
		Column{"Month:", 10},
		Column{"Amortization:", 17},
		Column{"Interest:", 13},
		Column{"Total Payment:", 18},
		Column{"Loan Left:", 0},
	)
	for _, row := range res.Rows {
		t.AddRow(
			strconv.Itoa(row.Month),
			FormatNumber(row.Amortization),
			FormatNumber(row.Interest),
			FormatNumber(row.Payment),
			FormatNumber(row.LoanLeft),
		)
	}
	t.AddRow(
		"Total:",
		FormatNumber(res.Total.Amortization),
		FormatNumber(res.Total.Interest),
		FormatNumber(res.Total.Payment),
		FormatNumber(res.Total.LoanLeft),
	)
	t.write(&b, st)

	_, err := io.WriteString(w, b.String())
	return err
}

// Savings writes the monthly savings projection.
func Savings(w io.Writer, res *calculator.SavingsResult) error {
	st := newStyles(w)
	var b strings.Builder

	cfg := res.Config
	b.WriteByte('\n')
	sum := NewSummary(25)
	sum.Add("Start Capital:", FormatNumber(cfg.StartCapital))
	sum.Add("Monthly Deposit:", FormatNumber(cfg.MonthlyDeposit))
	sum.Add("Rate of Return:", FormatRate(cfg.YearlyReturn))
	sum.Add("Years to Save:", strconv.Itoa(cfg.Years))
	sum.Add("Flat-Rate Tax included:", strconv.FormatBool(cfg.FlatRateTax))
	sum.write(&b, st)

	t := NewTable(95,
		Column{"Year:", 8},
		Column{"Gained:", 15},
		Column{"Salary/Month:", 15},
		Column{"Flat-tax Rate:", 15},
		Column{"Tot Saved:", 15},
		Column{"Tot Gained:", 15},
		Column{"Tot Capital:", 15},
	)
	for _, row := range res.Rows {
		t.AddRow(
			strconv.Itoa(row.Year),
			FormatNumber(row.Gained),
			FormatNumber(row.GainedPerMonth),
			FormatNumber(row.Tax),
			FormatNumber(row.TotalSaved),
			FormatNumber(row.TotalGained),
			FormatNumber(row.TotalCapital),
		)
	}
	t.write(&b, st)

	_, err := io.WriteString(w, b.String())
	return err
}

// ISK writes the yearly ISK projection. It differs from Savings by the
// "Tax %" column.
func ISK(w io.Writer, res *calculator.SavingsResult) error {
	st := newStyles(w)
	var b strings.Builder

	cfg := res.Config
	b.WriteByte('\n')
	sum := NewSummary(25)
	sum.Add("Start Capital:", FormatNumber(cfg.StartCapital))
	sum.Add("Monthly Save:", FormatNumber(cfg.MonthlyDeposit))
	sum.Add("Yearly Return:", FormatRate(cfg.YearlyReturn))
	sum.Add("Years:", strconv.Itoa(cfg.Years))
	sum.Add("Flat-Rate Tax included:", strconv.FormatBool(cfg.FlatRateTax))
	sum.write(&b, st)

	t := NewTable(105,
		Column{"Year:", 8},
		Column{"Gained:", 15},
		Column{"Salary/Month:", 15},
		Column{"Flat-tax Rate:", 15},
		Column{"Tax %:", 10},
		Column{"Tot Saved:", 15},
		Column{"Tot Gained:", 15},
		Column{"Tot Capital:", 15},
	)
	for _, row := range res.Rows {
		t.AddRow(
			strconv.Itoa(row.Year),
			FormatNumber(row.Gained),
			FormatNumber(row.GainedPerMonth),
			FormatNumber(row.Tax),
			FormatFixed(row.TaxPercent, 2),
			FormatNumber(row.TotalSaved),
			FormatNumber(row.TotalGained),
			FormatNumber(row.TotalCapital),
		)
	}
	t.write(&b, st)

	_, err := io.WriteString(w, b.String())
	return err
}

// Return writes a single rate of return line ("5,49 %").
func Return(w io.Writer, rate float64) error {
	_, err := io.WriteString(w, FormatReturn(rate)+"\n")
	return err
}
