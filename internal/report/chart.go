// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     report
// Description: HTML line charts of calculator results (go-echarts)
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package report

import (
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/msto63/fincalc/internal/calculator"
)

// Chart is anything that renders itself as an HTML page.
type Chart interface {
	Render(w io.Writer) error
}

// MortgageChart plots the remaining loan and the monthly interest.
func MortgageChart(res *calculator.MortgageResult) *charts.Line {
	months := make([]string, 0, len(res.Rows))
	loanLeft := make([]opts.LineData, 0, len(res.Rows))
	interest := make([]opts.LineData, 0, len(res.Rows))
	for _, row := range res.Rows {
		months = append(months, strconv.Itoa(row.Month))
		loanLeft = append(loanLeft, lineValue(row.LoanLeft))
		interest = append(interest, lineValue(row.Interest))
	}

	line := newLine("Mortgage", "Loan left and interest per month")
	line.SetXAxis(months).
		AddSeries("Loan Left", loanLeft).
		AddSeries("Interest", interest)
	return line
}

// SavingsChart plots saved capital against total capital per year.
func SavingsChart(title string, res *calculator.SavingsResult) *charts.Line {
	years := make([]string, 0, len(res.Rows))
	saved := make([]opts.LineData, 0, len(res.Rows))
	capital := make([]opts.LineData, 0, len(res.Rows))
	tax := make([]opts.LineData, 0, len(res.Rows))
	for _, row := range res.Rows {
		years = append(years, strconv.Itoa(row.Year))
		saved = append(saved, lineValue(row.TotalSaved))
		capital = append(capital, lineValue(row.TotalCapital))
		tax = append(tax, lineValue(row.Tax))
	}

	line := newLine(title, "Saved and total capital per year")
	line.SetXAxis(years).
		AddSeries("Tot Saved", saved).
		AddSeries("Tot Capital", capital).
		AddSeries("Flat-tax Rate", tax)
	return line
}

// RenderChart writes c to w.
func RenderChart(c Chart, w io.Writer) error {
	return c.Render(w)
}

func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fincalc - " + title}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	)
	return line
}

func lineValue(v float64) opts.LineData {
	return opts.LineData{Value: math.Ceil(v)}
}
