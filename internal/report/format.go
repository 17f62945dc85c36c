// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     report
// Description: Number formatting for the calculator tables
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package report renders calculator results as fixed-width text tables and
// HTML charts.
//
// Amounts are rounded up to whole units and grouped with a space as
// thousands separator ("1 700 000"). Fractional output uses a decimal comma.
package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber rounds v up to a whole number and groups the digits with a
// space. Non-finite values are printed as Go formats them ("NaN", "+Inf").
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return groupDigits(decimal.NewFromFloat(v).Ceil().String())
}

// FormatFixed rounds v half away from zero to places decimals and renders
// it with grouped digits and a decimal comma.
func FormatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return groupDigits(decimal.NewFromFloat(v).StringFixed(places))
}

// FormatRate renders a rate fraction as whole percent ("8 %").
func FormatRate(rate float64) string {
	return FormatNumber(math.Round(rate*100)) + " %"
}

// FormatReturn renders a rate-of-return fraction as percent with two
// decimals ("5,49 %").
func FormatReturn(rate float64) string {
	return FormatFixed(rate*100, 2) + " %"
}

func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}
