// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     calculator
// Description: Text-to-number conversion for user answers, empty answers
//              fall back to the documented default
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package calculator

import (
	"math"
	"strconv"
	"strings"
)

// normalizeNumber accepts a decimal comma and ignores spaces used as
// thousands separators ("1 500 000,50").
func normalizeNumber(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, "\u00a0", "")
	return strings.Replace(text, ",", ".", 1)
}

// ParseFloat converts text to a number, returning def for empty text.
// NaN and infinities are rejected.
func ParseFloat(field, text string, def float64) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(normalizeNumber(text), 64)
	if err != nil {
		return 0, invalidFormat(field, text, err)
	}
	if !isFinite(v) {
		return 0, notFinite(field, text)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseInt converts text to an integer, returning def for empty text.
func ParseInt(field, text string, def int) (int, error) {
	if strings.TrimSpace(text) == "" {
		return def, nil
	}
	v, err := strconv.Atoi(normalizeNumber(text))
	if err != nil {
		return 0, invalidFormat(field, text, err)
	}
	return v, nil
}

// PercentToFraction converts a 0-100 percentage to a 0-1 fraction.
// Negative percentages are rejected.
func PercentToFraction(field string, percent float64) (float64, error) {
	if percent < 0 {
		return 0, outOfRange(field, "percentage is outside interval")
	}
	return percent / 100, nil
}

// ParsePercent converts a percentage answer ("4" or "4,5") to a fraction.
// def is already a fraction.
func ParsePercent(field, text string, def float64) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return def, nil
	}
	v, err := ParseFloat(field, text, 0)
	if err != nil {
		return 0, err
	}
	return PercentToFraction(field, v)
}

// ParseYesNo returns def for empty text and true only for y/yes/j/ja.
func ParseYesNo(text string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return def
	case "y", "yes", "j", "ja":
		return true
	default:
		return false
	}
}

// ParseReturns splits a list of yearly percentage returns separated by
// whitespace ("4 5,5 -2") and converts each to a fraction. Negative returns
// are allowed here.
func ParseReturns(field, text string) ([]float64, error) {
	parts := strings.Fields(text)
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.Replace(part, ",", ".", 1), 64)
		if err != nil {
			return nil, invalidFormat(field, part, err)
		}
		if !isFinite(v) {
			return nil, notFinite(field, part)
		}
		out = append(out, v/100)
	}
	return out, nil
}

// RequireFloat is ParseFloat for answers without a default.
func RequireFloat(field, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, missing(field)
	}
	return ParseFloat(field, text, 0)
}

// RequireInt is ParseInt for answers without a default.
func RequireInt(field, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, missing(field)
	}
	return ParseInt(field, text, 0)
}
