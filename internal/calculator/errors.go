// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     calculator
// Description: Error codes and the input error returned by the parsing and
//              validation boundary
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package calculator

import (
	"errors"
	"fmt"
)

// Code classifies an input error.
type Code string

const (
	// CodeInvalidFormat means the text could not be converted to a number.
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// CodeOutOfRange means the value parsed but violates a domain rule.
	CodeOutOfRange Code = "OUT_OF_RANGE"

	// CodeUndefinedResult means a formula produced NaN or Inf.
	CodeUndefinedResult Code = "UNDEFINED_RESULT"
)

// InputError describes a rejected input value.
type InputError struct {
	Code  Code
	Field string
	Value string
	Msg   string
	Err   error
}

func (e *InputError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s (got %q)", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first InputError in err's chain, or "".
func CodeOf(err error) Code {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}

func invalidFormat(field, value string, err error) error {
	return &InputError{Code: CodeInvalidFormat, Field: field, Value: value, Msg: "could not convert string to number", Err: err}
}

func outOfRange(field, msg string) error {
	return &InputError{Code: CodeOutOfRange, Field: field, Msg: msg}
}

// UndefinedResult reports a non-finite formula result.
func UndefinedResult(field string, value float64) error {
	return &InputError{Code: CodeUndefinedResult, Field: field, Msg: fmt.Sprintf("result is not a finite number (%v)", value)}
}

func notFinite(field, value string) error {
	return &InputError{Code: CodeInvalidFormat, Field: field, Value: value, Msg: "not a finite number"}
}

func missing(field string) error {
	return &InputError{Code: CodeInvalidFormat, Field: field, Msg: "a value is required"}
}
