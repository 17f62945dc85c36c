// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     prompt
// Description: Interactive input of calculator parameters
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package prompt asks the user for calculator parameters.
//
// Answers are returned as raw text in question order. An empty answer means
// "use the default"; converting text to numbers is left to the caller.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("input aborted")

// Question is one parameter to ask for.
type Question struct {
	Label   string
	Default string
}

// Text returns the prompt line shown to the user.
func (q Question) Text() string {
	if q.Default == "" {
		return q.Label + ": "
	}
	return fmt.Sprintf("%s (Default %s): ", q.Label, q.Default)
}

// Prompter asks a list of questions and returns one answer per question.
type Prompter interface {
	Ask(questions []Question) ([]string, error)
}

// New returns a terminal form when form is set and in is a terminal, and a
// line prompter otherwise.
func New(in io.Reader, out io.Writer, form bool) Prompter {
	if form && IsTerminal(in) {
		return NewFormPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
