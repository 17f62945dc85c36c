// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package version

// Version constants for fincalc
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Formulas   = "1.0.0"
	ISK        = "1.0.0" // tax rules as of the 2025 income year
	Calculator = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "formulas":
		return Formulas
	case "isk":
		return ISK
	case "calculator":
		return Calculator
	default:
		return Platform
	}
}
