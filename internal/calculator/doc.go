// Package calculator runs the period-by-period simulations behind the CLI
// calculators: mortgage amortization, the monthly savings projection, the
// yearly ISK projection and the rate-of-return calculators.
//
// The package is pure computation. Configs come in with rates as fractions,
// results go out as rows; printing is left to package report and parsing of
// user answers to the Parse* helpers in this package.
package calculator
