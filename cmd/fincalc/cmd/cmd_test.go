package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/fincalc/internal/calculator"
	"github.com/msto63/fincalc/internal/formulas"
)

// execute runs the CLI without any config file from the environment.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("FINCALC_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestMortgage_Defaults(t *testing.T) {
	out, _, err := execute(t, "", "mortgage")
	require.NoError(t, err)

	assert.Contains(t, out, "Down Payment:       300 000\n")
	assert.Contains(t, out, "Loan Amount:        1 700 000\n")
	assert.Contains(t, out, "\n180       ")
	assert.Contains(t, out, "\nTotal:    1 700 000")
}

func TestMortgage_Flags(t *testing.T) {
	out, _, err := execute(t, "", "mortgage", "--cost", "1 000 000", "--down-payment", "0", "--years", "10", "--rate", "5,5")
	require.NoError(t, err)

	assert.Contains(t, out, "Down Payment:       0\n")
	assert.Contains(t, out, "Loan Amount:        1 000 000\n")
	assert.Contains(t, out, "\n120       ")
	assert.NotContains(t, out, "\n121       ")
}

func TestMortgage_InteractiveDefaults(t *testing.T) {
	out, _, err := execute(t, "\n\n\n\n", "mortgage", "-i")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter the Property Cost (Default 2000000): ")
	assert.Contains(t, out, "Enter the Down Payment Percentage (Default 15%): ")
	assert.Contains(t, out, "Enter the Mortgage type in years (Default 15 years): ")
	assert.Contains(t, out, "Loan Amount:        1 700 000\n")
}

func TestMortgage_InputErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  calculator.Code
	}{
		{"unparsable cost", "", []string{"mortgage", "--cost", "abc"}, calculator.CodeInvalidFormat},
		{"zero cost", "", []string{"mortgage", "--cost", "0"}, calculator.CodeOutOfRange},
		{"negative rate", "", []string{"mortgage", "--rate", "-1"}, calculator.CodeOutOfRange},
		{"zero years", "", []string{"mortgage", "--years", "0"}, calculator.CodeOutOfRange},
		{"nan cost", "", []string{"mortgage", "--cost", "NaN"}, calculator.CodeInvalidFormat},
		{"infinite rate", "", []string{"mortgage", "--rate", "Inf"}, calculator.CodeInvalidFormat},
		{"term too long", "", []string{"mortgage", "--years", "1e9"}, calculator.CodeOutOfRange},
		{"prompted garbage", "x\n\n\n\n", []string{"mortgage", "-i"}, calculator.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, calculator.CodeOf(err))
			assert.NotContains(t, out, "Loan Amount:", "no table on error")
		})
	}
}

func TestMortgage_Chart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mortgage.html")
	_, _, err := execute(t, "", "mortgage", "--chart", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loan Left")
}

func TestSavings_Defaults(t *testing.T) {
	out, _, err := execute(t, "", "savings")
	require.NoError(t, err)

	assert.Contains(t, out, "Start Capital:           250 000\n")
	assert.Contains(t, out, "Flat-Rate Tax included:  true\n")
	assert.Contains(t, out, "\n1       ")
	assert.Contains(t, out, "\n20      ")
	assert.NotContains(t, out, "\n21      ")
}

func TestSavings_NoTax(t *testing.T) {
	out, _, err := execute(t, "", "savings", "--tax", "n", "--years", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Flat-Rate Tax included:  false\n")
	assert.Contains(t, out, "Years to Save:           3\n")
}

func TestSavings_InvalidYears(t *testing.T) {
	_, _, err := execute(t, "", "savings", "--years", "2.5")
	assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err))

	_, _, err = execute(t, "", "savings", "--years", "0")
	assert.Equal(t, calculator.CodeOutOfRange, calculator.CodeOf(err))

	_, _, err = execute(t, "", "isk", "--years", "1000000000")
	assert.Equal(t, calculator.CodeOutOfRange, calculator.CodeOf(err))
}

func TestSavings_NonFiniteInput(t *testing.T) {
	for _, args := range [][]string{
		{"savings", "--start", "NaN"},
		{"savings", "--monthly", "+Inf"},
		{"isk", "--return", "nan"},
	} {
		out, _, err := execute(t, "", args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err), "%v", args)
		assert.NotContains(t, out, "Start Capital:", "no table on error")
	}
}

func TestISK_Interactive(t *testing.T) {
	out, _, err := execute(t, "50000\n1000\n\n10\nn\n", "isk", "-i")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter Years (Default 40): ")
	assert.Contains(t, out, "Should Flat-Rate tax be included? (y/n) (Default y): ")
	assert.Contains(t, out, "Start Capital:           50 000\n")
	assert.Contains(t, out, "Yearly Return:           8 %\n")
	assert.Contains(t, out, "Flat-Rate Tax included:  false\n")
	assert.Contains(t, out, "Tax %:")
	assert.Contains(t, out, "\n10      ")
}

func TestAvgReturn(t *testing.T) {
	out, _, err := execute(t, "", "avg-return", "1,5", "5")
	require.NoError(t, err)
	assert.Equal(t, "8,45 %\n", out)

	out, _, err = execute(t, "2\n1\n", "avg-return")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "100,00 %\n"), out)

	_, _, err = execute(t, "", "avg-return", "1,5", "0")
	assert.Equal(t, calculator.CodeOutOfRange, calculator.CodeOf(err))

	_, _, err = execute(t, "\n\n", "avg-return")
	assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err))

	_, _, err = execute(t, "", "avg-return", "1,5")
	assert.Error(t, err)
}

func TestGeoReturn(t *testing.T) {
	out, _, err := execute(t, "", "geo-return", "4", "5", "6", "7")
	require.NoError(t, err)
	assert.Equal(t, "5,49 %\n", out)

	out, _, err = execute(t, "4 5 6 7\n", "geo-return")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "5,49 %\n"), out)

	out, _, err = execute(t, "", "geo-return", "10 -10")
	require.NoError(t, err)
	assert.Equal(t, "-0,50 %\n", out)

	_, _, err = execute(t, "", "geo-return", "4", "five")
	assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err))

	_, _, err = execute(t, "", "geo-return", "4", "NaN")
	assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err))
}

func TestFormula_List(t *testing.T) {
	out, _, err := execute(t, "", "formula", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "future-value(initial-cash-flow, rate, periods)")
	assert.Contains(t, out, "net-present-value(initial-investment, discount-rate, [cash-flows])")
	assert.Equal(t, len(formulas.All())+2, strings.Count(out, "\n"))
}

func TestFormula_Eval(t *testing.T) {
	out, _, err := execute(t, "", "formula", "future-value", "1000", "0.05", "10")
	require.NoError(t, err)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 1628.894626777442, v, 1e-9)

	out, _, err = execute(t, "", "formula", "--list", "50 60 70 100 500", "net-present-value", "400", "0,12")
	require.NoError(t, err)
	v, err = strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 89.56, v, 0.005)
}

func TestFormula_Errors(t *testing.T) {
	_, _, err := execute(t, "", "formula", "no-such-formula")
	assert.True(t, errors.Is(err, formulas.ErrUnknownFormula), "%v", err)

	_, _, err = execute(t, "", "formula", "future-value", "1000")
	assert.True(t, errors.Is(err, formulas.ErrArity), "%v", err)

	_, _, err = execute(t, "", "formula", "--list", "0.3", "--list", "0.1 0.05", "weighted-average")
	assert.True(t, errors.Is(err, formulas.ErrArity), "%v", err)

	_, _, err = execute(t, "", "formula", "current-ratio", "1", "0")
	assert.Equal(t, calculator.CodeUndefinedResult, calculator.CodeOf(err))

	_, _, err = execute(t, "", "formula", "future-value", "x", "0.05", "10")
	assert.Equal(t, calculator.CodeInvalidFormat, calculator.CodeOf(err))
	assert.Contains(t, err.Error(), "initial-cash-flow")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fincalc v"+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fincalc.toml")
	content := "[mortgage]\nproperty_cost = 1000000\ndown_payment = 10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, _, err := execute(t, "", "--config", path, "mortgage")
	require.NoError(t, err)
	assert.Contains(t, out, "Loan Amount:        900 000\n")

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "mortgage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "fincalc.log")
	cfgPath := filepath.Join(dir, "fincalc.yaml")
	content := "logging:\n  level: debug\n  format: json\n  file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	_, errOut, err := execute(t, "", "--config", cfgPath, "geo-return", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"command started"`)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"command started"`)
	assert.Contains(t, string(data), "geometric return computed")

	cfgPath = filepath.Join(dir, "broken.yaml")
	content = "logging:\n  file: " + filepath.Join(dir, "missing", "fincalc.log") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	_, _, err = execute(t, "", "--config", cfgPath, "geo-return", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "", "-v", "geo-return", "4", "5")
	require.NoError(t, err)

	assert.NotContains(t, out, "command started")
	assert.Contains(t, errOut, "command started")
	assert.Contains(t, errOut, "run_id")
	assert.Contains(t, errOut, "geometric return computed")
}
