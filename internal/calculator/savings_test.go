package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/isk"
)

func TestSavings_Defaults(t *testing.T) {
	res, err := Savings(DefaultSavingsConfig(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Rows, 20)

	prevSaved := 250000.0
	for i, row := range res.Rows {
		assert.Equal(t, i+1, row.Year)
		assert.Greater(t, row.TotalSaved, prevSaved)
		assert.InDelta(t, 60000, row.TotalSaved-prevSaved, 1e-6, "year %d", row.Year)
		assert.Greater(t, row.Tax, 0.0)
		assert.InDelta(t, row.Gained/12, row.GainedPerMonth, 1e-9)
		prevSaved = row.TotalSaved
	}
	assert.InDelta(t, 250000+20*60000, res.Final().TotalSaved, 1e-6)
}

func TestSavings_FirstYearByHand(t *testing.T) {
	cfg := SavingsConfig{
		StartCapital:            1000,
		MonthlyDeposit:          100,
		YearlyReturn:            0.12,
		Years:                   1,
		FlatRateTax:             true,
		GovernmentBorrowingRate: isk.DefaultGovernmentBorrowingRate,
	}
	res, err := Savings(cfg, nil)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	monthly := math.Pow(1.12, 1.0/12) - 1
	capital := 1000.0
	gained := 0.0
	var quarters []float64
	for m := 0; m < 12; m++ {
		capital += 100
		g := capital * monthly
		gained += g
		capital += g
		if m%3 == 0 {
			quarters = append(quarters, capital)
		}
	}
	tax := isk.CalculateFlatRateTax(quarters, 1200, isk.DefaultGovernmentBorrowingRate)

	row := res.Rows[0]
	assert.InDelta(t, gained, row.Gained, 1e-9)
	assert.InDelta(t, tax, row.Tax, 1e-9)
	assert.InDelta(t, capital-tax, row.TotalCapital, 1e-9)
	assert.InDelta(t, 2200, row.TotalSaved, 1e-9)
}

func TestSavings_WithoutTax(t *testing.T) {
	withTax := DefaultSavingsConfig()
	withoutTax := DefaultSavingsConfig()
	withoutTax.FlatRateTax = false

	a, err := Savings(withTax, nil)
	require.NoError(t, err)
	b, err := Savings(withoutTax, nil)
	require.NoError(t, err)

	assert.Greater(t, b.Final().TotalCapital, a.Final().TotalCapital)
	assert.Greater(t, b.Rows[0].Tax, 0.0, "tax is still reported")
}

func TestSavings_Validation(t *testing.T) {
	cfg := DefaultSavingsConfig()
	cfg.Years = 0
	_, err := Savings(cfg, nil)
	require.Error(t, err)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))

	_, err = ISKProjection(cfg, nil)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))

	cfg.Years = 1000000000
	_, err = Savings(cfg, nil)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))
	_, err = ISKProjection(cfg, nil)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))

	cfg = DefaultSavingsConfig()
	cfg.StartCapital = math.NaN()
	_, err = Savings(cfg, nil)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))

	cfg = DefaultISKConfig()
	cfg.MonthlyDeposit = math.Inf(1)
	_, err = ISKProjection(cfg, nil)
	assert.Equal(t, CodeInvalidFormat, CodeOf(err))
}

func TestISKProjection_ZeroReturn(t *testing.T) {
	cfg := DefaultISKConfig()
	cfg.YearlyReturn = 0
	cfg.Years = 2
	res, err := ISKProjection(cfg, nil)
	require.NoError(t, err)

	for _, row := range res.Rows {
		assert.Equal(t, 0.0, row.Gained)
		assert.Greater(t, row.Tax, 0.0)
		assert.Equal(t, 0.0, row.TaxPercent)
	}
}

func TestISKProjection_Defaults(t *testing.T) {
	res, err := ISKProjection(DefaultISKConfig(), nil)
	require.NoError(t, err)
	require.Len(t, res.Rows, 40)

	first := res.Rows[0]
	sum := 100000.0 + 12*2000
	compound := sum * 0.08
	quarters := []float64{sum, sum + compound/3, sum + 2*compound/3, sum + compound}
	tax := isk.CalculateFlatRateTax(quarters, 0, isk.DefaultGovernmentBorrowingRate)

	assert.Equal(t, 1, first.Year)
	assert.InDelta(t, compound, first.Gained, 1e-9)
	assert.InDelta(t, tax, first.Tax, 1e-9)
	assert.InDelta(t, tax/compound*100, first.TaxPercent, 1e-9)
	assert.InDelta(t, sum+compound-tax, first.TotalCapital, 1e-9)
	assert.InDelta(t, sum, first.TotalSaved, 1e-9)

	for i := 1; i < len(res.Rows); i++ {
		assert.InDelta(t, 24000, res.Rows[i].TotalSaved-res.Rows[i-1].TotalSaved, 1e-6)
		assert.Greater(t, res.Rows[i].TotalCapital, res.Rows[i-1].TotalCapital)
	}
}

func TestISKProjection_TaxPercentIsConstantShareOfReturn(t *testing.T) {
	// With no deposits the tax base is (4*sum + 2*compound)/4, so the tax
	// share of the return depends only on the rates.
	cfg := SavingsConfig{StartCapital: 50000, YearlyReturn: 0.10, Years: 3, GovernmentBorrowingRate: 0.0002}
	res, err := ISKProjection(cfg, nil)
	require.NoError(t, err)

	expected := (1/0.10 + 0.5) * isk.ImputedIncomeFloor * isk.CapitalGainsTaxRate * 100
	for _, row := range res.Rows {
		assert.InDelta(t, expected, row.TaxPercent, 1e-9)
	}
}

func TestAverageReturn(t *testing.T) {
	r, err := AverageReturn(1.08, 12)
	require.NoError(t, err)
	assert.InDelta(t, 0.08, math.Pow(1+r, 12)-1, 1e-12)

	r, err = AverageReturn(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	_, err = AverageReturn(1.5, 0)
	assert.Equal(t, CodeOutOfRange, CodeOf(err))

	_, err = AverageReturn(-1, 2)
	assert.Equal(t, CodeUndefinedResult, CodeOf(err), "even root of a negative factor")
}

func TestGeometricReturn(t *testing.T) {
	r, err := GeometricReturn([]float64{.04, .05, .06, .07})
	require.NoError(t, err)
	assert.InDelta(t, 0.05494, math.Round(r*1e5)/1e5, 1e-9)

	r, err = GeometricReturn(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}
