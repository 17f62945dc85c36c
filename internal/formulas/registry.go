// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Name-indexed registry so formulas can be evaluated from the CLI
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import (
	"errors"
	"fmt"
	"sort"
)

// Formula groups
const (
	GroupTimeValue = "time-value"
	GroupAnnuity   = "annuity"
	GroupLoan      = "loan"
	GroupReturn    = "return"
	GroupBond      = "bond"
	GroupStock     = "stock"
	GroupCorporate = "corporate"
)

var (
	// ErrUnknownFormula is wrapped by callers when Lookup finds nothing.
	ErrUnknownFormula = errors.New("unknown formula")

	// ErrArity is returned by Eval when the argument count does not match.
	ErrArity = errors.New("wrong number of arguments")
)

type evalFunc func(args []float64, lists [][]float64) float64

// listCheck rejects list arguments the formula cannot index safely.
type listCheck func(lists [][]float64) error

// Formula describes one registered formula.
type Formula struct {
	Name   string
	Group  string
	Params []string // scalar parameters, in call order
	Lists  []string // list parameters, in call order
	eval   evalFunc
	checks []listCheck
}

// Signature renders the formula as name(param, ..., [list]).
func (f Formula) Signature() string {
	s := f.Name + "("
	i := 0
	for _, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p
		i++
	}
	for _, l := range f.Lists {
		if i > 0 {
			s += ", "
		}
		s += "[" + l + "]"
		i++
	}
	return s + ")"
}

// Eval applies the formula. args must match Params and lists must match Lists.
func (f Formula) Eval(args []float64, lists [][]float64) (float64, error) {
	if len(args) != len(f.Params) {
		return 0, fmt.Errorf("%s: %w: want %d scalar, got %d", f.Name, ErrArity, len(f.Params), len(args))
	}
	if len(lists) != len(f.Lists) {
		return 0, fmt.Errorf("%s: %w: want %d list, got %d", f.Name, ErrArity, len(f.Lists), len(lists))
	}
	for _, check := range f.checks {
		if err := check(lists); err != nil {
			return 0, fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return f.eval(args, lists), nil
}

var registry = make(map[string]Formula)

func register(group, name string, params []string, lists []string, fn evalFunc, checks ...listCheck) {
	if _, exists := registry[name]; exists {
		panic("formulas: duplicate registration of " + name)
	}
	registry[name] = Formula{Name: name, Group: group, Params: params, Lists: lists, eval: fn, checks: checks}
}

// coversList requires list i to have at least as many entries as list j.
func coversList(i, j int) listCheck {
	return func(lists [][]float64) error {
		if len(lists[i]) < len(lists[j]) {
			return fmt.Errorf("%w: list %d has %d entries, list %d has %d", ErrArity, i+1, len(lists[i]), j+1, len(lists[j]))
		}
		return nil
	}
}

// Lookup returns the formula registered under name.
func Lookup(name string) (Formula, bool) {
	f, ok := registry[name]
	return f, ok
}

// All returns every registered formula sorted by group, then name.
func All() []Formula {
	out := make([]Formula, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func p(names ...string) []string { return names }

func s1(fn func(a float64) float64) evalFunc {
	return func(a []float64, _ [][]float64) float64 { return fn(a[0]) }
}

func s2(fn func(a, b float64) float64) evalFunc {
	return func(a []float64, _ [][]float64) float64 { return fn(a[0], a[1]) }
}

func s3(fn func(a, b, c float64) float64) evalFunc {
	return func(a []float64, _ [][]float64) float64 { return fn(a[0], a[1], a[2]) }
}

func s4(fn func(a, b, c, d float64) float64) evalFunc {
	return func(a []float64, _ [][]float64) float64 { return fn(a[0], a[1], a[2], a[3]) }
}

func s5(fn func(a, b, c, d, e float64) float64) evalFunc {
	return func(a []float64, _ [][]float64) float64 { return fn(a[0], a[1], a[2], a[3], a[4]) }
}

func init() {
	// time value of money
	register(GroupTimeValue, "future-value", p("initial-cash-flow", "rate", "periods"), nil, s3(FutureValue))
	register(GroupTimeValue, "future-value-factor", p("rate", "periods"), nil, s2(FutureValueFactor))
	register(GroupTimeValue, "future-value-continuous", p("present-value", "rate", "time"), nil, s3(FutureValueWithContinuousCompounding))
	register(GroupTimeValue, "present-value", p("cash-flow", "rate", "periods"), nil, s3(PresentValue))
	register(GroupTimeValue, "present-value-factor", p("rate", "periods"), nil, s2(PresentValueFactor))
	register(GroupTimeValue, "present-value-continuous", p("cash-flow", "rate", "time"), nil, s3(PresentValueWithContinuousCompounding))
	register(GroupTimeValue, "present-value-continuous-factor", p("rate", "time"), nil, s2(PresentValueWithContinuousCompoundingFactor))
	register(GroupTimeValue, "compound-interest", p("principal", "rate", "periods"), nil, s3(CompoundInterest))
	register(GroupTimeValue, "continuous-compounding", p("principal", "rate", "time"), nil, s3(ContinuousCompounding))
	register(GroupTimeValue, "simple-interest", p("principal", "rate", "time"), nil, s3(SimpleInterest))
	register(GroupTimeValue, "annual-percentage-yield", p("stated-rate", "compoundings"), nil, s2(AnnualPercentageYield))
	register(GroupTimeValue, "periods-to-future-value", p("future-value", "present-value", "rate"), nil, s3(NumberOfPeriodsForPresentValueToReachFutureValue))
	register(GroupTimeValue, "doubling-time", p("rate"), nil, s1(DoublingTime))
	register(GroupTimeValue, "doubling-time-continuous", p("rate"), nil, s1(DoublingTimeWithContinuousCompounding))
	register(GroupTimeValue, "doubling-time-simple", p("rate"), nil, s1(DoublingTimeForSimpleInterest))
	register(GroupTimeValue, "rule-of-72", p("rate"), nil, s1(RuleOf72))
	register(GroupTimeValue, "average-rate-of-return", p("total-return-factor", "periods"), nil, s2(AverageRateOfReturnPerYear))
	register(GroupTimeValue, "real-rate-of-return", p("nominal-rate", "inflation-rate"), nil, s2(RealRateOfReturn))
	register(GroupTimeValue, "rate-of-inflation", p("initial-cpi", "ending-cpi"), nil, s2(RateOfInflation))
	register(GroupTimeValue, "interest-rate-parity", p("rate-y", "forward-xy", "spot-xy"), nil, s3(InterestRateParity))

	// annuities and perpetuities
	register(GroupAnnuity, "future-value-of-annuity", p("payment", "rate", "periods"), nil, s3(FutureValueOfAnnuity))
	register(GroupAnnuity, "future-value-of-annuity-continuous", p("cash-flow", "rate", "time"), nil, s3(FutureValueOfAnnuityWithContinuousCompounding))
	register(GroupAnnuity, "periods-for-future-value-of-annuity", p("future-value", "rate", "payment"), nil, s3(NumberOfPeriodsForFutureValueOfAnnuity))
	register(GroupAnnuity, "annuity-payment-present-value", p("present-value", "rate", "periods"), nil, s3(AnnuityPaymentPresentValue))
	register(GroupAnnuity, "annuity-payment-future-value", p("future-value", "rate", "periods"), nil, s3(AnnuityPaymentFutureValue))
	register(GroupAnnuity, "annuity-payment-factor", p("rate", "periods"), nil, s2(AnnuityPaymentFactor))
	register(GroupAnnuity, "present-value-of-annuity", p("payment", "rate", "periods"), nil, s3(PresentValueOfAnnuity))
	register(GroupAnnuity, "present-value-of-annuity-continuous", p("cash-flow", "rate", "time"), nil, s3(PresentValueOfAnnuityWithContinuousCompounding))
	register(GroupAnnuity, "periods-for-present-value-of-annuity", p("present-value", "rate", "payment"), nil, s3(NumberOfPeriodsForPresentValueOfAnnuity))
	register(GroupAnnuity, "present-value-annuity-factor", p("rate", "periods"), nil, s2(PresentValueAnnuityFactor))
	register(GroupAnnuity, "present-value-of-annuity-due", p("payment", "rate", "periods"), nil, s3(PresentValueOfAnnuityDue))
	register(GroupAnnuity, "future-value-of-annuity-due", p("payment", "rate", "periods"), nil, s3(FutureValueOfAnnuityDue))
	register(GroupAnnuity, "annuity-due-payment-present-value", p("present-value", "rate", "periods"), nil, s3(AnnuityDuePaymentUsingPresentValue))
	register(GroupAnnuity, "annuity-due-payment-future-value", p("future-value", "rate", "periods"), nil, s3(AnnuityDuePaymentUsingFutureValue))
	register(GroupAnnuity, "future-value-of-growing-annuity", p("first-payment", "rate", "growth-rate", "periods"), nil, s4(FutureValueOfGrowingAnnuity))
	register(GroupAnnuity, "growing-annuity-payment-present-value", p("present-value", "rate", "growth-rate", "periods"), nil, s4(GrowingAnnuityPaymentFromPresentValue))
	register(GroupAnnuity, "growing-annuity-payment-future-value", p("future-value", "rate", "growth-rate", "periods"), nil, s4(GrowingAnnuityPaymentFromFutureValue))
	register(GroupAnnuity, "present-value-of-growing-annuity", p("first-payment", "rate", "growth-rate", "periods"), nil, s4(PresentValueOfGrowingAnnuity))
	register(GroupAnnuity, "present-value-of-growing-perpetuity", p("first-dividend", "discount-rate", "growth-rate"), nil, s3(PresentValueOfGrowingPerpetuity))
	register(GroupAnnuity, "present-value-of-perpetuity", p("dividend", "discount-rate"), nil, s2(PresentValueOfPerpetuity))
	register(GroupAnnuity, "perpetuity-payment", p("present-value", "rate"), nil, s2(PerpetuityPayment))
	register(GroupAnnuity, "perpetuity-yield", p("payment", "present-value"), nil, s2(PerpetuityYield))
	register(GroupAnnuity, "equivalent-annual-annuity", p("npv", "rate", "periods"), nil, s3(EquivalentAnnualAnnuity))

	// loans
	register(GroupLoan, "loan-payment", p("present-value", "rate", "periods"), nil, s3(LoanPayment))
	register(GroupLoan, "balloon-loan-payment", p("present-value", "balloon", "rate", "periods"), nil, s4(BalloonLoanPayment))
	register(GroupLoan, "balloon-balance", p("present-value", "payment", "rate", "payments"), nil, s4(BalloonBalanceOfLoan))
	register(GroupLoan, "remaining-balance", p("present-value", "payment", "rate", "payments"), nil, s4(RemainingBalanceOnLoan))
	register(GroupLoan, "loan-to-deposit-ratio", p("loans", "deposits"), nil, s2(LoanToDepositRatio))
	register(GroupLoan, "loan-to-value-ratio", p("loan", "collateral"), nil, s2(LoanToValueRatio))
	register(GroupLoan, "debt-to-income-ratio", p("monthly-debt", "monthly-income"), nil, s2(DebtToIncomeRatio))
	register(GroupLoan, "debt-coverage-ratio", p("net-operating-income", "debt-service"), nil, s2(DebtCoverageRatio))

	// returns
	register(GroupReturn, "geometric-mean-return", nil, p("returns"), func(_ []float64, l [][]float64) float64 {
		return GeometricMeanReturn(l[0])
	})
	register(GroupReturn, "holding-period-return", nil, p("returns"), func(_ []float64, l [][]float64) float64 {
		return HoldingPeriodReturn(l[0])
	})
	register(GroupReturn, "net-present-value", p("initial-investment", "discount-rate"), p("cash-flows"), func(a []float64, l [][]float64) float64 {
		return NetPresentValue(a[0], l[0], a[1])
	})
	register(GroupReturn, "weighted-average", nil, p("weights", "values"), func(_ []float64, l [][]float64) float64 {
		return WeightedAverage(l[0], l[1])
	}, coversList(0, 1))
	register(GroupReturn, "return-on-investment", p("earnings", "investment"), nil, s2(ReturnOnInvestment))
	register(GroupReturn, "return-on-assets", p("net-income", "average-assets"), nil, s2(ReturnOnAssets))
	register(GroupReturn, "return-on-equity", p("net-income", "average-equity"), nil, s2(ReturnOnEquity))
	register(GroupReturn, "risk-premium", p("asset-return", "risk-free-return"), nil, s2(RiskPremium))
	register(GroupReturn, "capm", p("risk-free-rate", "beta", "market-return"), nil, s3(CapitalAssetPricingModel))
	register(GroupReturn, "total-stock-return", p("initial-price", "ending-price", "dividends"), nil, s3(TotalStockReturn))
	register(GroupReturn, "capital-gains-yield", p("initial-price", "ending-price"), nil, s2(CapitalGainsYield))
	register(GroupReturn, "dividend-yield", p("dividends", "initial-price"), nil, s2(DividendYield))
	register(GroupReturn, "profitability-index", p("pv-future-cash-flows", "investment"), nil, s2(ProfitabilityIndex))
	register(GroupReturn, "payback-period", p("investment", "cash-flow"), nil, s2(PaybackPeriod))
	register(GroupReturn, "discounted-payback-period", p("investment", "rate", "cash-flow"), nil, s3(DiscountedPaybackPeriod))

	// bonds
	register(GroupBond, "bond-equivalent-yield", p("face-value", "price", "days-to-maturity"), nil, s3(BondEquivalentYield))
	register(GroupBond, "current-yield", p("annual-coupons", "price"), nil, s2(CurrentYield))
	register(GroupBond, "yield-to-maturity", p("coupon", "face-value", "price", "years"), nil, s4(YieldToMaturity))
	register(GroupBond, "zero-coupon-bond-value", p("face-value", "rate", "time"), nil, s3(ZeroCouponBondValue))
	register(GroupBond, "zero-coupon-bond-yield", p("face-value", "present-value", "periods"), nil, s3(ZeroCouponBondEffectiveYield))
	register(GroupBond, "tax-equivalent-yield", p("tax-free-yield", "tax-rate"), nil, s2(TaxEquivalentYield))

	// stocks
	register(GroupStock, "book-value-per-share", p("equity", "shares"), nil, s2(BookValuePerShare))
	register(GroupStock, "earnings-per-share", p("net-income", "shares"), nil, s2(EarningsPerShare))
	register(GroupStock, "diluted-earnings-per-share", p("net-income", "shares", "convertibles"), nil, s3(DilutedEarningsPerShare))
	register(GroupStock, "dividends-per-share", p("dividends", "shares"), nil, s2(DividendsPerShare))
	register(GroupStock, "dividend-payout-ratio", p("dividends", "net-income"), nil, s2(DividendPayoutRatio))
	register(GroupStock, "retention-ratio", p("net-income", "dividends"), nil, s2(RetentionRatio))
	register(GroupStock, "earnings-growth-rate", p("retention-ratio", "return-on-equity"), nil, s2(EarningsGrowthRate))
	register(GroupStock, "eps-growth-rate", p("eps-previous", "eps-current"), nil, s2(EarningsPerShareGrowthRate))
	register(GroupStock, "price-to-book", p("price", "book-value-per-share"), nil, s2(PriceToBookValueRatio))
	register(GroupStock, "price-to-cash-flows", p("market-cap", "operating-cash-flows"), nil, s2(PriceToCashFlowsRatio))
	register(GroupStock, "price-to-dividend", p("price", "dividends-per-share"), nil, s2(PriceToDividendRatio))
	register(GroupStock, "price-to-earnings", p("price", "eps"), nil, s2(PriceToEarningsRatio))
	register(GroupStock, "peg-ratio", p("pe-ratio", "growth-rate"), nil, s2(PriceToEarningsToGrowthRatio))
	register(GroupStock, "price-to-sales", p("price", "sales-per-share"), nil, s2(PriceToSalesRatio))
	register(GroupStock, "preferred-stock-value", p("dividend", "discount-rate"), nil, s2(PreferredStockValue))
	register(GroupStock, "stock-value-constant-growth", p("next-dividend", "required-return", "growth-rate"), nil, s3(PresentValueOfStockWithConstantGrowth))
	register(GroupStock, "stock-value-zero-growth", p("dividend", "required-return"), nil, s2(PresentValueOfStockWithZeroGrowth))
	register(GroupStock, "net-asset-value", p("assets", "liabilities", "shares"), nil, s3(NetAssetValue))
	register(GroupStock, "bid-ask-spread", p("bid", "ask"), nil, s2(BidAskSpread))

	// corporate
	register(GroupCorporate, "asset-to-sales-ratio", p("total-assets", "sales"), nil, s2(AssetToSalesRatio))
	register(GroupCorporate, "asset-turnover-ratio", p("sales", "total-assets"), nil, s2(AssetTurnoverRatio))
	register(GroupCorporate, "average-collection-period", p("receivables-turnover"), nil, s1(AverageCollectionPeriod))
	register(GroupCorporate, "break-even-point", p("fixed-costs", "price-per-unit", "variable-cost-per-unit"), nil, s3(BreakEvenPoint))
	register(GroupCorporate, "contribution-margin", p("price", "variable-cost"), nil, s2(ContributionMargin))
	register(GroupCorporate, "cost-of-goods-sold", p("opening-inventory", "purchases", "closing-inventory"), nil, s3(CostOfGoodsSold))
	register(GroupCorporate, "current-ratio", p("current-assets", "current-liabilities"), nil, s2(CurrentRatio))
	register(GroupCorporate, "quick-ratio", p("quick-assets", "current-liabilities"), nil, s2(QuickRatio))
	register(GroupCorporate, "days-in-inventory", p("inventory-turnover"), nil, s1(DaysInInventory))
	register(GroupCorporate, "debt-ratio", p("liabilities", "assets"), nil, s2(DebtRatio))
	register(GroupCorporate, "debt-to-equity-ratio", p("liabilities", "equity"), nil, s2(DebtToEquityRatio))
	register(GroupCorporate, "equity-multiplier", p("assets", "equity"), nil, s2(EquityMultiplier))
	register(GroupCorporate, "estimated-earnings", p("forecasted-sales", "forecasted-expenses"), nil, s2(EstimatedEarnings))
	register(GroupCorporate, "fcfe", p("net-income", "d-and-a", "capex", "change-in-wc", "net-borrowing"), nil, s5(FreeCashFlowToEquity))
	register(GroupCorporate, "fcff", p("ebit", "tax-rate", "d-and-a", "capex", "change-in-wc"), nil, s5(FreeCashFlowToFirm))
	register(GroupCorporate, "gross-profit", p("sales", "cogs"), nil, s2(GrossProfit))
	register(GroupCorporate, "gross-profit-margin", p("sales", "cogs"), nil, s2(GrossProfitMargin))
	register(GroupCorporate, "interest-coverage-ratio", p("ebit", "interest-expense"), nil, s2(InterestCoverageRatio))
	register(GroupCorporate, "inventory-turnover-ratio", p("sales", "inventory"), nil, s2(InventoryTurnoverRatio))
	register(GroupCorporate, "net-interest-income", p("interest-income", "interest-expense"), nil, s2(NetInterestIncome))
	register(GroupCorporate, "net-interest-margin", p("net-interest-income", "earning-assets"), nil, s2(NetInterestMargin))
	register(GroupCorporate, "net-interest-spread", p("income-rate", "expense-rate"), nil, s2(NetInterestSpread))
	register(GroupCorporate, "net-profit-margin", p("net-income", "sales"), nil, s2(NetProfitMargin))
	register(GroupCorporate, "net-working-capital", p("current-assets", "current-liabilities"), nil, s2(NetWorkingCapital))
	register(GroupCorporate, "operating-margin", p("operating-income", "sales"), nil, s2(OperatingMargin))
	register(GroupCorporate, "receivables-turnover-ratio", p("sales", "average-receivables"), nil, s2(ReceivablesTurnoverRatio))
}
