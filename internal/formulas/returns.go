// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Return measures and capital budgeting
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

import "math"

// GeometricMeanReturn returns the average per-period rate of a sequence of
// compounded periodic returns. An empty sequence yields 0.
// Formula: (prod(1 + r_i))^(1/n) - 1
func GeometricMeanReturn(ratesOfReturn []float64) float64 {
	if len(ratesOfReturn) == 0 {
		return 0
	}
	product := 1.0
	for _, r := range ratesOfReturn {
		product *= 1 + r
	}
	return math.Pow(product, 1/float64(len(ratesOfReturn))) - 1
}

// HoldingPeriodReturn chains periodic returns into one total return.
// An empty sequence yields 0.
func HoldingPeriodReturn(periodReturns []float64) float64 {
	if len(periodReturns) == 0 {
		return 0
	}
	product := 1.0
	for _, r := range periodReturns {
		product *= 1 + r
	}
	return product - 1
}

// NetPresentValue discounts cashFlows, the first one at the end of period
// one, and subtracts the initial investment.
func NetPresentValue(initialInvestment float64, cashFlows []float64, discountRate float64) float64 {
	sum := 0.0
	for i, cf := range cashFlows {
		sum += cf / math.Pow(1+discountRate, float64(i+1))
	}
	return sum - initialInvestment
}

// WeightedAverage returns sum(values[i]*weights[i]) / sum(weights).
// Weights are not normalised. Extra weights beyond len(values) are counted
// in the denominator only.
func WeightedAverage(weights, values []float64) float64 {
	var num, den float64
	for i, v := range values {
		num += v * weights[i]
	}
	for _, w := range weights {
		den += w
	}
	return num / den
}

// ReturnOnInvestment returns (earnings - investment) / investment.
func ReturnOnInvestment(earnings, initialInvestment float64) float64 {
	return (earnings - initialInvestment) / initialInvestment
}

// ReturnOnAssets returns net income / average total assets.
func ReturnOnAssets(netIncome, averageTotalAssets float64) float64 {
	return netIncome / averageTotalAssets
}

// ReturnOnEquity returns net income / average stockholders' equity.
func ReturnOnEquity(netIncome, averageStockholdersEquity float64) float64 {
	return netIncome / averageStockholdersEquity
}

// RiskPremium returns the asset return in excess of the risk free return.
func RiskPremium(assetOrInvestmentReturn, riskFreeReturn float64) float64 {
	return assetOrInvestmentReturn - riskFreeReturn
}

// CapitalAssetPricingModel returns the expected return rf + beta * (rm - rf).
func CapitalAssetPricingModel(riskFreeRate, beta, returnOnTheMarket float64) float64 {
	return riskFreeRate + beta*(returnOnTheMarket-riskFreeRate)
}

// TotalStockReturn combines price appreciation and dividends relative to
// the initial price.
func TotalStockReturn(initialStockPrice, endingStockPrice, dividends float64) float64 {
	return ((endingStockPrice - initialStockPrice) + dividends) / initialStockPrice
}

// CapitalGainsYield returns the price appreciation relative to the initial price.
func CapitalGainsYield(initialStockPrice, endingStockPrice float64) float64 {
	return (endingStockPrice - initialStockPrice) / initialStockPrice
}

// DividendYield returns dividends / initial price.
func DividendYield(dividendsForThePeriod, initialPriceForThePeriod float64) float64 {
	return dividendsForThePeriod / initialPriceForThePeriod
}

// ProfitabilityIndex returns PV of future cash flows / initial investment.
func ProfitabilityIndex(presentValueOfFutureCashFlows, initialInvestment float64) float64 {
	return presentValueOfFutureCashFlows / initialInvestment
}

// PaybackPeriod returns initial investment / periodic cash flow.
func PaybackPeriod(initialInvestment, periodicCashFlow float64) float64 {
	return initialInvestment / periodicCashFlow
}

// DiscountedPaybackPeriod returns the number of periods until the
// discounted periodic cash flows repay the initial investment.
func DiscountedPaybackPeriod(initialInvestment, rate, periodicCashFlow float64) float64 {
	return math.Log(1/(1-(initialInvestment*rate)/periodicCashFlow)) / math.Log(1+rate)
}
