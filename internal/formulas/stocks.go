// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Per-share figures, price multiples and stock valuation
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

func BookValuePerShare(totalCommonStockholdersEquity, numberOfCommonShares float64) float64 {
	return totalCommonStockholdersEquity / numberOfCommonShares
}

func EarningsPerShare(netIncome, weightedAverageOutstandingShares float64) float64 {
	return netIncome / weightedAverageOutstandingShares
}

// DilutedEarningsPerShare counts convertible instruments as shares.
func DilutedEarningsPerShare(netIncome, averageShares, otherConvertibleInstruments float64) float64 {
	return netIncome / (averageShares + otherConvertibleInstruments)
}

func DividendsPerShare(dividends, numberOfShares float64) float64 {
	return dividends / numberOfShares
}

func DividendPayoutRatio(dividends, netIncome float64) float64 {
	return dividends / netIncome
}

// RetentionRatio is the share of net income kept in the company.
func RetentionRatio(netIncome, dividends float64) float64 {
	return (netIncome - dividends) / netIncome
}

// EarningsGrowthRate is the sustainable growth rate: retention ratio * ROE.
func EarningsGrowthRate(retentionRatio, returnOnEquity float64) float64 {
	return retentionRatio * returnOnEquity
}

// EarningsPerShareGrowthRate returns the relative change of EPS between two
// periods.
func EarningsPerShareGrowthRate(earningsPerSharePrevious, earningsPerShareCurrent float64) float64 {
	return (earningsPerShareCurrent - earningsPerSharePrevious) / earningsPerSharePrevious
}

func PriceToBookValueRatio(marketPricePerShare, bookValuePerShare float64) float64 {
	return marketPricePerShare / bookValuePerShare
}

func PriceToCashFlowsRatio(marketCapitalization, cashFlowsFromOperations float64) float64 {
	return marketCapitalization / cashFlowsFromOperations
}

func PriceToDividendRatio(pricePerShare, dividendsPerShare float64) float64 {
	return pricePerShare / dividendsPerShare
}

func PriceToEarningsRatio(pricePerShare, earningsPerShare float64) float64 {
	return pricePerShare / earningsPerShare
}

// PriceToEarningsToGrowthRatio (PEG) divides the P/E ratio by the annual
// EPS growth rate given as a fraction.
func PriceToEarningsToGrowthRatio(priceToEarningsRatio, earningsGrowthRate float64) float64 {
	return priceToEarningsRatio / earningsGrowthRate
}

func PriceToSalesRatio(sharePrice, salesPerShare float64) float64 {
	return sharePrice / salesPerShare
}

// PreferredStockValue values a fixed dividend as a perpetuity.
func PreferredStockValue(dividend, discountRate float64) float64 {
	return dividend / discountRate
}

// PresentValueOfStockWithConstantGrowth is the Gordon growth model D1 / (r - g).
func PresentValueOfStockWithConstantGrowth(estimatedDividendsForNextPeriod, requiredRateOfReturn, growthRate float64) float64 {
	return estimatedDividendsForNextPeriod / (requiredRateOfReturn - growthRate)
}

func PresentValueOfStockWithZeroGrowth(dividendsPerPeriod, requiredRateOfReturn float64) float64 {
	return dividendsPerPeriod / requiredRateOfReturn
}

// NetAssetValue returns the per-share value of a fund.
func NetAssetValue(fundAssets, fundLiabilities, outstandingShares float64) float64 {
	return (fundAssets - fundLiabilities) / outstandingShares
}

func BidAskSpread(bid, ask float64) float64 {
	return ask - bid
}
