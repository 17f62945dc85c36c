// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     formulas
// Description: Corporate finance: liquidity, leverage, efficiency and
//              profitability ratios, cash flows
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package formulas

func AssetToSalesRatio(totalAssets, salesRevenue float64) float64 {
	return totalAssets / salesRevenue
}

func AssetTurnoverRatio(salesRevenue, totalAssets float64) float64 {
	return salesRevenue / totalAssets
}

// AverageCollectionPeriod converts receivables turnover into days.
func AverageCollectionPeriod(receivablesTurnover float64) float64 {
	return daysPerYear / receivablesTurnover
}

// BreakEvenPoint returns the number of units needed to cover fixed costs.
func BreakEvenPoint(fixedCosts, salesPricePerUnit, variableCostPerUnit float64) float64 {
	return fixedCosts / (salesPricePerUnit - variableCostPerUnit)
}

func ContributionMargin(pricePerProduct, variableCostPerProduct float64) float64 {
	return pricePerProduct - variableCostPerProduct
}

func CostOfGoodsSold(openingInventoryValue, purchases, closingInventoryValue float64) float64 {
	return openingInventoryValue + purchases - closingInventoryValue
}

func CurrentRatio(currentAssets, currentLiabilities float64) float64 {
	return currentAssets / currentLiabilities
}

func QuickRatio(quickAssets, currentLiabilities float64) float64 {
	return quickAssets / currentLiabilities
}

// DaysInInventory converts inventory turnover into days.
func DaysInInventory(inventoryTurnover float64) float64 {
	return daysPerYear / inventoryTurnover
}

func DebtRatio(totalLiabilities, totalAssets float64) float64 {
	return totalLiabilities / totalAssets
}

func DebtToEquityRatio(totalLiabilities, totalEquity float64) float64 {
	return totalLiabilities / totalEquity
}

func EquityMultiplier(totalAssets, stockholdersEquity float64) float64 {
	return totalAssets / stockholdersEquity
}

func EstimatedEarnings(forecastedSales, forecastedExpenses float64) float64 {
	return forecastedSales - forecastedExpenses
}

// FreeCashFlowToEquity returns NI + D&A - ΔWC - CapEx + net borrowing.
func FreeCashFlowToEquity(netIncome, depreciationAndAmortization, capitalExpenditure, changeInWorkingCapital, netBorrowing float64) float64 {
	return netIncome + depreciationAndAmortization - changeInWorkingCapital - capitalExpenditure + netBorrowing
}

// FreeCashFlowToFirm returns EBIT(1 - t) + D&A - CapEx - ΔWC.
func FreeCashFlowToFirm(ebit, taxRate, depreciationAndAmortization, capitalExpenditure, changeInWorkingCapital float64) float64 {
	return ebit*(1-taxRate) + depreciationAndAmortization - capitalExpenditure - changeInWorkingCapital
}

func GrossProfit(salesRevenue, costOfGoodsSold float64) float64 {
	return salesRevenue - costOfGoodsSold
}

func GrossProfitMargin(salesRevenue, costOfGoodsSold float64) float64 {
	return (salesRevenue - costOfGoodsSold) / salesRevenue
}

func InterestCoverageRatio(ebit, interestExpense float64) float64 {
	return ebit / interestExpense
}

func InventoryTurnoverRatio(sales, inventory float64) float64 {
	return sales / inventory
}

func NetInterestIncome(interestIncome, interestExpense float64) float64 {
	return interestIncome - interestExpense
}

func NetInterestMargin(netInterestIncome, averageEarningAssets float64) float64 {
	return netInterestIncome / averageEarningAssets
}

func NetInterestSpread(interestIncomeRate, interestExpenseRate float64) float64 {
	return interestIncomeRate - interestExpenseRate
}

func NetProfitMargin(netIncome, salesRevenue float64) float64 {
	return netIncome / salesRevenue
}

func NetWorkingCapital(currentAssets, currentLiabilities float64) float64 {
	return currentAssets - currentLiabilities
}

func OperatingMargin(operatingIncome, salesRevenue float64) float64 {
	return operatingIncome / salesRevenue
}

func ReceivablesTurnoverRatio(salesRevenue, averageAccountsReceivable float64) float64 {
	return salesRevenue / averageAccountsReceivable
}
