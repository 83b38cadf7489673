package entities

import "github.com/shopspring/decimal"

// Monetary values and hours are persisted with two decimal places.
const amountPlaces = 2

// RoundAmount rounds v half away from zero to two decimal places.
func RoundAmount(v float64) float64 {
	return decimal.NewFromFloat(v).Round(amountPlaces).InexactFloat64()
}

// LaborCost is hours × rate × overtime factor, rounded to cents.
func LaborCost(hours, rate, overtimeFactor float64) float64 {
	return decimal.NewFromFloat(hours).
		Mul(decimal.NewFromFloat(rate)).
		Mul(decimal.NewFromFloat(overtimeFactor)).
		Round(amountPlaces).
		InexactFloat64()
}

// LineCost is quantity × unit cost, rounded to cents.
func LineCost(quantity, unitCost float64) float64 {
	return decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(unitCost)).
		Round(amountPlaces).
		InexactFloat64()
}

// SplitHours divides total hours into n two-decimal shares whose sum equals total rounded to
// two decimals. The rounding residue goes to the last share.
func SplitHours(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	t := decimal.NewFromFloat(total).Round(amountPlaces)
	per := t.Div(decimal.NewFromInt(int64(n))).Truncate(amountPlaces)

	shares := make([]float64, n)
	assigned := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = per.InexactFloat64()
		assigned = assigned.Add(per)
	}
	shares[n-1] = t.Sub(assigned).InexactFloat64()
	return shares
}
