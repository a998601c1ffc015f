// Package loan computes fixed-rate amortized loan figures (EMI).
package loan

import "math"

// Result holds whole-currency-unit outputs of an EMI calculation.
// When Valid is false every amount is zero.
type Result struct {
	Valid         bool  `json:"valid"`
	EMI           int64 `json:"emi"`
	TotalPayment  int64 `json:"totalPayment"`
	TotalInterest int64 `json:"totalInterest"`
}

// Installment is one month of the amortization schedule.
type Installment struct {
	Month     int   `json:"month"`
	Payment   int64 `json:"payment"`
	Principal int64 `json:"principal"`
	Interest  int64 `json:"interest"`
	Balance   int64 `json:"balance"`
}

// PrincipalBounds is the UI convenience default for a loan against a
// reference property price.
type PrincipalBounds struct {
	Min     int64 `json:"min"`
	Max     int64 `json:"max"`
	Default int64 `json:"default"`
}

const minPrincipalFloor = 100_000

// Calculate returns the fixed monthly payment for a loan of principal
// currency units at annualRate percent over years.
//
// All inputs must be finite and strictly positive; anything else yields an
// invalid zero Result. A zero rate is rejected rather than degenerating to
// principal/months, so the EMI denominator can never reach zero.
func Calculate(principal, annualRate, years float64) Result {
	if !positive(principal) || !positive(annualRate) || !positive(years) {
		return Result{}
	}

	monthlyRate := annualRate / 12 / 100
	months := years * 12

	pow := math.Pow(1+monthlyRate, months)
	emi := principal * monthlyRate * pow / (pow - 1)
	totalPayment := emi * months

	return Result{
		Valid:         true,
		EMI:           round(emi),
		TotalPayment:  round(totalPayment),
		TotalInterest: round(totalPayment - principal),
	}
}

// Schedule expands the loan into its month-by-month principal/interest
// split. Returns nil for invalid inputs.
func Schedule(principal, annualRate, years float64) []Installment {
	if !Calculate(principal, annualRate, years).Valid {
		return nil
	}

	monthlyRate := annualRate / 12 / 100
	months := int(math.Round(years * 12))
	pow := math.Pow(1+monthlyRate, float64(months))
	emi := principal * monthlyRate * pow / (pow - 1)

	schedule := make([]Installment, 0, months)
	balance := principal
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		repaid := emi - interest
		balance -= repaid
		if m == months || balance < 0 {
			balance = 0
		}
		schedule = append(schedule, Installment{
			Month:     m,
			Payment:   round(emi),
			Principal: round(repaid),
			Interest:  round(interest),
			Balance:   round(balance),
		})
	}
	return schedule
}

// SuggestedPrincipal derives the default loan amount for a reference
// property price: 80% of the price, offered within [10%, 90%] with a floor
// of 100,000 on the lower bound. A non-positive reference falls back to
// 10,000,000.
func SuggestedPrincipal(referencePrice int64) PrincipalBounds {
	price := referencePrice
	if price <= 0 {
		price = 10_000_000
	}

	min := price / 10
	if min < minPrincipalFloor {
		min = minPrincipalFloor
	}

	return PrincipalBounds{
		Min:     min,
		Max:     price * 9 / 10,
		Default: price * 8 / 10,
	}
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
