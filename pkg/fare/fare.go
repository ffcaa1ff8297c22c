// Package fare computes ticket prices from route distance and the
// per-passenger age discount rules.
package fare

import (
	"github.com/railbook/railbook/pkg/railway"
)

const (
	InfantMaxAge = 4
	ChildMaxAge  = 12
	SeniorMinAge = 60

	childDiscountRate  = 0.5
	seniorDiscountRate = 0.4
)

type Quote struct {
	DistanceKm int     `groups:"basic"`
	RatePerKm  float64 `groups:"basic"`

	Base     float64 `groups:"basic"`
	Discount float64 `groups:"basic"`
	Total    float64 `groups:"basic"`

	// Discounted headcounts, for display only.
	Children int `groups:"basic"`
	Seniors  int `groups:"basic"`
}

// Calculate prices a journey for a passenger list. Discounts apply to each
// passenger's own share of the base fare, and the total never goes below
// zero.
func Calculate(distanceKm int, ratePerKm float64, passengers []railway.Passenger) Quote {
	perPassenger := float64(distanceKm) * ratePerKm

	quote := Quote{
		DistanceKm: distanceKm,
		RatePerKm:  ratePerKm,
		Base:       perPassenger * float64(len(passengers)),
	}

	for _, passenger := range passengers {
		switch {
		case passenger.Age <= InfantMaxAge:
			quote.Discount += perPassenger
			quote.Children++
		case passenger.Age <= ChildMaxAge:
			quote.Discount += perPassenger * childDiscountRate
			quote.Children++
		case passenger.Age >= SeniorMinAge:
			quote.Discount += perPassenger * seniorDiscountRate
			quote.Seniors++
		}
	}

	quote.Total = quote.Base - quote.Discount
	if quote.Total < 0 {
		quote.Total = 0
	}

	return quote
}
