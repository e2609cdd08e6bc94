// Package simulation provides growth-projection and currency arithmetic for
// gift corpora. Everything here is pure; the workflow never depends on it.
package simulation

import (
	"fmt"

	"github.com/giftforge/giftforge/internal/domain"
	"github.com/shopspring/decimal"
)

// cagrByProfile maps each risk profile to its assumed compound annual
// growth rate.
var cagrByProfile = map[domain.RiskProfile]decimal.Decimal{
	domain.RiskConservative: decimal.RequireFromString("0.06"),
	domain.RiskBalanced:     decimal.RequireFromString("0.09"),
	domain.RiskGrowth:       decimal.RequireFromString("0.12"),
}

var defaultCAGR = decimal.RequireFromString("0.09")

// Point is one year-end value in a growth projection.
type Point struct {
	Year  int
	Value decimal.Decimal
	Label string
}

// CAGRFor returns the assumed growth rate for the profile, falling back to
// the balanced rate for unknown profiles.
func CAGRFor(profile domain.RiskProfile) decimal.Decimal {
	if r, ok := cagrByProfile[profile]; ok {
		return r
	}
	return defaultCAGR
}

// Project compounds the corpus over the given number of years and returns
// years+1 points (year 0 is the initial corpus), each rounded to 2 places.
func Project(corpus decimal.Decimal, profile domain.RiskProfile, years int) []Point {
	rate := decimal.NewFromInt(1).Add(CAGRFor(profile))

	points := make([]Point, 0, years+1)
	value := corpus
	for year := 0; year <= years; year++ {
		points = append(points, Point{
			Year:  year,
			Value: value.Round(2),
			Label: fmt.Sprintf("Year %d", year),
		})
		value = value.Mul(rate)
	}
	return points
}
