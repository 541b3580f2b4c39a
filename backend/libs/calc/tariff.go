package calc

import (
	"math"
	"strings"
)

// Category is a consumer tariff class.
type Category string

// Supported tariff categories.
const (
	Residential  Category = "residential"
	Commercial   Category = "commercial"
	Industrial   Category = "industrial"
	Agricultural Category = "agricultural"
)

// Tariff pairs a category with its per-unit rate and monthly fixed charge.
type Tariff struct {
	Category    Category `json:"category"`
	RatePerUnit float64  `json:"rate_per_unit"`
	FixedCharge float64  `json:"fixed_charge"`
}

var tariffTable = [...]Tariff{
	{Category: Residential, RatePerUnit: 10.0, FixedCharge: 120},
	{Category: Commercial, RatePerUnit: 12.5, FixedCharge: 250},
	{Category: Industrial, RatePerUnit: 11.0, FixedCharge: 500},
	{Category: Agricultural, RatePerUnit: 6.5, FixedCharge: 80},
}

// Tariffs returns the rate table in display order.
func Tariffs() []Tariff {
	out := make([]Tariff, len(tariffTable))
	copy(out, tariffTable[:])
	return out
}

// ParseCategory accepts a category name in any case.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := lookup(c); !ok {
		return "", invalid("category", CodeUnknownCategory, raw)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := lookup(c)
	return ok
}

// LookupTariff returns the fixed tariff for c.
func LookupTariff(c Category) (Tariff, error) {
	t, ok := lookup(c)
	if !ok {
		return Tariff{}, invalid("category", CodeUnknownCategory, string(c))
	}
	return t, nil
}

func lookup(c Category) (Tariff, bool) {
	for _, t := range tariffTable {
		if t.Category == c {
			return t, true
		}
	}
	return Tariff{}, false
}

func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
