// Package units renders measurement units and ingredient quantities for display.
//
// Formatting is a presentation concern only: stored and aggregated quantities
// are never rounded.
package units

import (
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/shopspring/decimal"
)

var abbreviations = map[model.MeasurementUnit]string{
	model.Gram:       "g",
	model.Kilogram:   "kg",
	model.Ounce:      "oz",
	model.Pound:      "lb",
	model.Millilitre: "ml",
	model.Litre:      "L",
	model.Teaspoon:   "tsp",
	model.Tablespoon: "tbsp",
	model.Cup:        "cup",
	model.Pint:       "pt",
	model.Quart:      "qt",
	model.Gallon:     "gal",
	model.FluidOunce: "fl oz",
	model.Piece:      "piece",
	model.Whole:      "whole",
	model.Clove:      "clove",
	model.Slice:      "slice",
	model.Pinch:      "pinch",
	model.Dash:       "dash",
	model.ToTaste:    "to taste",
}

// wordPlurals lists the units written as words. They are separated from the
// quantity by a space and take an irregular plural.
var wordPlurals = map[model.MeasurementUnit]string{
	model.Piece: "pieces",
	model.Whole: "whole",
	model.Clove: "cloves",
	model.Slice: "slices",
	model.Pinch: "pinches",
	model.Dash:  "dashes",
}

var one = decimal.NewFromInt(1)

// Abbreviation returns the display abbreviation of u. Undefined units fall
// back to their raw name.
func Abbreviation(u model.MeasurementUnit) string {
	if abbr, ok := abbreviations[u]; ok {
		return abbr
	}
	return u.String()
}

// IsWordUnit reports whether u is rendered as a separate, pluralizable word.
func IsWordUnit(u model.MeasurementUnit) bool {
	_, ok := wordPlurals[u]
	return ok
}

// FormatQuantity renders q with at most two decimal places and no trailing zeros.
func FormatQuantity(q decimal.Decimal) string {
	return q.Round(2).String()
}

// FormatWithUnit renders a quantity together with its unit, e.g. "500g",
// "1 clove", "4 cloves" or "to taste".
func FormatWithUnit(q decimal.Decimal, u model.MeasurementUnit) string {
	abbr := Abbreviation(u)
	if u == model.ToTaste {
		return abbr
	}

	quantity := FormatQuantity(q)
	if plural, ok := wordPlurals[u]; ok {
		if !q.Equal(one) {
			abbr = plural
		}
		return quantity + " " + abbr
	}
	return quantity + abbr
}
