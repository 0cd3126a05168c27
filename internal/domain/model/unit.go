// Package model defines the core domain entities for the meal planner.
package model

import "strconv"

// MeasurementUnit identifies the unit an ingredient quantity is expressed in.
// The numeric values are part of the API and of stored documents.
//
// @Description Measurement unit (1-4 weight, 10-18 volume, 20-25 count, 30 to taste)
type MeasurementUnit int

// Weight units.
const (
	Gram     MeasurementUnit = 1
	Kilogram MeasurementUnit = 2
	Ounce    MeasurementUnit = 3
	Pound    MeasurementUnit = 4
)

// Volume units.
const (
	Millilitre MeasurementUnit = 10
	Litre      MeasurementUnit = 11
	Teaspoon   MeasurementUnit = 12
	Tablespoon MeasurementUnit = 13
	Cup        MeasurementUnit = 14
	Pint       MeasurementUnit = 15
	Quart      MeasurementUnit = 16
	Gallon     MeasurementUnit = 17
	FluidOunce MeasurementUnit = 18
)

// Count units.
const (
	Piece MeasurementUnit = 20
	Whole MeasurementUnit = 21
	Clove MeasurementUnit = 22
	Slice MeasurementUnit = 23
	Pinch MeasurementUnit = 24
	Dash  MeasurementUnit = 25
)

// ToTaste marks an ingredient whose amount is left to the cook.
const ToTaste MeasurementUnit = 30

var unitNames = map[MeasurementUnit]string{
	Gram:       "Gram",
	Kilogram:   "Kilogram",
	Ounce:      "Ounce",
	Pound:      "Pound",
	Millilitre: "Millilitre",
	Litre:      "Litre",
	Teaspoon:   "Teaspoon",
	Tablespoon: "Tablespoon",
	Cup:        "Cup",
	Pint:       "Pint",
	Quart:      "Quart",
	Gallon:     "Gallon",
	FluidOunce: "FluidOunce",
	Piece:      "Piece",
	Whole:      "Whole",
	Clove:      "Clove",
	Slice:      "Slice",
	Pinch:      "Pinch",
	Dash:       "Dash",
	ToTaste:    "ToTaste",
}

// AllUnits returns every defined unit in declaration order.
func AllUnits() []MeasurementUnit {
	return []MeasurementUnit{
		Gram, Kilogram, Ounce, Pound,
		Millilitre, Litre, Teaspoon, Tablespoon, Cup, Pint, Quart, Gallon, FluidOunce,
		Piece, Whole, Clove, Slice, Pinch, Dash,
		ToTaste,
	}
}

// IsValid reports whether u is one of the defined units.
func (u MeasurementUnit) IsValid() bool {
	_, ok := unitNames[u]
	return ok
}

// String returns the unit's name, or its number for undefined values.
func (u MeasurementUnit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return strconv.Itoa(int(u))
}
