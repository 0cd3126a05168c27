package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/units"
)

// PantryItemRequest is the body for adding or updating a pantry item.
//
// @Description Pantry stock line
type PantryItemRequest struct {
	IngredientID string                `json:"ingredient_id" example:"65f1c0ffee0ddba11ad0be02"`
	Quantity     decimal.Decimal       `json:"quantity" swaggertype:"string" example:"1.5"`
	Unit         model.MeasurementUnit `json:"unit" example:"2"`
	ExpiryDate   *time.Time            `json:"expiry_date,omitempty" example:"2030-01-31T00:00:00Z"`
} // @name PantryItemRequest

// Validate collects every violation. A set expiry date must lie in the future.
func (r *PantryItemRequest) Validate() error {
	var errs ValidationErrors
	errs.objectID("ingredient_id", r.IngredientID)
	errs.positive("quantity", r.Quantity)
	errs.unit("unit", r.Unit)
	if r.ExpiryDate != nil && !r.ExpiryDate.After(now()) {
		errs.add("expiry_date", "must be in the future")
	}
	return errs.err()
}

// ToModel converts the request. Call Validate first.
func (r *PantryItemRequest) ToModel() model.PantryItem {
	item := model.PantryItem{
		IngredientID: objectIDOrNil(r.IngredientID),
		Quantity:     r.Quantity,
		Unit:         r.Unit,
	}
	if r.ExpiryDate != nil {
		expiry := r.ExpiryDate.UTC()
		item.ExpiryDate = &expiry
	}
	return item
}

// PantryItemResponse is a pantry item as returned by the API.
type PantryItemResponse struct {
	ID             string                `json:"id"`
	IngredientID   string                `json:"ingredient_id"`
	IngredientName string                `json:"ingredient_name,omitempty"`
	Quantity       decimal.Decimal       `json:"quantity" swaggertype:"string" example:"1.5"`
	Unit           model.MeasurementUnit `json:"unit" example:"2"`
	Display        string                `json:"display" example:"1.5kg"`
	ExpiryDate     *time.Time            `json:"expiry_date,omitempty"`
	AddedAt        time.Time             `json:"added_at"`
} // @name PantryItemResponse

// PantryResponse is a pantry as returned by the API.
type PantryResponse struct {
	ID          string               `json:"id"`
	HouseholdID string               `json:"household_id"`
	Items       []PantryItemResponse `json:"items"`
} // @name PantryResponse

// NewPantryItemResponse maps a pantry item to its API form.
func NewPantryItemResponse(item *model.PantryItem, names IngredientNames) PantryItemResponse {
	return PantryItemResponse{
		ID:             item.ID.Hex(),
		IngredientID:   item.IngredientID.Hex(),
		IngredientName: names[item.IngredientID],
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Display:        units.FormatWithUnit(item.Quantity, item.Unit),
		ExpiryDate:     item.ExpiryDate,
		AddedAt:        item.AddedAt,
	}
}

// NewPantryResponse maps a pantry to its API form.
func NewPantryResponse(p *model.Pantry, names IngredientNames) PantryResponse {
	items := make([]PantryItemResponse, len(p.Items))
	for i := range p.Items {
		items[i] = NewPantryItemResponse(&p.Items[i], names)
	}
	return PantryResponse{ID: p.ID.Hex(), HouseholdID: p.HouseholdID.Hex(), Items: items}
}
