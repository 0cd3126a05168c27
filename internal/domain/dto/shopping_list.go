package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/units"
)

// ShoppingListItemRequest is one line of a shopping list.
type ShoppingListItemRequest struct {
	IngredientID string                `json:"ingredient_id" example:"65f1c0ffee0ddba11ad0be02"`
	Quantity     decimal.Decimal       `json:"quantity" swaggertype:"string" example:"400"`
	Unit         model.MeasurementUnit `json:"unit" example:"1"`
	IsChecked    bool                  `json:"is_checked"`
} // @name ShoppingListItemRequest

// ShoppingListRequest is the body for creating or updating a shopping list.
//
// @Description Shopping list; meal_plan_id optionally links the source plan
type ShoppingListRequest struct {
	MealPlanID *string                   `json:"meal_plan_id,omitempty"`
	Notes      string                    `json:"notes,omitempty" example:"Saturday market"`
	Items      []ShoppingListItemRequest `json:"items"`
} // @name ShoppingListRequest

// Validate collects every violation. Items must be present but may be empty.
func (r *ShoppingListRequest) Validate() error {
	var errs ValidationErrors
	if r.MealPlanID != nil {
		errs.objectID("meal_plan_id", *r.MealPlanID)
	}
	errs.maxLen("notes", r.Notes, 500)
	if r.Items == nil {
		errs.add("items", "is required")
	}
	for i, item := range r.Items {
		errs.objectID(itemField("items", i, "ingredient_id"), item.IngredientID)
		errs.positive(itemField("items", i, "quantity"), item.Quantity)
		errs.unit(itemField("items", i, "unit"), item.Unit)
	}
	return errs.err()
}

// MealPlan returns the linked meal plan id, if any. Call Validate first.
func (r *ShoppingListRequest) MealPlan() *primitive.ObjectID {
	if r.MealPlanID == nil {
		return nil
	}
	id := objectIDOrNil(*r.MealPlanID)
	return &id
}

// ToItems converts the request lines. Call Validate first.
func (r *ShoppingListRequest) ToItems() []model.ShoppingListItem {
	items := make([]model.ShoppingListItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.ShoppingListItem{
			IngredientID: objectIDOrNil(item.IngredientID),
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			IsChecked:    item.IsChecked,
		}
	}
	return items
}

// ToModel builds a new list owned by householdID. Call Validate first.
func (r *ShoppingListRequest) ToModel(householdID primitive.ObjectID) *model.ShoppingList {
	return &model.ShoppingList{
		HouseholdID: householdID,
		MealPlanID:  r.MealPlan(),
		Notes:       r.Notes,
		Items:       r.ToItems(),
	}
}

// ShoppingListItemResponse is a shopping list line as returned by the API.
type ShoppingListItemResponse struct {
	ID             string                `json:"id"`
	IngredientID   string                `json:"ingredient_id"`
	IngredientName string                `json:"ingredient_name,omitempty" example:"Spaghetti"`
	Quantity       decimal.Decimal       `json:"quantity" swaggertype:"string" example:"400"`
	Unit           model.MeasurementUnit `json:"unit" example:"1"`
	Display        string                `json:"display" example:"400g"`
	IsChecked      bool                  `json:"is_checked"`
} // @name ShoppingListItemResponse

// ShoppingListResponse is a shopping list as returned by the API.
type ShoppingListResponse struct {
	ID          string                     `json:"id"`
	HouseholdID string                     `json:"household_id"`
	MealPlanID  string                     `json:"meal_plan_id,omitempty"`
	Notes       string                     `json:"notes,omitempty"`
	Items       []ShoppingListItemResponse `json:"items"`
	CreatedAt   time.Time                  `json:"created_at"`
} // @name ShoppingListResponse

// NewShoppingListResponse maps a shopping list to its API form.
func NewShoppingListResponse(l *model.ShoppingList, names IngredientNames) ShoppingListResponse {
	items := make([]ShoppingListItemResponse, len(l.Items))
	for i, item := range l.Items {
		items[i] = ShoppingListItemResponse{
			ID:             item.ID.Hex(),
			IngredientID:   item.IngredientID.Hex(),
			IngredientName: names[item.IngredientID],
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			Display:        units.FormatWithUnit(item.Quantity, item.Unit),
			IsChecked:      item.IsChecked,
		}
	}
	resp := ShoppingListResponse{
		ID:          l.ID.Hex(),
		HouseholdID: l.HouseholdID.Hex(),
		Notes:       l.Notes,
		Items:       items,
		CreatedAt:   l.CreatedAt,
	}
	if l.MealPlanID != nil {
		resp.MealPlanID = l.MealPlanID.Hex()
	}
	return resp
}

// NewShoppingListResponses maps a slice of shopping lists.
func NewShoppingListResponses(ls []*model.ShoppingList, names IngredientNames) []ShoppingListResponse {
	out := make([]ShoppingListResponse, len(ls))
	for i, l := range ls {
		out[i] = NewShoppingListResponse(l, names)
	}
	return out
}

// ShoppingListIngredientIDs collects the ingredient ids referenced by lists.
func ShoppingListIngredientIDs(ls ...*model.ShoppingList) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, l := range ls {
		for _, item := range l.Items {
			ids = append(ids, item.IngredientID)
		}
	}
	return ids
}

// UnitResponse describes one measurement unit.
type UnitResponse struct {
	Value        int    `json:"value" example:"1"`
	Name         string `json:"name" example:"Gram"`
	Abbreviation string `json:"abbreviation" example:"g"`
} // @name UnitResponse

// NewUnitResponses lists every defined measurement unit.
func NewUnitResponses() []UnitResponse {
	all := model.AllUnits()
	out := make([]UnitResponse, len(all))
	for i, u := range all {
		out[i] = UnitResponse{Value: int(u), Name: u.String(), Abbreviation: units.Abbreviation(u)}
	}
	return out
}
