package dto

import (
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// IngredientRequest is the body for creating or updating a catalog ingredient.
//
// @Description Catalog ingredient
// @Example {"name": "Spaghetti", "category": "Grains"}
type IngredientRequest struct {
	Name     string `json:"name" example:"Spaghetti"`
	Category string `json:"category,omitempty" example:"Grains"`
} // @name IngredientRequest

// Validate checks name and category lengths.
func (r *IngredientRequest) Validate() error {
	var errs ValidationErrors
	errs.required("name", r.Name)
	errs.maxLen("name", r.Name, 50)
	errs.maxLen("category", r.Category, 100)
	return errs.err()
}

// ToModel builds a new ingredient from the request.
func (r *IngredientRequest) ToModel() *model.Ingredient {
	return &model.Ingredient{Name: r.Name, Category: r.Category}
}

// IngredientResponse is an ingredient as returned by the API.
type IngredientResponse struct {
	ID        string    `json:"id" example:"65f1c0ffee0ddba11ad0be02"`
	Name      string    `json:"name" example:"Spaghetti"`
	Category  string    `json:"category,omitempty" example:"Grains"`
	CreatedAt time.Time `json:"created_at"`
} // @name IngredientResponse

// NewIngredientResponse maps an ingredient to its API form.
func NewIngredientResponse(i *model.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        i.ID.Hex(),
		Name:      i.Name,
		Category:  i.Category,
		CreatedAt: i.CreatedAt,
	}
}

// NewIngredientResponses maps a slice of ingredients.
func NewIngredientResponses(is []*model.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(is))
	for i, ing := range is {
		out[i] = NewIngredientResponse(ing)
	}
	return out
}
