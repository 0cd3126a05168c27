package service

import (
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/shopspring/decimal"
)

var errNonPositiveServings = &InvalidArgumentError{
	Argument: "servings",
	Message:  "servings must be greater than zero",
}

// ScaleFactor returns target/base as an exact decimal ratio.
func ScaleFactor(target, base int) (decimal.Decimal, error) {
	if target <= 0 {
		return decimal.Zero, errNonPositiveServings
	}
	if base <= 0 {
		return decimal.Zero, &InvalidArgumentError{
			Argument: "servingSize",
			Message:  "recipe serving size must be greater than zero",
		}
	}
	return decimal.NewFromInt(int64(target)).Div(decimal.NewFromInt(int64(base))), nil
}

// ScaleQuantity converts a quantity calibrated for base servings into one for
// target servings. Multiplying before dividing keeps q*target/base exact
// whenever the result terminates.
func ScaleQuantity(q decimal.Decimal, target, base int) decimal.Decimal {
	return q.Mul(decimal.NewFromInt(int64(target))).Div(decimal.NewFromInt(int64(base)))
}

// ScaleRecipe returns a copy of recipe whose ingredient quantities serve
// servings people. The input recipe is left untouched.
func ScaleRecipe(recipe *model.Recipe, servings int) (*model.Recipe, error) {
	if _, err := ScaleFactor(servings, recipe.ServingSize); err != nil {
		return nil, err
	}

	scaled := *recipe
	scaled.ServingSize = servings
	scaled.Ingredients = make([]model.RecipeIngredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ing.Quantity = ScaleQuantity(ing.Quantity, servings, recipe.ServingSize)
		scaled.Ingredients[i] = ing
	}
	return &scaled, nil
}
