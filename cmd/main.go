// Package main is the entry point for the meal-planner application.
//
// @title           Meal Planner API
// @version         1.0.0
// @description     API for planning a household's weekly meals.
//
//	Households keep recipes, a pantry and weekly meal plans, and turn a plan
//	into an aggregated shopping list.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/meal-planner
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token in the form Bearer <token>. Required when JWT authentication is enabled.
//
// @tag.name        Households
// @tag.description Households and their members
//
// @tag.name        Pantry
// @tag.description A household's pantry stock
//
// @tag.name        Ingredients
// @tag.description Shared ingredient catalog
//
// @tag.name        Recipes
// @tag.description Household recipes and scaling
//
// @tag.name        Meal plans
// @tag.description Weekly meal plans
//
// @tag.name        Shopping lists
// @tag.description Shopping lists and generation from meal plans
//
// @tag.name        Units
// @tag.description Supported measurement units
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/meal-planner/docs" // swagger docs
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
