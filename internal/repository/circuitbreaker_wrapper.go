package repository

import (
	"context"
	"errors"

	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// guarded runs fn through cb and hands back its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// HouseholdRepositoryWithCircuitBreaker wraps a household repository with circuit breaker protection.
type HouseholdRepositoryWithCircuitBreaker struct {
	repo           HouseholdRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewHouseholdRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewHouseholdRepositoryWithCircuitBreaker(repo HouseholdRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *HouseholdRepositoryWithCircuitBreaker {
	return &HouseholdRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *HouseholdRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Household, error) { return r.repo.FindByID(ctx, id) })
}

func (r *HouseholdRepositoryWithCircuitBreaker) FindByUserID(ctx context.Context, userID string) ([]*model.Household, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Household, error) { return r.repo.FindByUserID(ctx, userID) })
}

func (r *HouseholdRepositoryWithCircuitBreaker) Create(ctx context.Context, household *model.Household) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, household) })
}

func (r *HouseholdRepositoryWithCircuitBreaker) Update(ctx context.Context, household *model.Household) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, household) })
}

func (r *HouseholdRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *HouseholdRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// IngredientRepositoryWithCircuitBreaker wraps an ingredient repository with circuit breaker protection.
type IngredientRepositoryWithCircuitBreaker struct {
	repo           IngredientRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewIngredientRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewIngredientRepositoryWithCircuitBreaker(repo IngredientRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *IngredientRepositoryWithCircuitBreaker {
	return &IngredientRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *IngredientRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Ingredient, error) { return r.repo.FindByID(ctx, id) })
}

func (r *IngredientRepositoryWithCircuitBreaker) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Ingredient, error) { return r.repo.FindByName(ctx, name) })
}

func (r *IngredientRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Ingredient, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Ingredient, error) { return r.repo.FindByIDs(ctx, ids) })
}

func (r *IngredientRepositoryWithCircuitBreaker) List(ctx context.Context) ([]*model.Ingredient, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Ingredient, error) { return r.repo.List(ctx) })
}

func (r *IngredientRepositoryWithCircuitBreaker) Search(ctx context.Context, term string) ([]*model.Ingredient, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Ingredient, error) { return r.repo.Search(ctx, term) })
}

func (r *IngredientRepositoryWithCircuitBreaker) Create(ctx context.Context, ingredient *model.Ingredient) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, ingredient) })
}

func (r *IngredientRepositoryWithCircuitBreaker) Upsert(ctx context.Context, ingredient *model.Ingredient) (bool, error) {
	return guarded(ctx, r.circuitBreaker, func() (bool, error) { return r.repo.Upsert(ctx, ingredient) })
}

func (r *IngredientRepositoryWithCircuitBreaker) Update(ctx context.Context, ingredient *model.Ingredient) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, ingredient) })
}

func (r *IngredientRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *IngredientRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RecipeRepositoryWithCircuitBreaker wraps a recipe repository with circuit breaker protection.
type RecipeRepositoryWithCircuitBreaker struct {
	repo           RecipeRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecipeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecipeRepositoryWithCircuitBreaker(repo RecipeRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RecipeRepositoryWithCircuitBreaker {
	return &RecipeRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *RecipeRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Recipe, error) { return r.repo.FindByID(ctx, id) })
}

func (r *RecipeRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Recipe, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Recipe, error) { return r.repo.FindByIDs(ctx, ids) })
}

func (r *RecipeRepositoryWithCircuitBreaker) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.Recipe, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Recipe, error) { return r.repo.FindByHousehold(ctx, householdID) })
}

func (r *RecipeRepositoryWithCircuitBreaker) Search(ctx context.Context, householdID primitive.ObjectID, term string) ([]*model.Recipe, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Recipe, error) { return r.repo.Search(ctx, householdID, term) })
}

func (r *RecipeRepositoryWithCircuitBreaker) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, recipe) })
}

func (r *RecipeRepositoryWithCircuitBreaker) Update(ctx context.Context, recipe *model.Recipe) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, recipe) })
}

func (r *RecipeRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecipeRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// MealPlanRepositoryWithCircuitBreaker wraps a meal plan repository with circuit breaker protection.
type MealPlanRepositoryWithCircuitBreaker struct {
	repo           MealPlanRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMealPlanRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMealPlanRepositoryWithCircuitBreaker(repo MealPlanRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *MealPlanRepositoryWithCircuitBreaker {
	return &MealPlanRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *MealPlanRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.MealPlan, error) { return r.repo.FindByID(ctx, id) })
}

func (r *MealPlanRepositoryWithCircuitBreaker) FindByIDWithRecipes(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.MealPlan, error) { return r.repo.FindByIDWithRecipes(ctx, id) })
}

func (r *MealPlanRepositoryWithCircuitBreaker) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.MealPlan, error) { return r.repo.FindByHousehold(ctx, householdID) })
}

func (r *MealPlanRepositoryWithCircuitBreaker) Create(ctx context.Context, plan *model.MealPlan) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, plan) })
}

func (r *MealPlanRepositoryWithCircuitBreaker) Update(ctx context.Context, plan *model.MealPlan) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, plan) })
}

func (r *MealPlanRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MealPlanRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PantryRepositoryWithCircuitBreaker wraps a pantry repository with circuit breaker protection.
type PantryRepositoryWithCircuitBreaker struct {
	repo           PantryRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPantryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPantryRepositoryWithCircuitBreaker(repo PantryRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PantryRepositoryWithCircuitBreaker {
	return &PantryRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *PantryRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pantry, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Pantry, error) { return r.repo.FindByID(ctx, id) })
}

func (r *PantryRepositoryWithCircuitBreaker) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Pantry, error) { return r.repo.FindByHousehold(ctx, householdID) })
}

func (r *PantryRepositoryWithCircuitBreaker) Create(ctx context.Context, pantry *model.Pantry) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, pantry) })
}

func (r *PantryRepositoryWithCircuitBreaker) Update(ctx context.Context, pantry *model.Pantry) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, pantry) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PantryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ShoppingListRepositoryWithCircuitBreaker wraps a shopping list repository with circuit breaker protection.
type ShoppingListRepositoryWithCircuitBreaker struct {
	repo           ShoppingListRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewShoppingListRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewShoppingListRepositoryWithCircuitBreaker(repo ShoppingListRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ShoppingListRepositoryWithCircuitBreaker {
	return &ShoppingListRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *ShoppingListRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.ShoppingList, error) { return r.repo.FindByID(ctx, id) })
}

func (r *ShoppingListRepositoryWithCircuitBreaker) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.ShoppingList, error) { return r.repo.FindByHousehold(ctx, householdID) })
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Create(ctx context.Context, list *model.ShoppingList) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, list) })
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Update(ctx context.Context, list *model.ShoppingList) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Update(ctx, list) })
}

func (r *ShoppingListRepositoryWithCircuitBreaker) SetItemChecked(ctx context.Context, listID, itemID primitive.ObjectID, checked bool) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.SetItemChecked(ctx, listID, itemID, checked) })
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ShoppingListRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
// Writes are dropped silently while the circuit is open since request logs are
// not worth failing a request over.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, entry) }))
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error { return r.repo.CreateMany(ctx, entries) }))
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.LogEntry, error) { return r.repo.Query(ctx, opts) })
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
