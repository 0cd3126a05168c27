package repository

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MealPlanRepository implements MealPlanRepositoryInterface using MongoDB.
// Planned meals are embedded in the plan document and reference recipes by ID.
type MealPlanRepository struct {
	collection *mongo.Collection
}

// NewMealPlanRepository creates a new meal plan repository.
func NewMealPlanRepository(db *MongoDB) *MealPlanRepository {
	return &MealPlanRepository{collection: db.MealPlans}
}

// mealPlanWithRecipes is the shape produced by the $lookup pipeline.
type mealPlanWithRecipes struct {
	model.MealPlan `bson:",inline"`
	Recipes        []model.Recipe `bson:"recipes"`
}

// attach links each planned meal to its looked-up recipe. Meals whose recipe
// no longer exists keep a nil Recipe.
func (d *mealPlanWithRecipes) attach() *model.MealPlan {
	byID := make(map[primitive.ObjectID]*model.Recipe, len(d.Recipes))
	for i := range d.Recipes {
		byID[d.Recipes[i].ID] = &d.Recipes[i]
	}
	plan := d.MealPlan
	for i := range plan.PlannedMeals {
		plan.PlannedMeals[i].Recipe = byID[plan.PlannedMeals[i].RecipeID]
	}
	return &plan
}

// FindByID returns the plan without recipes, or nil if it does not exist.
func (r *MealPlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	return findOne[model.MealPlan](ctx, r.collection, bson.M{"_id": id})
}

// FindByIDWithRecipes returns the plan with every planned meal's recipe and
// its ingredients loaded, or nil if the plan does not exist.
func (r *MealPlanRepository) FindByIDWithRecipes(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	plans, err := r.aggregateWithRecipes(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}
	return plans[0], nil
}

// FindByHousehold returns a household's plans, newest week first, with recipes loaded.
func (r *MealPlanRepository) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error) {
	return r.aggregateWithRecipes(ctx, bson.M{"household_id": householdID})
}

func (r *MealPlanRepository) aggregateWithRecipes(ctx context.Context, match bson.M) ([]*model.MealPlan, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "week_start_date", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionRecipes},
			{Key: "localField", Value: "planned_meals.recipe_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "recipes"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []mealPlanWithRecipes
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	plans := make([]*model.MealPlan, 0, len(docs))
	for i := range docs {
		plans = append(plans, docs[i].attach())
	}
	return plans, nil
}

// Create inserts a new plan and assigns IDs to the plan and its meals.
func (r *MealPlanRepository) Create(ctx context.Context, plan *model.MealPlan) error {
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	plan.CreatedAt = time.Now().UTC()
	assignPlannedMealIDs(plan)

	_, err := r.collection.InsertOne(ctx, plan)
	return translateWriteError(err)
}

// Update replaces the stored plan, planned meals included.
func (r *MealPlanRepository) Update(ctx context.Context, plan *model.MealPlan) error {
	assignPlannedMealIDs(plan)
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan))
}

// Delete removes a plan.
func (r *MealPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deletedOrNotFound(r.collection.DeleteOne(ctx, bson.M{"_id": id}))
}

func assignPlannedMealIDs(plan *model.MealPlan) {
	if plan.PlannedMeals == nil {
		plan.PlannedMeals = []model.PlannedMeal{}
	}
	for i := range plan.PlannedMeals {
		if plan.PlannedMeals[i].ID.IsZero() {
			plan.PlannedMeals[i].ID = primitive.NewObjectID()
		}
	}
}
