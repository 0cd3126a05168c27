package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/guttosm/meal-planner/internal/service"
)

const futureWeek = "2099-01-05"

func TestMealPlanHandler_Get(t *testing.T) {
	recipe := &model.Recipe{ID: primitive.NewObjectID(), Name: "Spaghetti Pomodoro"}
	plan := &model.MealPlan{
		ID:            primitive.NewObjectID(),
		HouseholdID:   primitive.NewObjectID(),
		WeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		PlannedMeals: []model.PlannedMeal{
			{ID: primitive.NewObjectID(), RecipeID: recipe.ID, DayOfWeek: time.Monday, MealType: model.Dinner, Servings: 4, Recipe: recipe},
		},
	}

	mealPlans := new(mocks.MockMealPlanService)
	mealPlans.On("Get", mock.Anything, plan.ID).Return(plan, nil)
	router := setupRouterWithServices(MealPlannerServices{MealPlans: mealPlans})

	w := performRequest(router, http.MethodGet, "/api/meal-plans/"+plan.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[dto.MealPlanResponse](t, w)
	assert.Equal(t, "2024-03-04", got.WeekStartDate)
	require.Len(t, got.PlannedMeals, 1)
	assert.Equal(t, "Spaghetti Pomodoro", got.PlannedMeals[0].RecipeName)
	assert.Equal(t, "Monday", got.PlannedMeals[0].DayName)
	mealPlans.AssertExpectations(t)
}

func TestMealPlanHandler_GetMissing(t *testing.T) {
	id := primitive.NewObjectID()
	mealPlans := new(mocks.MockMealPlanService)
	mealPlans.On("Get", mock.Anything, id).Return(nil, nil)
	router := setupRouterWithServices(MealPlannerServices{MealPlans: mealPlans})

	w := performRequest(router, http.MethodGet, "/api/meal-plans/"+id.Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealPlanHandler_Create(t *testing.T) {
	householdID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	valid := dto.MealPlanRequest{
		WeekStartDate: futureWeek,
		PlannedMeals: []dto.PlannedMealRequest{
			{RecipeID: recipeID.Hex(), DayOfWeek: 1, MealType: model.Dinner, Servings: 4},
		},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockMealPlanService)
		expectedStatus int
		expectedErrors []string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(m *mocks.MockMealPlanService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p *model.MealPlan) bool {
					return p.HouseholdID == householdID &&
						p.WeekStartDate.Equal(time.Date(2099, 1, 5, 0, 0, 0, 0, time.UTC)) &&
						len(p.PlannedMeals) == 1 && p.PlannedMeals[0].DayOfWeek == time.Monday
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.MealPlan).ID = primitive.NewObjectID()
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "recipe from another household",
			body: valid,
			setupMock: func(m *mocks.MockMealPlanService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(&service.NotFoundError{Resource: "Recipe", ID: recipeID.Hex()})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "past week and bad meal slot",
			body: dto.MealPlanRequest{
				WeekStartDate: "2001-01-01",
				PlannedMeals: []dto.PlannedMealRequest{
					{RecipeID: recipeID.Hex(), DayOfWeek: 7, MealType: "brunch", Servings: 0},
				},
			},
			setupMock:      func(m *mocks.MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{
				"week_start_date: must not be in the past",
				"planned_meals[0].day_of_week: must be between 0 (Sunday) and 6 (Saturday)",
				"planned_meals[0].meal_type: must be breakfast, lunch, dinner or snack",
				"planned_meals[0].servings: must be greater than zero",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mealPlans := new(mocks.MockMealPlanService)
			tt.setupMock(mealPlans)
			router := setupRouterWithServices(MealPlannerServices{MealPlans: mealPlans})

			w := performRequest(router, http.MethodPost, "/api/meal-plans/household/"+householdID.Hex(), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErrors != nil {
				assert.Equal(t, tt.expectedErrors, decodeError(t, w).Errors)
			}
			if w.Code == http.StatusCreated {
				assert.Equal(t, futureWeek, decodeData[dto.MealPlanResponse](t, w).WeekStartDate)
			}
			mealPlans.AssertExpectations(t)
		})
	}
}

func TestMealPlanHandler_ListUpdateDelete(t *testing.T) {
	householdID := primitive.NewObjectID()
	id := primitive.NewObjectID()
	body := dto.MealPlanRequest{
		WeekStartDate: futureWeek,
		PlannedMeals: []dto.PlannedMealRequest{
			{RecipeID: primitive.NewObjectID().Hex(), DayOfWeek: 0, MealType: model.Breakfast, Servings: 2},
		},
	}

	mealPlans := new(mocks.MockMealPlanService)
	mealPlans.On("ListByHousehold", mock.Anything, householdID).Return([]*model.MealPlan{}, nil)
	mealPlans.On("Update", mock.Anything, id, time.Date(2099, 1, 5, 0, 0, 0, 0, time.UTC), mock.MatchedBy(func(meals []model.PlannedMeal) bool {
		return len(meals) == 1 && meals[0].MealType == model.Breakfast
	})).Return(nil)
	mealPlans.On("Delete", mock.Anything, id).Return(nil)
	router := setupRouterWithServices(MealPlannerServices{MealPlans: mealPlans})

	w := performRequest(router, http.MethodGet, "/api/meal-plans/household/"+householdID.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPut, "/api/meal-plans/"+id.Hex(), body)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodDelete, "/api/meal-plans/"+id.Hex(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mealPlans.AssertExpectations(t)
}
