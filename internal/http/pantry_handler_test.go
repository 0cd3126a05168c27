package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/guttosm/meal-planner/internal/service"
)

func TestPantryHandler_Get(t *testing.T) {
	householdID := primitive.NewObjectID()
	flour := primitive.NewObjectID()
	pantry := &model.Pantry{
		ID:          primitive.NewObjectID(),
		HouseholdID: householdID,
		Items: []model.PantryItem{
			{ID: primitive.NewObjectID(), IngredientID: flour, Quantity: decimal.RequireFromString("1.5"), Unit: model.Kilogram},
		},
	}

	tests := []struct {
		name           string
		setupMock      func(*mocks.MockPantryService, *mocks.MockIngredientService)
		expectedStatus int
	}{
		{
			name: "stocked pantry",
			setupMock: func(p *mocks.MockPantryService, i *mocks.MockIngredientService) {
				p.On("GetByHousehold", mock.Anything, householdID).Return(pantry, nil)
				i.On("Names", mock.Anything, []primitive.ObjectID{flour}).
					Return(map[primitive.ObjectID]string{flour: "Flour"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "household without pantry",
			setupMock: func(p *mocks.MockPantryService, i *mocks.MockIngredientService) {
				p.On("GetByHousehold", mock.Anything, householdID).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pantries := new(mocks.MockPantryService)
			ingredients := new(mocks.MockIngredientService)
			tt.setupMock(pantries, ingredients)
			router := setupRouterWithServices(MealPlannerServices{Pantries: pantries, Ingredients: ingredients})

			w := performRequest(router, http.MethodGet, "/api/households/"+householdID.Hex()+"/pantry", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				got := decodeData[dto.PantryResponse](t, w)
				require.Len(t, got.Items, 1)
				assert.Equal(t, "Flour", got.Items[0].IngredientName)
				assert.Equal(t, "1.5kg", got.Items[0].Display)
			}
			pantries.AssertExpectations(t)
			ingredients.AssertExpectations(t)
		})
	}
}

func TestPantryHandler_Create(t *testing.T) {
	householdID := primitive.NewObjectID()
	path := "/api/households/" + householdID.Hex() + "/pantry"

	pantries := new(mocks.MockPantryService)
	pantries.On("Create", mock.Anything, householdID).
		Return(&model.Pantry{ID: primitive.NewObjectID(), HouseholdID: householdID}, nil).Once()
	pantries.On("Create", mock.Anything, householdID).
		Return(nil, service.ErrConflict).Once()
	router := setupRouterWithServices(MealPlannerServices{Pantries: pantries})

	w := performRequest(router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, path, w.Header().Get("Location"))
	assert.Empty(t, decodeData[dto.PantryResponse](t, w).Items)

	w = performRequest(router, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	pantries.AssertExpectations(t)
}

func TestPantryHandler_AddItem(t *testing.T) {
	householdID := primitive.NewObjectID()
	eggs := primitive.NewObjectID()
	expiry := time.Now().UTC().Add(72 * time.Hour)

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockPantryService)
		expectedStatus int
		expectedErrors []string
	}{
		{
			name: "added",
			body: dto.PantryItemRequest{IngredientID: eggs.Hex(), Quantity: decimal.NewFromInt(6), Unit: model.Piece, ExpiryDate: &expiry},
			setupMock: func(m *mocks.MockPantryService) {
				m.On("AddItem", mock.Anything, householdID, mock.MatchedBy(func(item model.PantryItem) bool {
					return item.IngredientID == eggs && item.Quantity.Equal(decimal.NewFromInt(6)) && item.ExpiryDate != nil
				})).Return(&model.PantryItem{
					ID:           primitive.NewObjectID(),
					IngredientID: eggs,
					Quantity:     decimal.NewFromInt(6),
					Unit:         model.Piece,
					AddedAt:      time.Now().UTC(),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "household has no pantry",
			body: dto.PantryItemRequest{IngredientID: eggs.Hex(), Quantity: decimal.NewFromInt(6), Unit: model.Piece},
			setupMock: func(m *mocks.MockPantryService) {
				m.On("AddItem", mock.Anything, householdID, mock.Anything).
					Return(nil, &service.NotFoundError{Resource: "Pantry for household", ID: householdID.Hex()})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "expired and empty",
			body:           `{"ingredient_id": "` + eggs.Hex() + `", "quantity": 0, "unit": 20, "expiry_date": "2001-01-01T00:00:00Z"}`,
			setupMock:      func(m *mocks.MockPantryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []string{
				"quantity: must be greater than zero",
				"expiry_date: must be in the future",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pantries := new(mocks.MockPantryService)
			tt.setupMock(pantries)
			router := setupRouterWithServices(MealPlannerServices{Pantries: pantries})

			w := performRequest(router, http.MethodPost, "/api/households/"+householdID.Hex()+"/pantry/items", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErrors != nil {
				assert.Equal(t, tt.expectedErrors, decodeError(t, w).Errors)
			}
			if w.Code == http.StatusCreated {
				assert.Equal(t, "6 pieces", decodeData[dto.PantryItemResponse](t, w).Display)
			}
			pantries.AssertExpectations(t)
		})
	}
}

func TestPantryHandler_UpdateAndRemoveItem(t *testing.T) {
	householdID := primitive.NewObjectID()
	pantryID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	itemPath := "/api/households/" + householdID.Hex() + "/pantry/" + pantryID.Hex() + "/items/" + itemID.Hex()
	body := dto.PantryItemRequest{IngredientID: primitive.NewObjectID().Hex(), Quantity: decimal.NewFromInt(2), Unit: model.Litre}

	pantries := new(mocks.MockPantryService)
	pantries.On("UpdateItem", mock.Anything, pantryID, itemID, mock.MatchedBy(func(item model.PantryItem) bool {
		return item.Unit == model.Litre
	})).Return(nil)
	pantries.On("RemoveItem", mock.Anything, pantryID, itemID).
		Return(&service.NotFoundError{Resource: "Pantry item", ID: itemID.Hex(), Parent: "Pantry " + pantryID.Hex()})
	router := setupRouterWithServices(MealPlannerServices{Pantries: pantries})

	w := performRequest(router, http.MethodPut, itemPath, body)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodDelete, itemPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "Pantry "+pantryID.Hex())

	w = performRequest(router, http.MethodDelete, "/api/households/"+householdID.Hex()+"/pantry/bad/items/"+itemID.Hex(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	pantries.AssertExpectations(t)
}
