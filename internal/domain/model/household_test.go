package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHousehold_Member(t *testing.T) {
	h := &Household{
		Members: []HouseholdMember{
			{UserID: "u1", Role: RoleAdmin},
			{UserID: "u2", Role: RoleMember},
		},
	}

	m := h.Member("u2")
	require.NotNil(t, m)
	assert.Equal(t, RoleMember, m.Role)

	m.Role = RoleAdmin
	assert.Equal(t, RoleAdmin, h.Members[1].Role, "Member should return a pointer into the slice")

	assert.Nil(t, h.Member("missing"))
}

func TestHousehold_RemoveMember(t *testing.T) {
	h := &Household{
		Members: []HouseholdMember{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"}},
	}

	assert.True(t, h.RemoveMember("u2"))
	assert.Len(t, h.Members, 2)
	assert.Equal(t, "u1", h.Members[0].UserID)
	assert.Equal(t, "u3", h.Members[1].UserID)
	assert.False(t, h.RemoveMember("u2"))
}

func TestHouseholdRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, HouseholdRole("owner").IsValid())
	assert.False(t, HouseholdRole("").IsValid())
}

func TestMealType_IsValid(t *testing.T) {
	for _, mt := range []MealType{Breakfast, Lunch, Dinner, Snack} {
		assert.True(t, mt.IsValid(), string(mt))
	}
	assert.False(t, MealType("brunch").IsValid())
}

func TestMealPlan_RecipeIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	plan := &MealPlan{
		PlannedMeals: []PlannedMeal{{RecipeID: a}, {RecipeID: b}, {RecipeID: a}},
	}

	assert.Equal(t, []primitive.ObjectID{a, b}, plan.RecipeIDs())
}

func TestPantry_Items(t *testing.T) {
	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	p := &Pantry{Items: []PantryItem{{ID: first}, {ID: second}}}

	require.NotNil(t, p.Item(second))
	assert.Nil(t, p.Item(primitive.NewObjectID()))

	assert.True(t, p.RemoveItem(first))
	assert.False(t, p.RemoveItem(first))
	assert.Len(t, p.Items, 1)
}

func TestShoppingList_Item(t *testing.T) {
	id := primitive.NewObjectID()
	l := &ShoppingList{Items: []ShoppingListItem{{ID: id}}}

	item := l.Item(id)
	require.NotNil(t, item)
	item.IsChecked = true
	assert.True(t, l.Items[0].IsChecked)
	assert.Nil(t, l.Item(primitive.NewObjectID()))
}

func TestMeasurementUnit(t *testing.T) {
	assert.True(t, Gram.IsValid())
	assert.True(t, ToTaste.IsValid())
	assert.False(t, MeasurementUnit(5).IsValid())
	assert.Equal(t, "FluidOunce", FluidOunce.String())
	assert.Equal(t, "5", MeasurementUnit(5).String())
	assert.Len(t, AllUnits(), 20)
}
