package grocery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/models"
)

type fixture struct {
	lk         Lookups
	category   *models.Category
	ingredient *models.Ingredient
	recipe     *models.Recipe
	week       *models.PlannerWeek
}

// newFixture builds the reference scenario: a Monday week with one dinner,
// recipe R at 2 portions, R needing 200 g of a single ingredient.
func newFixture() *fixture {
	cat := &models.Category{ID: uuid.New(), Name: "Baking", SortOrder: 3}
	ing := &models.Ingredient{
		ID:          uuid.New(),
		Name:        "Flour",
		CategoryID:  cat.ID,
		DefaultUnit: models.UnitGram,
		PackageSize: models.Quantity{Amount: 1000, Unit: models.UnitGram},
	}
	recipe := &models.Recipe{
		ID:   uuid.New(),
		Name: "Bread",
		Items: models.RecipeItems{
			{IngredientID: ing.ID, Quantity: models.Quantity{Amount: 200, Unit: models.UnitGram}},
		},
	}
	week := &models.PlannerWeek{
		ID:        uuid.New(),
		StartDate: testWeekStart,
		Items: []models.PlannerItem{
			{
				ID:       uuid.New(),
				Date:     testWeekStart, // Monday
				Slot:     models.SlotDinner,
				RecipeID: &recipe.ID,
				Portions: 2,
			},
		},
	}
	return &fixture{
		lk: Lookups{
			Recipes:     map[uuid.UUID]*models.Recipe{recipe.ID: recipe},
			Ingredients: map[uuid.UUID]*models.Ingredient{ing.ID: ing},
			Categories:  map[uuid.UUID]*models.Category{cat.ID: cat},
		},
		category:   cat,
		ingredient: ing,
		recipe:     recipe,
		week:       week,
	}
}

func defaultOptions() ComputeOptions {
	return ComputeOptions{TripCount: 2, SplitRule: RuleSunWedThuSun}
}

func findItem(trip models.GroceryTrip, ingredientID uuid.UUID) *models.GroceryItem {
	for i := range trip.Items {
		if trip.Items[i].IngredientID == ingredientID {
			return &trip.Items[i]
		}
	}
	return nil
}

func TestComputePortionsScaleRecipeDemand(t *testing.T) {
	f := newFixture()

	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Trips, 2)
	assert.Empty(t, result.Warnings)

	// Monday falls in the first trip of the default rule.
	require.Len(t, result.Trips[0].Items, 1)
	assert.Empty(t, result.Trips[1].Items)

	item := result.Trips[0].Items[0]
	assert.Equal(t, f.ingredient.ID, item.IngredientID)
	assert.Equal(t, "Flour", item.IngredientName)
	assert.Equal(t, "Baking", item.CategoryName)
	assert.Equal(t, models.Quantity{Amount: 400, Unit: models.UnitGram}, item.Needed)
	assert.Equal(t, models.Quantity{Amount: 400, Unit: models.UnitGram}, item.AfterPantry)
	assert.False(t, item.Checked)
}

func TestComputeNetsPantryStock(t *testing.T) {
	f := newFixture()
	pantry := []models.PantryItem{
		{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 150, Unit: models.UnitGram}},
	}

	result, err := Compute(f.week, pantry, f.lk, defaultOptions())
	require.NoError(t, err)

	item := findItem(result.Trips[0], f.ingredient.ID)
	require.NotNil(t, item)
	assert.InDelta(t, 400, item.Needed.Amount, 1e-9)
	assert.InDelta(t, 250, item.AfterPantry.Amount, 1e-9)
}

func TestComputeNettingNeverGoesNegative(t *testing.T) {
	f := newFixture()
	pantry := []models.PantryItem{
		{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 5, Unit: models.UnitKilogram}},
	}

	result, err := Compute(f.week, pantry, f.lk, defaultOptions())
	require.NoError(t, err)

	item := findItem(result.Trips[0], f.ingredient.ID)
	require.NotNil(t, item)
	assert.InDelta(t, 400, item.Needed.Amount, 1e-9)
	assert.InDelta(t, 0, item.AfterPantry.Amount, 1e-9)
	assert.LessOrEqual(t, item.AfterPantry.Amount, item.Needed.Amount)
}

func TestComputeAssignsDemandToTripContainingDate(t *testing.T) {
	f := newFixture()
	thursday, err := addDays(testWeekStart, 3)
	require.NoError(t, err)
	f.week.Items = append(f.week.Items, models.PlannerItem{
		ID:   uuid.New(),
		Date: thursday,
		Slot: models.SlotLunch,
		AdHocItems: models.RecipeItems{
			{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 100, Unit: models.UnitGram}},
		},
		Portions: 4, // must not scale ad-hoc quantities
	})

	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)

	first := findItem(result.Trips[0], f.ingredient.ID)
	second := findItem(result.Trips[1], f.ingredient.ID)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.InDelta(t, 400, first.Needed.Amount, 1e-9)
	assert.InDelta(t, 100, second.Needed.Amount, 1e-9)
}

func TestComputeConsumesPantryInTripOrder(t *testing.T) {
	f := newFixture()
	thursday, _ := addDays(testWeekStart, 3)
	f.week.Items = append(f.week.Items, models.PlannerItem{
		ID:   uuid.New(),
		Date: thursday,
		Slot: models.SlotLunch,
		AdHocItems: models.RecipeItems{
			{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 100, Unit: models.UnitGram}},
		},
		Portions: 1,
	})
	pantry := []models.PantryItem{
		{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 450, Unit: models.UnitGram}},
	}

	result, err := Compute(f.week, pantry, f.lk, defaultOptions())
	require.NoError(t, err)

	// 450 g of stock: the Monday trip absorbs 400, the Thursday trip the
	// remaining 50.
	first := findItem(result.Trips[0], f.ingredient.ID)
	second := findItem(result.Trips[1], f.ingredient.ID)
	assert.InDelta(t, 0, first.AfterPantry.Amount, 1e-9)
	assert.InDelta(t, 50, second.AfterPantry.Amount, 1e-9)
}

func TestComputeConservesDemandAcrossTrips(t *testing.T) {
	f := newFixture()
	thursday, _ := addDays(testWeekStart, 3)
	saturday, _ := addDays(testWeekStart, 5)
	f.week.Items = append(f.week.Items,
		models.PlannerItem{
			ID: uuid.New(), Date: thursday, Slot: models.SlotLunch,
			AdHocItems: models.RecipeItems{
				{IngredientID: f.ingredient.ID, Quantity: models.Quantity{Amount: 0.3, Unit: models.UnitKilogram}},
			},
		},
		models.PlannerItem{
			ID: uuid.New(), Date: saturday, Slot: models.SlotDinner,
			RecipeID: &f.recipe.ID, Portions: 3,
		},
	)

	total, _, err := Aggregate(f.week, f.lk)
	require.NoError(t, err)

	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)

	var tripSum float64
	for _, trip := range result.Trips {
		for _, item := range trip.Items {
			base, err := Normalize(f.ingredient, item.Needed)
			require.NoError(t, err)
			tripSum += base
		}
	}

	totalBase, err := Normalize(f.ingredient, total[f.ingredient.ID])
	require.NoError(t, err)
	assert.InDelta(t, totalBase, tripSum, 1e-9)
	assert.InDelta(t, 400+300+600, tripSum, 1e-9)
}

func TestComputeSkipsMissingRecipes(t *testing.T) {
	f := newFixture()
	gone := uuid.New()
	f.week.Items = append(f.week.Items, models.PlannerItem{
		ID:       uuid.New(),
		Date:     testWeekStart,
		Slot:     models.SlotBreakfast,
		RecipeID: &gone,
		Portions: 1,
	})

	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, gone, result.Warnings[0].RecipeID)

	// The resolvable meal still contributes.
	item := findItem(result.Trips[0], f.ingredient.ID)
	require.NotNil(t, item)
	assert.InDelta(t, 400, item.Needed.Amount, 1e-9)
}

func TestComputeThreeTripsPartitionWeek(t *testing.T) {
	f := newFixture()

	result, err := Compute(f.week, nil, f.lk, ComputeOptions{TripCount: 3})
	require.NoError(t, err)
	require.Len(t, result.Trips, 3)
	assert.Equal(t, models.DateRange{From: "2025-01-06", To: "2025-01-08"}, result.Trips[0].DateRange)
	assert.Equal(t, models.DateRange{From: "2025-01-09", To: "2025-01-10"}, result.Trips[1].DateRange)
	assert.Equal(t, models.DateRange{From: "2025-01-11", To: "2025-01-12"}, result.Trips[2].DateRange)
	for i, trip := range result.Trips {
		assert.Equal(t, i, trip.TripIndex)
	}
}

func TestComputeGroupsItemsByCategory(t *testing.T) {
	f := newFixture()
	dairy := &models.Category{ID: uuid.New(), Name: "Dairy", SortOrder: 1}
	milk := &models.Ingredient{
		ID: uuid.New(), Name: "Milk", CategoryID: dairy.ID,
		DefaultUnit: models.UnitMilliliter,
		PackageSize: models.Quantity{Amount: 1000, Unit: models.UnitMilliliter},
	}
	butter := &models.Ingredient{
		ID: uuid.New(), Name: "Butter", CategoryID: dairy.ID,
		DefaultUnit: models.UnitGram,
		PackageSize: models.Quantity{Amount: 250, Unit: models.UnitGram},
	}
	f.lk.Categories[dairy.ID] = dairy
	f.lk.Ingredients[milk.ID] = milk
	f.lk.Ingredients[butter.ID] = butter

	f.week.Items = append(f.week.Items, models.PlannerItem{
		ID: uuid.New(), Date: testWeekStart, Slot: models.SlotBreakfast,
		AdHocItems: models.RecipeItems{
			{IngredientID: milk.ID, Quantity: models.Quantity{Amount: 200, Unit: models.UnitMilliliter}},
			{IngredientID: butter.ID, Quantity: models.Quantity{Amount: 20, Unit: models.UnitGram}},
		},
	})

	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)

	items := result.Trips[0].Items
	require.Len(t, items, 3)
	// Dairy (sortOrder 1) before Baking (sortOrder 3), names sorted inside.
	assert.Equal(t, "Butter", items[0].IngredientName)
	assert.Equal(t, "Milk", items[1].IngredientName)
	assert.Equal(t, "Flour", items[2].IngredientName)
}

func TestApplyTripPatchesReplacesOnlyNamedTrip(t *testing.T) {
	f := newFixture()
	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)

	patched := make([]models.GroceryItem, len(result.Trips[0].Items))
	copy(patched, result.Trips[0].Items)
	patched[0].Checked = true

	updated, err := ApplyTripPatches(result.Trips, []TripPatch{{TripIndex: 0, Items: patched}})
	require.NoError(t, err)
	assert.True(t, updated[0].Items[0].Checked)
	assert.Equal(t, result.Trips[1], updated[1])

	// Replaying the same patch is a no-op.
	again, err := ApplyTripPatches(updated, []TripPatch{{TripIndex: 0, Items: patched}})
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestApplyTripPatchesRejectsBadIndex(t *testing.T) {
	f := newFixture()
	result, err := Compute(f.week, nil, f.lk, defaultOptions())
	require.NoError(t, err)

	var idxErr *InvalidTripIndexError
	_, err = ApplyTripPatches(result.Trips, []TripPatch{{TripIndex: 5}})
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 5, idxErr.TripIndex)
	assert.Equal(t, 2, idxErr.TripCount)

	_, err = ApplyTripPatches(result.Trips, []TripPatch{{TripIndex: -1}})
	require.ErrorAs(t, err, &idxErr)
}
