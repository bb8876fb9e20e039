package grocery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/models"
)

func patchFixtureTrips() models.GroceryTrips {
	return models.GroceryTrips{
		{
			TripIndex: 0,
			DateRange: models.DateRange{From: "2025-01-05", To: "2025-01-08"},
			Items: []models.GroceryItem{
				{
					IngredientID: uuid.New(),
					Needed:       models.Quantity{Amount: 400, Unit: models.UnitGram},
					AfterPantry:  models.Quantity{Amount: 250, Unit: models.UnitGram},
				},
			},
		},
	}
}

func TestApplyTripPatchesTogglesChecked(t *testing.T) {
	trips := patchFixtureTrips()
	patched := trips[0].Items[0]
	patched.Checked = true

	out, err := ApplyTripPatches(trips, []TripPatch{{TripIndex: 0, Items: []models.GroceryItem{patched}}})
	require.NoError(t, err)
	assert.True(t, out[0].Items[0].Checked)
	// the input trips are untouched
	assert.False(t, trips[0].Items[0].Checked)
}

func TestApplyTripPatchesRejectsAfterPantryAboveNeeded(t *testing.T) {
	trips := patchFixtureTrips()
	patched := trips[0].Items[0]
	patched.AfterPantry.Amount = patched.Needed.Amount + 1

	_, err := ApplyTripPatches(trips, []TripPatch{{TripIndex: 0, Items: []models.GroceryItem{patched}}})
	var badPatch *InvalidPatchItemError
	require.ErrorAs(t, err, &badPatch)
	assert.Equal(t, trips[0].Items[0].IngredientID, badPatch.IngredientID)
}

func TestApplyTripPatchesRejectsNegativeAmounts(t *testing.T) {
	trips := patchFixtureTrips()
	patched := trips[0].Items[0]
	patched.Needed.Amount = -1
	patched.AfterPantry.Amount = -1

	_, err := ApplyTripPatches(trips, []TripPatch{{TripIndex: 0, Items: []models.GroceryItem{patched}}})
	var badPatch *InvalidPatchItemError
	require.ErrorAs(t, err, &badPatch)
}

func TestApplyTripPatchesRejectsUnknownUnit(t *testing.T) {
	trips := patchFixtureTrips()
	patched := trips[0].Items[0]
	patched.Needed.Unit = models.Unit("bushel")

	_, err := ApplyTripPatches(trips, []TripPatch{{TripIndex: 0, Items: []models.GroceryItem{patched}}})
	var badPatch *InvalidPatchItemError
	require.ErrorAs(t, err, &badPatch)
}

func TestApplyTripPatchesRejectsOutOfRangeIndex(t *testing.T) {
	trips := patchFixtureTrips()

	_, err := ApplyTripPatches(trips, []TripPatch{{TripIndex: 1}})
	var badTrip *InvalidTripIndexError
	require.ErrorAs(t, err, &badTrip)
	assert.Equal(t, 1, badTrip.TripIndex)
}
