package grocery

import (
	"fmt"

	"github.com/platewise/backend/internal/models"
)

// TripPatch replaces one trip's entire item list. The client always resends
// the full list with the toggled checked flags flipped; this is not a diff.
type TripPatch struct {
	TripIndex int
	Items     []models.GroceryItem
}

// ApplyTripPatches returns a new trip set with each patched trip's items
// replaced wholesale. Trips not named in the patch are left untouched, and
// replaying the same patches yields the same result.
func ApplyTripPatches(trips models.GroceryTrips, patches []TripPatch) (models.GroceryTrips, error) {
	out := make(models.GroceryTrips, len(trips))
	copy(out, trips)

	for _, p := range patches {
		if p.TripIndex < 0 || p.TripIndex >= len(out) {
			return nil, &InvalidTripIndexError{TripIndex: p.TripIndex, TripCount: len(out)}
		}
		for _, item := range p.Items {
			if !models.ValidUnit(item.Needed.Unit) {
				return nil, &InvalidPatchItemError{IngredientID: item.IngredientID, Reason: fmt.Sprintf("unknown unit %q", item.Needed.Unit)}
			}
			if !models.ValidUnit(item.AfterPantry.Unit) {
				return nil, &InvalidPatchItemError{IngredientID: item.IngredientID, Reason: fmt.Sprintf("unknown unit %q", item.AfterPantry.Unit)}
			}
			if item.Needed.Amount < 0 || item.AfterPantry.Amount < 0 {
				return nil, &InvalidPatchItemError{IngredientID: item.IngredientID, Reason: "negative amount"}
			}
			if item.AfterPantry.Amount > item.Needed.Amount {
				return nil, &InvalidPatchItemError{IngredientID: item.IngredientID, Reason: "afterPantry exceeds needed"}
			}
		}
		out[p.TripIndex].Items = p.Items
	}
	return out, nil
}
