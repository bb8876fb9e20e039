package grocery

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/models"
)

// UnitMismatchError reports an attempt to combine two quantities whose units
// cannot be converted into each other for a given ingredient. It is never
// silently coerced away.
type UnitMismatchError struct {
	IngredientID uuid.UUID
	FromUnit     models.Unit
	ToUnit       models.Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unit mismatch for ingredient %s: cannot convert %q to %q", e.IngredientID, e.FromUnit, e.ToUnit)
}

// InvalidSplitError reports a trip split request that does not partition the
// week: bad trip count, a gap, an overlap, or a range outside the week.
type InvalidSplitError struct {
	Reason string
}

func (e *InvalidSplitError) Error() string {
	return "invalid trip split: " + e.Reason
}

// UnassignedItemError reports a planner item whose date fell into none of
// the computed trip ranges.
type UnassignedItemError struct {
	PlannerItemID uuid.UUID
	Date          string
}

func (e *UnassignedItemError) Error() string {
	return fmt.Sprintf("planner item %s (%s) is not covered by any trip", e.PlannerItemID, e.Date)
}

// InvalidTripIndexError reports a patch addressing a trip the list does not
// have.
type InvalidTripIndexError struct {
	TripIndex int
	TripCount int
}

func (e *InvalidTripIndexError) Error() string {
	return fmt.Sprintf("trip index %d out of range (list has %d trips)", e.TripIndex, e.TripCount)
}

// InvalidPatchItemError reports a patched item whose quantities break the
// list's accounting: an unknown unit, a negative amount, or an afterPantry
// above needed.
type InvalidPatchItemError struct {
	IngredientID uuid.UUID
	Reason       string
}

func (e *InvalidPatchItemError) Error() string {
	return fmt.Sprintf("invalid patch for ingredient %s: %s", e.IngredientID, e.Reason)
}

// StaleVersionError reports a patch carrying a version older than the
// list's current one. The caller should refetch and retry.
type StaleVersionError struct {
	Given   int
	Current int
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("stale list version %d (current is %d)", e.Given, e.Current)
}

// RecipeNotFoundWarning records a planner item whose recipe no longer
// resolves. The item contributes nothing; computation continues.
type RecipeNotFoundWarning struct {
	PlannerItemID uuid.UUID
	RecipeID      uuid.UUID
}

func (w RecipeNotFoundWarning) String() string {
	return fmt.Sprintf("planner item %s references missing recipe %s, skipped", w.PlannerItemID, w.RecipeID)
}
