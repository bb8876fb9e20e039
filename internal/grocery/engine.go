// Package grocery implements the grocery aggregation engine: it turns one
// planned week of meals into a consolidated shopping list, split into trips,
// net of on-hand pantry stock and grouped by category. The engine is pure;
// all inputs are loaded up front and it performs no I/O.
package grocery

import (
	"sort"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/models"
)

// ComputeOptions selects how the week is partitioned into trips.
type ComputeOptions struct {
	TripCount    int
	SplitRule    string
	CustomSplits []models.DateRange
}

// Result is a computed set of trips plus the non-fatal gaps encountered.
type Result struct {
	Trips    models.GroceryTrips
	Warnings []RecipeNotFoundWarning
}

// Compute runs the full pipeline: per-item demand, trip assignment, pantry
// netting and assembly. Pantry stock is consumed in trip order, so the
// earliest trip benefits first.
func Compute(week *models.PlannerWeek, pantry []models.PantryItem, lk Lookups, opts ComputeOptions) (*Result, error) {
	ranges, err := Split(week.StartDate, opts.TripCount, opts.SplitRule, opts.CustomSplits)
	if err != nil {
		return nil, err
	}

	perTrip := make([]*demandMap, len(ranges))
	for i := range perTrip {
		perTrip[i] = newDemandMap()
	}

	var warnings []RecipeNotFoundWarning
	for i := range week.Items {
		item := &week.Items[i]
		contribs, warn, err := itemContributions(item, lk)
		if err != nil {
			return nil, err
		}
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		if len(contribs) == 0 {
			continue
		}
		idx, err := assignTrip(ranges, item)
		if err != nil {
			return nil, err
		}
		for _, c := range contribs {
			perTrip[idx].add(c.IngredientID, c.Base)
		}
	}

	stock, err := pantryStock(pantry, lk)
	if err != nil {
		return nil, err
	}

	trips := make(models.GroceryTrips, len(ranges))
	for i, r := range ranges {
		items, err := assembleTrip(perTrip[i], stock, lk)
		if err != nil {
			return nil, err
		}
		trips[i] = models.GroceryTrip{TripIndex: i, DateRange: r, Items: items}
	}

	return &Result{Trips: trips, Warnings: warnings}, nil
}

// pantryStock sums on-hand stock per ingredient in base units. Stock for
// ingredients that no longer exist is ignored.
func pantryStock(pantry []models.PantryItem, lk Lookups) (map[uuid.UUID]float64, error) {
	stock := make(map[uuid.UUID]float64, len(pantry))
	for _, p := range pantry {
		ing, ok := lk.Ingredients[p.IngredientID]
		if !ok {
			continue
		}
		base, err := Normalize(ing, p.Quantity)
		if err != nil {
			return nil, err
		}
		stock[ing.ID] += base
	}
	return stock, nil
}

// assembleTrip nets one trip's demand against the remaining pantry stock and
// produces display-ready items grouped by category. Name fields are
// snapshots taken now, not live references.
func assembleTrip(demand *demandMap, stock map[uuid.UUID]float64, lk Lookups) ([]models.GroceryItem, error) {
	items := make([]models.GroceryItem, 0, len(demand.order))
	for _, id := range demand.order {
		ing := lk.Ingredients[id]
		neededBase := demand.base[id]

		use := stock[id]
		if use > neededBase {
			use = neededBase
		}
		stock[id] -= use

		needed, err := Denormalize(ing, neededBase)
		if err != nil {
			return nil, err
		}
		afterPantry, err := Denormalize(ing, neededBase-use)
		if err != nil {
			return nil, err
		}

		item := models.GroceryItem{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			CategoryID:     ing.CategoryID,
			Needed:         needed,
			AfterPantry:    afterPantry,
			Checked:        false,
		}
		if cat, ok := lk.Categories[ing.CategoryID]; ok {
			item.CategoryName = cat.Name
		}
		items = append(items, item)
	}

	// Contiguous category groups, stable item order inside each group.
	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := categorySortOrder(lk, items[i].CategoryID), categorySortOrder(lk, items[j].CategoryID)
		if oi != oj {
			return oi < oj
		}
		if items[i].CategoryName != items[j].CategoryName {
			return items[i].CategoryName < items[j].CategoryName
		}
		return items[i].IngredientName < items[j].IngredientName
	})
	return items, nil
}

func categorySortOrder(lk Lookups, id uuid.UUID) int {
	if cat, ok := lk.Categories[id]; ok {
		return cat.SortOrder
	}
	return int(^uint(0) >> 1)
}
