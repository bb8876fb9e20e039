package grocery

import (
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/models"
)

// Lookups is the reference data the engine reads. All of it is loaded before
// computation starts; the engine itself never touches storage.
type Lookups struct {
	Recipes     map[uuid.UUID]*models.Recipe
	Ingredients map[uuid.UUID]*models.Ingredient
	Categories  map[uuid.UUID]*models.Category
}

// contribution is one planner item's requirement for one ingredient, in
// base units.
type contribution struct {
	IngredientID uuid.UUID
	Base         float64
}

// itemContributions expands a single planner item into per-ingredient base
// amounts. Recipe quantities are stated per portion and scale with the
// item's portion count; ad-hoc quantities already represent intended
// consumption and are taken as stated. A missing recipe yields a warning
// and no contributions.
func itemContributions(item *models.PlannerItem, lk Lookups) ([]contribution, *RecipeNotFoundWarning, error) {
	var lines models.RecipeItems
	scale := 1.0

	switch {
	case item.RecipeID != nil:
		recipe, ok := lk.Recipes[*item.RecipeID]
		if !ok {
			return nil, &RecipeNotFoundWarning{PlannerItemID: item.ID, RecipeID: *item.RecipeID}, nil
		}
		lines = recipe.Items
		scale = float64(item.Portions)
	case len(item.AdHocItems) > 0:
		lines = item.AdHocItems
	default:
		return nil, nil, nil
	}

	contribs := make([]contribution, 0, len(lines))
	for _, line := range lines {
		ing, ok := lk.Ingredients[line.IngredientID]
		if !ok {
			// A recipe line pointing at a deleted ingredient cannot be
			// normalized; treat it like a missing recipe and skip.
			continue
		}
		base, err := Normalize(ing, line.Quantity)
		if err != nil {
			return nil, nil, err
		}
		contribs = append(contribs, contribution{IngredientID: ing.ID, Base: base * scale})
	}
	return contribs, nil, nil
}

// demandMap accumulates per-ingredient base amounts in insertion order of
// first encounter.
type demandMap struct {
	order []uuid.UUID
	base  map[uuid.UUID]float64
}

func newDemandMap() *demandMap {
	return &demandMap{base: make(map[uuid.UUID]float64)}
}

func (m *demandMap) add(id uuid.UUID, base float64) {
	if _, seen := m.base[id]; !seen {
		m.order = append(m.order, id)
	}
	m.base[id] += base
}

// Aggregate walks the whole week and sums required quantity per ingredient,
// reported in each ingredient's default unit. Planner items whose recipe no
// longer resolves are skipped and reported as warnings.
func Aggregate(week *models.PlannerWeek, lk Lookups) (map[uuid.UUID]models.Quantity, []RecipeNotFoundWarning, error) {
	demand := newDemandMap()
	var warnings []RecipeNotFoundWarning

	for i := range week.Items {
		contribs, warn, err := itemContributions(&week.Items[i], lk)
		if err != nil {
			return nil, nil, err
		}
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		for _, c := range contribs {
			demand.add(c.IngredientID, c.Base)
		}
	}

	out := make(map[uuid.UUID]models.Quantity, len(demand.order))
	for _, id := range demand.order {
		q, err := Denormalize(lk.Ingredients[id], demand.base[id])
		if err != nil {
			return nil, nil, err
		}
		out[id] = q
	}
	return out, warnings, nil
}
