package grocery

import (
	"github.com/platewise/backend/internal/models"
)

type unitFamily int

const (
	familyMass unitFamily = iota
	familyVolume
	familyCount
)

// unitFactor returns the multiplier that converts one unit into its family's
// base unit (g for mass, ml for volume, piece for count), together with the
// family. A pack is only meaningful relative to the ingredient's package
// definition, so its factor is derived from packageSize; an ingredient whose
// packageSize is itself stated in packs cannot anchor the conversion.
func unitFactor(ing *models.Ingredient, u models.Unit) (float64, unitFamily, error) {
	switch u {
	case models.UnitGram:
		return 1, familyMass, nil
	case models.UnitKilogram:
		return 1000, familyMass, nil
	case models.UnitMilliliter:
		return 1, familyVolume, nil
	case models.UnitLiter:
		return 1000, familyVolume, nil
	case models.UnitPiece:
		return 1, familyCount, nil
	case models.UnitPack:
		ps := ing.PackageSize
		if ps.Unit == models.UnitPack || ps.Amount <= 0 {
			return 0, 0, &UnitMismatchError{IngredientID: ing.ID, FromUnit: models.UnitPack, ToUnit: ing.DefaultUnit}
		}
		factor, fam, err := unitFactor(ing, ps.Unit)
		if err != nil {
			return 0, 0, err
		}
		return ps.Amount * factor, fam, nil
	}
	return 0, 0, &UnitMismatchError{IngredientID: ing.ID, FromUnit: u, ToUnit: ing.DefaultUnit}
}

// Normalize converts q into base units of the ingredient's default-unit
// family. Mixing families fails with UnitMismatchError.
func Normalize(ing *models.Ingredient, q models.Quantity) (float64, error) {
	factor, fam, err := unitFactor(ing, q.Unit)
	if err != nil {
		return 0, err
	}
	_, defaultFam, err := unitFactor(ing, ing.DefaultUnit)
	if err != nil {
		return 0, err
	}
	if fam != defaultFam {
		return 0, &UnitMismatchError{IngredientID: ing.ID, FromUnit: q.Unit, ToUnit: ing.DefaultUnit}
	}
	return q.Amount * factor, nil
}

// Denormalize converts a base-unit amount back into the ingredient's
// default unit for display.
func Denormalize(ing *models.Ingredient, base float64) (models.Quantity, error) {
	factor, _, err := unitFactor(ing, ing.DefaultUnit)
	if err != nil {
		return models.Quantity{}, err
	}
	return models.Quantity{Amount: base / factor, Unit: ing.DefaultUnit}, nil
}
