package grocery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/models"
)

func testIngredient(defaultUnit models.Unit, packageSize models.Quantity) *models.Ingredient {
	return &models.Ingredient{
		ID:          uuid.New(),
		Name:        "test ingredient",
		CategoryID:  uuid.New(),
		DefaultUnit: defaultUnit,
		PackageSize: packageSize,
	}
}

func TestNormalizeMassFamily(t *testing.T) {
	ing := testIngredient(models.UnitGram, models.Quantity{Amount: 500, Unit: models.UnitGram})

	base, err := Normalize(ing, models.Quantity{Amount: 2, Unit: models.UnitKilogram})
	require.NoError(t, err)
	assert.InDelta(t, 2000, base, 1e-9)

	base, err = Normalize(ing, models.Quantity{Amount: 250, Unit: models.UnitGram})
	require.NoError(t, err)
	assert.InDelta(t, 250, base, 1e-9)
}

func TestNormalizeVolumeFamily(t *testing.T) {
	ing := testIngredient(models.UnitMilliliter, models.Quantity{Amount: 1, Unit: models.UnitLiter})

	base, err := Normalize(ing, models.Quantity{Amount: 1.5, Unit: models.UnitLiter})
	require.NoError(t, err)
	assert.InDelta(t, 1500, base, 1e-9)
}

func TestNormalizePackUsesPackageSize(t *testing.T) {
	// A pack of 6 pieces.
	ing := testIngredient(models.UnitPiece, models.Quantity{Amount: 6, Unit: models.UnitPiece})

	base, err := Normalize(ing, models.Quantity{Amount: 2, Unit: models.UnitPack})
	require.NoError(t, err)
	assert.InDelta(t, 12, base, 1e-9)

	// A pack of 500 g against a gram-denominated ingredient.
	ing = testIngredient(models.UnitGram, models.Quantity{Amount: 500, Unit: models.UnitGram})
	base, err = Normalize(ing, models.Quantity{Amount: 2, Unit: models.UnitPack})
	require.NoError(t, err)
	assert.InDelta(t, 1000, base, 1e-9)
}

func TestNormalizeMixedFamiliesFails(t *testing.T) {
	ing := testIngredient(models.UnitGram, models.Quantity{Amount: 500, Unit: models.UnitGram})

	_, err := Normalize(ing, models.Quantity{Amount: 100, Unit: models.UnitMilliliter})
	var mismatch *UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, ing.ID, mismatch.IngredientID)
	assert.Equal(t, models.UnitMilliliter, mismatch.FromUnit)
	assert.Equal(t, models.UnitGram, mismatch.ToUnit)
}

func TestNormalizePackWithoutUsablePackageSizeFails(t *testing.T) {
	// packageSize stated in packs cannot anchor the conversion
	ing := testIngredient(models.UnitPiece, models.Quantity{Amount: 1, Unit: models.UnitPack})

	_, err := Normalize(ing, models.Quantity{Amount: 3, Unit: models.UnitPack})
	var mismatch *UnitMismatchError
	require.ErrorAs(t, err, &mismatch)

	// ...and so can a zero-sized package
	ing = testIngredient(models.UnitPiece, models.Quantity{Amount: 0, Unit: models.UnitPiece})
	_, err = Normalize(ing, models.Quantity{Amount: 3, Unit: models.UnitPack})
	require.ErrorAs(t, err, &mismatch)
}

func TestNormalizePackAcrossFamiliesFails(t *testing.T) {
	// Pack resolves to grams but the ingredient is counted in pieces.
	ing := testIngredient(models.UnitPiece, models.Quantity{Amount: 500, Unit: models.UnitGram})

	_, err := Normalize(ing, models.Quantity{Amount: 1, Unit: models.UnitPack})
	var mismatch *UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestUnitRoundTrip(t *testing.T) {
	cases := []struct {
		defaultUnit models.Unit
		unit        models.Unit
	}{
		{models.UnitGram, models.UnitGram},
		{models.UnitGram, models.UnitKilogram},
		{models.UnitKilogram, models.UnitGram},
		{models.UnitMilliliter, models.UnitLiter},
		{models.UnitLiter, models.UnitMilliliter},
		{models.UnitPiece, models.UnitPiece},
	}

	for _, tc := range cases {
		ing := testIngredient(tc.defaultUnit, models.Quantity{Amount: 10, Unit: models.UnitPiece})
		base, err := Normalize(ing, models.Quantity{Amount: 3.25, Unit: tc.unit})
		require.NoError(t, err)

		q, err := Denormalize(ing, base)
		require.NoError(t, err)
		assert.Equal(t, tc.defaultUnit, q.Unit)

		back, err := Normalize(ing, q)
		require.NoError(t, err)
		assert.InDelta(t, base, back, 1e-9, "round trip %s -> %s", tc.unit, tc.defaultUnit)
	}
}
