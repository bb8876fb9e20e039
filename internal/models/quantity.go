package models

// Unit is one of the six quantity units the product understands.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitPiece      Unit = "piece"
	UnitPack       Unit = "pack"
)

// ValidUnit reports whether u is one of the enumerated unit tokens.
func ValidUnit(u Unit) bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitPiece, UnitPack:
		return true
	}
	return false
}

// Quantity is an amount in one of the supported units.
type Quantity struct {
	Amount float64 `gorm:"type:float" json:"amount"`
	Unit   Unit    `gorm:"size:10" json:"unit"`
}
