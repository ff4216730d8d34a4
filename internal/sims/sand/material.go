package sand

import "strings"

// Material identifies the substance held by a cell. Empty is the zero value.
type Material uint8

const (
	Empty Material = iota
	SolidWhite
	SolidRed
	LiquidBlue
	StillGrey

	materialCount
)

// Category is a capability attached to a material definition. Categories are
// looked up from the material, never stored per cell.
type Category uint8

const (
	// CategoryLiquid flows sideways and around obstacles.
	CategoryLiquid Category = 1 << iota
	// CategorySolid falls and stacks.
	CategorySolid
	// CategoryGas is reserved.
	CategoryGas
	// CategoryFloats is reserved.
	CategoryFloats
	// CategoryFixed never moves.
	CategoryFixed
)

var materialCategories = [materialCount]Category{
	Empty:      0,
	SolidWhite: CategorySolid,
	SolidRed:   CategorySolid,
	LiquidBlue: CategoryLiquid,
	StillGrey:  CategoryFixed,
}

var materialNames = [materialCount]string{
	Empty:      "empty",
	SolidWhite: "solid_white",
	SolidRed:   "solid_red",
	LiquidBlue: "liquid_blue",
	StillGrey:  "still_grey",
}

// Categories returns the capability set of the material.
func (m Material) Categories() Category {
	if m >= materialCount {
		return 0
	}
	return materialCategories[m]
}

// Is reports whether the material carries every flag in c.
func (m Material) Is(c Category) bool {
	return c != 0 && m.Categories()&c == c
}

// Valid reports whether m is a known material.
func (m Material) Valid() bool { return m < materialCount }

func (m Material) String() string {
	if m >= materialCount {
		return "unknown"
	}
	return materialNames[m]
}

// ParseMaterial resolves a material by name, case-insensitively.
func ParseMaterial(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), true
		}
	}
	return Empty, false
}

// Paintable lists the materials a brush can place.
func Paintable() []Material {
	return []Material{SolidWhite, SolidRed, LiquidBlue, StillGrey}
}

// Cell is one grid slot: a material plus transient status flags. The flags
// never take part in material or category tests.
type Cell struct {
	Material Material
	// Hovered is cosmetic and set by the brush.
	Hovered bool
	// Updated marks a cell written as a move destination during the current tick.
	Updated bool
}

// Occupied reports whether the cell holds any material.
func (c Cell) Occupied() bool { return c.Material != Empty }

// Has reports whether the cell's material carries the category.
func (c Cell) Has(cat Category) bool { return c.Material.Is(cat) }
