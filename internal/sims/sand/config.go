package sand

import "strconv"

// Config controls the sandbox dimensions and initial interaction settings.
type Config struct {
	// ExtentW and ExtentH are the physical size of the drawable area in pixels.
	ExtentW int
	ExtentH int
	// CellSize is the number of pixels per cell side.
	CellSize int

	TPS         int
	BrushRadius int
	Material    Material

	Tap    bool
	Manual bool
	Lines  bool

	// DisplaceBudget bounds the displacement search for blocked liquids.
	DisplaceBudget int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ExtentW:        800,
		ExtentH:        600,
		CellSize:       10,
		TPS:            60,
		BrushRadius:    1,
		Material:       SolidWhite,
		DisplaceBudget: DisplaceBudget,
		Seed:           1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["extent_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ExtentW = parsed
		}
	}
	if v, ok := cfg["extent_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ExtentH = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CellSize = clampCellSize(parsed)
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	if v, ok := cfg["material"]; ok {
		if m, ok := ParseMaterial(v); ok && m != Empty {
			c.Material = m
		}
	}
	if v, ok := cfg["displace_budget"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DisplaceBudget = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Tap = parsed
		}
	}
	if v, ok := cfg["manual"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Manual = parsed
		}
	}
	if v, ok := cfg["lines"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Lines = parsed
		}
	}
	return c
}
