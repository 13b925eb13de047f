package motion

import "math"

// Calibration converts user units (e.g. mm) into encoder ticks.
type Calibration struct {
	TicksPerUnit float64
	Zero         int32
	Invert       bool
}

// DefaultTicksPerUnit is the ticks per mm of the reference linear stage.
const DefaultTicksPerUnit = 204800

// DefaultCalibration is used for axes without explicit calibration.
var DefaultCalibration = Calibration{TicksPerUnit: 1}

// Ticks converts units into ticks, rounding to the nearest tick.
func (c Calibration) Ticks(units float64) int32 {
	v := units * c.scale()
	if c.Invert {
		v = -v
	}
	return int32(math.Round(v)) + c.Zero
}

// Units converts ticks into units.
func (c Calibration) Units(ticks int32) float64 {
	v := float64(ticks-c.Zero) / c.scale()
	if c.Invert {
		v = -v
	}
	return v
}

func (c Calibration) scale() float64 {
	if c.TicksPerUnit == 0 {
		return 1
	}
	return c.TicksPerUnit
}
