package motion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalibration(t *testing.T) {
	cases := []struct {
		calib Calibration
		units float64
		ticks int32
	}{
		{DefaultCalibration, 42, 42},
		{Calibration{TicksPerUnit: DefaultTicksPerUnit, Invert: true}, 6, -1228800},
		{Calibration{TicksPerUnit: DefaultTicksPerUnit, Zero: 500, Invert: true}, 0, 500},
		{Calibration{TicksPerUnit: 10, Zero: -5}, 1.26, 8},
		{Calibration{}, 3, 3},
	}
	for _, c := range cases {
		require.Equal(t, c.ticks, c.calib.Ticks(c.units), "%+v %v", c.calib, c.units)
	}
	calib := Calibration{TicksPerUnit: 100, Zero: 10, Invert: true}
	require.InDelta(t, 2.5, calib.Units(calib.Ticks(2.5)), 1e-9)
}
