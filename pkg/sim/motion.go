package sim

import (
	"math"
	"time"
)

// motion estimates the position of a linear profile move.
type motion struct {
	startPos  int32
	startTime time.Time
	target    int32
	speed     float64 // ticks per second
	stalled   bool
}

// estimate returns the position at now and whether the move completed.
func (m *motion) estimate(now time.Time) (int32, bool) {
	if m.stalled {
		return m.startPos, false
	}
	dist := float64(m.target) - float64(m.startPos)
	if m.speed <= 0 {
		return m.target, true
	}
	travel := now.Sub(m.startTime).Seconds() * m.speed
	if travel >= math.Abs(dist) {
		return m.target, true
	}
	if dist < 0 {
		travel = -travel
	}
	return m.startPos + int32(travel), false
}
