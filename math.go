package plot

import (
	"math"
)

// RoundDown rounds a down to the next multiple of step.
func RoundDown(a, step float64) float64 {
	return math.Floor(a/step) * step
}

// RoundUp rounds a up to the next multiple of step.
func RoundUp(a, step float64) float64 {
	return math.Ceil(a/step) * step
}

// lerp maps t in [0,1] linearly onto [a,b].
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// TickIncrement returns the step of 1, 2 or 5 times a power of ten
// which divides [start, stop] into about count intervals. A step below
// one is returned as its negative inverse, e.g. -10 for 0.1, so that
// callers divide by an exact integer. Zero means no step exists.
func TickIncrement(start, stop float64, count int) float64 {
	if count <= 0 || !(stop > start) || math.IsInf(stop-start, 0) {
		return 0
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	f := 1.0
	switch {
	case e >= math.Sqrt(50):
		f = 10
	case e >= math.Sqrt(10):
		f = 5
	case e >= math.Sqrt2:
		f = 2
	}
	if power >= 0 {
		return f * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / f
}

// NiceDomain extends [start, stop] outward to multiples of its tick
// increment. Widening may change the increment, so rounding repeats
// until the increment is stable.
func NiceDomain(start, stop float64, count int) (float64, float64) {
	prev := 0.0
	for i := 0; i < 10; i++ {
		step := TickIncrement(start, stop, count)
		if step == 0 || step == prev {
			break
		}
		if step > 0 {
			start, stop = RoundDown(start, step), RoundUp(stop, step)
		} else {
			start, stop = math.Ceil(start*step)/step, math.Floor(stop*step)/step
		}
		prev = step
	}
	return start, stop
}

// TickValues returns the multiples of TickIncrement(start, stop, count)
// in [start, stop], ascending.
func TickValues(start, stop float64, count int) []float64 {
	inc := TickIncrement(start, stop, count)
	var ticks []float64
	switch {
	case inc > 0:
		for i := math.Ceil(start / inc); i <= math.Floor(stop/inc); i++ {
			ticks = append(ticks, i*inc)
		}
	case inc < 0:
		for i := math.Ceil(start * -inc); i <= math.Floor(stop*-inc); i++ {
			ticks = append(ticks, i/-inc)
		}
	}
	return ticks
}
