package chart

import "math"

// Scale is a linear mapping from a data-space interval to a device-space
// interval. Device coordinates may be inverted (DeviceMin > DeviceMax),
// which is the normal case for Y axes in canvas coordinates.
type Scale struct {
	DataMin, DataMax     float64
	DeviceMin, DeviceMax float64
}

// NewScale creates a linear scale. A degenerate data interval (min == max)
// maps every value to the device midpoint.
func NewScale(dataMin, dataMax, deviceMin, deviceMax float64) Scale {
	return Scale{
		DataMin:   dataMin,
		DataMax:   dataMax,
		DeviceMin: deviceMin,
		DeviceMax: deviceMax,
	}
}

// Apply maps a data value to device space.
func (s Scale) Apply(v float64) float64 {
	span := s.DataMax - s.DataMin
	if span == 0 {
		return (s.DeviceMin + s.DeviceMax) / 2
	}
	t := (v - s.DataMin) / span
	return s.DeviceMin + t*(s.DeviceMax-s.DeviceMin)
}

// Invert maps a device coordinate back to data space.
func (s Scale) Invert(d float64) float64 {
	span := s.DeviceMax - s.DeviceMin
	if span == 0 {
		return s.DataMin
	}
	t := (d - s.DeviceMin) / span
	return s.DataMin + t*(s.DataMax-s.DataMin)
}

// Ticks returns up to n "nice" tick values covering the data interval,
// using the usual 1/2/5 step progression.
func (s Scale) Ticks(n int) []float64 {
	if n < 2 {
		n = 2
	}
	span := s.DataMax - s.DataMin
	if span <= 0 {
		return []float64{s.DataMin}
	}

	step := niceStep(span / float64(n-1))
	start := math.Ceil(s.DataMin/step) * step

	var ticks []float64
	for v := start; v <= s.DataMax+step/1e6; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// niceStep rounds a raw step up to the nearest 1, 2, or 5 times a power of
// ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
