// Package onepole implements single-pole infinite impulse response filters:
// the discretized time-domain behaviour of first order RC low-pass and
// high-pass circuits. They are scalar recurrence filters, independent of the
// state estimation recursions, useful for pre-conditioning raw signals before
// feeding them to a filter run.
package onepole

import "math"

// Lowpass applies a single-pole low-pass filter to data in place.
// samplingRate and cutoff are in Hz:
//
//	alpha = dt/(rc + dt), rc = 1/(2*pi*cutoff), dt = 1/samplingRate
//	y[i] = y[i-1] + alpha*(x[i] - y[i-1])
func Lowpass(data []float64, samplingRate, cutoff float64) {
	if len(data) == 0 {
		return
	}

	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / samplingRate
	alpha := dt / (rc + dt)

	data[0] *= alpha
	for i := 1; i < len(data); i++ {
		data[i] = data[i-1] + alpha*(data[i]-data[i-1])
	}
}

// Highpass applies a single-pole high-pass filter to data in place.
// samplingRate and cutoff are in Hz:
//
//	alpha = rc/(rc + dt), rc = 1/(2*pi*cutoff), dt = 1/samplingRate
//	y[i] = alpha*(y[i-1] + x[i] - x[i-1])
func Highpass(data []float64, samplingRate, cutoff float64) {
	if len(data) == 0 {
		return
	}

	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / samplingRate
	alpha := rc / (rc + dt)

	prev := data[0]
	for i := 1; i < len(data); i++ {
		in := data[i]
		data[i] = alpha * (data[i-1] + in - prev)
		prev = in
	}
}
