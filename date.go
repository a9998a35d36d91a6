// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

const (
	// epoch is the base timestamp: 1st June 2020 00:00:00 UTC.
	epoch = uint64(1590969600)

	// timeStep is 30.436875 days = 1/12 of the Gregorian year.
	timeStep = uint64(2629746)

	// dateBits is the number of bits used for the quantized creation date.
	dateBits = 10

	// dateMask is the mask for date bits.
	dateMask = (1 << dateBits) - 1
)

// quantizeDate rounds a Unix timestamp down to the nearest time_step since
// epoch and wraps it into dateBits bits. Timestamps before epoch have no
// valid quantization; callers must reject them before calling this.
func quantizeDate(timestamp uint64) uint16 {
	return uint16(((timestamp - epoch) / timeStep) & dateMask)
}

// dateFromQuantized expands a quantized date back into a Unix timestamp.
func dateFromQuantized(quantized uint16) uint64 {
	return epoch + uint64(quantized)*timeStep
}
