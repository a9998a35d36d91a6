// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	p := &payload{
		version:  5,
		reserved: 2,
		date:     777,
		seed:     [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	}
	msg := newPolynomial()
	packPayload(msg, p)
	msg.degree = numWords - 1

	got := unpackPayload(msg)
	require.Equal(t, p.version, got.version)
	require.Equal(t, p.reserved, got.reserved)
	require.Equal(t, p.date, got.date)
	require.Equal(t, p.seed, got.seed)
}

func TestPackUnpackZeroAndMaxValues(t *testing.T) {
	cases := []*payload{
		{version: 0, reserved: 0, date: 0, seed: [16]byte{}},
		{version: 7, reserved: 3, date: 1023, seed: [16]byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		}},
	}
	for _, want := range cases {
		msg := newPolynomial()
		packPayload(msg, want)
		msg.degree = numWords - 1
		got := unpackPayload(msg)
		require.Equal(t, *want, *got)
	}
}

func TestBitWriterFillsCoefficientsMSBFirst(t *testing.T) {
	msg := newPolynomial()
	w := newBitWriter(msg)
	w.write(0x7, 3) // 111
	w.write(0x0, 2) // 00
	// coefficient 1 (first data coefficient) should now hold 11100 000000
	// i.e. its top 5 bits written (111 then 00) and the low 6 still zero.
	require.Equal(t, gfElem(0b11100000000), msg.coeffAt(1))
}
