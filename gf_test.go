// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGfAddIsXor(t *testing.T) {
	require.Equal(t, gfElem(0), gfAdd(gfElem(1234), gfElem(1234)))
	require.Equal(t, gfElem(1234^42), gfAdd(gfElem(1234), gfElem(42)))
}

func TestGfMulIdentity(t *testing.T) {
	for _, v := range []gfElem{0, 1, 2, 1000, 2047} {
		require.Equal(t, gfElem(0), gfMul(v, 0))
		require.Equal(t, v, gfMul(v, 1))
	}
}

func TestGfMulCommutative(t *testing.T) {
	a, b := gfElem(37), gfElem(1500)
	require.Equal(t, gfMul(a, b), gfMul(b, a))
}

func TestGfInverse(t *testing.T) {
	for v := gfElem(1); v < gfSize; v++ {
		inv := gfInv(v)
		require.Equal(t, gfElem(1), gfMul(v, inv), "v=%d", v)
	}
}

func TestGfInverseOfZeroPanics(t *testing.T) {
	require.Panics(t, func() { gfInv(0) })
}

func TestGfPow(t *testing.T) {
	require.Equal(t, gfElem(1), gfPow(gfGenerator, 0))
	require.Equal(t, gfGenerator, gfPow(gfGenerator, 1))
	require.Equal(t, gfMul(gfGenerator, gfGenerator), gfPow(gfGenerator, 2))
	require.Equal(t, gfElem(0), gfPow(0, 5))
	require.Equal(t, gfElem(1), gfPow(0, 0))
}

func TestExpLogTablesAreInverses(t *testing.T) {
	for i := 0; i < gfSize-1; i++ {
		require.Equal(t, i, logTable[expTable[i]])
	}
}
