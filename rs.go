// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

// checkDigits is the number of Reed-Solomon check symbols, K. This format
// fixes K=1; the code below derives everything from K so a future K>1
// would need no redesign.
const checkDigits = 1

// dataWords is the number of data symbols carried alongside the checksum.
const dataWords = numWords - checkDigits

// reedSolomon is a stateless value parameterized by K, holding the
// precomputed generator polynomial coefficients. It is immutable after
// construction and safe to share; the package builds exactly one instance
// as a process-wide constant.
type reedSolomon struct {
	k    int
	gen  [checkDigits]gfElem // gen[i] is the coefficient of x^i in g(x), excluding the implicit monic x^k term
	root [checkDigits]gfElem // root[i] = generator^i, the i-th root of g(x)
}

// theCode is the single Reed-Solomon instance used throughout the package.
var theCode = newReedSolomon(checkDigits)

// newReedSolomon builds g(x) = (x - a^0)(x - a^1)...(x - a^(k-1)) by
// repeated multiplication by monic linear factors, matching the
// polynomial's own mulMonic primitive.
func newReedSolomon(k int) *reedSolomon {
	rs := &reedSolomon{k: k}
	g := newPolynomial()
	g.setCoeff(0, 1)
	g.degree = 0
	for i := 0; i < k; i++ {
		root := gfPow(gfGenerator, i)
		rs.root[i] = root
		g.mulMonic(root)
	}
	for i := 0; i < k; i++ {
		rs.gen[i] = g.coeffAt(i)
	}
	return rs
}

// evalFull evaluates a codeword-length polynomial at x, treating all
// numWords coefficients as significant regardless of the polynomial's
// cached degree. Reed-Solomon codewords are fixed-length by construction,
// so a trailing zero coefficient at the highest index is not the same
// thing as a lower-degree polynomial.
func evalFull(p *polynomial, x gfElem) gfElem {
	result := p.coeffAt(numWords - 1)
	for i := numWords - 2; i >= 0; i-- {
		result = gfAdd(gfMul(result, x), p.coeffAt(i))
	}
	return result
}

// encode computes the systematic check symbols for a message whose data
// occupies coefficients checkDigits..numWords-1 and whose low checkDigits
// coefficients are zero on entry, storing the result in place. The
// classic LFSR-style synthetic division below is equivalent to computing
// data(x)*x^K mod g(x): after it runs, evaluating the resulting
// polynomial at every root of g(x) yields zero.
func (rs *reedSolomon) encode(msg *polynomial) {
	parity := make([]gfElem, rs.k)
	for i := numWords - 1; i >= rs.k; i-- {
		feedback := gfAdd(msg.coeffAt(i), parity[rs.k-1])
		for j := rs.k - 1; j > 0; j-- {
			parity[j] = gfAdd(parity[j-1], gfMul(feedback, rs.gen[j]))
		}
		parity[0] = gfMul(feedback, rs.gen[0])
	}
	for j := 0; j < rs.k; j++ {
		msg.setCoeff(j, parity[j])
	}
}

// verify reports whether a candidate codeword evaluates to zero at every
// root of g(x).
func (rs *reedSolomon) verify(msg *polynomial) bool {
	for i := 0; i < rs.k; i++ {
		if evalFull(msg, rs.root[i]) != 0 {
			return false
		}
	}
	return true
}

// correctErasure finds the unique field value for the coefficient at
// position e that makes the codeword verify, and writes it in place.
// With K=1 the search is a direct solve in principle (one field
// multiplication and one inversion), but brute-forcing the 2048 possible
// values is equivalent and simpler.
// Returns false if no value is found, which cannot happen given exactly
// one erasure and a codeword that was valid before corruption.
func (rs *reedSolomon) correctErasure(msg *polynomial, e int) (gfElem, bool) {
	for v := 0; v < gfSize; v++ {
		msg.setCoeff(e, gfElem(v))
		if rs.verify(msg) {
			return gfElem(v), true
		}
	}
	return 0, false
}
