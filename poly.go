// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

// numWords is the fixed capacity of a message polynomial: one coefficient
// per phrase word.
const numWords = 14

// polynomial is a fixed-capacity container of gfElem coefficients, indexed
// 0..numWords-1, with a mutable degree in [-1, numWords-1] (-1 denotes the
// zero polynomial). Coefficients beyond degree are logically absent but
// physically present.
type polynomial struct {
	coeff  [numWords]gfElem
	degree int
}

// newPolynomial returns the zero polynomial.
func newPolynomial() *polynomial {
	return &polynomial{degree: -1}
}

// coeffAt reads the coefficient at index i.
func (p *polynomial) coeffAt(i int) gfElem {
	return p.coeff[i]
}

// setCoeff writes the coefficient at index i.
func (p *polynomial) setCoeff(i int, v gfElem) {
	p.coeff[i] = v
}

// setDegree scans coefficients from high to low and sets degree to the
// highest nonzero index, or -1 if the polynomial is entirely zero.
func (p *polynomial) setDegree() {
	for i := numWords - 1; i >= 0; i-- {
		if p.coeff[i] != 0 {
			p.degree = i
			return
		}
	}
	p.degree = -1
}

// eval evaluates the polynomial at x using Horner's scheme.
func (p *polynomial) eval(x gfElem) gfElem {
	if p.degree < 0 {
		return 0
	}
	result := p.coeff[p.degree]
	for i := p.degree - 1; i >= 0; i-- {
		result = gfAdd(gfMul(result, x), p.coeff[i])
	}
	return result
}

// mulMonic multiplies the polynomial in place by (x - a). Since addition
// and subtraction coincide over GF(2^n), this is (x + a).
func (p *polynomial) mulMonic(a gfElem) {
	// New coefficient i is old coefficient i-1 (the x*p(x) term) plus
	// a times old coefficient i (the a*p(x) term). A single pass from low
	// to high degree keeps the old coefficient i-1 in prev, so each new
	// value is computed from values not yet overwritten.
	prev := gfElem(0)
	for i := 0; i <= p.degree+1 && i < numWords; i++ {
		cur := p.coeff[i]
		p.coeff[i] = gfAdd(prev, gfMul(a, cur))
		prev = cur
	}
	if p.degree+1 < numWords {
		p.degree++
	}
}

// add adds another polynomial into this one in place.
func (p *polynomial) add(q *polynomial) {
	for i := 0; i < numWords; i++ {
		p.coeff[i] = gfAdd(p.coeff[i], q.coeff[i])
	}
	p.setDegree()
}
