// Package coefficients implements the scoring formulas used to rank
// powerlifting performances across bodyweights, equipment categories,
// and ages: Wilks, Wilks2020, Dots, Glossbrenner, Schwartz-Malone, IPF
// Points, GOODLIFT, Reshel, NASA, Hoffman, AH, and McCulloch. Every
// function is pure and returns opltypes.ZeroPoints when its inputs are
// undefined.
package coefficients

// madd is multiply-and-add, a single instruction on most CPUs.
func madd(a, b, c float64) float64 {
	return a*b + c
}

// poly4 resolves a 4th-degree polynomial ax^4+bx^3+cx^2+dx+e using
// two-phase Horner's method: splitting into even/odd-degree halves lets
// the two chains evaluate independently, maximizing fused-multiply-add
// parallelism on modern CPUs.
func poly4(a, b, c, d, e, x float64) float64 {
	x2 := x * x
	even := madd(a, x2, c) // ax^2 + c
	odd := madd(b, x2, d)  // bx^2 + d
	even = madd(even, x2, e)
	return madd(odd, x, even)
}

// poly5 resolves a 5th-degree polynomial ax^5+bx^4+cx^3+dx^2+ex+f using
// two-phase Horner's method.
func poly5(a, b, c, d, e, f, x float64) float64 {
	x2 := x * x
	odd := madd(a, x2, c)
	even := madd(b, x2, d)
	odd = madd(odd, x2, e)
	even = madd(even, x2, f)
	return madd(odd, x, even)
}
