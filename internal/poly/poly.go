// Package poly extracts real roots of low-degree polynomials in closed form.
//
// Roots are always returned in ascending order; relation catalogues that
// invert multi-root equations document their root selection in terms of this
// ordering, so it is part of the package contract and pinned by golden-value
// tests.
package poly

import (
	"math"

	"golang.org/x/exp/slices"
)

// RealRootsQuadratic returns the real roots of a2·x² + a1·x + a0 in
// ascending order. A double root is reported once. Degenerate leading
// coefficients reduce the degree; the zero polynomial has no reported roots.
func RealRootsQuadratic(a2, a1, a0 float64) []float64 {
	if a2 == 0 {
		if a1 == 0 {
			return nil
		}
		return []float64{-a0 / a1}
	}
	disc := a1*a1 - 4*a2*a0
	if disc < 0 {
		return nil
	}
	sd := math.Sqrt(disc)
	r1 := (-a1 - sd) / (2 * a2)
	r2 := (-a1 + sd) / (2 * a2)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		return []float64{r1}
	}
	return []float64{r1, r2}
}

// RealRootsCubic returns the real roots of a3·x³ + a2·x² + a1·x + a0 in
// ascending order. A multiple root is reported once. Degenerate leading
// coefficients reduce the degree.
func RealRootsCubic(a3, a2, a1, a0 float64) []float64 {
	if a3 == 0 {
		return RealRootsQuadratic(a2, a1, a0)
	}

	// normalize to x³ + bx² + cx + d, then depress with x = t - b/3
	b := a2 / a3
	c := a1 / a3
	d := a0 / a3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	disc := q*q/4 + p*p*p/27

	var roots []float64
	switch {
	case disc > 0:
		// one real root
		sq := math.Sqrt(disc)
		t := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		roots = []float64{t + shift}
	case disc == 0:
		if p == 0 {
			// triple root
			roots = []float64{shift}
		} else {
			// one simple root, one double root
			roots = []float64{3*q/p + shift, -3*q/(2*p) + shift}
		}
	default:
		// three distinct real roots, trigonometric form (p < 0 here)
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(3*q/(2*p)*math.Sqrt(-3/p)) / 3
		roots = make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = m*math.Cos(theta-2*math.Pi*float64(k)/3) + shift
		}
	}
	slices.Sort(roots)
	return roots
}

// FirstPositive returns the first strictly positive value of roots, which
// for the ascending slices produced by this package is the smallest positive
// root. The second return is false when no strictly positive root exists.
func FirstPositive(roots []float64) (float64, bool) {
	for _, r := range roots {
		if r > 0 {
			return r, true
		}
	}
	return 0, false
}
