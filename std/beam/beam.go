// Package beam provides a catalogue of Timoshenko beam-theory relations as
// an example payload for the grapheq engine.
//
// The catalogue registers every governing equation once per variable it can
// be solved for, so any quantity can play the role of target or known. The
// engine itself is domain-agnostic; nothing here is engine logic.
package beam

import (
	"math"

	"github.com/grapheq/grapheq/hypergraph"
	"github.com/grapheq/grapheq/internal/poly"
)

// Node labels of the beam catalogue.
const (
	PointLoad       = "point_load"        // P [N]
	Kappa           = "kappa"             // Timoshenko shear coefficient
	YoungsModulus   = "youngs_modulus"    // E [Pa]
	MomentOfInertia = "moment_of_inertia" // I [m^4]
	ShearModulus    = "shear_modulus"     // G [Pa]
	Area            = "area"              // A [m^2]
	Length          = "length"            // L [m]
	Radius          = "radius"            // r [m], circular section
	PoissonRatio    = "poisson_ratio"     // nu
	Theta           = "theta"             // deflection [m]
)

// NewModel builds the beam hypergraph: isotropic elasticity, circular
// section geometry and the Timoshenko deflection equation with all its
// algebraic inverses.
func NewModel() (*hypergraph.Model, error) {
	m := hypergraph.New()

	labels := []string{
		PointLoad, Kappa, YoungsModulus, MomentOfInertia,
		ShearModulus, Area, Length, Radius, PoissonRatio, Theta,
	}
	for _, label := range labels {
		if _, err := m.AddNode(label); err != nil {
			return nil, err
		}
	}

	var err error
	add := func(inputs []string, output string, f func(in []float64) (float64, error), label string) {
		if err != nil {
			return
		}
		err = m.AddRelation(inputs, output, hypergraph.Func{NbIn: len(inputs), F: f}, label)
	}

	// Timoshenko deflection, theta = PL^3/(3EI) + PL/(kGA), and its inverses.
	// Registered first: for a quantity the deflection equation can be solved
	// for, the inverse takes precedence over the consistency relations below.
	add([]string{PointLoad, YoungsModulus, MomentOfInertia, Length, Kappa, ShearModulus, Area},
		Theta, timoshenkoDeflection, "Timoshenko")
	add([]string{Theta, YoungsModulus, MomentOfInertia, Length, Kappa, ShearModulus, Area},
		PointLoad, timoshenkoPointLoad, "Timoshenko->P")
	add([]string{Theta, PointLoad, MomentOfInertia, Length, Kappa, ShearModulus, Area},
		YoungsModulus, timoshenkoYoungsModulus, "Timoshenko->E")
	add([]string{Theta, PointLoad, YoungsModulus, Length, Kappa, ShearModulus, Area},
		MomentOfInertia, timoshenkoInertia, "Timoshenko->I")
	add([]string{Theta, PointLoad, YoungsModulus, MomentOfInertia, Kappa, ShearModulus, Area},
		Length, timoshenkoLength, "Timoshenko->L")
	add([]string{Theta, PointLoad, YoungsModulus, MomentOfInertia, Length, ShearModulus, Area},
		Kappa, timoshenkoKappa, "Timoshenko->kappa")
	add([]string{Theta, PointLoad, YoungsModulus, MomentOfInertia, Length, Kappa, Area},
		ShearModulus, timoshenkoShearModulus, "Timoshenko->G")
	add([]string{Theta, PointLoad, YoungsModulus, MomentOfInertia, Length, Kappa, ShearModulus},
		Area, timoshenkoArea, "Timoshenko->A")

	// isotropic elasticity, G = E / (2(1+nu))
	add([]string{YoungsModulus, PoissonRatio}, ShearModulus, shearFromElasticPoisson, "G(E,nu)")
	add([]string{ShearModulus, PoissonRatio}, YoungsModulus, elasticFromShearPoisson, "E(G,nu)")
	add([]string{YoungsModulus, ShearModulus}, PoissonRatio, poissonFromElasticShear, "nu(E,G)")

	// circular section geometry
	add([]string{Radius}, Area, areaFromRadius, "A(r)")
	add([]string{Area}, Radius, radiusFromArea, "r(A)")
	add([]string{Radius}, MomentOfInertia, inertiaFromRadius, "I(r)")
	add([]string{MomentOfInertia}, Radius, radiusFromInertia, "r(I)")
	add([]string{Area}, MomentOfInertia, inertiaFromArea, "I(A)")
	add([]string{MomentOfInertia}, Area, areaFromInertia, "A(I)")

	if err != nil {
		return nil, err
	}
	return m, nil
}

func shearFromElasticPoisson(in []float64) (float64, error) {
	e, nu := in[0], in[1]
	den := 2 * (1 + nu)
	if den == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return e / den, nil
}

func elasticFromShearPoisson(in []float64) (float64, error) {
	g, nu := in[0], in[1]
	return 2 * g * (1 + nu), nil
}

func poissonFromElasticShear(in []float64) (float64, error) {
	e, g := in[0], in[1]
	if g == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return e/(2*g) - 1, nil
}

func areaFromRadius(in []float64) (float64, error) {
	r := in[0]
	return math.Pi * r * r, nil
}

func radiusFromArea(in []float64) (float64, error) {
	a := in[0]
	if a < 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return math.Sqrt(a / math.Pi), nil
}

func inertiaFromRadius(in []float64) (float64, error) {
	r := in[0]
	return math.Pi / 4 * r * r * r * r, nil
}

func radiusFromInertia(in []float64) (float64, error) {
	i := in[0]
	if i < 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return math.Pow(4*i/math.Pi, 0.25), nil
}

func inertiaFromArea(in []float64) (float64, error) {
	a := in[0]
	return a * a / (4 * math.Pi), nil
}

func areaFromInertia(in []float64) (float64, error) {
	i := in[0]
	if i < 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return math.Sqrt(4 * math.Pi * i), nil
}

func timoshenkoDeflection(in []float64) (float64, error) {
	p, e, i, l, k, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || k*g*a == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	bending := p * l * l * l / (3 * e * i)
	shear := p * l / (k * g * a)
	return bending + shear, nil
}

func timoshenkoPointLoad(in []float64) (float64, error) {
	theta, e, i, l, k, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || k*g*a == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	den := l*l*l/(3*e*i) + l/(k*g*a)
	if den == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return theta / den, nil
}

func timoshenkoYoungsModulus(in []float64) (float64, error) {
	theta, p, i, l, k, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if k*g*a == 0 || i == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	rem := theta - p*l/(k*g*a)
	if rem == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return p * l * l * l / (3 * i * rem), nil
}

func timoshenkoInertia(in []float64) (float64, error) {
	theta, p, e, l, k, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if k*g*a == 0 || e == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	rem := theta - p*l/(k*g*a)
	if rem == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return p * l * l * l / (3 * e * rem), nil
}

// timoshenkoLength inverts the deflection equation for L, the cubic
//
//	(P/3EI)·L³ + (P/κGA)·L − θ = 0
//
// Root selection: the smallest real strictly-positive root (first positive
// root in the ascending order produced by internal/poly). No admissible root
// is a domain error, never a silent zero.
func timoshenkoLength(in []float64) (float64, error) {
	theta, p, e, i, k, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || k*g*a == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	roots := poly.RealRootsCubic(p/(3*e*i), 0, p/(k*g*a), -theta)
	l, ok := poly.FirstPositive(roots)
	if !ok {
		return 0, hypergraph.ErrOutOfDomain
	}
	return l, nil
}

func timoshenkoKappa(in []float64) (float64, error) {
	theta, p, e, i, l, g, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || g*a == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	rem := theta - p*l*l*l/(3*e*i)
	if rem == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return p * l / (g * a * rem), nil
}

func timoshenkoShearModulus(in []float64) (float64, error) {
	theta, p, e, i, l, k, a := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || k*a == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	rem := theta - p*l*l*l/(3*e*i)
	if rem == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return p * l / (k * a * rem), nil
}

func timoshenkoArea(in []float64) (float64, error) {
	theta, p, e, i, l, k, g := in[0], in[1], in[2], in[3], in[4], in[5], in[6]
	if e*i == 0 || k*g == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	rem := theta - p*l*l*l/(3*e*i)
	if rem == 0 {
		return 0, hypergraph.ErrOutOfDomain
	}
	return p * l / (k * g * rem), nil
}
