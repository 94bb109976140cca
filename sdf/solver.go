package sdf

import "math"

// Polynomial root solvers used by the quadratic edge distance. Unlike curve
// extrema searches, every real root is returned; callers filter by range.

// solverEpsilon treats smaller leading coefficients as zero.
const solverEpsilon = 1e-14

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0.
// A degenerate equation with infinitely many solutions returns nil.
func SolveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < solverEpsilon {
		if math.Abs(b) < solverEpsilon {
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4*a*c
	switch {
	case discriminant > 0:
		sqrtD := math.Sqrt(discriminant)
		return []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)}
	case discriminant == 0:
		return []float64{-b / (2 * a)}
	default:
		return nil
	}
}

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0,
// falling back to SolveQuadratic when a is negligible.
func SolveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < solverEpsilon {
		return SolveQuadratic(b, c, d)
	}
	return solveCubicNormed(b/a, c/a, d/a)
}

// solveCubicNormed solves x^3 + a*x^2 + b*x + c = 0 using the trigonometric
// method for three real roots and Cardano's formula otherwise.
func solveCubicNormed(a, b, c float64) []float64 {
	a2 := a * a
	q := (a2 - 3*b) / 9
	r := (a*(2*a2-9*b) + 27*c) / 54
	r2 := r * r
	q3 := q * q * q

	if r2 < q3 {
		t := r / math.Sqrt(q3)
		t = math.Acos(max(-1, min(1, t)))
		a /= 3
		q = -2 * math.Sqrt(q)
		return []float64{
			q*math.Cos(t/3) - a,
			q*math.Cos((t+2*math.Pi)/3) - a,
			q*math.Cos((t-2*math.Pi)/3) - a,
		}
	}

	A := -math.Cbrt(math.Abs(r) + math.Sqrt(r2-q3))
	if r < 0 {
		A = -A
	}
	var B float64
	if A != 0 {
		B = q / A
	}
	a /= 3
	roots := []float64{(A + B) - a}
	// A repeated pair of roots shows up as a vanishing imaginary part.
	if imag := 0.5 * math.Sqrt(3) * (A - B); math.Abs(imag) < solverEpsilon {
		roots = append(roots, -0.5*(A+B)-a)
	}
	return roots
}
