// SPDX-License-Identifier: MIT
package legendre

import (
	"errors"
	"math"
)

// ErrEigenFailed is returned by JacobiSeeder when the rotations do not
// drive the off-diagonal below tolerance within the rotation budget.
var ErrEigenFailed = errors.New("legendre: jacobi eigen iteration did not converge")

// Defaults for JacobiSeeder.
const (
	DefaultJacobiTol          = 1e-14
	DefaultJacobiRotationsPer = 50 // budget is RotationsPer·n²
)

// JacobiSeeder seeds roots with the Golub–Welsch method: the roots of P_n
// are the eigenvalues of the symmetric tridiagonal Jacobi matrix with zero
// diagonal and off-diagonal β_k = k/√(4k²-1), k = 1..n-1. Eigenvalues are
// found with classical Jacobi rotations (largest off-diagonal pivot).
//
// Complexity: O(n²) per rotation, O(n⁴) overall; intended for small n.
type JacobiSeeder struct {
	Tol          float64 // off-diagonal threshold (0 ⇒ DefaultJacobiTol)
	RotationsPer int     // rotation budget per n² (0 ⇒ DefaultJacobiRotationsPer)
}

var _ Seeder = JacobiSeeder{}

// Seed returns the n eigenvalues of the Jacobi matrix, unsorted.
func (j JacobiSeeder) Seed(n int) ([]float64, error) {
	// Stage 1: Validate and resolve defaults
	if n < 1 {
		return nil, ErrBadPoints
	}
	tol := j.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	per := j.RotationsPer
	if per <= 0 {
		per = DefaultJacobiRotationsPer
	}

	// Stage 2: Build the Jacobi matrix
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for k := 1; k < n; k++ {
		fk := float64(k)
		beta := fk / math.Sqrt(4*fk*fk-1)
		a[k-1][k] = beta
		a[k][k-1] = beta
	}

	// Stage 3: Rotate away the largest off-diagonal entry until converged
	var (
		maxRot   = per * n * n
		p, q     int
		maxOff   float64
		app, aqq float64
		apq      float64
		theta, t float64
		c, s     float64
		arp, arq float64
	)
	for rot := 0; ; rot++ {
		maxOff = 0
		for i := 0; i < n; i++ {
			for k := i + 1; k < n; k++ {
				if v := math.Abs(a[i][k]); v > maxOff {
					maxOff = v
					p, q = i, k
				}
			}
		}
		if maxOff < tol {
			break
		}
		if rot == maxRot {
			return nil, ErrEigenFailed
		}

		app, aqq, apq = a[p][p], a[q][q], a[p][q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r := 0; r < n; r++ {
			if r == p || r == q {
				continue
			}
			arp, arq = a[r][p], a[r][q]
			a[r][p] = c*arp - s*arq
			a[p][r] = a[r][p]
			a[r][q] = s*arp + c*arq
			a[q][r] = a[r][q]
		}
		a[p][p] = app - t*apq
		a[q][q] = aqq + t*apq
		a[p][q] = 0
		a[q][p] = 0
	}

	// Stage 4: Diagonal holds the eigenvalues
	eigs := make([]float64, n)
	for i := range eigs {
		eigs[i] = a[i][i]
	}

	return eigs, nil
}
