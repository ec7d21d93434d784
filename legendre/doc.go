// Package legendre produces Gauss–Legendre nodes and weights on [-1, 1]
// at an arbitrary decimal precision.
//
// 🚀 What is a Gauss–Legendre rule?
//
//	A P-point rule picks the P roots x_i of the Legendre polynomial P_P
//	together with weights w_i = 2 / ((1 - x_i²)·P'_P(x_i)²), so that
//	Σ w_i·f(x_i) integrates every polynomial of degree ≤ 2P-1 exactly.
//
// ✨ How the rule is built:
//   - a Seeder supplies float64 approximations of the roots
//     (GonumSeeder via gonum's quad.Legendre, or JacobiSeeder via the
//     Golub–Welsch eigenproblem);
//   - every non-negative root is refined by Newton iteration in big.Float
//     at ⌈digits·log2(10)⌉ + guard bits, the negative half is mirrored;
//   - weights are evaluated at the refined roots, then everything is
//     rounded to the requested precision.
//
// ⚙️ Usage:
//
//	calc := legendre.NewCalculator(legendre.DefaultOptions())
//	cache := legendre.NewCache(calc)
//	rule, err := cache.Rule(16, 40) // 16 points, 40 decimal digits
//
// Rules are deterministic for a fixed (points, digits) pair and must be
// treated as read-only: Cache hands the same *Rule to every caller.
//
// Complexity: O(P²·iters) big-float multiplications per rule.
package legendre
