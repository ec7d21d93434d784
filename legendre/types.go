package legendre

import (
	"errors"
	"math"
	"math/big"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrBadPoints indicates a point count below 1.
	ErrBadPoints = errors.New("legendre: point count must be >= 1")

	// ErrBadDigits indicates a decimal precision below 1.
	ErrBadDigits = errors.New("legendre: precision must be >= 1 decimal digit")

	// ErrNoConvergence indicates that Newton refinement of a root did not
	// reach the working precision within Options.MaxIter steps.
	ErrNoConvergence = errors.New("legendre: newton refinement did not converge")

	// ErrBadSeed indicates that a Seeder returned the wrong number of roots
	// or a root outside (-1, 1).
	ErrBadSeed = errors.New("legendre: seeder returned invalid roots")
)

// Defaults for Options.
const (
	// DefaultGuardBits is the number of extra mantissa bits carried during
	// refinement on top of the bits implied by the requested digits.
	DefaultGuardBits = 64

	// DefaultMaxIter caps Newton steps per root. Starting from a float64
	// seed the iteration roughly doubles correct bits per step.
	DefaultMaxIter = 100
)

// Rule is a P-point Gauss–Legendre rule on [-1, 1].
//
// Nodes are strictly ascending; Weights[i] belongs to Nodes[i] and the
// weights sum to 2. All values carry Prec mantissa bits.
type Rule struct {
	Points  int
	Digits  int
	Prec    uint
	Nodes   []*big.Float
	Weights []*big.Float
}

// Provider yields Gauss–Legendre rules. Implementations must be
// deterministic for a fixed (points, digits) pair.
type Provider interface {
	Rule(points, digits int) (*Rule, error)
}

// Seeder yields float64 approximations of the n roots of P_n, used as
// starting points for high-precision refinement. Order is not required.
type Seeder interface {
	Seed(n int) ([]float64, error)
}

// Options configures a Calculator.
//
// Fields:
//   - Seeder    — source of float64 starting roots (nil ⇒ GonumSeeder).
//   - GuardBits — extra working bits during refinement (0 ⇒ DefaultGuardBits).
//   - MaxIter   — Newton step cap per root (0 ⇒ DefaultMaxIter).
type Options struct {
	Seeder    Seeder
	GuardBits uint
	MaxIter   int
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Seeder:    GonumSeeder{},
		GuardBits: DefaultGuardBits,
		MaxIter:   DefaultMaxIter,
	}
}

// PrecisionBits converts a decimal digit count into mantissa bits:
// ⌈digits·log2(10)⌉.
func PrecisionBits(digits int) uint {
	return uint(math.Ceil(float64(digits) * math.Log2(10)))
}
