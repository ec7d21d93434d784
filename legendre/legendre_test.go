package legendre_test

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lvquad/legendre"
)

// digits40 mirrors the precision used by the error sweeps.
const digits40 = 40

// bigTol returns 10^-exp as a big.Float.
func bigTol(exp int) *big.Float {
	f, _, err := big.ParseFloat("1e-"+strconv.Itoa(exp), 10, 256, big.ToNearestEven)
	if err != nil {
		panic(err)
	}

	return f
}

// closeTo reports |a-b| < tol.
func closeTo(a, b, tol *big.Float) bool {
	d := new(big.Float).SetPrec(512).Sub(a, b)

	return d.Abs(d).Cmp(tol) < 0
}

// TestRule_InvalidArguments verifies sentinel errors for bad inputs.
func TestRule_InvalidArguments(t *testing.T) {
	calc := legendre.NewCalculator(legendre.DefaultOptions())

	_, err := calc.Rule(0, digits40)
	assert.ErrorIs(t, err, legendre.ErrBadPoints, "points=0 must fail")

	_, err = calc.Rule(4, 0)
	assert.ErrorIs(t, err, legendre.ErrBadDigits, "digits=0 must fail")

	_, err = legendre.NewCache(nil).Rule(-1, digits40)
	assert.ErrorIs(t, err, legendre.ErrBadPoints, "cache validates before computing")
}

// TestRule_TwoPoint checks x = ±1/√3, w = 1 to 38 digits.
func TestRule_TwoPoint(t *testing.T) {
	rule, err := legendre.NewCalculator(legendre.DefaultOptions()).Rule(2, digits40)
	require.NoError(t, err)
	require.Len(t, rule.Nodes, 2)

	three := new(big.Float).SetPrec(512).SetInt64(3)
	want := new(big.Float).SetPrec(512).Sqrt(three)
	want.Quo(new(big.Float).SetPrec(512).SetInt64(1), want)

	tol := bigTol(38)
	assert.True(t, closeTo(rule.Nodes[1], want, tol), "positive node = 1/√3")
	assert.True(t, closeTo(rule.Nodes[0], new(big.Float).Neg(want), tol), "negative node = -1/√3")
	for i, w := range rule.Weights {
		assert.True(t, closeTo(w, big.NewFloat(1), tol), "weight %d = 1", i)
	}
}

// TestRule_ThreePoint checks x ∈ {-√(3/5), 0, √(3/5)}, w ∈ {5/9, 8/9, 5/9}.
func TestRule_ThreePoint(t *testing.T) {
	rule, err := legendre.NewCalculator(legendre.DefaultOptions()).Rule(3, digits40)
	require.NoError(t, err)

	tol := bigTol(38)
	assert.Equal(t, 0, rule.Nodes[1].Sign(), "middle node is exactly zero")

	frac := new(big.Float).SetPrec(512).Quo(big.NewFloat(3), big.NewFloat(5))
	root := new(big.Float).SetPrec(512).Sqrt(frac)
	assert.True(t, closeTo(rule.Nodes[2], root, tol))

	five9 := new(big.Float).SetPrec(512).Quo(big.NewFloat(5), big.NewFloat(9))
	eight9 := new(big.Float).SetPrec(512).Quo(big.NewFloat(8), big.NewFloat(9))
	assert.True(t, closeTo(rule.Weights[0], five9, tol))
	assert.True(t, closeTo(rule.Weights[1], eight9, tol))
	assert.True(t, closeTo(rule.Weights[2], five9, tol))
}

// TestRule_Invariants checks ordering, symmetry and Σw = 2 over a range of sizes.
func TestRule_Invariants(t *testing.T) {
	calc := legendre.NewCalculator(legendre.DefaultOptions())
	tol := bigTol(36)
	two := big.NewFloat(2)

	for _, n := range []int{1, 2, 5, 8, 16, 33, 64} {
		rule, err := calc.Rule(n, digits40)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, rule.Nodes, n)
		require.Len(t, rule.Weights, n)
		assert.Equal(t, legendre.PrecisionBits(digits40), rule.Prec)

		sum := new(big.Float).SetPrec(512)
		for i := 0; i < n; i++ {
			sum.Add(sum, rule.Weights[i])
			assert.Equal(t, 1, rule.Weights[i].Sign(), "n=%d weight %d positive", n, i)
			if i > 0 {
				assert.Equal(t, -1, rule.Nodes[i-1].Cmp(rule.Nodes[i]), "n=%d ascending at %d", n, i)
			}
			mirror := new(big.Float).Neg(rule.Nodes[n-1-i])
			assert.Equal(t, 0, rule.Nodes[i].Cmp(mirror), "n=%d symmetric at %d", n, i)
		}
		assert.True(t, closeTo(sum, two, tol), "n=%d weights sum to 2, got %s", n, sum.Text('g', 45))
	}
}

// TestRule_MatchesGonum compares the rounded rule with gonum's float64 rule.
func TestRule_MatchesGonum(t *testing.T) {
	calc := legendre.NewCalculator(legendre.DefaultOptions())
	for _, n := range []int{4, 12, 20} {
		rule, err := calc.Rule(n, digits40)
		require.NoError(t, err)

		x := make([]float64, n)
		w := make([]float64, n)
		quad.Legendre{}.FixedLocations(x, w, -1, 1)
		// gonum's order is an implementation detail; compare as sets via sorting.
		sortPairs(x, w)

		for i := 0; i < n; i++ {
			xi, _ := rule.Nodes[i].Float64()
			wi, _ := rule.Weights[i].Float64()
			assert.InDelta(t, x[i], xi, 1e-13, "n=%d node %d", n, i)
			assert.InDelta(t, w[i], wi, 1e-13, "n=%d weight %d", n, i)
		}
	}
}

// TestRule_JacobiSeederAgrees verifies both seeders refine to the same rule.
func TestRule_JacobiSeederAgrees(t *testing.T) {
	gonumCalc := legendre.NewCalculator(legendre.DefaultOptions())
	jacobiCalc := legendre.NewCalculator(legendre.Options{Seeder: legendre.JacobiSeeder{}})

	for _, n := range []int{1, 3, 8, 16} {
		a, err := gonumCalc.Rule(n, digits40)
		require.NoError(t, err)
		b, err := jacobiCalc.Rule(n, digits40)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			assert.Equal(t, a.Nodes[i].Text('e', 36), b.Nodes[i].Text('e', 36), "n=%d node %d", n, i)
			assert.Equal(t, a.Weights[i].Text('e', 36), b.Weights[i].Text('e', 36), "n=%d weight %d", n, i)
		}
	}
}

// TestJacobiSeeder_Eigenvalues checks the raw seeds against known roots of P_2.
func TestJacobiSeeder_Eigenvalues(t *testing.T) {
	seeds, err := legendre.JacobiSeeder{}.Seed(2)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	sortPairs(seeds, make([]float64, 2))
	assert.InDelta(t, -1/math.Sqrt(3), seeds[0], 1e-14)
	assert.InDelta(t, 1/math.Sqrt(3), seeds[1], 1e-14)

	_, err = legendre.JacobiSeeder{}.Seed(0)
	assert.ErrorIs(t, err, legendre.ErrBadPoints)

	_, err = legendre.JacobiSeeder{RotationsPer: 1, Tol: 1e-300}.Seed(8)
	assert.ErrorIs(t, err, legendre.ErrEigenFailed, "tiny budget must fail")
}

// badSeeder returns a fixed slice regardless of n.
type badSeeder []float64

func (b badSeeder) Seed(int) ([]float64, error) { return b, nil }

// failingSeeder always fails.
type failingSeeder struct{}

var errSeed = errors.New("seed failure")

func (failingSeeder) Seed(int) ([]float64, error) { return nil, errSeed }

// TestRule_SeederFailures exercises seed validation paths.
func TestRule_SeederFailures(t *testing.T) {
	_, err := legendre.NewCalculator(legendre.Options{Seeder: badSeeder{0.5}}).Rule(2, digits40)
	assert.ErrorIs(t, err, legendre.ErrBadSeed, "wrong seed count")

	_, err = legendre.NewCalculator(legendre.Options{Seeder: badSeeder{-1, 1}}).Rule(2, digits40)
	assert.ErrorIs(t, err, legendre.ErrBadSeed, "seed on the boundary")

	_, err = legendre.NewCalculator(legendre.Options{Seeder: badSeeder{-0.9, -0.3, 0.33, 0.35}}).Rule(4, digits40)
	assert.ErrorIs(t, err, legendre.ErrBadSeed, "two seeds collapsing onto one root")

	_, err = legendre.NewCalculator(legendre.Options{Seeder: failingSeeder{}}).Rule(2, digits40)
	assert.ErrorIs(t, err, errSeed, "seeder error is wrapped")
}

// countingProvider counts calls to the wrapped provider.
type countingProvider struct {
	mu    sync.Mutex
	calls int
	inner legendre.Provider
}

func (c *countingProvider) Rule(points, digits int) (*legendre.Rule, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	return c.inner.Rule(points, digits)
}

// TestCache_Memoizes verifies hits share the same pointer and misses compute once.
func TestCache_Memoizes(t *testing.T) {
	src := &countingProvider{inner: legendre.NewCalculator(legendre.DefaultOptions())}
	cache := legendre.NewCache(src)

	var wg sync.WaitGroup
	rules := make([]*legendre.Rule, 16)
	for i := range rules {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := cache.Rule(10, digits40)
			assert.NoError(t, err)
			rules[i] = r
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(rules); i++ {
		assert.Same(t, rules[0], rules[i], "all callers share one rule")
	}
	assert.Equal(t, 1, src.calls, "concurrent misses collapse to one computation")
	assert.Equal(t, 1, cache.Len())

	_, err := cache.Rule(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len(), "different precision is a different key")
}

// TestPrecisionBits checks the digit→bit conversion.
func TestPrecisionBits(t *testing.T) {
	assert.Equal(t, uint(4), legendre.PrecisionBits(1))
	assert.Equal(t, uint(133), legendre.PrecisionBits(40))
}

// sortPairs sorts x ascending and permutes w alongside it.
func sortPairs(x, w []float64) {
	for i := 1; i < len(x); i++ {
		for j := i; j > 0 && x[j] < x[j-1]; j-- {
			x[j], x[j-1] = x[j-1], x[j]
			w[j], w[j-1] = w[j-1], w[j]
		}
	}
}
