package legendre

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

type ruleKey struct {
	points int
	digits int
}

func (k ruleKey) String() string {
	return strconv.Itoa(k.points) + "/" + strconv.Itoa(k.digits)
}

// Cache memoizes rules of an underlying Provider by (points, digits).
//
// Hits take a read lock only; concurrent misses for the same key are
// collapsed into a single computation. Cached rules are shared between
// callers and must not be mutated.
type Cache struct {
	src   Provider
	mu    sync.RWMutex
	rules map[ruleKey]*Rule
	group singleflight.Group
}

var _ Provider = (*Cache)(nil)

// NewCache wraps src. A nil src means NewCalculator(DefaultOptions()).
func NewCache(src Provider) *Cache {
	if src == nil {
		src = NewCalculator(DefaultOptions())
	}

	return &Cache{src: src, rules: make(map[ruleKey]*Rule)}
}

// Rule returns the cached rule for (points, digits), computing it on a miss.
// Failed computations are not cached.
func (c *Cache) Rule(points, digits int) (*Rule, error) {
	if points < 1 {
		return nil, ErrBadPoints
	}
	if digits < 1 {
		return nil, ErrBadDigits
	}

	key := ruleKey{points: points, digits: digits}
	if r, ok := c.lookup(key); ok {
		return r, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		if r, ok := c.lookup(key); ok {
			return r, nil
		}
		r, err := c.src.Rule(points, digits)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.rules[key] = r
		c.mu.Unlock()

		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Rule), nil
}

// Len reports how many rules are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.rules)
}

func (c *Cache) lookup(key ruleKey) (*Rule, bool) {
	c.mu.RLock()
	r, ok := c.rules[key]
	c.mu.RUnlock()

	return r, ok
}
