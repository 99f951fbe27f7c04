// Package flyweight shares immutable glyph state between all users of the
// same key, passing per-use state in at call time.
package flyweight

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/ajitpratap0/patternkit/internal/metrics"
)

// Glyph is a shared flyweight. Its intrinsic state never changes after creation.
type Glyph struct {
	key       string
	intrinsic int
}

// Key returns the key the glyph was created for.
func (g *Glyph) Key() string { return g.key }

// Intrinsic returns the shared state derived from the key.
func (g *Glyph) Intrinsic() int { return g.intrinsic }

// Operation combines the shared state with caller-supplied extrinsic state.
func (g *Glyph) Operation(extrinsic int) string {
	return fmt.Sprintf("Glyph %s: intrinsic state %d, extrinsic state %d", g.key, g.intrinsic, extrinsic)
}

// Factory hands out one Glyph per key, creating it on first request.
type Factory struct {
	mu     sync.Mutex
	glyphs map[string]*Glyph
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{glyphs: make(map[string]*Glyph)}
}

// Get returns the glyph for key. Keys that parse as integers use that value
// as intrinsic state; any other key uses its length in bytes.
func (f *Factory) Get(key string) *Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.glyphs[key]; ok {
		return g
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		n = len(key)
	}
	g := &Glyph{key: key, intrinsic: n}
	f.glyphs[key] = g
	metrics.Inc(metrics.FlyweightsAllocated)
	return g
}

// Count returns the number of distinct glyphs created.
func (f *Factory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.glyphs)
}
