package quiz

import (
	"math/rand/v2"
	"slices"
	"time"
)

// DefaultMaxRecentTypes is the rotation window size used when none is configured.
const DefaultMaxRecentTypes = 3

// Rand is the random source used by generation and rotation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeRand returns a source seeded from the wall clock.
func NewTimeRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// RecentTypes is the FIFO window of the last selected quiz types.
type RecentTypes struct {
	max   int
	types []Type
}

// NewRecentTypes creates a window holding at most max entries.
func NewRecentTypes(max int) *RecentTypes {
	if max <= 0 {
		max = DefaultMaxRecentTypes
	}
	return &RecentTypes{max: max}
}

// Push appends t, evicting the oldest entry when the window is full.
func (w *RecentTypes) Push(t Type) {
	w.types = append(w.types, t)
	if len(w.types) > w.max {
		w.types = w.types[len(w.types)-w.max:]
	}
}

// Contains reports whether t is in the window.
func (w *RecentTypes) Contains(t Type) bool {
	return slices.Contains(w.types, t)
}

// Last returns the most recently pushed type.
func (w *RecentTypes) Last() (Type, bool) {
	if len(w.types) == 0 {
		return "", false
	}
	return w.types[len(w.types)-1], true
}

// Types returns a copy of the window, oldest first.
func (w *RecentTypes) Types() []Type {
	return slices.Clone(w.types)
}

// Len returns the number of entries in the window.
func (w *RecentTypes) Len() int {
	return len(w.types)
}

// Reset empties the window.
func (w *RecentTypes) Reset() {
	w.types = nil
}

// SelectType resolves the requested type. A concrete request is returned
// unchanged and leaves the window untouched. For TypeMixed a type outside
// the window is drawn uniformly; when every type is recent, any type other
// than the most recent one is drawn instead. The chosen type is pushed onto
// the window.
func SelectType(requested Type, recent *RecentTypes, rng Rand) Type {
	if requested != TypeMixed {
		return requested
	}

	var available []Type
	for _, t := range AllTypes {
		if !recent.Contains(t) {
			available = append(available, t)
		}
	}

	if len(available) == 0 {
		if last, ok := recent.Last(); ok {
			for _, t := range AllTypes {
				if t != last {
					available = append(available, t)
				}
			}
		}
	}
	if len(available) == 0 {
		available = AllTypes
	}

	chosen := available[rng.IntN(len(available))]
	recent.Push(chosen)
	return chosen
}
