package quiz

import "fmt"

// Engine combines a topic catalog, a random source and the rotation window.
// It is not safe for concurrent use; the session layer serializes access.
type Engine struct {
	catalog *Catalog
	rng     Rand
	recent  *RecentTypes
}

// NewEngine creates an engine. A nil rng uses a time-seeded source.
func NewEngine(catalog *Catalog, rng Rand, maxRecentTypes int) *Engine {
	if rng == nil {
		rng = NewTimeRand()
	}
	return &Engine{
		catalog: catalog,
		rng:     rng,
		recent:  NewRecentTypes(maxRecentTypes),
	}
}

// Catalog returns the engine's topic catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Recent returns the rotation window.
func (e *Engine) Recent() *RecentTypes {
	return e.recent
}

// Next selects a type for requested and generates an item from topic.
// In mixed mode, types the dataset cannot serve are skipped; each skipped
// draw still enters the rotation window. A nil item with a nil error means
// the dataset cannot serve the request.
func (e *Engine) Next(topic string, requested Type) (Item, error) {
	ds, err := e.catalog.Topic(topic)
	if err != nil {
		return nil, err
	}

	if requested != TypeMixed {
		item, err := Generate(ds, requested, e.rng)
		if err != nil {
			return nil, fmt.Errorf("next item: %w", err)
		}
		return item, nil
	}

	supported := SupportedTypes(ds)
	if len(supported) == 0 {
		return nil, nil
	}
	for range len(AllTypes) {
		t := SelectType(TypeMixed, e.recent, e.rng)
		if Supports(ds, t) {
			return Generate(ds, t, e.rng)
		}
	}
	t := supported[e.rng.IntN(len(supported))]
	e.recent.Push(t)
	return Generate(ds, t, e.rng)
}

// Reset clears the rotation window.
func (e *Engine) Reset() {
	e.recent.Reset()
}
