// internal/store/collection.go
package store

// collection is an ordered, keyed set of entities. Insertion order is
// preserved; upserting an existing key replaces the value in place. Not
// safe for concurrent use; the Store serializes access.
type collection[K comparable, E any] struct {
	keyOf func(E) K
	order []K
	items map[K]E
}

func newCollection[K comparable, E any](keyOf func(E) K) *collection[K, E] {
	return &collection[K, E]{
		keyOf: keyOf,
		items: make(map[K]E),
	}
}

func (c *collection[K, E]) list() []E {
	out := make([]E, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.items[k])
	}
	return out
}

func (c *collection[K, E]) get(key K) (E, bool) {
	e, ok := c.items[key]
	return e, ok
}

func (c *collection[K, E]) upsert(entity E) {
	key := c.keyOf(entity)
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = entity
}

func (c *collection[K, E]) remove(key K) {
	if _, exists := c.items[key]; !exists {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[K, E]) replaceAll(entities []E) {
	c.order = c.order[:0]
	c.items = make(map[K]E, len(entities))
	for _, e := range entities {
		c.upsert(e)
	}
}
