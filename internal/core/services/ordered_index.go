package services

// orderedIndex keeps records in insertion order with O(1) lookup by id.
// Positions in pos always match the slice.
type orderedIndex[T any] struct {
	items []T
	pos   map[string]int
	idOf  func(T) string
	clone func(T) T
}

func newOrderedIndex[T any](idOf func(T) string, clone func(T) T) *orderedIndex[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &orderedIndex[T]{pos: make(map[string]int), idOf: idOf, clone: clone}
}

// load replaces the contents with items given in insertion order. Later
// duplicates of an id are dropped.
func (ix *orderedIndex[T]) load(items []T) {
	ix.items = make([]T, 0, len(items))
	ix.pos = make(map[string]int, len(items))
	for _, item := range items {
		id := ix.idOf(item)
		if _, dup := ix.pos[id]; dup {
			continue
		}
		ix.pos[id] = len(ix.items)
		ix.items = append(ix.items, ix.clone(item))
	}
}

func (ix *orderedIndex[T]) len() int {
	return len(ix.items)
}

func (ix *orderedIndex[T]) has(id string) bool {
	_, ok := ix.pos[id]
	return ok
}

func (ix *orderedIndex[T]) get(id string) (T, bool) {
	i, ok := ix.pos[id]
	if !ok {
		var zero T
		return zero, false
	}
	return ix.clone(ix.items[i]), true
}

// add appends item. The caller checks for an existing id first.
func (ix *orderedIndex[T]) add(item T) {
	ix.pos[ix.idOf(item)] = len(ix.items)
	ix.items = append(ix.items, ix.clone(item))
}

// replace overwrites the record with the same id in place.
func (ix *orderedIndex[T]) replace(item T) bool {
	i, ok := ix.pos[ix.idOf(item)]
	if !ok {
		return false
	}
	ix.items[i] = ix.clone(item)
	return true
}

// upsert replaces in place or appends.
func (ix *orderedIndex[T]) upsert(item T) {
	if !ix.replace(item) {
		ix.add(item)
	}
}

func (ix *orderedIndex[T]) remove(id string) bool {
	i, ok := ix.pos[id]
	if !ok {
		return false
	}
	ix.items = append(ix.items[:i], ix.items[i+1:]...)
	delete(ix.pos, id)
	for j := i; j < len(ix.items); j++ {
		ix.pos[ix.idOf(ix.items[j])] = j
	}
	return true
}

// ascending returns a copy in insertion order.
func (ix *orderedIndex[T]) ascending() []T {
	out := make([]T, len(ix.items))
	for i, item := range ix.items {
		out[i] = ix.clone(item)
	}
	return out
}

// descending returns a copy newest first.
func (ix *orderedIndex[T]) descending() []T {
	out := make([]T, len(ix.items))
	for i, item := range ix.items {
		out[len(ix.items)-1-i] = ix.clone(item)
	}
	return out
}

// each visits records in insertion order without copying.
func (ix *orderedIndex[T]) each(fn func(T)) {
	for _, item := range ix.items {
		fn(item)
	}
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
