package levelstore

import "github.com/tidwall/btree"

// Level holds the two resting-order queues at one integer price level. A
// Level is created on first touch and is never removed for the lifetime of
// a Store, matching the book's "levels are never garbage-collected" rule.
type Level[T comparable] struct {
	Level int64
	Bid   *Queue[T]
	Ask   *Queue[T]
}

// Store is a sparse, ordered map of level -> Level, backed by a B-tree so
// that depth and cumulative-depth views can walk materialized levels in
// price order without re-sorting on every read.
type Store[T comparable] struct {
	tree *btree.BTreeG[*Level[T]]
}

// New returns an empty Store.
func New[T comparable]() *Store[T] {
	return &Store[T]{
		tree: btree.NewBTreeG(func(a, b *Level[T]) bool {
			return a.Level < b.Level
		}),
	}
}

// Get returns the Level at level, if it has ever been materialized. It does
// not create one — callers that need to distinguish "never touched" from
// "touched but empty" use this directly.
func (s *Store[T]) Get(level int64) (*Level[T], bool) {
	return s.tree.Get(&Level[T]{Level: level})
}

// GetOrCreate returns the Level at level, materializing an empty one (two
// empty queues) on first touch.
func (s *Store[T]) GetOrCreate(level int64) *Level[T] {
	if lvl, ok := s.Get(level); ok {
		return lvl
	}
	lvl := &Level[T]{Level: level, Bid: NewQueue[T](), Ask: NewQueue[T]()}
	s.tree.Set(lvl)
	return lvl
}

// Ascend walks every materialized level in ascending price-level order,
// stopping early if fn returns false.
func (s *Store[T]) Ascend(fn func(*Level[T]) bool) {
	s.tree.Scan(fn)
}

// Len reports the number of materialized levels.
func (s *Store[T]) Len() int { return s.tree.Len() }
