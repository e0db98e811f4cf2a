package hook

import (
	"iter"

	"github.com/tidwall/btree"
)

type entry[T any] struct {
	key Key
	val T
}

func lessEntry[T any](a, b entry[T]) bool {
	return a.key.Less(b.key)
}

func newTree[T any]() *btree.BTreeG[entry[T]] {
	// Battles are mutated by a single goroutine; see package battle.
	return btree.NewBTreeGOptions(lessEntry[T], btree.Options{NoLocks: true})
}

// Map is one modifier chain as seen by one combatant: the shared battle
// scope plus that combatant's private overlay scope.
type Map[T any] struct {
	battle  *btree.BTreeG[entry[T]]
	overlay *btree.BTreeG[entry[T]]
}

// NewBattle creates a chain with an empty battle scope and no overlay entries.
func NewBattle[T any]() *Map[T] {
	return &Map[T]{
		battle:  newTree[T](),
		overlay: newTree[T](),
	}
}

// NewOverlay returns a view that shares m's battle scope and owns a fresh,
// empty overlay scope.
func (m *Map[T]) NewOverlay() *Map[T] {
	return &Map[T]{
		battle:  m.battle,
		overlay: newTree[T](),
	}
}

// InsertBattle registers v in the shared battle scope.
// Panics when k is already registered there.
func (m *Map[T]) InsertBattle(k Key, v T) {
	insert(m.battle, k, v, "battle")
}

// Insert registers v in the overlay scope.
// Panics when k is already registered in either scope.
func (m *Map[T]) Insert(k Key, v T) {
	if _, ok := m.battle.Get(entry[T]{key: k}); ok {
		panic("hook: key " + k.String() + " already registered in battle scope")
	}
	insert(m.overlay, k, v, "overlay")
}

func insert[T any](tree *btree.BTreeG[entry[T]], k Key, v T, scope string) {
	if _, ok := tree.Get(entry[T]{key: k}); ok {
		panic("hook: key " + k.String() + " already registered in " + scope + " scope")
	}
	tree.Set(entry[T]{key: k, val: v})
}

// Remove deregisters k from the overlay scope. Returns false if absent.
func (m *Map[T]) Remove(k Key) bool {
	_, ok := m.overlay.Delete(entry[T]{key: k})
	return ok
}

// RemoveBattle deregisters k from the battle scope. Returns false if absent.
func (m *Map[T]) RemoveBattle(k Key) bool {
	_, ok := m.battle.Delete(entry[T]{key: k})
	return ok
}

// Len returns the number of hooks visible through m.
func (m *Map[T]) Len() int {
	return m.battle.Len() + m.overlay.Len()
}

// OverlayLen returns the number of hooks in the overlay scope.
func (m *Map[T]) OverlayLen() int {
	return m.overlay.Len()
}

// All walks both scopes as one ascending sequence by key. The sequence is
// lazy and can be ranged over repeatedly. Hooks must not be registered or
// removed while the walk is in progress.
//
// Panics if the same key is found in both scopes.
func (m *Map[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		bi := m.battle.Iter()
		defer bi.Release()
		oi := m.overlay.Iter()
		defer oi.Release()

		bok, ook := bi.First(), oi.First()
		for bok || ook {
			var e entry[T]
			switch {
			case !ook:
				e, bok = bi.Item(), bi.Next()
			case !bok:
				e, ook = oi.Item(), oi.Next()
			default:
				switch c := bi.Item().key.Compare(oi.Item().key); {
				case c < 0:
					e, bok = bi.Item(), bi.Next()
				case c > 0:
					e, ook = oi.Item(), oi.Next()
				default:
					panic("hook: key " + bi.Item().key.String() + " registered in both scopes")
				}
			}
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Fold threads acc through every hook of m in key order. Each call receives
// the running accumulator, so hooks compose rather than evaluate independently.
func Fold[T, A any](m *Map[T], init A, f func(A, T) A) A {
	acc := init
	for _, v := range m.All() {
		acc = f(acc, v)
	}
	return acc
}
