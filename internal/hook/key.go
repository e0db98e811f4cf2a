// Package hook implements the ordered modifier chains that let abilities,
// items and move effects inject behaviour into battle calculations.
//
// Every chain has two scopes: a battle scope shared by all combatants and an
// overlay scope private to one combatant. Queries walk both scopes as a single
// sequence ordered by Key without building a combined collection.
package hook

import (
	"cmp"
	"fmt"
)

// SourceKind tags where a hook came from. The declaration order is part of
// the key ordering.
type SourceKind uint8

const (
	SourceEngine SourceKind = iota
	SourceMove
	SourceItem
	SourceAbility
)

var sourceKindNames = [...]string{"engine", "move", "item", "ability"}

func (k SourceKind) String() string {
	if int(k) < len(sourceKindNames) {
		return sourceKindNames[k]
	}
	return "unknown"
}

// Source identifies the registrant of a hook.
type Source struct {
	Kind SourceKind
	ID   uint16
}

// Compare orders by kind, then by id.
func (s Source) Compare(o Source) int {
	if c := cmp.Compare(s.Kind, o.Kind); c != 0 {
		return c
	}
	return cmp.Compare(s.ID, o.ID)
}

// Key totally orders hooks within a chain: priority first (lower runs
// first), then source, then index.
type Key struct {
	Priority int8
	Source   Source
	Index    uint8
}

// Compare returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Priority, o.Priority); c != 0 {
		return c
	}
	if c := k.Source.Compare(o.Source); c != 0 {
		return c
	}
	return cmp.Compare(k.Index, o.Index)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s:%d/%d", k.Priority, k.Source.Kind, k.Source.ID, k.Index)
}

// EngineKey builds a key for a built-in rule.
func EngineKey(priority int8, id uint16, index uint8) Key {
	return Key{Priority: priority, Source: Source{Kind: SourceEngine, ID: id}, Index: index}
}

// MoveKey builds a key for a hook registered by a move.
func MoveKey(priority int8, move uint16, index uint8) Key {
	return Key{Priority: priority, Source: Source{Kind: SourceMove, ID: move}, Index: index}
}

// ItemKey builds a key for a hook registered by a held item.
func ItemKey(priority int8, item uint16, index uint8) Key {
	return Key{Priority: priority, Source: Source{Kind: SourceItem, ID: item}, Index: index}
}

// AbilityKey builds a key for a hook registered by an ability.
func AbilityKey(priority int8, ability uint16, index uint8) Key {
	return Key{Priority: priority, Source: Source{Kind: SourceAbility, ID: ability}, Index: index}
}
