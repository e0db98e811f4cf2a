// Package dex is the read-only reference dataset consumed by the battle core:
// species, moves, items and the type chart. Records are immutable once loaded
// and may be shared process-wide.
package dex

import "errors"

// ErrNotFound is returned when an identifier is absent from the dataset.
var ErrNotFound = errors.New("dex: record not found")

// Dex is the narrow read-only view of the dataset.
type Dex interface {
	TypeChart
	Species(id SpeciesID) (*Species, error)
	Move(id MoveID) (*Move, error)
	Item(id ItemID) (*Item, error)
}
