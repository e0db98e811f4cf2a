package dex

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDataset []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded dataset, parsed once per process.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(bytes.NewReader(defaultDataset))
	})
	return defaultTable, defaultErr
}

// Table is an in-memory Dex. Immutable after Load.
type Table struct {
	species       map[SpeciesID]*Species
	moves         map[MoveID]*Move
	items         map[ItemID]*Item
	speciesByName map[string]*Species
	movesByName   map[string]*Move
	chart         *EfficacyTable
}

var _ Dex = (*Table)(nil)

type rawDataset struct {
	Efficacy map[string]map[string]uint8 `yaml:"efficacy"`
	Species  []rawSpecies                `yaml:"species"`
	Moves    []rawMove                   `yaml:"moves"`
	Items    []rawItem                   `yaml:"items"`
}

type rawSpecies struct {
	ID         uint16           `yaml:"id"`
	Name       string           `yaml:"name"`
	Types      []string         `yaml:"types"`
	BaseStats  map[string]uint8 `yaml:"base_stats"`
	Abilities  []uint16         `yaml:"abilities"`
	GenderRate int8             `yaml:"gender_rate"`
}

type rawMeta struct {
	Category      string          `yaml:"category"`
	Ailment       string          `yaml:"ailment"`
	AilmentChance uint8           `yaml:"ailment_chance"`
	FlinchChance  uint8           `yaml:"flinch_chance"`
	StatChance    uint8           `yaml:"stat_chance"`
	StatChanges   map[string]int8 `yaml:"stat_changes"`
	Drain         int8            `yaml:"drain"`
	Healing       int8            `yaml:"healing"`
	CriticalRate  int8            `yaml:"critical_rate"`
	MinHits       uint8           `yaml:"min_hits"`
	MaxHits       uint8           `yaml:"max_hits"`
}

type rawMove struct {
	ID          uint16  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Power       uint8   `yaml:"power"`
	Accuracy    *uint8  `yaml:"accuracy"`
	PP          uint8   `yaml:"pp"`
	Priority    int8    `yaml:"priority"`
	DamageClass string  `yaml:"damage_class"`
	Target      string  `yaml:"target"`
	Effect      string  `yaml:"effect"`
	Meta        rawMeta `yaml:"meta"`
}

type rawItem struct {
	ID       uint16 `yaml:"id"`
	Name     string `yaml:"name"`
	Holdable bool   `yaml:"holdable"`
}

// LoadFile reads a YAML dataset from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	return t, nil
}

// Load parses a YAML dataset.
func Load(r io.Reader) (*Table, error) {
	var raw rawDataset
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	t := &Table{
		species:       make(map[SpeciesID]*Species, len(raw.Species)),
		moves:         make(map[MoveID]*Move, len(raw.Moves)),
		items:         make(map[ItemID]*Item, len(raw.Items)),
		speciesByName: make(map[string]*Species, len(raw.Species)),
		movesByName:   make(map[string]*Move, len(raw.Moves)),
		chart:         NewEfficacyTable(),
	}

	if err := t.buildChart(raw.Efficacy); err != nil {
		return nil, err
	}
	for i := range raw.Species {
		s, err := buildSpecies(&raw.Species[i])
		if err != nil {
			return nil, err
		}
		if _, dup := t.species[s.ID]; dup {
			return nil, fmt.Errorf("species %d: duplicate id", s.ID)
		}
		t.species[s.ID] = s
		t.speciesByName[foldName(s.Name)] = s
	}
	for i := range raw.Moves {
		m, err := buildMove(&raw.Moves[i])
		if err != nil {
			return nil, err
		}
		if _, dup := t.moves[m.ID]; dup {
			return nil, fmt.Errorf("move %d: duplicate id", m.ID)
		}
		t.moves[m.ID] = m
		t.movesByName[foldName(m.Name)] = m
	}
	for _, ri := range raw.Items {
		t.items[ItemID(ri.ID)] = &Item{ID: ItemID(ri.ID), Name: ri.Name, Holdable: ri.Holdable}
	}

	slog.Info("loaded dataset",
		"species", len(t.species),
		"moves", len(t.moves),
		"items", len(t.items))
	return t, nil
}

func (t *Table) buildChart(raw map[string]map[string]uint8) error {
	for attackName, row := range raw {
		attack, ok := ParseType(attackName)
		if !ok {
			return fmt.Errorf("efficacy: unknown attack type %q", attackName)
		}
		for defendName, pct := range row {
			defend, ok := ParseType(defendName)
			if !ok {
				return fmt.Errorf("efficacy %s: unknown defend type %q", attackName, defendName)
			}
			eff := Efficacy(pct)
			if !eff.valid() {
				return fmt.Errorf("efficacy %s→%s: invalid value %d", attackName, defendName, pct)
			}
			t.chart[attack][defend] = eff
		}
	}
	return nil
}

func buildSpecies(rs *rawSpecies) (*Species, error) {
	if len(rs.Types) == 0 || len(rs.Types) > 2 {
		return nil, fmt.Errorf("species %d (%s): need 1 or 2 types, got %d", rs.ID, rs.Name, len(rs.Types))
	}
	s := &Species{
		ID:         SpeciesID(rs.ID),
		Name:       rs.Name,
		Types:      make([]Type, 0, len(rs.Types)),
		GenderRate: rs.GenderRate,
	}
	for _, name := range rs.Types {
		typ, ok := ParseType(name)
		if !ok {
			return nil, fmt.Errorf("species %d (%s): unknown type %q", rs.ID, rs.Name, name)
		}
		s.Types = append(s.Types, typ)
	}
	for name, v := range rs.BaseStats {
		stat, ok := ParseStat(name)
		if !ok || int(stat) >= PermanentStats {
			return nil, fmt.Errorf("species %d (%s): unknown base stat %q", rs.ID, rs.Name, name)
		}
		s.BaseStats[stat] = v
	}
	for _, a := range rs.Abilities {
		s.Abilities = append(s.Abilities, Ability(a))
	}
	return s, nil
}

func buildMove(rm *rawMove) (*Move, error) {
	m := &Move{
		ID:       MoveID(rm.ID),
		Name:     rm.Name,
		Power:    rm.Power,
		Accuracy: rm.Accuracy,
		PP:       rm.PP,
		Priority: rm.Priority,
		Meta: MoveMeta{
			AilmentChance: rm.Meta.AilmentChance,
			FlinchChance:  rm.Meta.FlinchChance,
			StatChance:    rm.Meta.StatChance,
			Drain:         rm.Meta.Drain,
			Healing:       rm.Meta.Healing,
			CriticalRate:  rm.Meta.CriticalRate,
			MinHits:       rm.Meta.MinHits,
			MaxHits:       rm.Meta.MaxHits,
		},
	}

	var ok bool
	if m.Type, ok = ParseType(rm.Type); !ok {
		return nil, fmt.Errorf("move %d (%s): unknown type %q", rm.ID, rm.Name, rm.Type)
	}
	if m.DamageClass, ok = ParseDamageClass(rm.DamageClass); !ok {
		return nil, fmt.Errorf("move %d (%s): unknown damage class %q", rm.ID, rm.Name, rm.DamageClass)
	}
	if m.Target, ok = ParseTarget(rm.Target); !ok {
		return nil, fmt.Errorf("move %d (%s): unknown target %q", rm.ID, rm.Name, rm.Target)
	}
	if m.Effect, ok = ParseEffect(rm.Effect); !ok {
		return nil, fmt.Errorf("move %d (%s): unknown effect %q", rm.ID, rm.Name, rm.Effect)
	}
	if rm.Meta.Category != "" {
		if m.Meta.Category, ok = ParseMetaCategory(rm.Meta.Category); !ok {
			return nil, fmt.Errorf("move %d (%s): unknown meta category %q", rm.ID, rm.Name, rm.Meta.Category)
		}
	}
	if rm.Meta.Ailment != "" {
		if m.Meta.Ailment, ok = ParseAilment(rm.Meta.Ailment); !ok {
			return nil, fmt.Errorf("move %d (%s): unknown ailment %q", rm.ID, rm.Name, rm.Meta.Ailment)
		}
	}
	for name, delta := range rm.Meta.StatChanges {
		stat, ok := ParseStat(name)
		if !ok || stat == StatHP {
			return nil, fmt.Errorf("move %d (%s): stat change on %q", rm.ID, rm.Name, name)
		}
		m.Meta.StatChanges[stat.StageIndex()] = delta
	}
	return m, nil
}

// Species returns the species record for id.
func (t *Table) Species(id SpeciesID) (*Species, error) {
	s, ok := t.species[id]
	if !ok {
		return nil, fmt.Errorf("species %d: %w", id, ErrNotFound)
	}
	return s, nil
}

// Move returns the move record for id.
func (t *Table) Move(id MoveID) (*Move, error) {
	m, ok := t.moves[id]
	if !ok {
		return nil, fmt.Errorf("move %d: %w", id, ErrNotFound)
	}
	return m, nil
}

// Item returns the item record for id.
func (t *Table) Item(id ItemID) (*Item, error) {
	it, ok := t.items[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return it, nil
}

// SpeciesByName looks a species up by display name, ignoring case and punctuation.
func (t *Table) SpeciesByName(name string) (*Species, error) {
	s, ok := t.speciesByName[foldName(name)]
	if !ok {
		return nil, fmt.Errorf("species %q: %w", name, ErrNotFound)
	}
	return s, nil
}

// MoveByName looks a move up by display name, ignoring case and punctuation.
func (t *Table) MoveByName(name string) (*Move, error) {
	m, ok := t.movesByName[foldName(name)]
	if !ok {
		return nil, fmt.Errorf("move %q: %w", name, ErrNotFound)
	}
	return m, nil
}

// Efficacy implements TypeChart.
func (t *Table) Efficacy(attack, defend Type) Efficacy {
	return t.chart.Efficacy(attack, defend)
}

// MoveCount returns the number of loaded moves.
func (t *Table) MoveCount() int { return len(t.moves) }

// SpeciesCount returns the number of loaded species.
func (t *Table) SpeciesCount() int { return len(t.species) }
