// Package lootables holds loot entries and the in-game editors for their
// list properties.
package lootables

import "slices"

// Loot is one entry of a drop table.
type Loot struct {
	Material string   `yaml:"material" json:"material"`
	Chance   float64  `yaml:"chance" json:"chance"`
	Min      int      `yaml:"min" json:"min"`
	Max      int      `yaml:"max" json:"max"`
	Lore     []string `yaml:"lore,omitempty" json:"lore,omitempty"`
	// OnlyDropFor limits the entry to these entity types. Empty means all.
	OnlyDropFor []string `yaml:"only_drop_for,omitempty" json:"only_drop_for,omitempty"`
}

// DropsFor reports whether the entry applies to an entity type.
func (l *Loot) DropsFor(entityType string) bool {
	return len(l.OnlyDropFor) == 0 || slices.Contains(l.OnlyDropFor, entityType)
}
