package lootables

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Table is a named drop table as stored on disk.
type Table struct {
	Name  string  `yaml:"name"`
	Loots []*Loot `yaml:"loots"`
}

// ReadTable decodes a YAML drop table.
func ReadTable(r io.Reader) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode loot table: %w", err)
	}
	for i, l := range t.Loots {
		if l == nil || l.Material == "" {
			return nil, fmt.Errorf("loot table %s: entry %d has no material", t.Name, i)
		}
	}
	return &t, nil
}

// WriteTable encodes t as YAML.
func WriteTable(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode loot table: %w", err)
	}
	return enc.Close()
}
