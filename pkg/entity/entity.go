// Package entity holds mob helpers used by spawner and loot menus: AI
// awareness toggling, natural spawn blocks and entity type names.
package entity

import (
	"fmt"

	"github.com/go-mclib/guikit/pkg/compat"
)

// Host field names toggled by Awareness.
const (
	FieldAware          = "aware"
	FieldFromMobSpawner = "fromMobSpawner"
)

// Accessor reads and writes boolean fields of a live mob on the host.
type Accessor interface {
	SetBool(field string, v bool) error
	Bool(field string) (bool, error)
}

// Awareness toggles mob AI through whichever field the host has. Older
// hosts only know fromMobSpawner, which is true when the mob is unaware.
type Awareness struct {
	field compat.AwarenessField
}

func NewAwareness(caps compat.Capabilities) Awareness {
	return Awareness{field: caps.Awareness}
}

// Supported reports whether the host exposes any awareness field.
func (a Awareness) Supported() bool { return a.field != compat.AwarenessNone }

// SetAware turns mob AI on or off. Without host support this does nothing.
func (a Awareness) SetAware(e Accessor, aware bool) error {
	var err error
	switch a.field {
	case compat.AwarenessAware:
		err = e.SetBool(FieldAware, aware)
	case compat.AwarenessFromMobSpawner:
		err = e.SetBool(FieldFromMobSpawner, !aware)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("set %s: %w", a.field, err)
	}
	return nil
}

// SetUnaware turns mob AI off.
func (a Awareness) SetUnaware(e Accessor) error { return a.SetAware(e, false) }

// IsAware reports whether mob AI is on. Without host support every mob
// is reported aware.
func (a Awareness) IsAware(e Accessor) (bool, error) {
	switch a.field {
	case compat.AwarenessAware:
		v, err := e.Bool(FieldAware)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", a.field, err)
		}
		return v, nil
	case compat.AwarenessFromMobSpawner:
		v, err := e.Bool(FieldFromMobSpawner)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", a.field, err)
		}
		return !v, nil
	default:
		return true, nil
	}
}
