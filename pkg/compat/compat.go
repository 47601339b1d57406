// Package compat probes the host once at startup and describes which
// version-dependent features are available. The result is passed to the
// packages that need it instead of being kept in globals.
package compat

import (
	"io"
	"log"
	"strings"

	"golang.org/x/mod/semver"
)

// Host internals looked up by Detect.
const (
	InternalDisplayName    = "item.meta.displayName"
	InternalLore           = "item.meta.lore"
	InternalNBT            = "item.nbt"
	InternalAware          = "entity.aware"
	InternalFromMobSpawner = "entity.fromMobSpawner"
)

// Probe is implemented by the host binding.
type Probe interface {
	// ServerVersion returns the game version, e.g. "1.21.4".
	ServerVersion() string
	// HasInternal reports whether a named host internal is reachable.
	HasInternal(name string) bool
}

// AwarenessField selects how mob AI awareness is toggled.
type AwarenessField int

const (
	AwarenessNone AwarenessField = iota
	AwarenessAware
	AwarenessFromMobSpawner
)

func (f AwarenessField) String() string {
	switch f {
	case AwarenessAware:
		return "aware"
	case AwarenessFromMobSpawner:
		return "fromMobSpawner"
	default:
		return "none"
	}
}

// Capabilities is the result of a startup probe.
type Capabilities struct {
	// Version is the canonical semver form ("v1.21.4"), empty if unparsable.
	Version   string
	RichText  bool
	HexColors bool
	NBT       bool
	Awareness AwarenessField
	// Missing lists the internals that could not be found.
	Missing []string
}

// Full returns capabilities with every feature enabled at the given version.
func Full(version string) Capabilities {
	return Capabilities{
		Version:   Canonical(version),
		RichText:  true,
		HexColors: true,
		NBT:       true,
		Awareness: AwarenessAware,
	}
}

// Canonical turns "1.20" or "v1.20.4" into a semver string, or "" if invalid.
func Canonical(version string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// Detect runs the probe. Missing internals are logged once here and the
// dependent features are turned off for the process lifetime.
func Detect(p Probe, logger *log.Logger) Capabilities {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var caps Capabilities
	raw := p.ServerVersion()
	caps.Version = Canonical(raw)
	if caps.Version == "" {
		logger.Printf("compat: unrecognised server version %q, assuming legacy host", raw)
	}
	caps.HexColors = caps.AtLeast("1.16")

	missing := func(name string) bool {
		if p.HasInternal(name) {
			return false
		}
		caps.Missing = append(caps.Missing, name)
		return true
	}

	nameMissing := missing(InternalDisplayName)
	loreMissing := missing(InternalLore)
	caps.RichText = !nameMissing && !loreMissing
	if !caps.RichText {
		logger.Printf("compat: item display name/lore not reachable, falling back to legacy text")
	}

	caps.NBT = !missing(InternalNBT)
	if !caps.NBT {
		logger.Printf("compat: item NBT not reachable, custom tags disabled")
	}

	switch {
	case p.HasInternal(InternalAware):
		caps.Awareness = AwarenessAware
	case p.HasInternal(InternalFromMobSpawner):
		caps.Awareness = AwarenessFromMobSpawner
	default:
		caps.Missing = append(caps.Missing, InternalAware, InternalFromMobSpawner)
		logger.Printf("compat: no entity awareness field found, awareness toggling disabled")
	}

	return caps
}

// AtLeast reports whether the detected version is >= version. An unknown
// host version is treated as older than everything.
func (c Capabilities) AtLeast(version string) bool {
	if c.Version == "" {
		return false
	}
	want := Canonical(version)
	if want == "" {
		return false
	}
	return semver.Compare(c.Version, want) >= 0
}
