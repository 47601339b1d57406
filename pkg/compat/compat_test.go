package compat

import (
	"bytes"
	"log"
	"slices"
	"strings"
	"testing"
)

type fakeProbe struct {
	version   string
	internals []string
}

func (p fakeProbe) ServerVersion() string { return p.version }

func (p fakeProbe) HasInternal(name string) bool { return slices.Contains(p.internals, name) }

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.21.4", "v1.21.4"},
		{"v1.20", "v1.20.0"},
		{"1.8", "v1.8.0"},
		{"", ""},
		{"git-Paper-123", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectFull(t *testing.T) {
	p := fakeProbe{
		version:   "1.21.4",
		internals: []string{InternalDisplayName, InternalLore, InternalNBT, InternalAware},
	}
	caps := Detect(p, nil)

	if !caps.RichText || !caps.NBT || !caps.HexColors {
		t.Errorf("Detect() = %+v, want all features", caps)
	}
	if caps.Awareness != AwarenessAware {
		t.Errorf("Awareness = %v, want aware", caps.Awareness)
	}
	if len(caps.Missing) != 0 {
		t.Errorf("Missing = %v, want none", caps.Missing)
	}
}

func TestDetectLegacyHost(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	p := fakeProbe{version: "1.12.2", internals: []string{InternalFromMobSpawner}}
	caps := Detect(p, logger)

	if caps.RichText || caps.NBT || caps.HexColors {
		t.Errorf("Detect() = %+v, want no rich text, nbt or hex", caps)
	}
	if caps.Awareness != AwarenessFromMobSpawner {
		t.Errorf("Awareness = %v, want fromMobSpawner", caps.Awareness)
	}
	if !slices.Contains(caps.Missing, InternalNBT) {
		t.Errorf("Missing = %v, want %s listed", caps.Missing, InternalNBT)
	}
	if !strings.Contains(buf.String(), "legacy text") {
		t.Errorf("log = %q, want rich text fallback reported", buf.String())
	}
}

func TestAtLeast(t *testing.T) {
	caps := Full("1.16.5")
	if !caps.AtLeast("1.16") {
		t.Error("AtLeast(1.16) = false for 1.16.5")
	}
	if caps.AtLeast("1.17") {
		t.Error("AtLeast(1.17) = true for 1.16.5")
	}
	if (Capabilities{}).AtLeast("1.8") {
		t.Error("unknown version should not satisfy AtLeast")
	}
}
