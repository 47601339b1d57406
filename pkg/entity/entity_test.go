package entity

import (
	"slices"
	"testing"

	"github.com/go-mclib/guikit/memory"
	"github.com/go-mclib/guikit/pkg/compat"
)

func TestAwarenessAwareField(t *testing.T) {
	a := NewAwareness(compat.Capabilities{Awareness: compat.AwarenessAware})
	zombie := memory.NewEntity("ZOMBIE", FieldAware)
	_ = zombie.SetBool(FieldAware, true)

	if err := a.SetUnaware(zombie); err != nil {
		t.Fatal(err)
	}
	if aware, _ := a.IsAware(zombie); aware {
		t.Error("IsAware() = true after SetUnaware")
	}
	if v, _ := zombie.Bool(FieldAware); v {
		t.Error("aware field still set")
	}
}

func TestAwarenessFromMobSpawnerFallback(t *testing.T) {
	a := NewAwareness(compat.Capabilities{Awareness: compat.AwarenessFromMobSpawner})
	pig := memory.NewEntity("PIG", FieldFromMobSpawner)

	if aware, _ := a.IsAware(pig); !aware {
		t.Error("fresh mob reported unaware")
	}
	_ = a.SetUnaware(pig)
	if v, _ := pig.Bool(FieldFromMobSpawner); !v {
		t.Error("fromMobSpawner not set by SetUnaware")
	}
	if aware, _ := a.IsAware(pig); aware {
		t.Error("IsAware() = true after SetUnaware")
	}
}

func TestAwarenessUnsupported(t *testing.T) {
	a := NewAwareness(compat.Capabilities{})
	cow := memory.NewEntity("COW")

	if a.Supported() {
		t.Error("Supported() = true without a field")
	}
	if err := a.SetUnaware(cow); err != nil {
		t.Errorf("SetUnaware() = %v, want no-op", err)
	}
	if aware, err := a.IsAware(cow); err != nil || !aware {
		t.Errorf("IsAware() = %v, %v", aware, err)
	}
}

func TestAwarenessFieldError(t *testing.T) {
	a := NewAwareness(compat.Capabilities{Awareness: compat.AwarenessAware})
	if err := a.SetUnaware(memory.NewEntity("BAT")); err == nil {
		t.Error("SetUnaware on a mob without the field succeeded")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zombie", "ZOMBIE"},
		{"  cave spider ", "CAVE_SPIDER"},
		{"minecraft:iron_golem", "IRON_GOLEM"},
		{"wither-skeleton", "WITHER_SKELETON"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if !Valid("cave spider") || Valid("dragonfly") {
		t.Error("Valid() mismatch")
	}
	if got := DisplayName("CAVE_SPIDER"); got != "Cave Spider" {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestSuggest(t *testing.T) {
	if got := Suggest("zombi", 1); !slices.Equal(got, []string{"ZOMBIE"}) {
		t.Errorf("Suggest(zombi) = %v", got)
	}
	if got := Suggest("zmobie", 1); !slices.Equal(got, []string{"ZOMBIE"}) {
		t.Errorf("Suggest(zmobie) = %v", got)
	}
	if got := Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v", got)
	}
}

func TestSpawnBlocks(t *testing.T) {
	tests := []struct {
		in   string
		want string
		n    int
	}{
		{"pig", "minecraft:grass_block", 1},
		{"MUSHROOM_COW", "minecraft:mycelium", 1},
		{"salmon", "minecraft:water", 1},
		{"ocelot", "minecraft:grass_block", 7},
		{"zombie", "minecraft:air", 1},
	}
	for _, tt := range tests {
		got := SpawnBlocks(tt.in)
		if len(got) != tt.n || got[0] != tt.want {
			t.Errorf("SpawnBlocks(%q) = %v", tt.in, got)
		}
	}
}
