package entity

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Types lists the living entity types loot can be restricted to, by their
// server enum names.
var Types = []string{
	"ALLAY", "ARMADILLO", "AXOLOTL", "BAT", "BEE", "BLAZE", "BOGGED", "BREEZE",
	"CAMEL", "CAT", "CAVE_SPIDER", "CHICKEN", "COD", "COW", "CREAKING", "CREEPER",
	"DOLPHIN", "DONKEY", "DROWNED", "ELDER_GUARDIAN", "ENDER_DRAGON", "ENDERMAN",
	"ENDERMITE", "EVOKER", "FOX", "FROG", "GHAST", "GIANT", "GLOW_SQUID", "GOAT",
	"GUARDIAN", "HOGLIN", "HORSE", "HUSK", "ILLUSIONER", "IRON_GOLEM", "LLAMA",
	"MAGMA_CUBE", "MOOSHROOM", "MULE", "MUSHROOM_COW", "OCELOT", "PANDA", "PARROT",
	"PHANTOM", "PIG", "PIGLIN", "PIGLIN_BRUTE", "PILLAGER", "POLAR_BEAR",
	"PUFFERFISH", "RABBIT", "RAVAGER", "SALMON", "SHEEP", "SHULKER", "SILVERFISH",
	"SKELETON", "SKELETON_HORSE", "SLIME", "SNIFFER", "SNOW_GOLEM", "SPIDER",
	"SQUID", "STRAY", "STRIDER", "TADPOLE", "TRADER_LLAMA", "TROPICAL_FISH",
	"TURTLE", "VEX", "VILLAGER", "VINDICATOR", "WANDERING_TRADER", "WARDEN",
	"WITCH", "WITHER", "WITHER_SKELETON", "WOLF", "ZOGLIN", "ZOMBIE",
	"ZOMBIE_HORSE", "ZOMBIE_VILLAGER", "ZOMBIFIED_PIGLIN",
}

var (
	upper = cases.Upper(language.Und)
	title = cases.Title(language.English)
)

// Normalize turns user input such as "cave spider" or "minecraft:cave_spider"
// into the enum form "CAVE_SPIDER".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
	return upper.String(s)
}

// Valid reports whether s names a known type once normalised.
func Valid(s string) bool {
	return slices.Contains(Types, Normalize(s))
}

// DisplayName renders a type as "Cave Spider".
func DisplayName(t string) string {
	return title.String(strings.ReplaceAll(Normalize(t), "_", " "))
}

// Suggest returns up to n known types close to s, best first.
func Suggest(s string, n int) []string {
	q := Normalize(s)
	if q == "" || n <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(q, Types)
	sort.Sort(ranks)
	out := make([]string, 0, n)
	for _, r := range ranks {
		if len(out) == n {
			return out
		}
		out = append(out, r.Target)
	}
	if len(out) > 0 {
		return out
	}

	// typos are not subsequences, fall back to edit distance
	type scored struct {
		name string
		dist int
	}
	var near []scored
	for _, t := range Types {
		if d := fuzzy.LevenshteinDistance(q, t); d <= len(q)/3+1 {
			near = append(near, scored{t, d})
		}
	}
	slices.SortStableFunc(near, func(a, b scored) int { return a.dist - b.dist })
	for _, c := range near[:min(n, len(near))] {
		out = append(out, c.name)
	}
	return out
}
