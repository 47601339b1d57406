package entity

// SpawnBlocks returns the item names of the blocks a type naturally spawns
// on. Types without a preference get "minecraft:air".
func SpawnBlocks(t string) []string {
	switch Normalize(t) {
	case "PIG", "SHEEP", "CHICKEN", "COW", "RABBIT", "LLAMA", "HORSE", "CAT":
		return []string{"minecraft:grass_block"}
	case "MUSHROOM_COW", "MOOSHROOM":
		return []string{"minecraft:mycelium"}
	case "SQUID", "ELDER_GUARDIAN", "COD", "SALMON", "PUFFERFISH", "TROPICAL_FISH":
		return []string{"minecraft:water"}
	case "OCELOT":
		return []string{
			"minecraft:grass_block",
			"minecraft:jungle_leaves",
			"minecraft:acacia_leaves",
			"minecraft:birch_leaves",
			"minecraft:dark_oak_leaves",
			"minecraft:oak_leaves",
			"minecraft:spruce_leaves",
		}
	default:
		return []string{"minecraft:air"}
	}
}
