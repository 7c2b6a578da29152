// Package content holds the static registries the engine reads but
// never writes: races, classes, skills, consumables, gear materials,
// per-biome enemy templates, NPC rosters, dialogue trees and quest
// tables. Everything here is plain data; the engine and the generators
// interpret it.
package content
