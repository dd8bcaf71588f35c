// Package leveldata parses the arena map. It has no dependencies on
// ebitengine, donburi, or resolv, pure data only.
package leveldata

// ArenaData holds the playfield parsed from a TMX file.
type ArenaData struct {
	Name      string
	MapWidth  int
	MapHeight int
	Spawns    map[string]SpawnPoint // keyed by object name: "blue", "red"
}

// SpawnPoint is a cube's starting top-left corner.
type SpawnPoint struct {
	X, Y   float64
	Facing string // "up", "down", "left", "right" or empty
}

// Spawn returns the named spawn point.
func (a *ArenaData) Spawn(name string) (SpawnPoint, bool) {
	sp, ok := a.Spawns[name]
	return sp, ok
}
