package systems

import (
	"log"

	"github.com/automoto/cubecombat/shared/roster"
	"github.com/automoto/cubecombat/shared/savedata"
)

var store savedata.Store
var debugFlag savedata.DebugFlag

// InitPersistence opens the gdata store. Without it the game still runs
// with zero stats, the default roster and debug mode off.
func InitPersistence(appName string, forceDebug bool) error {
	debugFlag = savedata.DebugFlag{Force: forceDebug}

	st, err := savedata.Open(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = st
	debugFlag.Store = st
	return nil
}

// UsePersistence swaps in a store, mainly for tests.
func UsePersistence(st savedata.Store, forceDebug bool) {
	store = st
	debugFlag = savedata.DebugFlag{Store: st, Force: forceDebug}
}

// LoadStats reads the persisted kill counters.
func LoadStats() savedata.Stats {
	return savedata.LoadStats(store)
}

// SaveStats writes the kill counters, logging failures.
func SaveStats(s savedata.Stats) {
	if err := savedata.SaveStats(store, s); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// PollDebug re-reads the debug flag. Called once per arena tick.
func PollDebug() bool {
	return debugFlag.Poll()
}

// LoadRoster returns the cube gallery and achievement list.
func LoadRoster() ([]roster.Cube, []roster.Achievement) {
	return roster.LoadCubes(store), roster.LoadAchievements(store)
}
