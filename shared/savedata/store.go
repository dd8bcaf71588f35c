// Package savedata persists the kill counters, the debug flag and the
// cosmetic roster text. It has no ebiten dependency.
package savedata

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// Item keys
const (
	ItemStats        = "stats"
	ItemDebug        = "debug"
	ItemCubes        = "cubes"
	ItemAchievements = "achievements"
)

// Store is a flat key-value item store. LoadItem returns nil data and no
// error for an item that was never saved. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Open opens the per-user gdata store for appName.
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data %q: %w", appName, err)
	}
	return m, nil
}
