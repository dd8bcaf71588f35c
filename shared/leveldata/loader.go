package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// SpawnGroup is the object group holding the cube spawn points.
const SpawnGroup = "spawns"

// LoadArena parses a TMX file into arena size and spawn points. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  arenaMap.Width * arenaMap.TileWidth,
		MapHeight: arenaMap.Height * arenaMap.TileHeight,
		Spawns:    map[string]SpawnPoint{},
	}
	if data.MapWidth <= 0 || data.MapHeight <= 0 {
		return nil, fmt.Errorf("TMX %s: empty arena %dx%d", tmxPath, data.MapWidth, data.MapHeight)
	}

	for _, og := range arenaMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			name := strings.ToLower(strings.TrimSpace(o.Name))
			if name == "" {
				continue
			}
			data.Spawns[name] = SpawnPoint{
				X:      o.X,
				Y:      o.Y,
				Facing: strings.ToLower(o.Properties.GetString("facing")),
			}
		}
	}

	return data, nil
}
