package roster

import (
	_ "embed"
	"log"

	"github.com/automoto/cubecombat/shared/savedata"
)

var (
	//go:embed defaults/cubes.txt
	defaultCubes string

	//go:embed defaults/achievements.txt
	defaultAchievements string
)

// LoadCubes reads the gallery from the store, falling back to the
// bundled list when the item is missing or unreadable.
func LoadCubes(st savedata.Store) []Cube {
	return ParseCubes(loadText(st, savedata.ItemCubes, defaultCubes))
}

// LoadAchievements reads the achievement list the same way.
func LoadAchievements(st savedata.Store) []Achievement {
	return ParseAchievements(loadText(st, savedata.ItemAchievements, defaultAchievements))
}

func loadText(st savedata.Store, item, fallback string) string {
	if st == nil {
		return fallback
	}
	data, err := st.LoadItem(item)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", item, err)
		return fallback
	}
	if len(data) == 0 {
		return fallback
	}
	return string(data)
}

// Find returns the cube with the given id.
func Find(cubes []Cube, id int) (Cube, bool) {
	for _, c := range cubes {
		if c.ID == id {
			return c, true
		}
	}
	return Cube{}, false
}
