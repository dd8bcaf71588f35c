package assets

import (
	"embed"
	"log"

	"github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/leveldata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

// Arena is the resolved playfield: map size plus spawn points, with
// config values filling any gap the map leaves.
type Arena struct {
	Width, Height     float64
	Blue, Red         config.Point
	BlueFace, RedFace string
}

// LoadArena reads the configured arena map. Any failure is logged and
// the config defaults are used instead.
func LoadArena() Arena {
	a := Arena{
		Width:    float64(config.Arena.Width),
		Height:   float64(config.Arena.Height),
		Blue:     config.Arena.BlueSpawn,
		Red:      config.Arena.RedSpawn,
		BlueFace: "right",
		RedFace:  "left",
	}

	data, err := leveldata.LoadArena(assetFS, config.Arena.MapPath)
	if err != nil {
		log.Printf("Warning: Could not load arena map, using defaults: %v", err)
		return a
	}

	a.Width = float64(data.MapWidth)
	a.Height = float64(data.MapHeight)
	if sp, ok := data.Spawn("blue"); ok {
		a.Blue = config.Point{X: sp.X, Y: sp.Y}
		if sp.Facing != "" {
			a.BlueFace = sp.Facing
		}
	}
	if sp, ok := data.Spawn("red"); ok {
		a.Red = config.Point{X: sp.X, Y: sp.Y}
		if sp.Facing != "" {
			a.RedFace = sp.Facing
		}
	}
	return a
}
