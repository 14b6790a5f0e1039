package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultArena is the arena loaded for every battle.
const DefaultArena = "levels/arena.tmx"

// SpawnPoint is a tank spawn slot. Rotation is in radians, clockwise from +X.
type SpawnPoint struct {
	X, Y       float64
	Rotation   float64
	SpawnIndex int // parsed from Tiled "spawnIndex" property
}

// Obstacle is a solid rectangle tanks and shells collide with.
type Obstacle struct {
	X, Y, Width, Height float64
}

type Arena struct {
	Name      string
	Width     int
	Height    int
	Spawns    []SpawnPoint // ordered by SpawnIndex
	Obstacles []Obstacle
}

type ArenaLoader struct {
	fsys fs.FS
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{fsys: assetFS}
}

// NewArenaLoaderFS loads arenas from a custom filesystem.
func NewArenaLoaderFS(fsys fs.FS) *ArenaLoader {
	return &ArenaLoader{fsys: fsys}
}

func (l *ArenaLoader) LoadArena(path string) (Arena, error) {
	arenaMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Arena{}, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := Arena{
		Name:   filepath.Base(path),
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, SpawnPoint{
					X:          o.X,
					Y:          o.Y,
					Rotation:   degToRad(o.Rotation),
					SpawnIndex: o.Properties.GetInt("spawnIndex"),
				})
			}
			sort.SliceStable(arena.Spawns, func(i, j int) bool {
				return arena.Spawns[i].SpawnIndex < arena.Spawns[j].SpawnIndex
			})
		case "Obstacles":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Obstacles = append(arena.Obstacles, Obstacle{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return Arena{}, fmt.Errorf("arena %s has no PlayerSpawn objects", path)
	}
	return arena, nil
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
