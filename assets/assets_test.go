package assets

import (
	"math"
	"testing"
	"testing/fstest"
)

func TestLoadArena_Default(t *testing.T) {
	arena, err := NewArenaLoader().LoadArena(DefaultArena)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Width != 80 || arena.Height != 80 {
		t.Fatalf("arena should be 80x80, got %dx%d", arena.Width, arena.Height)
	}
	if len(arena.Spawns) != 4 {
		t.Fatalf("expected 4 spawns, got %d", len(arena.Spawns))
	}
	for i, s := range arena.Spawns {
		if s.SpawnIndex != i {
			t.Fatalf("spawn %d has index %d", i, s.SpawnIndex)
		}
	}
	if math.Abs(arena.Spawns[0].Rotation-math.Pi/4) > 1e-9 {
		t.Fatalf("spawn 0 should face 45 degrees, got %.3f rad", arena.Spawns[0].Rotation)
	}
	if len(arena.Obstacles) == 0 {
		t.Fatal("expected obstacles")
	}
}

func TestLoadArena_SortsSpawnsByIndex(t *testing.T) {
	fsys := fstest.MapFS{
		"a.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="2" tileheight="2" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="9" y="1"><properties><property name="spawnIndex" type="int" value="1"/></properties><point/></object>
  <object id="2" x="1" y="1"><properties><property name="spawnIndex" type="int" value="0"/></properties><point/></object>
 </objectgroup>
</map>
`)},
	}
	arena, err := NewArenaLoaderFS(fsys).LoadArena("a.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Width != 20 || arena.Height != 10 {
		t.Fatalf("size should be 20x10, got %dx%d", arena.Width, arena.Height)
	}
	if arena.Spawns[0].X != 1 || arena.Spawns[1].X != 9 {
		t.Fatalf("spawns not ordered by index: %+v", arena.Spawns)
	}
}

func TestLoadArena_NoSpawns(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="4" tileheight="4" infinite="0">
</map>
`)},
	}
	if _, err := NewArenaLoaderFS(fsys).LoadArena("empty.tmx"); err == nil {
		t.Fatal("expected error for arena without spawns")
	}
}
