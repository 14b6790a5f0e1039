package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tanks-mp/assets"
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/systems"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs rounds on the arena until a game winner is found.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	players      int
	arenaPath    string
	once         sync.Once

	// Scene requested by the round system, applied after the tick completes
	pendingScene int
	hasPending   bool
}

// NewBattleScene creates a battle for the requested number of players.
func NewBattleScene(sc SceneChanger, players int) *BattleScene {
	return &BattleScene{
		sceneChanger: sc,
		players:      players,
		arenaPath:    assets.DefaultArena,
	}
}

// LoadScene queues a scene change by index. Index cfg.Match.MenuSceneIndex is the menu.
func (bs *BattleScene) LoadScene(index int) {
	bs.pendingScene = index
	bs.hasPending = true
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if input, ok := components.Input.First(bs.ecs.World); ok {
		if components.Input.Get(input).JustPressed(cfg.ActionQuit) {
			bs.LoadScene(cfg.Match.MenuSceneIndex)
		}
	}

	if bs.hasPending {
		bs.hasPending = false
		bs.leave(bs.pendingScene)
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	arena, err := assets.NewArenaLoader().LoadArena(bs.arenaPath)
	if err != nil {
		log.Fatal("failed to load arena", "path", bs.arenaPath, "err", err)
	}

	prefs := systems.LoadPreferences()
	slots := factory.CreateArena(bs.ecs, arena)
	factory.CreateRig(bs.ecs, slots)
	factory.CreateCameraRig(bs.ecs, len(slots), float64(arena.Width)/2, float64(arena.Height)/2, prefs.MinimapSize)

	spawner := factory.TankSpawner{}
	rounds := systems.NewRoundSystem(systems.RoundDeps{
		Spawner: spawner,
		Scenes:  bs,
	})

	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(rounds.Update)
	bs.ecs.AddSystem(systems.UpdateTanks)
	bs.ecs.AddSystem(systems.UpdateShooting)
	bs.ecs.AddSystem(systems.UpdateShells)
	bs.ecs.AddSystem(systems.UpdateExplosions)
	bs.ecs.AddSystem(systems.NewUpdateHealth(spawner))
	bs.ecs.AddSystem(systems.UpdateCameras)
	bs.ecs.AddSystem(systems.UpdateMinimapZoom)
	bs.ecs.AddSystem(systems.UpdateAnnouncement)
	bs.ecs.AddSystem(systems.NewFullscreenToggle(prefs.Fullscreen).Update)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	bs.ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	bs.ecs.AddRenderer(cfg.HUD, systems.DrawAnnouncement)
	bs.ecs.AddRenderer(cfg.HUD, systems.DrawDebug)

	log.Info("battle started", "arena", arena.Name, "players", bs.players)
	rounds.StartGame(bs.ecs, bs.players)
}

func (bs *BattleScene) leave(index int) {
	size := systems.MinimapSize(bs.ecs)
	systems.UpdatePreferences(func(p *systems.SavedPreferences) {
		p.MinimapSize = size
	})

	if index != cfg.Match.MenuSceneIndex {
		log.Warn("unknown scene index, returning to menu", "index", index)
	}
	bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger))
}
