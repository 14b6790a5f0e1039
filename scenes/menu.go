package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/tanks-mp/components"
	"github.com/automoto/tanks-mp/systems"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/automoto/tanks-mp/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the players choose how many tanks start the game
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menu         *components.PlayerCountMenuData
	ui           *ui.PlayerCountUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.ui.Update()

	switch {
	case ms.menu.Quit:
		log.Info("exiting from menu")
		os.Exit(0)
	case ms.menu.Started:
		count := ms.menu.Count
		systems.UpdatePreferences(func(p *systems.SavedPreferences) {
			p.NumPlayers = count
		})
		ms.sceneChanger.ChangeScene(NewBattleScene(ms.sceneChanger, count))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	prefs := systems.LoadPreferences()

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdatePlayerCountMenu)
	ms.ecs.AddSystem(systems.NewFullscreenToggle(prefs.Fullscreen).Update)

	entry := factory.CreatePlayerCountMenu(ms.ecs, prefs.NumPlayers)
	ms.menu = components.PlayerCountMenu.Get(entry)
	ms.ui = ui.NewPlayerCountUI(ms.menu)
}
