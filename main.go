package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/fonts"
	"github.com/automoto/tanks-mp/scenes"
	"github.com/automoto/tanks-mp/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewBattleScene(g, config.Debug.Players)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	players := flag.Int("players", 0, "Start a battle directly with this many players (skips the menu)")
	skipMenu := flag.Bool("skipmenu", false, "Skip the menu and use the saved player count")
	configPath := flag.String("config", "", "Path to a YAML file overriding tuning values")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	debugOverlay := flag.Bool("debug", false, "Draw collision shapes and round state")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Warn("unknown log level, using info", "level", *logLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatal("failed to load config overrides", "path", *configPath, "err", err)
		}
		log.Info("loaded config overrides", "path", *configPath)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("failed to load fonts", "err", err)
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	prefs := systems.LoadPreferences()

	config.Debug.Players = prefs.NumPlayers
	if *players > 0 {
		config.Debug.Players = systems.ClampPlayers(*players, config.Match.MaxPlayers)
		config.Debug.SkipMenu = true
	}
	config.Debug.Overlay = *debugOverlay
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(prefs.Fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Error("game exited with error", "err", err)
		os.Exit(1)
	}
}
