package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PlayerCountUI is the pre-game menu choosing how many tanks start the game.
type PlayerCountUI struct {
	UI   *ebitenui.UI
	Menu *components.PlayerCountMenuData

	countLabel     *widget.Label
	decreaseButton *widget.Button
	increaseButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewPlayerCountUI(menu *components.PlayerCountMenuData) *PlayerCountUI {
	pui := &PlayerCountUI{Menu: menu}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PlayerCountUI) loadFonts() {
	pui.titleFace = text.NewGoXFace(fonts.Title.Get())
	pui.normalFace = text.NewGoXFace(fonts.Bold.Get())
	pui.smallFace = text.NewGoXFace(fonts.Regular.Get())
}

func (pui *PlayerCountUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &pui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	content.AddChild(pui.buildCountRow())
	content.AddChild(pui.buildButtonsRow())
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("P1 WASD+SPACE/E   P2 ARROWS+ENTER/.   P3 IJKL+U/O   P4 NUMPAD   GAMEPAD N = PLAYER N", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(content)
	pui.UI = &ebitenui.UI{Container: rootContainer}
}

func (pui *PlayerCountUI) buildCountRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	pui.decreaseButton = pui.newButton("-", 28, buttonImage(), func() { pui.Menu.Decrease() })
	row.AddChild(pui.decreaseButton)

	pui.countLabel = widget.NewLabel(
		widget.LabelOpts.Text(pui.countText(), &pui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(pui.countLabel)

	pui.increaseButton = pui.newButton("+", 28, buttonImage(), func() { pui.Menu.Increase() })
	row.AddChild(pui.increaseButton)

	return row
}

func (pui *PlayerCountUI) buildButtonsRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	row.AddChild(pui.newButton("EXIT", 80, buttonImage(), func() { pui.Menu.Quit = true }))
	row.AddChild(pui.newButton("START", 100, startButtonImage(), func() { pui.Menu.Started = true }))
	return row
}

func (pui *PlayerCountUI) newButton(label string, width int, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			pui.UpdateUI()
		}),
	)
}

func (pui *PlayerCountUI) countText() string {
	return fmt.Sprintf("%d PLAYERS", pui.Menu.Count)
}

// UpdateUI syncs widgets with the menu state.
func (pui *PlayerCountUI) UpdateUI() {
	if pui.countLabel != nil {
		pui.countLabel.Label = pui.countText()
	}
	if pui.decreaseButton != nil {
		pui.decreaseButton.GetWidget().Disabled = pui.Menu.Count <= pui.Menu.Min
	}
	if pui.increaseButton != nil {
		pui.increaseButton.GetWidget().Disabled = pui.Menu.Count >= pui.Menu.Max
	}
}

func (pui *PlayerCountUI) Update() {
	pui.UpdateUI()
	pui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}
