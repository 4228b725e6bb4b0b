// Package ui holds the ebitenui menus of the viewer.
package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilephys/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseUI is the menu shown over the paused game. It edits the viewer
// settings that are saved between runs.
type PauseUI struct {
	UI *ebitenui.UI

	OnResume      func()
	OnToggleDebug func()
	OnCycleScale  func()
	// OnRestart is nil when the level can't be restarted locally.
	OnRestart func()

	debugButton *widget.Button
	scaleButton *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

func NewPauseUI(onResume, onToggleDebug, onCycleScale, onRestart func()) *PauseUI {
	ui := &PauseUI{
		OnResume:      onResume,
		OnToggleDebug: onToggleDebug,
		OnCycleScale:  onCycleScale,
		OnRestart:     onRestart,
		normalFace:    fonts.Regular.Get(),
		smallFace:     fonts.Small.Get(),
	}
	ui.buildUI()
	return ui
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(ui.newButton("Resume", ui.OnResume))
	ui.debugButton = ui.newButton(DebugLabel(false), ui.OnToggleDebug)
	contentContainer.AddChild(ui.debugButton)
	ui.scaleButton = ui.newButton(ScaleLabel(0), ui.OnCycleScale)
	contentContainer.AddChild(ui.scaleButton)
	if ui.OnRestart != nil {
		contentContainer.AddChild(ui.newButton("Restart level", ui.OnRestart))
	}

	hint := widget.NewLabel(
		widget.LabelOpts.Text("P to resume", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 24)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 110, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// SetSettings shows the current values on the setting buttons.
func (ui *PauseUI) SetSettings(debug bool, scale float64) {
	if textWidget := ui.debugButton.Text(); textWidget != nil {
		textWidget.Label = DebugLabel(debug)
	}
	if textWidget := ui.scaleButton.Text(); textWidget != nil {
		textWidget.Label = ScaleLabel(scale)
	}
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

// DebugLabel is the debug overlay button text.
func DebugLabel(on bool) string {
	if on {
		return "Debug overlay: on"
	}
	return "Debug overlay: off"
}

// ScaleLabel is the window scale button text.
func ScaleLabel(scale float64) string {
	return fmt.Sprintf("Window scale: %gx", scale)
}
