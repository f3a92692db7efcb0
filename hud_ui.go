package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
	"github.com/milk9111/alsescape/gamemode"
)

const hudClassStamina = "stamina_hud"

const (
	barX      = 20
	barY      = 44
	barWidth  = 240
	barHeight = 14
)

// hudWidget shows the HUD view model: stamina, keys, pickup messages and the
// escape banner.
type hudWidget struct {
	world   *ecs.World
	ui      *ebitenui.UI
	stamina *widget.Text
	keys    *widget.Text
	message *widget.Text
	banner  *widget.Text

	fill    float64
	sprints bool
}

// newHUDWidget is the gamemode.WidgetFactory for the game.
func newHUDWidget(class string, w *ecs.World) (gamemode.Widget, error) {
	if class != hudClassStamina {
		return nil, fmt.Errorf("unknown hud class %q", class)
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	label := func() *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, white),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}

	h := &hudWidget{world: w}
	h.stamina = label()
	h.keys = label()
	h.message = label()

	stats := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			// leaves room for the stamina bar under the first label
			widget.RowLayoutOpts.Spacing(barHeight+8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	stats.AddChild(h.stamina)
	stats.AddChild(h.keys)
	stats.AddChild(h.message)

	h.banner = widget.NewText(
		widget.TextOpts.Text("ESCAPED", &face, colornames.Gold),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter})),
	)
	h.banner.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(stats)
	root.AddChild(h.banner)

	h.ui = &ebitenui.UI{Container: root}
	return h, nil
}

func (h *hudWidget) Update() {
	hudEntity, ok := ecs.First(h.world, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, ok := ecs.Get(h.world, hudEntity, component.HUDComponent.Kind())
	if !ok {
		return
	}

	h.stamina.Label = fmt.Sprintf("Stamina %3.0f / %.0f", hud.Stamina, hud.StaminaMax)
	if hud.Sprinting {
		h.stamina.Label += "  SPRINT"
	}
	h.keys.Label = fmt.Sprintf("Keys %d / %d", hud.Keys, hud.RequiredKeys)
	h.message.Label = hud.Message
	if hud.Escaped {
		h.banner.GetWidget().Visibility = widget.Visibility_Show
	} else {
		h.banner.GetWidget().Visibility = widget.Visibility_Hide
	}

	h.fill = 0
	if hud.StaminaMax > 0 {
		h.fill = hud.Stamina / hud.StaminaMax
	}
	h.sprints = hud.Sprinting

	h.ui.Update()
}

func (h *hudWidget) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, barX, barY, barWidth, barHeight, color.RGBA{A: 0xa0}, false)
	clr := colornames.Limegreen
	if h.sprints {
		clr = colornames.Orange
	}
	vector.FillRect(screen, barX, barY, float32(barWidth*h.fill), barHeight, clr, false)
	vector.StrokeRect(screen, barX, barY, barWidth, barHeight, 1, colornames.White, false)

	h.ui.Draw(screen)
}

// viewport keeps the widgets the game mode added and draws the ones that can
// draw themselves.
type viewport struct {
	widgets []gamemode.Widget
}

type drawable interface {
	Draw(screen *ebiten.Image)
}

func (v *viewport) AddToViewport(w gamemode.Widget) {
	v.widgets = append(v.widgets, w)
}

func (v *viewport) RemoveFromViewport(w gamemode.Widget) {
	for i, existing := range v.widgets {
		if existing == w {
			v.widgets = append(v.widgets[:i], v.widgets[i+1:]...)
			return
		}
	}
}

func (v *viewport) Update() {
	for _, w := range v.widgets {
		w.Update()
	}
}

func (v *viewport) Draw(screen *ebiten.Image) {
	for _, w := range v.widgets {
		if d, ok := w.(drawable); ok {
			d.Draw(screen)
		}
	}
}
