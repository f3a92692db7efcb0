package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/alsescape/common"
	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

var (
	floorColor   = color.RGBA{R: 0x1c, G: 0x1f, B: 0x26, A: 0xff}
	shadowColor  = color.RGBA{A: 0x60}
	closedExit   = color.RGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0x90}
	openExit     = color.RGBA{R: 0x30, G: 0xb0, B: 0x50, A: 0xb0}
	sprintColour = colornames.Orange
)

// view maps world positions to screen positions. The camera transform is
// the centre of the screen.
type view struct {
	camX, camY float64
	zoom       float64
}

func cameraView(w *ecs.World) view {
	v := view{zoom: 1}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.camX, v.camY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.zoom = cam.Zoom
	}
	return v
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + common.BaseWidth/2), float32((y-v.camY)*v.zoom + common.BaseHeight/2)
}

func (v view) length(l float64) float32 {
	return float32(l * v.zoom)
}

// renderWorld draws the top-down level: walls, exit, pickups and the pawn
// with its shadow. Height lifts the body off its shadow.
func renderWorld(w *ecs.World, screen *ebiten.Image, frame int) {
	screen.Fill(floorColor)
	if w == nil {
		return
	}
	v := cameraView(w)

	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		x, y := v.point(wall.X, wall.Y)
		vector.FillRect(screen, x, y, v.length(wall.Width), v.length(wall.Height), colornames.Slategray, false)
		vector.StrokeRect(screen, x, y, v.length(wall.Width), v.length(wall.Height), 1, colornames.Darkslategray, false)
	})

	ecs.ForEach(w, component.ExitComponent.Kind(), func(_ ecs.Entity, exit *component.Exit) {
		clr := closedExit
		if exit.Open {
			clr = openExit
		}
		x, y := v.point(exit.X, exit.Y)
		vector.FillRect(screen, x, y, v.length(exit.Width), v.length(exit.Height), clr, false)
		vector.StrokeRect(screen, x, y, v.length(exit.Width), v.length(exit.Height), 2, colornames.White, false)
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
		bob := math.Sin(float64(frame)*0.08+p.BobPhase) * 4
		x, y := v.point(t.X, t.Y)
		r := v.length(p.Radius)
		vector.FillCircle(screen, x, y, r*0.8, shadowColor, true)
		vector.FillCircle(screen, x, y-float32(bob)-r*0.4, r, pickupColor(p.Type()), true)
	})

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		radius := 24.0
		if c, ok := ecs.Get(w, e, component.CapsuleComponent.Kind()); ok {
			radius = c.Radius
		}
		x, y := v.point(t.X, t.Y)
		r := v.length(radius)
		vector.FillCircle(screen, x, y, r, shadowColor, true)

		body := colornames.Steelblue
		if st, ok := ecs.Get(w, e, component.StaminaComponent.Kind()); ok && st.Controller != nil && st.Controller.Sprinting() {
			body = sprintColour
		}
		by := y - v.length(t.Z)
		vector.FillCircle(screen, x, by, r, body, true)

		// Facing marker follows the pawn rotation; yaw 0 faces up.
		rad := t.Rotation * math.Pi / 180
		fx := x + float32(math.Sin(rad))*r
		fy := by - float32(math.Cos(rad))*r
		vector.StrokeLine(screen, x, by, fx, fy, 3, colornames.White, true)
	})
}

func pickupColor(kind string) color.Color {
	switch kind {
	case "key":
		return colornames.Gold
	case "drain":
		return colornames.Crimson
	default:
		return colornames.Limegreen
	}
}
