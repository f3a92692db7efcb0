package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/alsescape/ecs"
	"github.com/milk9111/alsescape/ecs/component"
)

const (
	stickDeadzone = 0.2
	// mouseTurnScale converts mouse pixels into yaw degrees.
	mouseTurnScale = 0.15
)

// ebitenInput polls devices, writes axes into every Input component and
// queues button transitions for the scheduler to dispatch.
type ebitenInput struct {
	lastCursorX int
	hasCursor   bool
	touches     []ebiten.TouchID
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{}
}

func (i *ebitenInput) Update(w *ecs.World) {
	if w == nil {
		return
	}

	forward, right := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		right += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		right -= 1
	}

	turnRate := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		turnRate += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		turnRate -= 1
	}

	turn := 0.0
	cx, _ := ebiten.CursorPosition()
	if i.hasCursor && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		turn = float64(cx-i.lastCursorX) * mouseTurnScale
	}
	i.lastCursorX = cx
	i.hasCursor = true

	queue := func(action string, down, up bool) {
		if down {
			w.PushInput(ecs.InputEvent{Action: action, Phase: ecs.Pressed})
		}
		if up {
			w.PushInput(ecs.InputEvent{Action: action, Phase: ecs.Released})
		}
	}

	jumpDown := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpUp := inpututil.IsKeyJustReleased(ebiten.KeySpace)
	sprintDown := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)
	sprintUp := inpututil.IsKeyJustReleased(ebiten.KeyShiftLeft) || inpututil.IsKeyJustReleased(ebiten.KeyShiftRight)
	collect := inpututil.IsKeyJustPressed(ebiten.KeyE)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			right = lx
			forward = -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(rx) > stickDeadzone {
			turnRate = rx
		}

		jumpDown = jumpDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpUp = jumpUp || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
		sprintDown = sprintDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		sprintUp = sprintUp || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontTopLeft)
		collect = collect || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	queue(ecs.ActionJump, jumpDown, jumpUp)
	queue(ecs.ActionSprint, sprintDown, sprintUp)
	queue(ecs.ActionCollect, collect, false)

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	if len(i.touches) > 0 {
		w.PushInput(ecs.InputEvent{Action: ecs.ActionTouch, Phase: ecs.Pressed})
	}
	i.touches = inpututil.AppendJustReleasedTouchIDs(i.touches[:0])
	if len(i.touches) > 0 {
		w.PushInput(ecs.InputEvent{Action: ecs.ActionTouch, Phase: ecs.Released})
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveForward = forward
		in.MoveRight = right
		in.Turn = turn
		in.TurnRate = turnRate
	})
}

// pausePressed reports the pause toggle. It is polled by the game loop even
// while the world is not updating.
func pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
