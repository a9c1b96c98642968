package window

import (
	"raycaster/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// action is what a bound key does.
type action uint8

const (
	actionWalkForward action = iota + 1
	actionWalkBack
	actionTurnLeft
	actionTurnRight
	actionToggleMap
	actionQuit
)

// bindings maps each watched key to its action.
var bindings = map[ebiten.Key]action{
	ebiten.KeyArrowUp:    actionWalkForward,
	ebiten.KeyW:          actionWalkForward,
	ebiten.KeyArrowDown:  actionWalkBack,
	ebiten.KeyS:          actionWalkBack,
	ebiten.KeyArrowLeft:  actionTurnLeft,
	ebiten.KeyA:          actionTurnLeft,
	ebiten.KeyArrowRight: actionTurnRight,
	ebiten.KeyD:          actionTurnRight,
	ebiten.KeyM:          actionToggleMap,
	ebiten.KeyEscape:     actionQuit,
	ebiten.KeyQ:          actionQuit,
}

// heldIntent is the intent set by key-down and cleared by key-up on the
// same axis. A window reports both edges, so nothing decays.
type heldIntent struct {
	intent component.Intent
}

func (h *heldIntent) press(a action) {
	switch a {
	case actionWalkForward:
		h.intent.Walk = 1
	case actionWalkBack:
		h.intent.Walk = -1
	case actionTurnLeft:
		h.intent.Turn = -1
	case actionTurnRight:
		h.intent.Turn = 1
	}
}

func (h *heldIntent) release(a action) {
	switch a {
	case actionWalkForward, actionWalkBack:
		h.intent.Walk = 0
	case actionTurnLeft, actionTurnRight:
		h.intent.Turn = 0
	}
}
