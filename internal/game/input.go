package game

import (
	"raycaster/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Action represents a key the player pressed.
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionWalkForward
	ActionWalkBack
	ActionToggleMap
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionWalkForward
	case tcell.KeyDown:
		return ActionWalkBack
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionWalkForward
	case 's', 'S', 'j', 'J':
		return ActionWalkBack
	case 'd', 'D', 'l', 'L':
		return ActionTurnRight
	case 'a', 'A', 'h', 'H':
		return ActionTurnLeft
	case 'm', 'M':
		return ActionToggleMap
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// IntentLatch turns key-down events into a movement intent. Terminals never
// report key-up, so each press holds its axis for a number of ticks and the
// axis falls back to zero once that many ticks pass without a repeat.
type IntentLatch struct {
	hold     int
	intent   component.Intent
	turnLeft int // ticks remaining on the turn axis
	walkLeft int // ticks remaining on the walk axis
}

// NewIntentLatch returns a latch whose presses last hold ticks.
func NewIntentLatch(hold int) *IntentLatch {
	return &IntentLatch{hold: max(hold, 1)}
}

// Press records a movement action. Non-movement actions are ignored.
func (l *IntentLatch) Press(a Action) {
	switch a {
	case ActionTurnLeft:
		l.intent.Turn, l.turnLeft = -1, l.hold
	case ActionTurnRight:
		l.intent.Turn, l.turnLeft = 1, l.hold
	case ActionWalkForward:
		l.intent.Walk, l.walkLeft = 1, l.hold
	case ActionWalkBack:
		l.intent.Walk, l.walkLeft = -1, l.hold
	}
}

// Intent is what the next tick should consume.
func (l *IntentLatch) Intent() component.Intent { return l.intent }

// Decay ages both axes by one tick, releasing any that expired.
func (l *IntentLatch) Decay() {
	if l.turnLeft > 0 {
		l.turnLeft--
		if l.turnLeft == 0 {
			l.intent.Turn = 0
		}
	}
	if l.walkLeft > 0 {
		l.walkLeft--
		if l.walkLeft == 0 {
			l.intent.Walk = 0
		}
	}
}

// Release drops both axes immediately.
func (l *IntentLatch) Release() {
	*l = IntentLatch{hold: l.hold}
}
