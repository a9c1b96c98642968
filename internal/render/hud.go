package render

import (
	"fmt"
	"math"

	"raycaster/internal/component"
	"raycaster/internal/system"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD writes the status line on the bottom row.
func (r *Renderer) DrawHUD(title string, tick uint64, pose component.Pose, moved system.MoveResult) {
	w, h := r.screen.Size()
	if h == 0 {
		return
	}
	y := h - 1
	blank := tcell.StyleDefault.Background(tcell.ColorBlack)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, blank)
	}
	deg := pose.Heading * 180 / math.Pi
	status := fmt.Sprintf("%s  x:%.1f y:%.1f  heading:%.0f°  tick:%d  %s   ←→ turn  ↑↓ walk  m map  q quit",
		title, pose.X, pose.Y, deg, tick, moved)
	r.drawText(0, y, status, tcell.StyleDefault.Foreground(ColorHUD).Background(tcell.ColorBlack))
}
