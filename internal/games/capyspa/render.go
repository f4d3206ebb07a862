package capyspa

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/yuzu-spa/internal/core"
)

// Visual characters for rendering
const (
	CapyChar  = '█'
	CapyTop   = '▄'
	YuzuChar  = '●'
	CatChar   = '◆'
	RainChar  = '░'
	WaterChar = '~'
	HeartChar = '♥'
)

// hudRows is the number of rows above the pool.
const hudRows = 1

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Field returns the bordered pool rectangle for a screen of the given size.
// The pool keeps the world's aspect ratio where the screen allows it and is
// centered horizontally.
func Field(screenW, screenH int, worldW, worldH float64) core.Rect {
	innerH := max(screenH-hudRows-2, 1)
	innerW := int(float64(innerH) * worldW / worldH * cellAspect)
	if maxW := screenW - 2; innerW > maxW || innerW <= 0 {
		innerW = max(maxW, 1)
	}
	x := max((screenW-innerW-2)/2, 0)
	return core.NewRect(x, hudRows, innerW+2, innerH+2)
}

// inner returns the drawable area inside the field border.
func inner(field core.Rect) core.Rect {
	return core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)
}

// Render draws the HUD and the pool for snap onto screen.
func Render(screen *core.Screen, snap Snapshot) {
	screen.Clear()

	field := Field(screen.Width(), screen.Height(), snap.Width, snap.Height)
	area := inner(field)
	screen.DrawBox(field, core.ColorGray)

	renderHUD(screen, snap)

	// Water surface along the bottom row
	screen.DrawHLine(area.X, area.Bottom()-1, area.W, WaterChar, core.ColorBlue)

	for _, e := range snap.Items {
		renderItem(screen, area, snap, e)
	}
	renderPlayer(screen, area, snap)

	switch snap.Phase {
	case PhaseIdle:
		screen.DrawTextCentered(area.Y+area.H/2, " Press Enter to soak ", core.ColorYellow)
	case PhaseGameOver:
		screen.DrawTextCentered(area.Y+area.H/2, " Out of the spa ", core.ColorYellow)
	}
}

func renderHUD(screen *core.Screen, snap Snapshot) {
	var hearts strings.Builder
	for i := 0; i < snap.Lives; i++ {
		hearts.WriteRune(HeartChar)
	}
	screen.DrawTextColor(0, 0, hearts.String(), core.ColorRed)

	status := fmt.Sprintf("Score %d  Best %d  %s", snap.Score, snap.Best, FormatElapsed(snap.ElapsedMs))
	x := max(screen.Width()-len([]rune(status)), snap.Lives+1)
	screen.DrawTextColor(x, 0, status, core.ColorYellow)
}

// project maps a logical rectangle onto cells inside area.
func project(area core.Rect, snap Snapshot, r core.RectF) core.Rect {
	sx := float64(area.W) / snap.Width
	sy := float64(area.H) / snap.Height
	x := area.X + int(r.X*sx)
	y := area.Y + int(r.Y*sy)
	w := max(int(r.W*sx+0.5), 1)
	h := max(int(r.H*sy+0.5), 1)
	return core.NewRect(x, y, w, h)
}

// fill paints r clipped to area.
func fill(screen *core.Screen, area, r core.Rect, ch rune, c core.Color) {
	x0, y0 := max(r.X, area.X), max(r.Y, area.Y)
	x1, y1 := min(r.Right(), area.Right()), min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), ch, c)
}

func renderItem(screen *core.Screen, area core.Rect, snap Snapshot, e Entity) {
	r := project(area, snap, e.Rect(snap.ItemSize))
	switch e.Category {
	case CategoryYuzu:
		fill(screen, area, r, YuzuChar, core.ColorOrange)
	case CategoryCat:
		fill(screen, area, r, CatChar, core.ColorPink)
	case CategoryRain:
		fill(screen, area, r, RainChar, core.ColorCyan)
	}
}

func renderPlayer(screen *core.Screen, area core.Rect, snap Snapshot) {
	r := project(area, snap, core.NewRectF(snap.PlayerX, snap.PlayerY, snap.PlayerW, snap.PlayerH))
	fill(screen, area, r, CapyChar, core.ColorBrown)
	fill(screen, area, core.NewRect(r.X, r.Y, r.W, 1), CapyTop, core.ColorBrown)
}

// FormatElapsed renders milliseconds as m:ss.
func FormatElapsed(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
