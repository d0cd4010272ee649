package window

import (
	"image/color"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:        {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:          {R: 220, G: 50, B: 47, A: 255},
	core.ColorGreen:        {R: 0, G: 160, B: 0, A: 255},
	core.ColorYellow:       {R: 255, G: 220, B: 0, A: 255},
	core.ColorBlue:         {R: 38, G: 139, B: 210, A: 255},
	core.ColorWhite:        {R: 220, G: 220, B: 220, A: 255},
	core.ColorBrightGreen:  {R: 80, G: 230, B: 80, A: 255},
	core.ColorBrightYellow: {R: 255, G: 255, B: 120, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:         {R: 128, G: 128, B: 128, A: 255},
}

var skyColor = color.RGBA{R: 112, G: 197, B: 206, A: 255}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

type rectOp struct {
	x, y, w, h float64
	color      core.Color
}

type textOp struct {
	text string
	x, y float64
}

// displayList records what the controller draws during a tick so the frame
// can be replayed by ebiten's Draw, which runs separately from Update.
type displayList struct {
	rects []rectOp
	texts []textOp
}

func (d *displayList) Clear() {
	d.rects = d.rects[:0]
	d.texts = d.texts[:0]
}

func (d *displayList) DrawRect(x, y, w, h float64, c core.Color) {
	d.rects = append(d.rects, rectOp{x: x, y: y, w: w, h: h, color: c})
}

func (d *displayList) DrawText(text string, x, y float64) {
	d.texts = append(d.texts, textOp{text: text, x: x, y: y})
}

// frameScheduler runs the armed tick on the next ebiten Update.
type frameScheduler struct {
	next func()
}

func (s *frameScheduler) ScheduleNextTick(tick func()) {
	s.next = tick
}

func (s *frameScheduler) Stop() {
	s.next = nil
}

func (s *frameScheduler) fire() {
	tick := s.next
	s.next = nil
	if tick != nil {
		tick()
	}
}
