package signature

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sync"
)

// Stroke appearance of the pad.
var (
	inkColor = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}
	padWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

const strokeWidth = 2.0

// Point is a pad-local pointer coordinate.
type Point struct {
	X float64
	Y float64
}

// Pad captures a freehand signature on an in-memory canvas. Pointer events
// draw continuous strokes; the finished drawing is exported as a PNG data
// URI. A disabled pad ignores all pointer events.
type Pad struct {
	mu sync.Mutex

	width  int
	height int
	canvas *image.RGBA

	drawing bool
	last    Point
	hasInk  bool

	disabled       bool
	disabledReason string
}

// NewPad creates a blank white pad of the given pixel size.
func NewPad(width, height int) *Pad {
	p := &Pad{width: width, height: height}
	p.reset()
	return p
}

func (p *Pad) reset() {
	p.canvas = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(p.canvas, p.canvas.Bounds(), &image.Uniform{C: padWhite}, image.Point{}, draw.Src)
	p.drawing = false
	p.hasInk = false
}

// Disable blocks drawing, recording the reason shown to the partner.
func (p *Pad) Disable(reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = true
	p.disabledReason = reason
	p.drawing = false
}

// Enable re-allows drawing.
func (p *Pad) Enable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = false
	p.disabledReason = ""
}

// Disabled reports whether the pad rejects input and why.
func (p *Pad) Disabled() (bool, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disabled, p.disabledReason
}

// PointerDown starts a stroke at pt.
func (p *Pad) PointerDown(pt Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled {
		return
	}
	p.drawing = true
	p.last = pt
	p.stampDisc(pt)
	p.hasInk = true
}

// PointerMove extends the current stroke to pt. Moves outside an active
// stroke are ignored.
func (p *Pad) PointerMove(pt Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled || !p.drawing {
		return
	}
	p.drawSegment(p.last, pt)
	p.last = pt
	p.hasInk = true
}

// PointerUp ends the current stroke and returns the pad's current data URI,
// or the empty string if nothing has been drawn.
func (p *Pad) PointerUp() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = false
	return p.encodeLocked()
}

// DataURL exports the drawing as a PNG data URI. A blank pad exports as the
// empty string.
func (p *Pad) DataURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encodeLocked()
}

// Clear wipes the pad and returns the empty string, the cleared signature
// value.
func (p *Pad) Clear() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return ""
}

func (p *Pad) encodeLocked() string {
	if !p.hasInk {
		return ""
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.canvas); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// drawSegment rasterizes a stroke segment by stamping discs along it.
func (p *Pad) drawSegment(from, to Point) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		p.stampDisc(to)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.stampDisc(Point{X: from.X + dx*t, Y: from.Y + dy*t})
	}
}

func (p *Pad) stampDisc(center Point) {
	r := strokeWidth / 2
	minX := int(math.Floor(center.X - r))
	maxX := int(math.Ceil(center.X + r))
	minY := int(math.Floor(center.Y - r))
	maxY := int(math.Ceil(center.Y + r))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || y < 0 || x >= p.width || y >= p.height {
				continue
			}
			fx := float64(x) - center.X
			fy := float64(y) - center.Y
			if fx*fx+fy*fy <= r*r {
				p.canvas.SetRGBA(x, y, inkColor)
			}
		}
	}
}
