package renderer

import (
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mitchelldurbincs/BaoChess/internal/common"
	"github.com/mitchelldurbincs/BaoChess/internal/game/capture"
)

var (
	splashColor = color.RGBA{34, 197, 94, 255}
	craterColor = color.RGBA{180, 83, 9, 255}
	dustColor   = color.RGBA{120, 113, 108, 255}
	crushFill   = color.RGBA{226, 232, 240, 255}
	crushEdge   = color.RGBA{148, 163, 184, 255}
	slashColor  = color.RGBA{96, 165, 250, 255}
	royalColor  = color.RGBA{168, 85, 247, 255}
	goldColor   = color.RGBA{250, 204, 21, 255}
	paleGold    = color.RGBA{254, 240, 138, 255}
)

// EffectRenderer plays capture animations. It remembers when it first saw
// each request and reports requests whose animation has run out.
type EffectRenderer struct {
	layout  Layout
	started map[uuid.UUID]time.Time
}

// NewEffectRenderer returns an idle effect renderer
func NewEffectRenderer(layout Layout) *EffectRenderer {
	return &EffectRenderer{layout: layout, started: make(map[uuid.UUID]time.Time)}
}

// Update starts new requests and returns the IDs that have finished. A
// finished ID is forgotten, so the caller must retire it.
func (er *EffectRenderer) Update(now time.Time, effects []capture.EffectRequest) []uuid.UUID {
	live := make(map[uuid.UUID]bool, len(effects))
	var done []uuid.UUID
	for _, fx := range effects {
		live[fx.ID] = true
		start, ok := er.started[fx.ID]
		if !ok {
			er.started[fx.ID] = now
			continue
		}
		if now.Sub(start) >= fx.Descriptor().Duration() {
			done = append(done, fx.ID)
			delete(er.started, fx.ID)
		}
	}
	// requests dropped by a new game
	for id := range er.started {
		if !live[id] {
			delete(er.started, id)
		}
	}
	return done
}

// Active is the number of animations being tracked
func (er *EffectRenderer) Active() int {
	return len(er.started)
}

// Draw renders every running animation
func (er *EffectRenderer) Draw(screen *ebiten.Image, now time.Time, effects []capture.EffectRequest) {
	for _, fx := range effects {
		start, ok := er.started[fx.ID]
		if !ok {
			continue
		}
		elapsed := now.Sub(start)
		cx, cy := er.layout.CellCenter(fx.At)
		base, err := common.ParseHexColor(fx.Color)
		if err != nil {
			base = common.TextColor
		}
		for i, layer := range fx.Descriptor().Layers {
			p := LayerProgress(elapsed, layer)
			if p <= 0 || p >= 1 {
				continue
			}
			er.drawLayer(screen, fx.ID, layer, i, p, float32(cx), float32(cy), base)
		}
	}
}

// LayerProgress is the eased completion of a layer, 0 before its delay and 1
// once finished
func LayerProgress(elapsed time.Duration, layer capture.Layer) float64 {
	raw := common.Progress(elapsed.Seconds(), layer.Delay.Seconds(), layer.Duration.Seconds())
	return common.EaseOutCubic(raw)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	return common.WithAlpha(c, uint8(common.Clamp(alpha, 0, 1)*255))
}

func (er *EffectRenderer) drawLayer(screen *ebiten.Image, id uuid.UUID, layer capture.Layer, index int, p float64, cx, cy float32, base color.RGBA) {
	k := float32(er.layout.TileSize) / 64
	half := float32(er.layout.TileSize) / 2
	pf := float32(p)
	out := 1 - p

	switch layer.Shape {
	case capture.ShapeSplash:
		vector.DrawFilledCircle(screen, cx, cy, half*1.5*pf, fade(splashColor, 0.3*out), true)
		for i := 0; i < layer.Particles; i++ {
			dx, dy := direction(i, layer.Particles)
			r0, r1 := 40*k*pf, 40*k*pf+16*k*pf
			vector.StrokeLine(screen, cx+dx*r0, cy+dy*r0, cx+dx*r1, cy+dy*r1, 4*k, fade(splashColor, out), true)
		}

	case capture.ShapeCrater:
		vector.StrokeCircle(screen, cx, cy, half*2.5*pf, 2+18*k*pf, fade(craterColor, 0.5*out), true)

	case capture.ShapeDust:
		for i := 0; i < layer.Particles; i++ {
			dx, dy := scatter(id, i)
			vector.DrawFilledCircle(screen, cx+dx*40*k*pf, cy+dy*40*k*pf, 6*k*(1-pf), fade(dustColor, out), true)
		}

	case capture.ShapeCrush:
		scale := 2 - pf
		if scale < 1 {
			scale = 1
		}
		side := float32(er.layout.TileSize) * scale
		vector.DrawFilledRect(screen, cx-side/2, cy-side/2, side, side, fade(crushFill, 0.5*out), false)
		edge := float32(er.layout.TileSize) * (0.1 + 1.4*pf)
		vector.StrokeRect(screen, cx-edge/2, cy-edge/2, edge, edge, 4*k, fade(crushEdge, out), true)

	case capture.ShapeSlash:
		angle := math.Pi / 4
		if index%2 == 1 {
			angle = -angle
		}
		length := 96 * k * pf
		dx, dy := float32(math.Cos(angle))*length, float32(math.Sin(angle))*length
		vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 3*k, fade(slashColor, out), true)

	case capture.ShapeDashedRing:
		r := half * 3 * pf
		spin := math.Pi * p
		const dashes = 16
		for i := 0; i < dashes; i += 2 {
			a0 := spin + 2*math.Pi*float64(i)/dashes
			a1 := spin + 2*math.Pi*float64(i+1)/dashes
			vector.StrokeLine(screen,
				cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)),
				cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1)),
				4*k, fade(royalColor, out), true)
		}

	case capture.ShapeBlur:
		vector.DrawFilledCircle(screen, cx, cy, half*4*pf, fade(royalColor, 0.3*out), true)

	case capture.ShapeRing:
		clr, grow := goldColor, float32(1.5)
		if index%2 == 1 {
			clr, grow = paleGold, 1.0
		}
		vector.StrokeCircle(screen, cx, cy, half*(0.5+grow*pf), 2*k, fade(clr, out), true)

	default:
		for i := 0; i < layer.Particles; i++ {
			dx, dy := direction(i, layer.Particles)
			vector.DrawFilledCircle(screen, cx+dx*50*k*pf, cy+dy*50*k*pf, 4*k*(1-pf), fade(base, out), true)
		}
	}
}

// direction is the unit vector for spoke i of n
func direction(i, n int) (float32, float32) {
	a := 2 * math.Pi * float64(i) / float64(n)
	return float32(math.Cos(a)), float32(math.Sin(a))
}

// scatter derives a stable offset in [-1, 1] from the effect ID so dust does
// not jitter between frames
func scatter(id uuid.UUID, i int) (float32, float32) {
	a := id[(i*2)%len(id)]
	b := id[(i*2+1)%len(id)]
	return float32(a)/127.5 - 1, float32(b)/127.5 - 1
}
