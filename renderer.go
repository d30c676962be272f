package waveview

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 source texture used for solid-color
// triangle fills. The surrounding border avoids sampling bleed at the
// texture edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer draws the animated wave stack. It is driven by the host's
// per-frame draw callback: each Render call fills the background,
// draws every layer, applies the mask if one is set, and advances the
// phase while playing.
//
// Render and the parameter setters belong to the render goroutine and
// are not safe for concurrent use with each other. Play, Pause,
// IsPlaying, and the mask setters may be called from any goroutine.
type Renderer struct {
	cfg   Config
	phase float32

	playing atomic.Bool

	mask  maskSlot
	lastW atomic.Int32
	lastH atomic.Int32

	// scratch buffers reused across draw calls to limit allocations
	vertices []ebiten.Vertex
	indices  []uint16
}

// New constructs a Renderer from cfg with the clamping invariants
// applied. The renderer starts in the playing state.
func New(cfg Config) *Renderer {
	r := &Renderer{cfg: cfg.normalize()}
	r.phase = r.cfg.Phase
	r.playing.Store(true)
	return r
}

// Default constructs a Renderer with DefaultConfig.
func Default() *Renderer {
	return New(DefaultConfig())
}

// SetConfig replaces every live parameter at once, including the
// current phase. Takes effect on the next Render call.
func (r *Renderer) SetConfig(cfg Config) {
	r.cfg = cfg.normalize()
	r.phase = r.cfg.Phase
}

// Config returns a copy of the live parameters.
func (r *Renderer) Config() Config {
	return r.cfg
}

// SetNumWaves sets the number of stacked layers. Negative values clamp
// to zero.
func (r *Renderer) SetNumWaves(n int) {
	if n < 0 {
		n = 0
	}
	r.cfg.NumWaves = n
}

// SetAmplitude sets the vertical wave extent.
func (r *Renderer) SetAmplitude(a float32) {
	r.cfg.Amplitude = a
}

// SetFrequency sets the number of sine periods across the surface.
func (r *Renderer) SetFrequency(f float32) {
	r.cfg.Frequency = f
}

// SetPhase overrides the current animation offset.
func (r *Renderer) SetPhase(p float32) {
	r.cfg.Phase = p
	r.phase = p
}

// SetPhaseShift sets the per-frame phase advance.
func (r *Renderer) SetPhaseShift(s float32) {
	r.cfg.PhaseShift = s
}

// SetDensity sets the horizontal sampling step. Values at or below
// zero clamp to a small positive floor to keep the sampling loop
// bounded.
func (r *Renderer) SetDensity(d float32) {
	if d < minDensity {
		d = minDensity
	}
	r.cfg.Density = d
}

// SetPrimaryLineWidth sets the front layer's stroke width.
func (r *Renderer) SetPrimaryLineWidth(w float32) {
	r.cfg.PrimaryLineWidth = w
}

// SetSecondaryLineWidth sets the stroke width of the deeper layers.
func (r *Renderer) SetSecondaryLineWidth(w float32) {
	r.cfg.SecondaryLineWidth = w
}

// SetWaveColor sets the layer fill and stroke color. Nil restores the
// default white.
func (r *Renderer) SetWaveColor(c color.Color) {
	if c == nil {
		c = color.White
	}
	r.cfg.WaveColor = c
}

// SetBackgroundColor sets the surface clear color. Nil restores the
// default black.
func (r *Renderer) SetBackgroundColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	r.cfg.BackgroundColor = c
}

// SetXAxisPositionMultiplier places the wave baseline as a fraction of
// the surface height, clamped to [0, 1].
func (r *Renderer) SetXAxisPositionMultiplier(m float32) {
	r.cfg.XAxisPositionMultiplier = clamp01(m)
}

// Play enables phase advancement. Idempotent and safe from any
// goroutine.
func (r *Renderer) Play() {
	r.playing.Store(true)
}

// Pause freezes the phase without resetting it. Rendering continues
// with static geometry. Idempotent and safe from any goroutine.
func (r *Renderer) Pause() {
	r.playing.Store(false)
}

// IsPlaying reports whether the phase advances on each Render call.
func (r *Renderer) IsPlaying() bool {
	return r.playing.Load()
}

// Phase returns the current animation offset. It grows without bound;
// callers relying on it should expect sin periodicity, not wraparound.
func (r *Renderer) Phase() float32 {
	return r.phase
}

// Render draws one frame onto dst: background fill, one filled and
// stroked polygon per layer, then the mask composite. Afterwards the
// phase advances by PhaseShift if playback is enabled. A nil dst is
// ignored.
func (r *Renderer) Render(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	r.lastW.Store(int32(width))
	r.lastH.Store(int32(height))

	dst.Fill(r.cfg.BackgroundColor)

	layers := computeLayers(r.cfg, float32(width), float32(height), r.phase)
	for _, layer := range layers {
		r.drawLayer(dst, layer)
	}

	if m := r.mask.load(); m != nil {
		r.drawMask(dst, m, width, height)
	}

	r.tick()
}

// tick advances the phase by one frame's worth of shift while playing.
func (r *Renderer) tick() {
	if r.playing.Load() {
		r.phase += r.cfg.PhaseShift
	}
}

// drawLayer fills and strokes a single wave polygon.
func (r *Renderer) drawLayer(dst *ebiten.Image, layer waveLayer) {
	if len(layer.points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(layer.points[0].x, layer.points[0].y)
	for _, p := range layer.points[1:] {
		path.LineTo(p.x, p.y)
	}
	path.Close()

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		FillRule:       ebiten.FillRuleNonZero,
	}

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.tintVertices(layer.alpha)
	dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)

	if layer.strokeWidth > 0 {
		r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
			Width:    layer.strokeWidth,
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
		r.tintVertices(layer.alpha)
		dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
	}
}

// tintVertices applies the wave color, modulated by the layer opacity,
// to the scratch vertex buffer as straight-alpha components.
func (r *Renderer) tintVertices(alpha uint8) {
	cr, cg, cb, ca := r.cfg.WaveColor.RGBA()
	var red, green, blue float32
	if ca != 0 {
		red = float32(cr) / float32(ca)
		green = float32(cg) / float32(ca)
		blue = float32(cb) / float32(ca)
	}
	a := float32(ca) / 0xffff * float32(alpha) / 255
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = red
		r.vertices[i].ColorG = green
		r.vertices[i].ColorB = blue
		r.vertices[i].ColorA = a
	}
}
