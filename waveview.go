// Package waveview renders an animated stack of sine waves onto an
// ebiten image. A Renderer owns the wave parameters and animation
// state; the host calls Render once per frame from its draw callback
// and the renderer advances the phase while playback is enabled. An
// optional mask image clips the composited waves to an arbitrary
// shape via destination-in alpha blending.
package waveview

import "image/color"

// minDensity is the floor applied to Config.Density. A non-positive
// sampling step would make the horizontal sampling loop spin forever.
const minDensity = 0.01

// Config bundles every tunable wave parameter. The zero value is not
// usable directly; start from DefaultConfig and override fields.
type Config struct {
	// NumWaves is the number of stacked wave layers. Zero draws the
	// background only. Negative values clamp to zero.
	NumWaves int

	// Amplitude scales the vertical extent of every layer.
	Amplitude float32

	// Frequency is the number of full sine periods across the surface
	// width.
	Frequency float32

	// Phase is the initial animation offset added to each layer's sine
	// argument.
	Phase float32

	// PhaseShift is added to the phase after every rendered frame while
	// playback is enabled. Negative values scroll the wave forward.
	PhaseShift float32

	// Density is the horizontal sampling step in pixels. Smaller values
	// produce smoother curves at higher cost. Values at or below zero
	// clamp to a small positive floor.
	Density float32

	// PrimaryLineWidth is the stroke width of the front layer.
	PrimaryLineWidth float32

	// SecondaryLineWidth is the stroke width of every deeper layer.
	SecondaryLineWidth float32

	// WaveColor fills and strokes the layers. Layer opacity decreases
	// with depth; the color's own alpha is applied on top of that.
	WaveColor color.Color

	// BackgroundColor fills the surface before any layer is drawn.
	BackgroundColor color.Color

	// XAxisPositionMultiplier places the wave baseline as a fraction of
	// the surface height. Always clamped to [0, 1] on every write.
	XAxisPositionMultiplier float32
}

// DefaultConfig returns the stock parameter set: three white waves on a
// black background, centered vertically, scrolling slowly forward.
func DefaultConfig() Config {
	return Config{
		NumWaves:                3,
		Amplitude:               0.15,
		Frequency:               2.0,
		Phase:                   0,
		PhaseShift:              -0.05,
		Density:                 5.0,
		PrimaryLineWidth:        3.0,
		SecondaryLineWidth:      1.0,
		WaveColor:               color.White,
		BackgroundColor:         color.Black,
		XAxisPositionMultiplier: 0.5,
	}
}

// normalize applies the clamping invariants and fills nil colors with
// their defaults. Called on every wholesale parameter write.
func (c Config) normalize() Config {
	if c.NumWaves < 0 {
		c.NumWaves = 0
	}
	if c.Density < minDensity {
		c.Density = minDensity
	}
	c.XAxisPositionMultiplier = clamp01(c.XAxisPositionMultiplier)
	if c.WaveColor == nil {
		c.WaveColor = color.White
	}
	if c.BackgroundColor == nil {
		c.BackgroundColor = color.Black
	}
	return c
}

// clamp01 constrains v to the inclusive [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
