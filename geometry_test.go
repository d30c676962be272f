package waveview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitConfig is a single unscaled wave whose curve crosses the
// baseline at both horizontal edges, sampled at every pixel.
func unitConfig() Config {
	return Config{
		NumWaves:                1,
		Amplitude:               1.0,
		Frequency:               1.0,
		Phase:                   0,
		PhaseShift:              0,
		Density:                 1.0,
		PrimaryLineWidth:        3.0,
		SecondaryLineWidth:      1.0,
		XAxisPositionMultiplier: 0.5,
	}
}

func TestComputeLayersCount(t *testing.T) {
	cfg := DefaultConfig()
	layers := computeLayers(cfg, 200, 100, 0)
	assert.Len(t, layers, cfg.NumWaves)

	cfg.NumWaves = 0
	assert.Empty(t, computeLayers(cfg, 200, 100, 0))

	cfg.NumWaves = 3
	assert.Empty(t, computeLayers(cfg, 0, 100, 0), "zero-width surface draws nothing")
	assert.Empty(t, computeLayers(cfg, 200, 0, 0), "zero-height surface draws nothing")
}

func TestLayerOpacitySeries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumWaves = 4
	layers := computeLayers(cfg, 200, 100, 0)
	require.Len(t, layers, 4)

	want := []uint8{255, 127, 85, 63}
	for i, layer := range layers {
		assert.Equal(t, want[i], layer.alpha, "layer %d opacity", i)
	}
}

func TestLayerStrokeWidths(t *testing.T) {
	cfg := DefaultConfig()
	layers := computeLayers(cfg, 200, 100, 0)
	require.Len(t, layers, 3)

	assert.Equal(t, cfg.PrimaryLineWidth, layers[0].strokeWidth)
	for i, layer := range layers[1:] {
		assert.Equal(t, cfg.SecondaryLineWidth, layer.strokeWidth, "layer %d", i+1)
	}
}

// The parabolic taper zeroes out at both horizontal edges, so the
// curve must sit exactly on the baseline there regardless of phase.
func TestCurveCrossesBaselineAtEdges(t *testing.T) {
	layers := computeLayers(unitConfig(), 100, 100, 0)
	require.Len(t, layers, 1)

	var sawLeft, sawRight bool
	for _, p := range curveSamples(layers[0]) {
		if p.x == 0 {
			sawLeft = true
			assert.Equal(t, float32(50), p.y, "baseline at left edge")
		}
		if p.x == 100 {
			sawRight = true
			assert.Equal(t, float32(50), p.y, "baseline at right edge")
		}
	}
	assert.True(t, sawLeft, "curve sampled at x=0")
	assert.True(t, sawRight, "curve sampled at x=width")
}

// At the quarter point the taper is 0.75 and the sine argument is
// pi/2, pinning the sample to a known value.
func TestQuarterPointValue(t *testing.T) {
	layers := computeLayers(unitConfig(), 100, 100, 0)
	require.Len(t, layers, 1)

	found := false
	for _, p := range curveSamples(layers[0]) {
		if p.x == 25 {
			found = true
			assert.InDelta(t, 50.75, p.y, 1e-3)
		}
	}
	assert.True(t, found)
}

// Every sample's deviation from the baseline is bounded by the
// parabolic taper at that x.
func TestAmplitudeBoundedByParabola(t *testing.T) {
	layers := computeLayers(unitConfig(), 100, 100, 1.3)
	require.Len(t, layers, 1)

	for _, p := range curveSamples(layers[0]) {
		offset := float64(p.x-50) / 50
		bound := 1 - offset*offset
		assert.LessOrEqual(t, math.Abs(float64(p.y-50)), bound+1e-4, "sample at x=%v", p.x)
	}
}

// Layer i animates with phase*(i+1), so deeper layers scroll faster.
func TestPhaseMultiplierPerLayer(t *testing.T) {
	cfg := unitConfig()
	cfg.NumWaves = 2
	phase := float32(0.7)
	layers := computeLayers(cfg, 100, 100, phase)
	require.Len(t, layers, 2)

	expect := func(i int, x float64) float64 {
		progress := 1 - float64(i)/2
		normed := 1.5*progress - 0.5
		offset := (x - 50) / 50
		scaling := 1 - offset*offset
		return scaling*normed*math.Sin(2*math.Pi*(x/100)+float64(phase)*float64(i+1)) + 50
	}
	for i, layer := range layers {
		for _, p := range curveSamples(layer) {
			if p.x == 25 {
				assert.InDelta(t, expect(i, 25), float64(p.y), 1e-3, "layer %d", i)
			}
		}
	}
}

// The final curve sample may pass the right edge; the polygon then
// closes along the bottom of the surface.
func TestOverscanAndClosure(t *testing.T) {
	cfg := unitConfig()
	cfg.Density = 7
	layers := computeLayers(cfg, 100, 100, 0)
	require.Len(t, layers, 1)

	points := layers[0].points
	require.GreaterOrEqual(t, len(points), 3)

	curve := curveSamples(layers[0])
	lastSample := curve[len(curve)-1]
	assert.GreaterOrEqual(t, lastSample.x, float32(100), "curve reaches or crosses the right edge")

	bottomRight := points[len(points)-2]
	bottomLeft := points[len(points)-1]
	assert.Equal(t, point{x: lastSample.x, y: 100}, bottomRight)
	assert.Equal(t, point{x: 0, y: 100}, bottomLeft)
}

// A non-positive density clamps to the floor instead of looping
// forever.
func TestDensityFloorTerminates(t *testing.T) {
	cfg := unitConfig()
	cfg.Density = 0
	layers := computeLayers(cfg, 10, 10, 0)
	require.Len(t, layers, 1)
	assert.NotEmpty(t, layers[0].points)
}

// curveSamples returns a layer's polygon without the two bottom-edge
// closing vertices.
func curveSamples(layer waveLayer) []point {
	return layer.points[:len(layer.points)-2]
}
