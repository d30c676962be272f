package waveview

import "github.com/chewxy/math32"

// point is a single polygon vertex in surface pixel coordinates.
type point struct {
	x float32
	y float32
}

// waveLayer is the transient per-frame geometry of one wave: a closed
// polygon running along the sine curve and down to the bottom edge of
// the surface, plus its draw attributes. Layers carry no identity
// across frames; they are recomputed from scratch on every render.
type waveLayer struct {
	points      []point
	alpha       uint8
	strokeWidth float32
}

// computeLayers evaluates the wave geometry for one frame. Layer 0 is
// the front wave; deeper layers shrink in amplitude and fade out.
// Returns nil when there is nothing to draw.
func computeLayers(cfg Config, width, height, phase float32) []waveLayer {
	if cfg.NumWaves <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	density := cfg.Density
	if density < minDensity {
		density = minDensity
	}
	xAxis := height * clamp01(cfg.XAxisPositionMultiplier)
	mid := width / 2
	waves := float32(cfg.NumWaves)

	layers := make([]waveLayer, 0, cfg.NumWaves)
	for i := 0; i < cfg.NumWaves; i++ {
		progress := 1 - float32(i)/waves
		normedAmplitude := (1.5*progress - 0.5) * cfg.Amplitude

		strokeWidth := cfg.SecondaryLineWidth
		if i == 0 {
			strokeWidth = cfg.PrimaryLineWidth
		}

		// One sample past the right edge so the curve always reaches it.
		sampleCount := int((width+density)/density) + 1
		points := make([]point, 0, sampleCount+2)
		lastX := float32(0)
		for x := float32(0); x < width+density; x += density {
			offset := (x - mid) / mid
			scaling := 1 - offset*offset
			arg := 2*math32.Pi*(x/width)*cfg.Frequency + phase*float32(i+1)
			y := scaling*cfg.Amplitude*normedAmplitude*math32.Sin(arg) + xAxis
			points = append(points, point{x: x, y: y})
			lastX = x
		}
		// Drop to the bottom edge and back so the fill covers the area
		// under the curve.
		points = append(points, point{x: lastX, y: height}, point{x: 0, y: height})

		layers = append(layers, waveLayer{
			points:      points,
			alpha:       layerAlpha(i),
			strokeWidth: strokeWidth,
		})
	}
	return layers
}

// layerAlpha returns the fill opacity for layer i: fully opaque in
// front, then 255/(i+1) using integer division for deeper layers.
func layerAlpha(i int) uint8 {
	if i == 0 {
		return 255
	}
	return uint8(255 / (i + 1))
}
