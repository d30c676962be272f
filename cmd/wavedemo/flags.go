package main

import "flag"

// Command-line flags overriding the default wave parameters and
// controlling optional runtime behavior.
var (
	// wavesFlag sets the number of stacked wave layers.
	wavesFlag = flag.Int("waves", 3, "number of stacked wave layers")

	// amplitudeFlag sets the vertical wave extent.
	amplitudeFlag = flag.Float64("amplitude", 9.0, "vertical wave extent")

	// frequencyFlag sets the number of sine periods across the window.
	frequencyFlag = flag.Float64("frequency", 2.0, "sine periods across the window width")

	// phaseShiftFlag sets the per-frame phase advance while playing.
	phaseShiftFlag = flag.Float64("phase-shift", -0.05, "phase advance per frame")

	// densityFlag sets the horizontal sampling step in pixels.
	densityFlag = flag.Float64("density", 5.0, "horizontal sampling step in pixels")

	// primaryWidthFlag sets the stroke width of the front wave.
	primaryWidthFlag = flag.Float64("primary-width", 3.0, "front wave stroke width")

	// secondaryWidthFlag sets the stroke width of the deeper waves.
	secondaryWidthFlag = flag.Float64("secondary-width", 1.0, "deeper wave stroke width")

	// xAxisFlag places the wave baseline as a fraction of the window height.
	xAxisFlag = flag.Float64("x-axis", 0.5, "wave baseline as a fraction of window height (0-1)")

	// maskFlag optionally clips the waves to an image's alpha channel.
	maskFlag = flag.String("mask", "", "PNG or JPEG file whose alpha channel clips the waves")

	// pausedFlag starts the demo with the animation frozen.
	pausedFlag = flag.Bool("paused", false, "start with the animation paused")

	// debugFlag enables the FPS overlay and library logging.
	debugFlag = flag.Bool("debug", false, "show FPS overlay and enable library logging")

	// cpuProfileFlag writes a CPU profile for the whole run to a file.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
