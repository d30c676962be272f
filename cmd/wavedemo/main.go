// wavedemo displays an animated stacked sine-wave visualization.
// Space toggles playback, the arrow keys adjust amplitude and
// frequency, and Escape quits. An optional mask image clips the waves
// to its alpha channel.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"waveview"
)

// Window configuration constants.
const (
	screenW     = 640
	screenH     = 360
	windowScale = 2
	windowTitle = "Wave View"

	amplitudeStep = 0.1
	frequencyStep = 0.02
)

// Game hosts the wave renderer inside Ebiten's game loop.
type Game struct {
	renderer *waveview.Renderer
}

// Update processes playback and parameter hotkeys. Rendering itself
// happens in Draw, once per display refresh, which is what drives the
// animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.renderer.IsPlaying() {
			g.renderer.Pause()
		} else {
			g.renderer.Play()
		}
	}

	cfg := g.renderer.Config()
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.renderer.SetAmplitude(cfg.Amplitude + amplitudeStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.renderer.SetAmplitude(cfg.Amplitude - amplitudeStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.renderer.SetFrequency(cfg.Frequency + frequencyStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		freq := cfg.Frequency - frequencyStep
		if freq < 0 {
			freq = 0
		}
		g.renderer.SetFrequency(freq)
	}
	return nil
}

// Draw renders the wave stack and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen)

	if *debugFlag {
		cfg := g.renderer.Config()
		state := "paused"
		if g.renderer.IsPlaying() {
			state = "playing"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nState: %s\nPhase: %.2f\nAmplitude: %.2f (up/down)\nFrequency: %.2f (left/right)",
			ebiten.ActualFPS(), state, g.renderer.Phase(), cfg.Amplitude, cfg.Frequency)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

func main() {
	flag.Parse()

	if *debugFlag {
		waveview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profiling failed: %v", err)
		}
		defer stop()
	}

	cfg := waveview.DefaultConfig()
	cfg.NumWaves = *wavesFlag
	cfg.Amplitude = float32(*amplitudeFlag)
	cfg.Frequency = float32(*frequencyFlag)
	cfg.PhaseShift = float32(*phaseShiftFlag)
	cfg.Density = float32(*densityFlag)
	cfg.PrimaryLineWidth = float32(*primaryWidthFlag)
	cfg.SecondaryLineWidth = float32(*secondaryWidthFlag)
	cfg.XAxisPositionMultiplier = float32(*xAxisFlag)

	renderer := waveview.New(cfg)
	if *pausedFlag {
		renderer.Pause()
	}

	if *maskFlag != "" {
		data, err := os.ReadFile(*maskFlag)
		if err != nil {
			log.Fatalf("Reading mask %q failed: %v", *maskFlag, err)
		}
		renderer.SetMaskReader(bytes.NewReader(data))
	}

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(&Game{renderer: renderer}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game loop failed: %v", err)
	}
}
