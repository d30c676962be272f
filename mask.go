package waveview

import (
	"image"
	"io"
	"sync"
	"sync/atomic"

	// Decoders for SetMaskReader resources.
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/hajimehoshi/ebiten/v2"
)

// maskBitmap is an immutable published mask raster. Either img is a
// ready GPU-side image, or pix holds CPU pixels uploaded lazily on the
// render goroutine during the first composite.
type maskBitmap struct {
	pix    image.Image
	img    *ebiten.Image
	width  int
	height int
}

// image returns the GPU-side image, uploading CPU pixels on first use.
// Only called from the render goroutine.
func (m *maskBitmap) image() *ebiten.Image {
	if m.img == nil && m.pix != nil {
		m.img = ebiten.NewImageFromImage(m.pix)
	}
	return m.img
}

// maskSlot publishes mask bitmaps from loader goroutines to the render
// goroutine. Each setter call claims a generation; a publish with a
// stale generation is discarded so that only the newest setter call
// ever takes effect.
type maskSlot struct {
	gen atomic.Uint64

	mu  sync.Mutex
	ptr atomic.Pointer[maskBitmap]
}

// begin claims a new generation, superseding any in-flight load.
func (s *maskSlot) begin() uint64 {
	return s.gen.Add(1)
}

// publish installs m if gen is still current. Reports whether the
// bitmap was applied.
func (s *maskSlot) publish(gen uint64, m *maskBitmap) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		return false
	}
	s.ptr.Store(m)
	return true
}

// load returns the current mask, or nil when masking is disabled.
func (s *maskSlot) load() *maskBitmap {
	return s.ptr.Load()
}

// SetMask installs a ready raster as the clipping mask, applied
// synchronously on the next Render call. Nil disables masking.
func (r *Renderer) SetMask(img *ebiten.Image) {
	gen := r.mask.begin()
	if img == nil {
		r.mask.publish(gen, nil)
		return
	}
	b := img.Bounds()
	r.mask.publish(gen, &maskBitmap{img: img, width: b.Dx(), height: b.Dy()})
}

// SetMaskImage rasterizes a decoded image into the clipping mask. The
// work runs asynchronously: the image is scaled to the surface's last
// known pixel size (or its own intrinsic size if the surface has not
// been rendered yet) and swapped in once ready. A later mask setter
// call supersedes this one. Nil disables masking.
func (r *Renderer) SetMaskImage(src image.Image) {
	gen := r.mask.begin()
	if src == nil {
		r.mask.publish(gen, nil)
		return
	}
	go r.rasterizeMask(gen, src)
}

// SetMaskReader decodes an encoded image resource (PNG or JPEG) and
// installs it as the clipping mask, asynchronously as with
// SetMaskImage. A decode failure leaves the current mask untouched and
// the failed request is dropped. Nil disables masking.
func (r *Renderer) SetMaskReader(rd io.Reader) {
	gen := r.mask.begin()
	if rd == nil {
		r.mask.publish(gen, nil)
		return
	}
	go func() {
		src, format, err := image.Decode(rd)
		if err != nil {
			logger().Warn("waveview: mask decode failed", "err", err)
			return
		}
		logger().Debug("waveview: mask decoded", "format", format)
		r.rasterizeMask(gen, src)
	}()
}

// ClearMask disables masking.
func (r *Renderer) ClearMask() {
	r.mask.publish(r.mask.begin(), nil)
}

// rasterizeMask scales src to the target mask dimensions and publishes
// the result under gen.
func (r *Renderer) rasterizeMask(gen uint64, src image.Image) {
	targetW := int(r.lastW.Load())
	targetH := int(r.lastH.Load())
	b := src.Bounds()
	if targetW <= 0 || targetH <= 0 {
		targetW, targetH = b.Dx(), b.Dy()
	}
	if targetW <= 0 || targetH <= 0 {
		logger().Warn("waveview: mask has no pixels, ignoring")
		return
	}
	if b.Dx() != targetW || b.Dy() != targetH {
		src = transform.Resize(src, targetW, targetH, transform.Linear)
	}
	if !r.mask.publish(gen, &maskBitmap{pix: src, width: targetW, height: targetH}) {
		logger().Debug("waveview: superseded mask discarded")
	}
}

// drawMask composites the mask centered over the surface with
// destination-in blending, clipping everything drawn so far to the
// mask's opaque region.
func (r *Renderer) drawMask(dst *ebiten.Image, m *maskBitmap, width, height int) {
	img := m.image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	op.GeoM.Translate(float64(width-m.width)/2, float64(height-m.height)/2)
	dst.DrawImage(img, op)
}
