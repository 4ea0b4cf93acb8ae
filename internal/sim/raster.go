package sim

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
)

// Replay palette indices. The palette is fixed so every frame shares it
// and the GIF encoder never needs per-frame quantization.
const (
	pxBackground = iota
	pxRing
	pxRingLocked
	pxPlayer
	pxHazard
	pxShield
	pxSlowMo
	pxMagnet
	pxAccent
)

var replayPalette = color.Palette{
	color.RGBA{0x10, 0x10, 0x18, 0xff}, // background
	color.RGBA{0x50, 0x50, 0x60, 0xff}, // active ring
	color.RGBA{0x28, 0x28, 0x30, 0xff}, // locked ring
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // player
	color.RGBA{0xe0, 0x40, 0x40, 0xff}, // hazard
	color.RGBA{0x40, 0xa0, 0xe0, 0xff}, // shield pickup
	color.RGBA{0x40, 0xe0, 0x80, 0xff}, // slow-mo pickup
	color.RGBA{0xc0, 0x60, 0xe0, 0xff}, // magnet pickup
	color.RGBA{0xe0, 0xc0, 0x40, 0xff}, // effect accent
}

// rasterizer draws the world into small square paletted frames for the
// replay recorder. It precomputes the world-to-pixel scale from the
// outermost ring so frames stay stable as rings unlock.
type rasterizer struct {
	size  int
	scale float64
}

func newRasterizer(cfg *config.OrbitConfig) *rasterizer {
	size := cfg.Replay.Size
	if size < 16 {
		size = 16
	}
	maxRadius := 1.0
	for _, r := range cfg.Rings.Radii {
		if r > maxRadius {
			maxRadius = r
		}
	}
	return &rasterizer{
		size:  size,
		scale: (float64(size)/2 - 2) / maxRadius,
	}
}

// Draw renders one replay frame. Allocates a fresh image because the
// recorder retains frames beyond this call.
func (r *rasterizer) Draw(w *World, now float64) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.size, r.size), replayPalette)

	rings := w.Rings()
	for i := 0; i < rings.Count(); i++ {
		idx := uint8(pxRingLocked)
		if i < rings.ActiveCount() {
			idx = pxRing
		}
		r.circle(img, rings.Radius(i), idx)
	}

	w.Pool().ForEachActive(func(e *Entity) {
		x, y := w.motion.Position(rings, e.Ring, e.Angle)
		r.dot(img, x, y, kindPixel(e.Kind))
	})

	p := w.Player()
	px, py := w.motion.Position(rings, p.Ring, p.Angle)
	playerIdx := uint8(pxPlayer)
	if len(w.Effects().Active(now)) > 0 {
		playerIdx = pxAccent
	}
	r.dot(img, px, py, playerIdx)

	return img
}

func kindPixel(k EntityKind) uint8 {
	switch k {
	case KindShieldPickup:
		return pxShield
	case KindSlowMoPickup:
		return pxSlowMo
	case KindMagnetPickup:
		return pxMagnet
	default:
		return pxHazard
	}
}

// circle plots a ring outline by angle sampling. Sample density scales
// with circumference so large rings stay solid.
func (r *rasterizer) circle(img *image.Paletted, radius float64, idx uint8) {
	steps := int(radius * r.scale * 8)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := core.TwoPi * float64(i) / float64(steps)
		x, y := math.Cos(a)*radius, math.Sin(a)*radius
		r.set(img, x, y, idx)
	}
}

// dot plots a 2x2 block centered on a world position.
func (r *rasterizer) dot(img *image.Paletted, wx, wy float64, idx uint8) {
	cx, cy := r.pixel(wx, wy)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			r.setPixel(img, cx+dx-1, cy+dy-1, idx)
		}
	}
}

func (r *rasterizer) set(img *image.Paletted, wx, wy float64, idx uint8) {
	x, y := r.pixel(wx, wy)
	r.setPixel(img, x, y, idx)
}

func (r *rasterizer) pixel(wx, wy float64) (int, int) {
	half := float64(r.size) / 2
	return int(half + wx*r.scale), int(half + wy*r.scale)
}

func (r *rasterizer) setPixel(img *image.Paletted, x, y int, idx uint8) {
	if x < 0 || y < 0 || x >= r.size || y >= r.size {
		return
	}
	img.SetColorIndex(x, y, idx)
}
