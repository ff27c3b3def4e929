// Package render draws the spectrum ring and the saturation/value triangle as
// images for the picker widget.
package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
	"huewheel/geometry"
	"huewheel/models"
)

// 2x2 subpixel samples for the ring's anti-aliased edges
var ringOffsets = []float64{0.25, 0.75}

// Spectrum draws the unrotated spectrum ring for l into a px x px image.
// Hue increases clockwise and sits SpectrumOffset degrees clockwise of where it
// points once the ring is rotated by geometry.WheelRotation.
func Spectrum(l geometry.Layout, px int) *image.NRGBA {
	img := imaging.New(px, px, color.Transparent)
	if px <= 0 || l.Size <= 0 {
		return img
	}

	scale := l.Size / float64(px)
	center := l.Center()
	outer := l.Size / 2
	inner := l.InnerRadius()
	maxSamples := len(ringOffsets) * len(ringOffsets)

	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			coverage := 0
			for _, oy := range ringOffsets {
				for _, ox := range ringOffsets {
					p := r2.Vec{X: (float64(x) + ox) * scale, Y: (float64(y) + oy) * scale}
					r := r2.Norm(r2.Sub(p, center))
					if r >= inner && r <= outer {
						coverage++
					}
				}
			}
			if coverage == 0 {
				continue
			}

			p := r2.Vec{X: (float64(x) + 0.5) * scale, Y: (float64(y) + 0.5) * scale}
			c := colorspace.HueColor(RingHue(p, center))
			c.A = uint8(255 * coverage / maxSamples)
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// RingHue is the hue drawn at p on the unrotated ring.
func RingHue(p, center r2.Vec) float64 {
	d := r2.Sub(p, center)
	// clockwise from straight up
	psi := math.Atan2(d.X, -d.Y) * 180 / math.Pi
	return colorspace.NormalizeHue(psi + geometry.SpectrumOffset)
}

// Rotate turns the ring clockwise by rotation degrees about its centre and
// trims the result back to the size of base.
func Rotate(base image.Image, rotation float64) *image.NRGBA {
	b := base.Bounds()
	rotated := imaging.Rotate(base, -rotation, color.Transparent)
	return imaging.CropCenter(rotated, b.Dx(), b.Dy())
}

// Triangle draws the S/V triangle for hue into a px x px image covering the
// whole wheel box of l. Pixels outside the triangle are transparent.
func Triangle(l geometry.Layout, hue float64, px int) *image.NRGBA {
	img := imaging.New(px, px, color.Transparent)
	if px <= 0 || l.Size <= 0 {
		return img
	}

	tri := l.Triangle()
	scale := l.Size / float64(px)
	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			p := r2.Vec{X: (float64(x) + 0.5) * scale, Y: (float64(y) + 0.5) * scale}
			if !tri.Contains(p) {
				continue
			}
			s, v := tri.SVFromPointer(p)
			img.SetNRGBA(x, y, colorspace.ToOpaque(models.HSV{H: hue, S: s, V: v}))
		}
	}
	return img
}

// WheelCache keeps the last rendered ring and triangle so redraws during a
// drag only pay for what changed.
type WheelCache struct {
	mu sync.Mutex

	ringLayout geometry.Layout
	ringPx     int
	ring       *image.NRGBA

	rotation float64
	rotated  *image.NRGBA

	triLayout geometry.Layout
	triPx     int
	triHue    float64
	tri       *image.NRGBA
}

// Ring returns the spectrum ring for l drawn at rotation.
func (c *WheelCache) Ring(l geometry.Layout, px int, rotation float64) *image.NRGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ring == nil || c.ringLayout != l || c.ringPx != px {
		c.ring = Spectrum(l, px)
		c.ringLayout, c.ringPx = l, px
		c.rotated = nil
	}
	if c.rotated == nil || c.rotation != rotation {
		c.rotated = Rotate(c.ring, rotation)
		c.rotation = rotation
	}
	return c.rotated
}

// Triangle returns the S/V triangle for l and hue.
func (c *WheelCache) Triangle(l geometry.Layout, hue float64, px int) *image.NRGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tri == nil || c.triLayout != l || c.triPx != px || c.triHue != hue {
		c.tri = Triangle(l, hue, px)
		c.triLayout, c.triPx, c.triHue = l, px, hue
	}
	return c.tri
}
