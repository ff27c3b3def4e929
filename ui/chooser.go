package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/colorspace"
	"huewheel/config"
	"huewheel/geometry"
	"huewheel/picker"
	"huewheel/render"
)

// ColorChooser draws the spectrum ring and the S/V triangle of a picker.Model
// and forwards presses and drags into it.
//
// The wheel is kept square and centred inside whatever space the widget gets.
// Its layout scales with that square; the indicator radius does not.
type ColorChooser struct {
	widget.BaseWidget

	model    *picker.Model
	settings config.Settings
	cache    render.WheelCache

	ring      *canvas.Raster
	triangle  *canvas.Raster
	indicator *canvas.Circle
	marker    *canvas.Line

	// top-left corner of the wheel box inside the widget
	offset fyne.Position

	// values the raster generators draw from, copied from the model on refresh
	layout   geometry.Layout
	rotation float64
	hue      float64

	// OnDragEnd is called after a press or drag on the wheel or triangle finishes
	OnDragEnd func(c color.NRGBA)
}

// NewColorChooser creates a chooser editing m, sized from settings.
//
// Parameters:
//   - m: The model to display and edit
//   - settings: Supplies the minimum wheel size and the ring proportions
//
// Returns:
//   - *ColorChooser: A widget that refreshes itself whenever m changes
func NewColorChooser(m *picker.Model, settings config.Settings) *ColorChooser {
	c := &ColorChooser{
		model:    m,
		settings: settings,
	}
	c.ExtendBaseWidget(c)

	c.ring = canvas.NewRaster(c.drawRing)
	c.triangle = canvas.NewRaster(c.drawTriangle)

	c.indicator = canvas.NewCircle(color.Transparent)
	c.indicator.StrokeWidth = IndicatorStrokeWidth

	c.marker = canvas.NewLine(HueMarkerColor)
	c.marker.StrokeWidth = 2

	m.RegisterColorChangedCallback(func(color.NRGBA) {
		c.Refresh()
	})

	c.syncFromModel()
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *ColorChooser) CreateRenderer() fyne.WidgetRenderer {
	return &colorChooserRenderer{chooser: c}
}

// MinSize keeps the wheel at least as large as configured.
func (c *ColorChooser) MinSize() fyne.Size {
	side := float32(c.settings.WheelSize)
	return fyne.NewSize(side, side)
}

// Model returns the model the chooser edits.
func (c *ColorChooser) Model() *picker.Model {
	return c.model
}

// MouseDown starts a drag on whatever is under the pointer.
func (c *ColorChooser) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if c.model.BeginDragAt(c.toWheel(ev.Position)) != picker.TargetNone {
		c.Refresh()
	}
}

// MouseUp finishes a press that never turned into a drag.
func (c *ColorChooser) MouseUp(ev *desktop.MouseEvent) {
	c.finishDrag()
}

// Dragged moves the active drag. Drivers without mouse events (touch) never
// call MouseDown, so the drag is started from the event's origin instead.
func (c *ColorChooser) Dragged(ev *fyne.DragEvent) {
	if c.model.Dragging() == picker.TargetNone {
		start := ev.Position.Subtract(ev.Dragged)
		if c.model.BeginDragAt(c.toWheel(start)) == picker.TargetNone {
			return
		}
	}
	c.model.DragTo(c.toWheel(ev.Position))
}

// DragEnd implements fyne.Draggable.
func (c *ColorChooser) DragEnd() {
	c.finishDrag()
}

func (c *ColorChooser) finishDrag() {
	if c.model.Dragging() == picker.TargetNone {
		return
	}
	c.model.EndDrag()
	c.Refresh()
	if c.OnDragEnd != nil {
		c.OnDragEnd(c.model.RGB())
	}
}

// toWheel converts a widget position to wheel box coordinates.
func (c *ColorChooser) toWheel(pos fyne.Position) r2.Vec {
	return r2.Vec{
		X: float64(pos.X - c.offset.X),
		Y: float64(pos.Y - c.offset.Y),
	}
}

// resizeWheel fits the wheel into size and pushes the new layout to the model.
func (c *ColorChooser) resizeWheel(size fyne.Size) {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	c.offset = fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)

	if float64(side) == c.model.Layout().Size || side <= 0 {
		return
	}
	c.model.SetLayout(scaledLayout(c.settings, float64(side)))
}

// scaledLayout scales the configured ring thickness and overlap to a wheel of
// the given size.
func scaledLayout(settings config.Settings, size float64) geometry.Layout {
	k := size / settings.WheelSize
	return geometry.NewLayout(size, settings.SpectrumThickness*k, settings.TriangleOverlap*k, settings.IndicatorRadius)
}

// syncFromModel copies what the canvas objects need out of the model.
func (c *ColorChooser) syncFromModel() {
	c.layout = c.model.Layout()
	c.rotation = c.model.WheelRotation()
	c.hue = c.model.Hue()

	rgb := c.model.RGB()
	c.indicator.FillColor = color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	c.indicator.StrokeColor = colorspace.ContrastColor(rgb)
}

func (c *ColorChooser) drawRing(w, h int) image.Image {
	return c.cache.Ring(c.layout, w, c.rotation)
}

func (c *ColorChooser) drawTriangle(w, h int) image.Image {
	return c.cache.Triangle(c.layout, c.hue, w)
}

type colorChooserRenderer struct {
	chooser *ColorChooser
}

func (r *colorChooserRenderer) Layout(size fyne.Size) {
	c := r.chooser
	c.resizeWheel(size)
	c.syncFromModel()

	l := c.layout
	side := float32(l.Size)
	c.ring.Move(c.offset)
	c.ring.Resize(fyne.NewSize(side, side))
	c.triangle.Move(c.offset)
	c.triangle.Resize(fyne.NewSize(side, side))

	radius := float32(l.IndicatorRadius)
	p := c.model.IndicatorPosition()
	c.indicator.Move(c.offset.Add(fyne.NewPos(float32(p.X), float32(p.Y))))
	c.indicator.Resize(fyne.NewSize(2*radius, 2*radius))

	// the marker sits at the top of the ring, where the current hue is drawn
	center := float32(l.Size / 2)
	top := float32(l.Thickness)
	c.marker.Position1 = c.offset.Add(fyne.NewPos(center, 0))
	c.marker.Position2 = c.offset.Add(fyne.NewPos(center, top))
}

func (r *colorChooserRenderer) MinSize() fyne.Size {
	return r.chooser.MinSize()
}

func (r *colorChooserRenderer) Refresh() {
	r.Layout(r.chooser.Size())
	r.chooser.ring.Refresh()
	r.chooser.triangle.Refresh()
	r.chooser.indicator.Refresh()
	r.chooser.marker.Refresh()
}

func (r *colorChooserRenderer) Objects() []fyne.CanvasObject {
	c := r.chooser
	return []fyne.CanvasObject{c.ring, c.triangle, c.marker, c.indicator}
}

func (r *colorChooserRenderer) Destroy() {}
