package picker

import (
	"log"

	"gonum.org/v1/gonum/spatial/r2"

	"huewheel/geometry"
	"huewheel/models"
)

// Target is the part of the picker a drag started on.
type Target int

const (
	TargetNone Target = iota
	TargetWheel
	TargetTriangle
)

func (t Target) String() string {
	switch t {
	case TargetWheel:
		return "wheel"
	case TargetTriangle:
		return "triangle"
	default:
		return "none"
	}
}

// dragSession tracks the one gesture in progress.
type dragSession struct {
	target Target

	// wheel only: where the wheel and the pointer were when the drag began
	startWheelAngle   float64
	startPointerAngle float64

	// last sample the sampler skipped, applied on EndDrag
	pending    r2.Vec
	hasPending bool
}

// HitTest reports which part of the picker p (in wheel box coordinates) is over.
func (m *Model) HitTest(p r2.Vec) Target {
	switch {
	case m.triangle.Contains(p):
		return TargetTriangle
	case m.layout.InRing(p):
		return TargetWheel
	default:
		return TargetNone
	}
}

// Dragging returns the target of the active drag, or TargetNone.
func (m *Model) Dragging() Target {
	if m.drag == nil {
		return TargetNone
	}
	return m.drag.target
}

// SetSampleEvery makes drags process one of every n pointer-move samples.
func (m *Model) SetSampleEvery(n int) {
	m.sampler = NewSampler(n)
}

// BeginDragAt hit-tests p and starts a drag on whatever is under it. A press on
// the triangle also moves the marker to the press position.
func (m *Model) BeginDragAt(p r2.Vec) Target {
	target := m.HitTest(p)
	if target == TargetNone {
		return target
	}
	m.BeginDrag(target, p)
	if target == TargetTriangle {
		m.apply(p)
	}
	return target
}

// BeginDrag starts a drag on target. Any drag already running is replaced.
func (m *Model) BeginDrag(target Target, p r2.Vec) {
	if target == TargetNone {
		m.EndDrag()
		return
	}

	session := &dragSession{target: target}
	if target == TargetWheel {
		session.startWheelAngle = m.WheelAngle()
		session.startPointerAngle = geometry.PointerAngle(p, m.layout.Center())
	}
	m.drag = session
	m.sampler.Reset()
	log.Printf("[Picker] drag started on %s", target)
}

// DragTo feeds one pointer-move sample into the active drag.
func (m *Model) DragTo(p r2.Vec) {
	if m.drag == nil {
		return
	}
	if !m.sampler.Take() {
		m.drag.pending = p
		m.drag.hasPending = true
		return
	}
	m.drag.hasPending = false
	m.apply(p)
}

// EndDrag finishes the active drag. A sample the sampler skipped last is
// applied first, so the result only depends on where the pointer stopped.
func (m *Model) EndDrag() {
	if m.drag == nil {
		return
	}
	if m.drag.hasPending {
		m.apply(m.drag.pending)
	}
	log.Printf("[Picker] drag ended on %s", m.drag.target)
	m.drag = nil
}

func (m *Model) apply(p r2.Vec) {
	switch m.drag.target {
	case TargetWheel:
		angle := geometry.PointerAngle(p, m.layout.Center())
		m.SetHue(geometry.HueFromPointerAngle(angle, m.drag.startWheelAngle, m.drag.startPointerAngle))
	case TargetTriangle:
		s, v := m.triangle.SVFromPointer(p)
		m.SetHSV(models.HSV{H: m.hue, S: s, V: v})
	}
}
