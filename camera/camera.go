// Package camera maps world-space coordinates onto a local screen-space
// window. A plain Camera is moved explicitly; WithDeadZone converts it into
// a Tracking camera that follows a target with hysteresis.
package camera

import (
	"github.com/solvreck/termgrid/geom"
	"github.com/solvreck/termgrid/render"
)

// Camera is a moving window over world space. Its bounding box is always
// the rectangle of its size centered on its position, recomputed only when
// the position actually changes.
type Camera struct {
	position geom.WorldPos
	size     geom.WorldSize
	bounding geom.WorldRect
}

// New creates a camera centered on position.
func New(position geom.WorldPos, size geom.WorldSize) *Camera {
	return &Camera{
		position: position,
		size:     size,
		bounding: boundingBox(position, size),
	}
}

// FromViewport creates a camera whose window matches the viewport's size.
func FromViewport(position geom.WorldPos, v *render.Viewport) *Camera {
	size := geom.WorldSize{
		Width:  int64(v.Size.Width),
		Height: int64(v.Size.Height),
	}
	return New(position, size)
}

func boundingBox(position geom.WorldPos, size geom.WorldSize) geom.WorldRect {
	origin := geom.WorldPos{
		X: position.X - size.Width/2,
		Y: position.Y - size.Height/2,
	}
	return geom.WorldRect{Origin: origin, Size: size}
}

// Position returns the camera's world position.
func (c *Camera) Position() geom.WorldPos {
	return c.position
}

// BoundingBox returns the world rectangle the camera currently covers.
func (c *Camera) BoundingBox() geom.WorldRect {
	return c.bounding
}

// Resize changes the camera's window size. The bounding box follows on the
// next move.
func (c *Camera) Resize(size geom.WorldSize) {
	c.size = size
}

// ToScreen converts a world position to camera-local screen coordinates.
// The result is only meaningful for positions inside the bounding box;
// callers drawing outside it rely on the pixel buffer clipping the write.
func (c *Camera) ToScreen(pos geom.WorldPos) geom.ScreenPos {
	return geom.ScreenPos{
		X: uint16(pos.X - c.bounding.MinX()),
		Y: uint16(pos.Y - c.bounding.MinY()),
	}
}

// MoveTo moves the camera in world space and recenters the bounding box.
// Moving to the current position is a no-op, including the recompute.
func (c *Camera) MoveTo(pos geom.WorldPos) {
	if pos == c.position {
		return
	}
	c.position = pos
	c.bounding = boundingBox(pos, c.size)
}

// deadZone is the rectangle of slack around the camera position within
// which a tracked target causes no movement.
type deadZone struct {
	top, right, bottom, left int64
}

// Tracking is a camera that follows a target, moving only when the target
// leaves the dead zone. Track exists only on this type; a plain Camera
// cannot be asked to follow anything.
type Tracking struct {
	Camera
	zone deadZone
}

// WithDeadZone converts the camera into a tracking camera with the given
// per-edge dead zone, centered on the current position. The transition
// consumes the camera: the receiver must not be used afterwards, the two
// values share no state. Given a zone of 1,1,1,1, c marks the center:
//
//	[ ] [ ] [ ] [ ] [ ]
//	[ ] [x] [x] [x] [ ]
//	[ ] [x] [c] [x] [ ]
//	[ ] [x] [x] [x] [ ]
//	[ ] [ ] [ ] [ ] [ ]
func (c *Camera) WithDeadZone(top, right, bottom, left uint16) *Tracking {
	return &Tracking{
		Camera: *c,
		zone: deadZone{
			top:    int64(top),
			right:  int64(right),
			bottom: int64(bottom),
			left:   int64(left),
		},
	}
}

// Track moves the camera just enough to keep the target inside the dead
// zone. Each axis is tested independently; a target exactly on the zone
// boundary snaps the camera so the target sits on the edge. The move is
// routed through MoveTo, so the bounding box updates only if the position
// actually changed.
func (t *Tracking) Track(target geom.WorldPos) {
	x := t.position.X
	if target.X >= t.position.X+t.zone.left {
		x = target.X - t.zone.left
	} else if target.X <= t.position.X-t.zone.right {
		x = target.X + t.zone.right
	}

	y := t.position.Y
	if target.Y >= t.position.Y+t.zone.top {
		y = target.Y - t.zone.top
	} else if target.Y <= t.position.Y-t.zone.bottom {
		y = target.Y + t.zone.bottom
	}

	t.MoveTo(geom.WorldPos{X: x, Y: y})
}
