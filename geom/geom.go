// Package geom provides the screen-space and world-space value types the
// engine is built on. Screen coordinates are unsigned cells with the origin
// at the top left; world coordinates are unbounded signed integers.
package geom

// ScreenPos is a cell position on an output surface, 0,0 top left.
type ScreenPos struct {
	X, Y uint16
}

// NewScreenPos creates a screen position.
func NewScreenPos(x, y uint16) ScreenPos {
	return ScreenPos{X: x, Y: y}
}

// ZeroScreenPos returns the top-left position.
func ZeroScreenPos() ScreenPos {
	return ScreenPos{}
}

// Translate returns the position offset by another position.
func (p ScreenPos) Translate(by ScreenPos) ScreenPos {
	return ScreenPos{X: p.X + by.X, Y: p.Y + by.Y}
}

// ScreenSize is a size in screen cells.
type ScreenSize struct {
	Width, Height uint16
}

// NewScreenSize creates a screen size.
func NewScreenSize(width, height uint16) ScreenSize {
	return ScreenSize{Width: width, Height: height}
}

// ScreenRect is a rectangle on an output surface.
type ScreenRect struct {
	Origin ScreenPos
	Size   ScreenSize
}

// NewScreenRect creates a screen rectangle.
func NewScreenRect(origin ScreenPos, size ScreenSize) ScreenRect {
	return ScreenRect{Origin: origin, Size: size}
}

// WorldPos is a position in game-world space.
type WorldPos struct {
	X, Y int64
}

// NewWorldPos creates a world position.
func NewWorldPos(x, y int64) WorldPos {
	return WorldPos{X: x, Y: y}
}

// ZeroWorldPos returns the world origin.
func ZeroWorldPos() WorldPos {
	return WorldPos{}
}

// WorldSize is a size in world units.
type WorldSize struct {
	Width, Height int64
}

// NewWorldSize creates a world size.
func NewWorldSize(width, height int64) WorldSize {
	return WorldSize{Width: width, Height: height}
}

// WorldRect is a rectangle in game-world space.
type WorldRect struct {
	Origin WorldPos
	Size   WorldSize
}

// NewWorldRect creates a world rectangle.
func NewWorldRect(origin WorldPos, size WorldSize) WorldRect {
	return WorldRect{Origin: origin, Size: size}
}

// MinX returns the left edge.
func (r WorldRect) MinX() int64 {
	return r.Origin.X
}

// MinY returns the top edge.
func (r WorldRect) MinY() int64 {
	return r.Origin.Y
}

// MaxX returns the right edge.
func (r WorldRect) MaxX() int64 {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the bottom edge.
func (r WorldRect) MaxY() int64 {
	return r.Origin.Y + r.Size.Height
}

// Contains reports whether a world position lies inside the rectangle.
func (r WorldRect) Contains(pos WorldPos) bool {
	return pos.X >= r.MinX() && pos.X < r.MaxX() &&
		pos.Y >= r.MinY() && pos.Y < r.MaxY()
}
