package geom

import "testing"

func TestWorldRectEdges(t *testing.T) {
	r := NewWorldRect(NewWorldPos(-3, 4), NewWorldSize(10, 5))

	if r.MinX() != -3 {
		t.Errorf("Expected MinX -3, got %d", r.MinX())
	}
	if r.MinY() != 4 {
		t.Errorf("Expected MinY 4, got %d", r.MinY())
	}
	if r.MaxX() != 7 {
		t.Errorf("Expected MaxX 7, got %d", r.MaxX())
	}
	if r.MaxY() != 9 {
		t.Errorf("Expected MaxY 9, got %d", r.MaxY())
	}
}

func TestWorldRectContains(t *testing.T) {
	r := NewWorldRect(NewWorldPos(0, 0), NewWorldSize(4, 4))

	if !r.Contains(NewWorldPos(0, 0)) {
		t.Error("Expected rect to contain its origin")
	}
	if !r.Contains(NewWorldPos(3, 3)) {
		t.Error("Expected rect to contain inner corner")
	}
	if r.Contains(NewWorldPos(4, 0)) {
		t.Error("Expected max edge to be exclusive")
	}
	if r.Contains(NewWorldPos(-1, 2)) {
		t.Error("Expected point left of rect to be outside")
	}
}

func TestScreenPosTranslate(t *testing.T) {
	p := NewScreenPos(2, 3).Translate(NewScreenPos(0, 4))
	if p != NewScreenPos(2, 7) {
		t.Errorf("Expected 2,7, got %+v", p)
	}
}
