package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"

	"github.com/solvreck/termgrid/geom"
)

func TestPixelRoundTrip(t *testing.T) {
	fg := tcell.ColorYellow
	bg := tcell.NewRGBColor(10, 20, 30)

	pixels := []Pixel{
		NewPixel('@', geom.NewScreenPos(2, 3), &fg, &bg),
		NewPixel('界', geom.NewScreenPos(0, 0), &fg, nil),
		Plain('w', geom.NewScreenPos(65535, 65535)),
	}

	for _, px := range pixels {
		data, err := EncodePixel(px)
		if err != nil {
			t.Fatalf("Expected encode to succeed, got %v", err)
		}
		got, err := DecodePixel(data)
		if err != nil {
			t.Fatalf("Expected decode to succeed, got %v", err)
		}
		if !got.Equal(px) {
			t.Errorf("Expected round-trip equality, sent %+v got %+v", px, got)
		}
	}
}

func TestUnsetColorsEncodeAsExplicitNull(t *testing.T) {
	data, err := EncodePixel(Plain('@', geom.ZeroScreenPos()))
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"fg", "bg"} {
		v := gjson.GetBytes(data, key)
		if !v.Exists() {
			t.Errorf("Expected %s to be present", key)
		}
		if v.Type != gjson.Null {
			t.Errorf("Expected unset %s to encode as null, got %s", key, v.Raw)
		}
	}
}

func TestDecodeRejectsMissingColorKey(t *testing.T) {
	if _, err := DecodePixel([]byte(`{"glyph":"@","pos":{"x":0,"y":0},"bg":null}`)); err == nil {
		t.Error("Expected missing fg key to be a decode error")
	}
}

func TestDecodeRejectsMultiRuneGlyph(t *testing.T) {
	if _, err := DecodePixel([]byte(`{"glyph":"ab","pos":{"x":0,"y":0},"fg":null,"bg":null}`)); err == nil {
		t.Error("Expected multi-rune glyph to be a decode error")
	}
}

func TestScreenRectRoundTrip(t *testing.T) {
	r := geom.NewScreenRect(geom.NewScreenPos(0, 4), geom.NewScreenSize(40, 12))

	data, err := EncodeScreenRect(r)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeScreenRect(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != r {
		t.Errorf("Expected %+v, got %+v", r, got)
	}
}

func TestDecodeScreenRectRejectsMissingField(t *testing.T) {
	if _, err := DecodeScreenRect([]byte(`{"origin":{"x":0,"y":4},"size":{"width":40}}`)); err == nil {
		t.Error("Expected missing size.height to be a decode error")
	}
}

func TestEncoderKeepsFirstError(t *testing.T) {
	enc := newEncoder()
	enc.set("", 1) // empty path is invalid
	enc.set("glyph", "@")

	if _, err := enc.bytes(); err == nil {
		t.Error("Expected the first set error to surface from bytes")
	}
}

func TestWorldRectRoundTrip(t *testing.T) {
	r := geom.NewWorldRect(geom.NewWorldPos(-100, 42), geom.NewWorldSize(6, 6))

	data, err := EncodeWorldRect(r)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeWorldRect(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != r {
		t.Errorf("Expected %+v, got %+v", r, got)
	}
}

func TestBufferSnapshotRoundTrip(t *testing.T) {
	fg := tcell.ColorGreen
	buf := NewPixelBuffer(geom.NewScreenSize(10, 6))
	buf.Write(NewPixel('@', geom.NewScreenPos(2, 3), &fg, nil))
	buf.Write(Plain('w', geom.NewScreenPos(9, 5)))

	data, err := EncodeBuffer(buf)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeBuffer(data)
	if err != nil {
		t.Fatal(err)
	}

	if got.Size() != buf.Size() {
		t.Fatalf("Expected size %+v, got %+v", buf.Size(), got.Size())
	}
	if changes := got.Diff(buf); len(changes) != 0 {
		t.Errorf("Expected snapshot round-trip to reproduce the buffer, %d cells differ", len(changes))
	}
}
