package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/solvreck/termgrid/geom"
)

// Structured encode/decode for pixels, geometry, and whole-buffer snapshots,
// used by replay capture and snapshot tests. Optional colors are encoded as
// an explicit JSON null when unset; a missing color key is a decode error,
// never an implicit default.

// encoder builds a JSON object, keeping the first set error and ignoring
// every set after it.
type encoder struct {
	out []byte
	err error
}

func newEncoder() *encoder {
	return &encoder{out: []byte(`{}`)}
}

func (e *encoder) set(key string, value any) {
	if e.err != nil {
		return
	}
	out, err := sjson.SetBytes(e.out, key, value)
	if err != nil {
		e.err = fmt.Errorf("encode %s: %w", key, err)
		return
	}
	e.out = out
}

func (e *encoder) setRaw(key string, raw []byte) {
	if e.err != nil {
		return
	}
	out, err := sjson.SetRawBytes(e.out, key, raw)
	if err != nil {
		e.err = fmt.Errorf("encode %s: %w", key, err)
		return
	}
	e.out = out
}

func (e *encoder) setColor(key string, c *Color) {
	if c == nil {
		e.setRaw(key, []byte("null"))
		return
	}
	e.set(key, uint64(*c))
}

func (e *encoder) bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.out, nil
}

// EncodePixel encodes a pixel to JSON.
func EncodePixel(p Pixel) ([]byte, error) {
	enc := newEncoder()
	enc.set("glyph", string(p.Glyph))
	enc.set("pos.x", p.Pos.X)
	enc.set("pos.y", p.Pos.Y)
	enc.setColor("fg", p.Fg)
	enc.setColor("bg", p.Bg)
	return enc.bytes()
}

// DecodePixel decodes a pixel encoded by EncodePixel.
func DecodePixel(data []byte) (Pixel, error) {
	root := gjson.ParseBytes(data)

	glyph := root.Get("glyph")
	if !glyph.Exists() {
		return Pixel{}, fmt.Errorf("decode pixel: missing glyph")
	}
	r, size := utf8.DecodeRuneInString(glyph.String())
	if r == utf8.RuneError || size != len(glyph.String()) {
		return Pixel{}, fmt.Errorf("decode pixel: glyph %q is not a single rune", glyph.String())
	}

	fg, err := getColor(root, "fg")
	if err != nil {
		return Pixel{}, err
	}
	bg, err := getColor(root, "bg")
	if err != nil {
		return Pixel{}, err
	}

	return Pixel{
		Glyph: r,
		Pos: geom.ScreenPos{
			X: uint16(root.Get("pos.x").Uint()),
			Y: uint16(root.Get("pos.y").Uint()),
		},
		Fg: fg,
		Bg: bg,
	}, nil
}

func getColor(root gjson.Result, key string) (*Color, error) {
	v := root.Get(key)
	if !v.Exists() {
		return nil, fmt.Errorf("decode pixel: missing %s (use null for unset)", key)
	}
	if v.Type == gjson.Null {
		return nil, nil
	}
	c := Color(v.Uint())
	return &c, nil
}

// EncodeScreenRect encodes a screen rectangle to JSON.
func EncodeScreenRect(r geom.ScreenRect) ([]byte, error) {
	enc := newEncoder()
	enc.set("origin.x", r.Origin.X)
	enc.set("origin.y", r.Origin.Y)
	enc.set("size.width", r.Size.Width)
	enc.set("size.height", r.Size.Height)
	return enc.bytes()
}

// DecodeScreenRect decodes a screen rectangle encoded by EncodeScreenRect.
func DecodeScreenRect(data []byte) (geom.ScreenRect, error) {
	root := gjson.ParseBytes(data)
	if err := requireKeys(root, "rect"); err != nil {
		return geom.ScreenRect{}, err
	}
	return geom.ScreenRect{
		Origin: geom.ScreenPos{X: uint16(root.Get("origin.x").Uint()), Y: uint16(root.Get("origin.y").Uint())},
		Size:   geom.ScreenSize{Width: uint16(root.Get("size.width").Uint()), Height: uint16(root.Get("size.height").Uint())},
	}, nil
}

// EncodeWorldRect encodes a world rectangle to JSON.
func EncodeWorldRect(r geom.WorldRect) ([]byte, error) {
	enc := newEncoder()
	enc.set("origin.x", r.Origin.X)
	enc.set("origin.y", r.Origin.Y)
	enc.set("size.width", r.Size.Width)
	enc.set("size.height", r.Size.Height)
	return enc.bytes()
}

// DecodeWorldRect decodes a world rectangle encoded by EncodeWorldRect.
func DecodeWorldRect(data []byte) (geom.WorldRect, error) {
	root := gjson.ParseBytes(data)
	if err := requireKeys(root, "rect"); err != nil {
		return geom.WorldRect{}, err
	}
	return geom.WorldRect{
		Origin: geom.WorldPos{X: root.Get("origin.x").Int(), Y: root.Get("origin.y").Int()},
		Size:   geom.WorldSize{Width: root.Get("size.width").Int(), Height: root.Get("size.height").Int()},
	}, nil
}

func requireKeys(root gjson.Result, what string) error {
	for _, key := range []string{"origin.x", "origin.y", "size.width", "size.height"} {
		if !root.Get(key).Exists() {
			return fmt.Errorf("decode %s: missing %s", what, key)
		}
	}
	return nil
}

// EncodeBuffer snapshots a buffer: dimensions plus every occupied cell in
// row-major order.
func EncodeBuffer(b *PixelBuffer) ([]byte, error) {
	enc := newEncoder()
	enc.setRaw("pixels", []byte(`[]`))
	enc.set("size.width", b.width)
	enc.set("size.height", b.height)

	for y := uint16(0); y < b.height; y++ {
		for x := uint16(0); x < b.width; x++ {
			px, ok := b.Cell(geom.ScreenPos{X: x, Y: y})
			if !ok {
				continue
			}
			data, err := EncodePixel(px)
			if err != nil {
				return nil, err
			}
			enc.setRaw("pixels.-1", data)
		}
	}
	return enc.bytes()
}

// DecodeBuffer rebuilds a buffer from an EncodeBuffer snapshot.
func DecodeBuffer(data []byte) (*PixelBuffer, error) {
	root := gjson.ParseBytes(data)
	if !root.Get("size").Exists() {
		return nil, fmt.Errorf("decode buffer: missing size")
	}

	buf := NewPixelBuffer(geom.ScreenSize{
		Width:  uint16(root.Get("size.width").Uint()),
		Height: uint16(root.Get("size.height").Uint()),
	})

	var decodeErr error
	root.Get("pixels").ForEach(func(_, value gjson.Result) bool {
		px, err := DecodePixel([]byte(value.Raw))
		if err != nil {
			decodeErr = err
			return false
		}
		buf.Write(px)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return buf, nil
}
