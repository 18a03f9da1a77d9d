// Package barcode renders CODE128 symbols for item identifiers, both for
// on-screen display and for downloadable label images.
package barcode

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	labelWidth    = 200
	labelHeight   = 100
	symbolHeight  = 50
	captionOffset = 10
)

// Encode renders a bare CODE128 symbol as a PNG.
func Encode(value string) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, labelWidth, symbolHeight)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderLabel renders a CODE128 symbol with a caption (typically the item's
// sub-category) centered beneath it.
func RenderLabel(value, caption string) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, labelWidth, symbolHeight)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, labelWidth, labelHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, scaled.Bounds(), scaled, image.Point{}, draw.Over)

	if caption != "" {
		face := basicfont.Face7x13
		width := font.MeasureString(face, caption).Ceil()
		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot: fixed.P(
				(labelWidth-width)/2,
				labelHeight-captionOffset,
			),
		}
		drawer.DrawString(caption)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
