package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"badgeserver/internal/domain"
)

// Rasterizer draws a rendered badge into a bitmap format using a fixed 7px
// wide bitmap font, matching the layout's character width.
type Rasterizer struct {
	face font.Face
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{face: basicfont.Face7x13}
}

func (r *Rasterizer) Rasterize(img *Image, format domain.Format) ([]byte, error) {
	l := img.Layout
	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))

	labelFill, err := parseHexColor(l.LabelColor)
	if err != nil {
		return nil, err
	}
	valueFill, err := parseHexColor(l.ValueColor)
	if err != nil {
		return nil, err
	}
	draw.Draw(canvas, image.Rect(0, 0, l.LabelWidth, l.Height), image.NewUniform(labelFill), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(l.LabelWidth, 0, l.Width, l.Height), image.NewUniform(valueFill), image.Point{}, draw.Src)

	r.drawText(canvas, l.Label, padding)
	r.drawText(canvas, l.Value, l.LabelWidth+padding)

	var buf bytes.Buffer
	switch format {
	case domain.FormatPNG:
		err = png.Encode(&buf, canvas)
	case domain.FormatGIF:
		err = gif.Encode(&buf, canvas, &gif.Options{NumColors: 256})
	case domain.FormatJPG:
		err = jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 90})
	default:
		return nil, fmt.Errorf("format %q is not a raster format", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func (r *Rasterizer) drawText(dst draw.Image, s string, x int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(x, 14),
	}
	d.DrawString(s)
}

// parseHexColor accepts #rgb and #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
