// Package render turns badge records into images.
package render

import (
	"bytes"
	"fmt"
	"text/template"
	"unicode/utf8"

	"badgeserver/internal/domain"
)

const (
	charWidth   = 7
	padding     = 5
	badgeHeight = 20
	labelColor  = "#555"
)

var schemeColors = map[domain.Colorscheme]string{
	domain.ColorBrightGreen: "#4c1",
	domain.ColorGreen:       "#97ca00",
	domain.ColorYellowGreen: "#a4a61d",
	domain.ColorYellow:      "#dfb317",
	domain.ColorOrange:      "#fe7d37",
	domain.ColorRed:         "#e05d44",
	domain.ColorBlue:        "#007ec6",
	domain.ColorLightGrey:   "#9f9f9f",
	domain.ColorGrey:        "#555",
}

// Layout is the geometry shared by the vector and raster outputs.
type Layout struct {
	Label      string
	Value      string
	LabelWidth int
	ValueWidth int
	Width      int
	Height     int
	LabelColor string
	ValueColor string
}

func (l Layout) LabelCenter() int { return l.LabelWidth / 2 }
func (l Layout) ValueCenter() int { return l.LabelWidth + l.ValueWidth/2 }

type Image struct {
	Layout Layout
	SVG    []byte
}

var svgTemplate = template.Must(template.New("badge").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}">` +
		`<linearGradient id="b" x2="0" y2="100%"><stop offset="0" stop-color="#bbb" stop-opacity=".1"/><stop offset="1" stop-opacity=".1"/></linearGradient>` +
		`<mask id="a"><rect width="{{.Width}}" height="{{.Height}}" rx="3" fill="#fff"/></mask>` +
		`<g mask="url(#a)">` +
		`<path fill="{{.LabelColor}}" d="M0 0h{{.LabelWidth}}v{{.Height}}H0z"/>` +
		`<path fill="{{.ValueColor}}" d="M{{.LabelWidth}} 0h{{.ValueWidth}}v{{.Height}}H{{.LabelWidth}}z"/>` +
		`<path fill="url(#b)" d="M0 0h{{.Width}}v{{.Height}}H0z"/>` +
		`</g>` +
		`<g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">` +
		`<text x="{{.LabelCenter}}" y="15" fill="#010101" fill-opacity=".3">{{html .Label}}</text>` +
		`<text x="{{.LabelCenter}}" y="14">{{html .Label}}</text>` +
		`<text x="{{.ValueCenter}}" y="15" fill="#010101" fill-opacity=".3">{{html .Value}}</text>` +
		`<text x="{{.ValueCenter}}" y="14">{{html .Value}}</text>` +
		`</g></svg>`))

type SVGRenderer struct{}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) Render(b domain.Badge) (*Image, error) {
	color, err := fillColor(b)
	if err != nil {
		return nil, err
	}

	layout := Layout{
		Label:      b.Label,
		Value:      b.Value,
		LabelWidth: textWidth(b.Label),
		ValueWidth: textWidth(b.Value),
		Height:     badgeHeight,
		LabelColor: labelColor,
		ValueColor: color,
	}
	layout.Width = layout.LabelWidth + layout.ValueWidth

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, layout); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return &Image{Layout: layout, SVG: buf.Bytes()}, nil
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)*charWidth + 2*padding
}

func fillColor(b domain.Badge) (string, error) {
	if b.ColorHex != "" {
		return "#" + b.ColorHex, nil
	}
	if c, ok := schemeColors[b.Colorscheme]; ok {
		return c, nil
	}
	if b.Colorscheme == "" {
		return schemeColors[domain.ColorLightGrey], nil
	}
	return "", fmt.Errorf("unknown colorscheme %q", b.Colorscheme)
}
