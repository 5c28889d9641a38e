package domain

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatGIF Format = "gif"
	FormatJPG Format = "jpg"
)

func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatSVG, FormatPNG, FormatGIF, FormatJPG:
		return f, true
	default:
		return "", false
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml;charset=utf-8"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "image/" + string(f)
	}
}

func (f Format) Raster() bool {
	return f != FormatSVG
}
