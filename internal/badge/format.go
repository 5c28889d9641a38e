// Package badge holds the text and color rules shared by every integration.
package badge

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"badgeserver/internal/domain"
)

const metricLimit = 1000

var sixHex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Metric prints n verbatim up to 1000 and as rounded thousands above it.
func Metric(n int64) string {
	if n > metricLimit {
		return strconv.FormatInt(int64(math.Round(float64(n)/1000)), 10) + "k"
	}
	return strconv.FormatInt(n, 10)
}

func IsSixHex(s string) bool {
	return sixHex.MatchString(s)
}

// Unescape decodes a path segment of the explicit badge route: "__" is a
// literal underscore, a lone "_" is a space and "--" is a literal dash.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '_' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		case s[i] == '-' && i+1 < len(s) && s[i+1] == '-':
			b.WriteByte('-')
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Escape is the inverse of Unescape.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_':
			b.WriteString("__")
		case ' ':
			b.WriteByte('_')
		case '-':
			b.WriteString("--")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// VersionText strips one leading "v" and re-adds it only when the version
// starts with a digit, so "dev-master" stays as is.
func VersionText(version string) string {
	version = strings.TrimPrefix(version, "v")
	if version != "" && version[0] >= '0' && version[0] <= '9' {
		return "v" + version
	}
	return version
}

func IsDev(version string) bool {
	return strings.Contains(version, "dev")
}

func VersionColor(version string) domain.Colorscheme {
	version = strings.TrimPrefix(version, "v")
	if strings.HasPrefix(version, "0") || IsDev(version) {
		return domain.ColorOrange
	}
	return domain.ColorBlue
}
