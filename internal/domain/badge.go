package domain

import "time"

type Colorscheme string

const (
	ColorBrightGreen Colorscheme = "brightgreen"
	ColorGreen       Colorscheme = "green"
	ColorYellowGreen Colorscheme = "yellowgreen"
	ColorYellow      Colorscheme = "yellow"
	ColorOrange      Colorscheme = "orange"
	ColorRed         Colorscheme = "red"
	ColorBlue        Colorscheme = "blue"
	ColorLightGrey   Colorscheme = "lightgrey"
	ColorGrey        Colorscheme = "grey"
)

// Badge is the three-field record handed to the renderer. Exactly one of
// Colorscheme and ColorHex is set.
type Badge struct {
	Label       string      `json:"label"`
	Value       string      `json:"value"`
	Colorscheme Colorscheme `json:"colorscheme,omitempty"`
	ColorHex    string      `json:"colorHex,omitempty"`
}

func NewBadge(label, value string, scheme Colorscheme) Badge {
	return Badge{Label: label, Value: value, Colorscheme: scheme}
}

func NewHexBadge(label, value, hex string) Badge {
	return Badge{Label: label, Value: value, ColorHex: hex}
}

type CacheEntry struct {
	Key       string
	Badge     Badge
	Format    Format
	ExpiresAt time.Time
}

func (e CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

var colorschemes = map[Colorscheme]bool{
	ColorBrightGreen: true,
	ColorGreen:       true,
	ColorYellowGreen: true,
	ColorYellow:      true,
	ColorOrange:      true,
	ColorRed:         true,
	ColorBlue:        true,
	ColorLightGrey:   true,
	ColorGrey:        true,
}

func ParseColorscheme(s string) (Colorscheme, bool) {
	c := Colorscheme(s)
	return c, colorschemes[c]
}
