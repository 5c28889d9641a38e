package badge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"badgeserver/internal/badge"
	"badgeserver/internal/domain"
)

func TestMetric(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1000"},
		{1001, "1k"},
		{1500, "2k"},
		{2499, "2k"},
		{2500, "3k"},
		{123456, "123k"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, badge.Metric(tt.n), "Metric(%d)", tt.n)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "build", "build"},
		{"lone underscore", "code_climate", "code climate"},
		{"several lone underscores", "a_b_c", "a b c"},
		{"leading and trailing underscore", "_x_", " x "},
		{"double underscore", "snake__case", "snake_case"},
		{"double dash", "up--to--date", "up-to-date"},
		{"mixed", "my__lib_v1--beta", "my_lib v1-beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, badge.Unescape(tt.in))
		})
	}
}

// Spaces and underscores share the underscore escape, so texts where they sit
// next to each other are ambiguous and not round-trippable.
func TestEscape_RoundTrip(t *testing.T) {
	texts := []string{
		"build",
		"code climate",
		"snake_case",
		"up-to-date",
		"a - b",
		"--a--",
		"v1.2.3-rc_1 final",
		"_leading and trailing_",
	}

	for _, text := range texts {
		assert.Equal(t, text, badge.Unescape(badge.Escape(text)), "round trip of %q", text)
	}
}

func TestIsSixHex(t *testing.T) {
	assert.True(t, badge.IsSixHex("4c1A2f"))
	assert.False(t, badge.IsSixHex("4c1"))
	assert.False(t, badge.IsSixHex("green"))
	assert.False(t, badge.IsSixHex("4c1a2fz"))
}

func TestVersionText(t *testing.T) {
	assert.Equal(t, "v1.2.3", badge.VersionText("1.2.3"))
	assert.Equal(t, "v0.9.0", badge.VersionText("0.9.0"))
	assert.Equal(t, "v2.0.0", badge.VersionText("v2.0.0"))
	assert.Equal(t, "dev-master", badge.VersionText("dev-master"))
	assert.Equal(t, "", badge.VersionText(""))
}

func TestVersionColor(t *testing.T) {
	assert.Equal(t, domain.ColorBlue, badge.VersionColor("1.2.3"))
	assert.Equal(t, domain.ColorOrange, badge.VersionColor("0.9.0"))
	assert.Equal(t, domain.ColorOrange, badge.VersionColor("2.0.0-dev"))
	assert.Equal(t, domain.ColorOrange, badge.VersionColor("v0.1"))
}

func TestDownloadColor(t *testing.T) {
	assert.Equal(t, domain.ColorRed, badge.DownloadColor(0))
	assert.Equal(t, domain.ColorYellow, badge.DownloadColor(9))
	assert.Equal(t, domain.ColorYellowGreen, badge.DownloadColor(99))
	assert.Equal(t, domain.ColorGreen, badge.DownloadColor(999))
	assert.Equal(t, domain.ColorBrightGreen, badge.DownloadColor(1000))
}

func TestCoverageColor(t *testing.T) {
	assert.Equal(t, domain.ColorRed, badge.CoverageColor(79))
	assert.Equal(t, domain.ColorYellow, badge.CoverageColor(80))
	assert.Equal(t, domain.ColorGreen, badge.CoverageColor(94))
	assert.Equal(t, domain.ColorBrightGreen, badge.CoverageColor(95))
}

func TestGPAColor(t *testing.T) {
	assert.Equal(t, domain.ColorBrightGreen, badge.GPAColor(4))
	assert.Equal(t, domain.ColorGreen, badge.GPAColor(3.5))
	assert.Equal(t, domain.ColorYellowGreen, badge.GPAColor(2.1))
	assert.Equal(t, domain.ColorYellow, badge.GPAColor(1.5))
	assert.Equal(t, domain.ColorRed, badge.GPAColor(1))
}
