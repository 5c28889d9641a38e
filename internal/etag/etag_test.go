package etag_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/etag"
)

var start = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestFor_Stable(t *testing.T) {
	g, err := etag.New(start)
	require.NoError(t, err)

	a, err := g.For("/badge/build-passing-green.svg")
	require.NoError(t, err)
	b, err := g.For("/badge/build-passing-green.svg")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^"[a-zA-Z0-9]{8,}"$`), a)
}

func TestFor_DiffersByKeyAndStart(t *testing.T) {
	g, err := etag.New(start)
	require.NoError(t, err)
	later, err := etag.New(start.Add(time.Hour))
	require.NoError(t, err)

	a, err := g.For("/badge/a-b-c.svg")
	require.NoError(t, err)
	b, err := g.For("/badge/a-b-d.svg")
	require.NoError(t, err)
	c, err := later.For("/badge/a-b-c.svg")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMatch(t *testing.T) {
	tag := `"abc12345"`

	tests := []struct {
		header string
		want   bool
	}{
		{`"abc12345"`, true},
		{`W/"abc12345"`, true},
		{`"zzz", "abc12345"`, true},
		{`*`, true},
		{`"other"`, false},
		{``, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, etag.Match(tt.header, tag))
		})
	}
}
