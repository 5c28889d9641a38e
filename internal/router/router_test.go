package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/domain"
	"badgeserver/internal/router"
	"badgeserver/internal/vendor"
)

func newRouter() *router.Router {
	return router.New(vendor.NewRegistry(vendor.DefaultEndpoints()))
}

func TestMatch_Routes(t *testing.T) {
	tests := []struct {
		path       string
		wantName   string
		wantKind   router.Kind
		wantParams vendor.Params
		wantFormat domain.Format
	}{
		{"/", "root", router.KindRoot, vendor.Params{}, domain.FormatSVG},
		{"/travis/joyent/node.svg", "travis", router.KindVendor, vendor.Params{"repo": "joyent/node", "branch": ""}, domain.FormatSVG},
		{"/travis-ci/joyent/node/v0.10.png", "travis", router.KindVendor, vendor.Params{"repo": "joyent/node", "branch": "v0.10"}, domain.FormatPNG},
		{"/gittip/JSFiddle.gif", "gittip", router.KindVendor, vendor.Params{"user": "JSFiddle"}, domain.FormatGIF},
		{"/packagist/dm/doctrine/orm.svg", "packagist-downloads", router.KindVendor, vendor.Params{"package": "doctrine/orm"}, domain.FormatSVG},
		{"/packagist/v/doctrine/orm.jpg", "packagist-version", router.KindVendor, vendor.Params{"package": "doctrine/orm"}, domain.FormatJPG},
		{"/npm/dm/localeval.svg", "npm-downloads", router.KindVendor, vendor.Params{"package": "localeval"}, domain.FormatSVG},
		{"/npm/v/localeval.svg", "npm-version", router.KindVendor, vendor.Params{"package": "localeval"}, domain.FormatSVG},
		{"/gem/v/rails.svg", "gem", router.KindVendor, vendor.Params{"package": "rails"}, domain.FormatSVG},
		{"/pypi/dm/gevent.svg", "pypi", router.KindVendor, vendor.Params{"info": "dm", "egg": "gevent"}, domain.FormatSVG},
		{"/coveralls/jekyll/jekyll/master.svg", "coveralls", router.KindVendor, vendor.Params{"repo": "jekyll/jekyll", "branch": "master"}, domain.FormatSVG},
		{"/codeclimate/github/kabisaict/flow.svg", "codeclimate", router.KindVendor, vendor.Params{"repo": "github/kabisaict/flow"}, domain.FormatSVG},
		{"/gemnasium/mathiasbynens/he.svg", "gemnasium", router.KindVendor, vendor.Params{"repo": "mathiasbynens/he"}, domain.FormatSVG},
		{"/hackage/v/lens.svg", "hackage", router.KindVendor, vendor.Params{"package": "lens"}, domain.FormatSVG},
		{"/cocoapods/v/AFNetworking.svg", "cocoapods", router.KindVendor, vendor.Params{"spec": "AFNetworking"}, domain.FormatSVG},
		{"/badge/build-passing-brightgreen.svg", "explicit", router.KindExplicit, vendor.Params{"label": "build", "value": "passing", "color": "brightgreen"}, domain.FormatSVG},
		{"/:my--label-v1.0-ff69b4.png", "explicit", router.KindExplicit, vendor.Params{"label": "my--label", "value": "v1.0", "color": "ff69b4"}, domain.FormatPNG},
		{"/build/passing.png", "legacy", router.KindLegacy, vendor.Params{"label": "build", "value": "passing"}, domain.FormatPNG},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := r.Match(tt.path)
			require.True(t, ok)

			assert.Equal(t, tt.wantName, m.Route.Name)
			assert.Equal(t, tt.wantKind, m.Route.Kind)
			assert.Equal(t, tt.wantParams, m.Params)
			assert.Equal(t, tt.wantFormat, m.Format)
			assert.Equal(t, tt.path, m.Path)
		})
	}
}

func TestMatch_VendorRoutesWinOverGeneric(t *testing.T) {
	r := newRouter()

	// Both paths also satisfy the legacy pattern.
	m, ok := r.Match("/gittip/someone.png")
	require.True(t, ok)
	assert.Equal(t, router.KindVendor, m.Route.Kind)

	m, ok = r.Match("/npm/dm/a-b-c.png")
	require.True(t, ok)
	assert.Equal(t, "npm-downloads", m.Route.Name)
}

func TestMatch_GenericRoutesDeclaredLast(t *testing.T) {
	routes := newRouter().Routes()
	require.NotEmpty(t, routes)

	n := len(routes)
	assert.Equal(t, router.KindExplicit, routes[n-2].Kind)
	assert.Equal(t, router.KindLegacy, routes[n-1].Kind)
	for _, route := range routes[:n-2] {
		assert.NotEqual(t, router.KindExplicit, route.Kind)
		assert.NotEqual(t, router.KindLegacy, route.Kind)
	}
}

func TestMatch_Unmatched(t *testing.T) {
	r := newRouter()
	for _, path := range []string{"/favicon.ico", "/travis/onlyuser.svg", "/badge/no-color.svg", "/build/passing.svg"} {
		_, ok := r.Match(path)
		assert.False(t, ok, path)
	}
}

func TestMatch_VendorRoutesAreCacheable(t *testing.T) {
	for _, route := range newRouter().Routes() {
		assert.Equal(t, route.Kind == router.KindVendor, route.Cacheable, route.Name)
	}
}
