package handler_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/domain"
	"badgeserver/internal/handler"
	"badgeserver/internal/handler/mocks"
	"badgeserver/internal/render"
	"badgeserver/internal/router"
	"badgeserver/internal/service"
	"badgeserver/internal/vendor"
)

var start = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type testDeps struct {
	badges     *mocks.MockBadgeService
	router     *mocks.MockRouter
	paths      *mocks.MockPathValidator
	renderer   *mocks.MockRenderer
	rasterizer *mocks.MockRasterizer
	etags      *mocks.MockETagger
}

func newTestHandler(t *testing.T) (*echo.Echo, testDeps) {
	d := testDeps{
		badges:     mocks.NewMockBadgeService(t),
		router:     mocks.NewMockRouter(t),
		paths:      mocks.NewMockPathValidator(t),
		renderer:   mocks.NewMockRenderer(t),
		rasterizer: mocks.NewMockRasterizer(t),
		etags:      mocks.NewMockETagger(t),
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := handler.New(d.badges, d.router, d.paths, d.renderer, d.rasterizer, d.etags,
		"http://shields.io", start, logger)

	e := echo.New()
	h.Register(e)
	return e, d
}

func serve(e *echo.Echo, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func svgImage(b domain.Badge) *render.Image {
	return &render.Image{SVG: []byte("<svg>" + b.Label + "|" + b.Value + "</svg>")}
}

var (
	explicitRoute = &router.Route{Name: "explicit", Kind: router.KindExplicit}
	legacyRoute   = &router.Route{Name: "legacy", Kind: router.KindLegacy}
	travisRoute   = &router.Route{Name: "travis", Kind: router.KindVendor, Cacheable: true}
)

func TestHealth(t *testing.T) {
	e, _ := newTestHandler(t)

	rec := serve(e, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoot_RedirectsToSite(t *testing.T) {
	e, _ := newTestHandler(t)

	rec := serve(e, "/", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://shields.io", rec.Header().Get("Location"))
}

func TestAnalytics_ServesSnapshot(t *testing.T) {
	e, d := newTestHandler(t)

	snap := domain.AnalyticsSnapshot{
		VendorMonthly: make([]int64, domain.AnalyticsSlots),
		RawMonthly:    make([]int64, domain.AnalyticsSlots),
	}
	snap.VendorMonthly[3] = 7
	d.badges.EXPECT().Analytics().Return(snap).Once()

	rec := serve(e, "/analytics/v1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snap, got)
}

func TestBadge_UnmatchedPathIs404(t *testing.T) {
	e, d := newTestHandler(t)

	d.paths.EXPECT().ValidatePath("/nothing/here").Return(nil).Once()
	d.router.EXPECT().Match("/nothing/here").Return(router.Match{}, false).Once()

	rec := serve(e, "/nothing/here", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "badge not found")
}

func TestBadge_RejectedPathIs404(t *testing.T) {
	e, d := newTestHandler(t)

	d.paths.EXPECT().ValidatePath(mock.Anything).Return(errors.New("path too long")).Once()

	rec := serve(e, "/badge/x-y-red.svg", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadge_VendorSVG(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: travisRoute, Path: "/travis/a/b.svg", Params: vendor.Params{"user": "a", "repo": "b"}, Format: domain.FormatSVG}
	b := domain.NewBadge("build", "passing", domain.ColorBrightGreen)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Vendor(mock.Anything, m, "ci").Return(b, nil).Once()
	d.renderer.EXPECT().Render(b).Return(svgImage(b), nil).Once()

	rec := serve(e, "/travis/a/b.svg?label=ci", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml;charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Header().Get("Last-Modified"))
	assert.Equal(t, "<svg>build|passing</svg>", rec.Body.String())
}

func TestBadge_VendorRaster(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: travisRoute, Path: "/travis/a/b.png", Format: domain.FormatPNG}
	b := domain.NewBadge("build", "failing", domain.ColorRed)
	img := svgImage(b)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Vendor(mock.Anything, m, "").Return(b, nil).Once()
	d.renderer.EXPECT().Render(b).Return(img, nil).Once()
	d.rasterizer.EXPECT().Rasterize(img, domain.FormatPNG).Return([]byte("PNGDATA"), nil).Once()

	rec := serve(e, "/travis/a/b.png", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "PNGDATA", rec.Body.String())
}

func TestBadge_GenericSetsConditionalHeaders(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: explicitRoute, Path: "/badge/a-b-green.svg", Format: domain.FormatSVG}
	b := domain.NewBadge("a", "b", domain.ColorGreen)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Generic(m, mock.Anything).Return(b, nil).Once()
	d.etags.EXPECT().For("/badge/a-b-green.svg").Return(`"abcdefgh"`, nil).Once()
	d.renderer.EXPECT().Render(b).Return(svgImage(b), nil).Once()

	rec := serve(e, "/badge/a-b-green.svg", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Sat, 14 Mar 2026 09:26:53 GMT", rec.Header().Get("Last-Modified"))
	assert.Equal(t, `"abcdefgh"`, rec.Header().Get("ETag"))
}

func TestBadge_GenericNotModified(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{
			name:    "if-modified-since equal to start",
			headers: map[string]string{"If-Modified-Since": "Sat, 14 Mar 2026 09:26:53 GMT"},
			want:    http.StatusNotModified,
		},
		{
			name:    "if-modified-since after start",
			headers: map[string]string{"If-Modified-Since": "Sun, 15 Mar 2026 00:00:00 GMT"},
			want:    http.StatusNotModified,
		},
		{
			name:    "if-modified-since before start",
			headers: map[string]string{"If-Modified-Since": "Fri, 13 Mar 2026 23:59:59 GMT"},
			want:    http.StatusOK,
		},
		{
			name:    "unparseable if-modified-since",
			headers: map[string]string{"If-Modified-Since": "yesterday"},
			want:    http.StatusOK,
		},
		{
			name:    "matching if-none-match",
			headers: map[string]string{"If-None-Match": `W/"abcdefgh"`},
			want:    http.StatusNotModified,
		},
		{
			name:    "stale if-none-match wins over if-modified-since",
			headers: map[string]string{"If-None-Match": `"zzzzzzzz"`, "If-Modified-Since": "Sun, 15 Mar 2026 00:00:00 GMT"},
			want:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := newTestHandler(t)

			m := router.Match{Route: explicitRoute, Path: "/badge/a-b-green.svg", Format: domain.FormatSVG}
			b := domain.NewBadge("a", "b", domain.ColorGreen)

			d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
			d.router.EXPECT().Match(m.Path).Return(m, true).Once()
			d.badges.EXPECT().Generic(m, mock.Anything).Return(b, nil).Once()
			d.etags.EXPECT().For(mock.Anything).Return(`"abcdefgh"`, nil).Once()
			if tt.want == http.StatusOK {
				d.renderer.EXPECT().Render(b).Return(svgImage(b), nil).Once()
			}

			rec := serve(e, m.Path, tt.headers)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNotModified {
				assert.Empty(t, rec.Body.String())
				assert.Empty(t, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestBadge_UnknownColorRendersBadBadge(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: explicitRoute, Path: "/badge/a-b-plaid.svg", Format: domain.FormatSVG}
	bad := domain.NewBadge("error", "bad badge", domain.ColorRed)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Generic(m, mock.Anything).Return(domain.Badge{}, service.ErrUnknownColor).Once()
	d.etags.EXPECT().For(mock.Anything).Return(`"abcdefgh"`, nil).Once()
	d.renderer.EXPECT().Render(bad).Return(svgImage(bad), nil).Once()

	rec := serve(e, m.Path, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg>error|bad badge</svg>", rec.Body.String())
}

func TestBadge_LegacyPassesColorQuery(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: legacyRoute, Path: "/build/ok.png", Format: domain.FormatPNG}
	b := domain.NewBadge("build", "ok", domain.ColorBlue)
	img := svgImage(b)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Generic(m, mock.Anything).
		Run(func(_ router.Match, query url.Values) {
			assert.Equal(t, "blue", query.Get("color"))
		}).Return(b, nil).Once()
	d.etags.EXPECT().For("/build/ok.png?color=blue").Return(`"abcdefgh"`, nil).Once()
	d.renderer.EXPECT().Render(b).Return(img, nil).Once()
	d.rasterizer.EXPECT().Rasterize(img, domain.FormatPNG).Return([]byte("PNG"), nil).Once()

	rec := serve(e, "/build/ok.png?color=blue", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestBadge_RenderFailureFallsBack(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: travisRoute, Path: "/travis/a/b.svg", Format: domain.FormatSVG}
	b := domain.NewBadge("build", "odd", domain.Colorscheme("plaid"))
	bad := domain.NewBadge("error", "bad badge", domain.ColorRed)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Vendor(mock.Anything, m, "").Return(b, nil).Once()
	d.renderer.EXPECT().Render(b).Return(nil, errors.New("unknown colorscheme")).Once()
	d.renderer.EXPECT().Render(bad).Return(svgImage(bad), nil).Once()

	rec := serve(e, m.Path, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg>error|bad badge</svg>", rec.Body.String())
}

func TestBadge_RasterFailureIs500(t *testing.T) {
	e, d := newTestHandler(t)

	m := router.Match{Route: travisRoute, Path: "/travis/a/b.gif", Format: domain.FormatGIF}
	b := domain.NewBadge("build", "passing", domain.ColorBrightGreen)
	img := svgImage(b)

	d.paths.EXPECT().ValidatePath(m.Path).Return(nil).Once()
	d.router.EXPECT().Match(m.Path).Return(m, true).Once()
	d.badges.EXPECT().Vendor(mock.Anything, m, "").Return(b, nil).Once()
	d.renderer.EXPECT().Render(b).Return(img, nil).Once()
	d.rasterizer.EXPECT().Rasterize(img, domain.FormatGIF).Return(nil, errors.New("encoder broke")).Once()

	rec := serve(e, m.Path, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
