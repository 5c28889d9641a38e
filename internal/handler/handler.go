package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"badgeserver/internal/domain"
	"badgeserver/internal/etag"
	"badgeserver/internal/middleware"
	"badgeserver/internal/router"
	"badgeserver/internal/service"
)

const (
	cacheControlVendor  = "no-cache, no-store, must-revalidate"
	cacheControlGeneric = "public, max-age=86400"

	routeNameRoot      = "root"
	routeNameAnalytics = "analytics"
)

var (
	errNotFound   = map[string]string{"error": "badge not found"}
	errRenderFail = map[string]string{"error": "failed to render badge"}
	respHealthOK  = map[string]string{"status": "ok"}
	badBadge      = domain.NewBadge("error", "bad badge", domain.ColorRed)
)

type Handler struct {
	badges     BadgeService
	router     Router
	paths      PathValidator
	renderer   Renderer
	rasterizer Rasterizer
	etags      ETagger
	siteURL    string
	start      time.Time
	logger     *slog.Logger
}

// New builds the HTTP boundary. start is the process start time that
// generic badges report as their modification time.
func New(
	badges BadgeService,
	rt Router,
	paths PathValidator,
	renderer Renderer,
	rasterizer Rasterizer,
	etags ETagger,
	siteURL string,
	start time.Time,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		badges:     badges,
		router:     rt,
		paths:      paths,
		renderer:   renderer,
		rasterizer: rasterizer,
		etags:      etags,
		siteURL:    siteURL,
		start:      start.UTC().Truncate(time.Second),
		logger:     logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	e.GET("/analytics/v1", h.Analytics)
	e.GET("/", h.Root)
	e.GET("/*", h.Badge)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Root(c echo.Context) error {
	middleware.SetRoute(c, routeNameRoot)
	return c.Redirect(http.StatusFound, h.siteURL)
}

func (h *Handler) Analytics(c echo.Context) error {
	middleware.SetRoute(c, routeNameAnalytics)
	return c.JSON(http.StatusOK, h.badges.Analytics())
}

func (h *Handler) Badge(c echo.Context) error {
	path := c.Request().URL.Path
	if err := h.paths.ValidatePath(path); err != nil {
		h.logger.Debug("rejected badge path",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusNotFound, errNotFound)
	}

	m, ok := h.router.Match(path)
	if !ok {
		return c.JSON(http.StatusNotFound, errNotFound)
	}
	middleware.SetRoute(c, m.Route.Name)

	switch m.Route.Kind {
	case router.KindRoot:
		return c.Redirect(http.StatusFound, h.siteURL)
	case router.KindVendor:
		return h.vendorBadge(c, m)
	default:
		return h.genericBadge(c, m)
	}
}

func (h *Handler) vendorBadge(c echo.Context, m router.Match) error {
	c.Response().Header().Set(echo.HeaderCacheControl, cacheControlVendor)

	b, err := h.badges.Vendor(c.Request().Context(), m, c.QueryParam("label"))
	if err != nil {
		h.logger.Error("failed to resolve vendor badge",
			slog.String("route", m.Route.Name),
			slog.String("error", err.Error()))
		b = badBadge
	}
	return h.write(c, b, m.Format)
}

// genericBadge serves explicit and legacy badges. Their content depends only
// on the request, so a client holding a copy from this process run gets 304.
// Usage is counted before the conditional check.
func (h *Handler) genericBadge(c echo.Context, m router.Match) error {
	req := c.Request()
	b, err := h.badges.Generic(m, req.URL.Query())
	if err != nil {
		if !errors.Is(err, service.ErrUnknownColor) {
			h.logger.Error("failed to compose badge",
				slog.String("route", m.Route.Name),
				slog.String("error", err.Error()))
		}
		b = badBadge
	}

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, cacheControlGeneric)

	tag, err := h.etags.For(req.URL.RequestURI())
	if err != nil {
		h.logger.Warn("failed to derive etag", slog.String("error", err.Error()))
		tag = ""
	}

	if h.notModified(req, tag) {
		return c.NoContent(http.StatusNotModified)
	}

	header.Set(echo.HeaderLastModified, h.start.Format(http.TimeFormat))
	if tag != "" {
		header.Set("ETag", tag)
	}
	return h.write(c, b, m.Format)
}

func (h *Handler) notModified(req *http.Request, tag string) bool {
	if tag != "" {
		if inm := req.Header.Get("If-None-Match"); inm != "" {
			return etag.Match(inm, tag)
		}
	}
	ims := req.Header.Get(echo.HeaderIfModifiedSince)
	if ims == "" {
		return false
	}
	t, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !t.Before(h.start)
}

func (h *Handler) write(c echo.Context, b domain.Badge, format domain.Format) error {
	img, err := h.renderer.Render(b)
	if err != nil {
		h.logger.Warn("failed to render badge",
			slog.String("label", b.Label),
			slog.String("value", b.Value),
			slog.String("error", err.Error()))
		if img, err = h.renderer.Render(badBadge); err != nil {
			h.logger.Error("failed to render fallback badge", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errRenderFail)
		}
	}

	if !format.Raster() {
		return c.Blob(http.StatusOK, format.ContentType(), img.SVG)
	}

	data, err := h.rasterizer.Rasterize(img, format)
	if err != nil {
		h.logger.Error("failed to rasterize badge",
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errRenderFail)
	}
	return c.Blob(http.StatusOK, format.ContentType(), data)
}
