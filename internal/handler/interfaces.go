package handler

//go:generate go tool mockery

import (
	"context"
	"net/url"

	"badgeserver/internal/domain"
	"badgeserver/internal/render"
	"badgeserver/internal/router"
)

type BadgeService interface {
	Vendor(ctx context.Context, m router.Match, label string) (domain.Badge, error)
	Generic(m router.Match, query url.Values) (domain.Badge, error)
	Analytics() domain.AnalyticsSnapshot
}

type Router interface {
	Match(path string) (router.Match, bool)
}

type PathValidator interface {
	ValidatePath(path string) error
}

type Renderer interface {
	Render(b domain.Badge) (*render.Image, error)
}

type Rasterizer interface {
	Rasterize(img *render.Image, format domain.Format) ([]byte, error)
}

type ETagger interface {
	For(key string) (string, error)
}
