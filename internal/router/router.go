// Package router maps request paths onto badge routes. Routes are tried in
// declaration order and the first match wins, so the generic routes are
// declared after every vendor route they would otherwise shadow.
package router

import (
	"regexp"

	"badgeserver/internal/domain"
	"badgeserver/internal/vendor"
)

type Kind int

const (
	KindRoot Kind = iota
	KindVendor
	KindExplicit
	KindLegacy
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindVendor:
		return "vendor"
	case KindExplicit:
		return "explicit"
	case KindLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

type Route struct {
	Name        string
	Pattern     *regexp.Regexp
	Kind        Kind
	Integration vendor.Integration
	// Cacheable routes go through the response cache.
	Cacheable bool
}

type Match struct {
	Route *Route
	// Path is the whole matched path, the identity part of the cache key.
	Path   string
	Params vendor.Params
	Format domain.Format
}

type Router struct {
	routes []*Route
}

const formatGroup = `\.(?P<format>svg|png|gif|jpg)$`

func vendorRoute(name, pattern string, in vendor.Integration) *Route {
	return &Route{
		Name:        name,
		Pattern:     regexp.MustCompile(pattern + formatGroup),
		Kind:        KindVendor,
		Integration: in,
		Cacheable:   true,
	}
}

func New(reg *vendor.Registry) *Router {
	return &Router{routes: []*Route{
		{Name: "root", Pattern: regexp.MustCompile(`^/$`), Kind: KindRoot},
		vendorRoute("travis", `^/travis(?:-ci)?/(?P<repo>[^/]+/[^/]+)(?:/(?P<branch>.+))?`, reg.Travis),
		vendorRoute("gittip", `^/gittip/(?P<user>.*)`, reg.Gittip),
		vendorRoute("packagist-downloads", `^/packagist/dm/(?P<package>.*)`, reg.PackagistDownloads),
		vendorRoute("packagist-version", `^/packagist/v/(?P<package>.*)`, reg.PackagistVersion),
		vendorRoute("npm-downloads", `^/npm/dm/(?P<package>.*)`, reg.NPMDownloads),
		vendorRoute("npm-version", `^/npm/v/(?P<package>.*)`, reg.NPMVersion),
		vendorRoute("gem", `^/gem/v/(?P<package>.*)`, reg.Gem),
		vendorRoute("pypi", `^/pypi/(?P<info>[^/]+)/(?P<egg>.*)`, reg.PyPI),
		vendorRoute("coveralls", `^/coveralls/(?P<repo>[^/]+/[^/]+)(?:/(?P<branch>.+))?`, reg.Coveralls),
		vendorRoute("codeclimate", `^/codeclimate/(?P<repo>.+)`, reg.CodeClimate),
		vendorRoute("gemnasium", `^/gemnasium/(?P<repo>.+)`, reg.Gemnasium),
		vendorRoute("hackage", `^/hackage/v/(?P<package>.*)`, reg.Hackage),
		vendorRoute("cocoapods", `^/cocoapods/v/(?P<spec>.*)`, reg.CocoaPods),
		{
			Name:    "explicit",
			Pattern: regexp.MustCompile(`^/(?::|badge/)(?P<label>(?:[^-]|--)+)-(?P<value>(?:[^-]|--)+)-(?P<color>(?:[^-]|--)+)` + formatGroup),
			Kind:    KindExplicit,
		},
		{
			Name:    "legacy",
			Pattern: regexp.MustCompile(`^/(?P<label>[^/]+)/(?P<value>.+)\.(?P<format>png)$`),
			Kind:    KindLegacy,
		},
	}}
}

// Routes returns the table in match order.
func (r *Router) Routes() []*Route {
	return r.routes
}

func (r *Router) Match(path string) (Match, bool) {
	for _, route := range r.routes {
		m := route.Pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}

		params := vendor.Params{}
		for i, name := range route.Pattern.SubexpNames() {
			if name != "" && name != "format" {
				params[name] = m[i]
			}
		}
		format := domain.FormatSVG
		if i := route.Pattern.SubexpIndex("format"); i > 0 {
			format, _ = domain.ParseFormat(m[i])
		}
		return Match{Route: route, Path: m[0], Params: params, Format: format}, true
	}
	return Match{}, false
}
