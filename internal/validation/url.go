package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

// URLValidator checks upstream base URLs supplied through configuration.
type URLValidator struct {
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

func (v *URLValidator) ValidateBaseURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] {
		return ErrInvalidURLFormat
	}
	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return ErrURLHasQuery
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEndpoints checks every non-empty override and reports the first
// failure by name.
func (v *URLValidator) ValidateEndpoints(endpoints map[string]string) error {
	for name, raw := range endpoints {
		if raw == "" {
			continue
		}
		if err := v.ValidateBaseURL(raw); err != nil {
			return &EndpointError{Name: name, Err: err}
		}
	}
	return nil
}
