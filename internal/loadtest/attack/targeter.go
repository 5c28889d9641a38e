package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

// farFuture is later than any server start, so conditional requests get 304.
const farFuture = "Fri, 01 Jan 2100 00:00:00 GMT"

var (
	badgeCounter atomic.Uint64
	colors       = []string{"brightgreen", "green", "yellow", "orange", "red", "blue", "lightgrey", "ff69b4"}
)

func baseHeader(bypassSecret string) http.Header {
	header := http.Header{}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	return header
}

// GenericTargeter requests distinct explicit badges. A share of them carries
// If-Modified-Since to exercise the conditional path.
func GenericTargeter(baseURL string, conditionalRatio float64, bypassSecret string) vegeta.Targeter {
	plain := baseHeader(bypassSecret)
	conditional := baseHeader(bypassSecret)
	conditional.Set("If-Modified-Since", farFuture)

	return func(t *vegeta.Target) error {
		n := badgeCounter.Add(1)
		t.Method = http.MethodGet
		t.URL = fmt.Sprintf("%s/badge/bench-%d-%s.svg", baseURL, n, colors[n%uint64(len(colors))])
		t.Header = plain
		if rand.Float64() < conditionalRatio {
			t.Header = conditional
		}
		return nil
	}
}

func VendorTargeter(baseURL string, paths []string, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + paths[rand.IntN(len(paths))]
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL string, paths []string, vendorRatio, conditionalRatio float64, bypassSecret string) vegeta.Targeter {
	vendorTarget := VendorTargeter(baseURL, paths, bypassSecret)
	genericTarget := GenericTargeter(baseURL, conditionalRatio, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < vendorRatio {
			return vendorTarget(t)
		}
		return genericTarget(t)
	}
}
