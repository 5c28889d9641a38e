// Package etag derives entity tags for badges that never change while the
// process runs.
package etag

import (
	"hash/fnv"
	"strings"
	"time"

	"github.com/sqids/sqids-go"
)

type Generator struct {
	sqids *sqids.Sqids
	start uint64
}

func New(start time.Time) (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 8,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{sqids: s, start: uint64(start.Unix())}, nil
}

// For returns a quoted tag for key, stable for the lifetime of the process.
func (g *Generator) For(key string) (string, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))

	id, err := g.sqids.Encode([]uint64{g.start, h.Sum64() >> 1})
	if err != nil {
		return "", err
	}
	return `"` + id + `"`, nil
}

// Match reports whether an If-None-Match header value names tag.
func Match(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
