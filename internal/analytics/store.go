package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/jmgilman/go/fs/core"

	"badgeserver/internal/domain"
)

// ErrNoSnapshot is returned by a Store that has nothing saved yet.
var ErrNoSnapshot = errors.New("no analytics snapshot saved")

type Store interface {
	Load(ctx context.Context) (domain.AnalyticsSnapshot, error)
	Save(ctx context.Context, s domain.AnalyticsSnapshot) error
}

// FileStore keeps the snapshot as one JSON document on any core filesystem:
// local disk, memory or an S3 bucket.
type FileStore struct {
	fs   core.FS
	name string
}

func NewFileStore(fs core.FS, name string) *FileStore {
	return &FileStore{fs: fs, name: name}
}

func (s *FileStore) Load(_ context.Context) (domain.AnalyticsSnapshot, error) {
	data, err := s.fs.ReadFile(s.name)
	if errors.Is(err, core.ErrNotExist) {
		return domain.AnalyticsSnapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("read %s: %w", s.name, err)
	}

	var snap domain.AnalyticsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("decode %s: %w", s.name, err)
	}
	return snap, nil
}

// Save writes to a temporary name first and renames it over the snapshot.
func (s *FileStore) Save(_ context.Context, snap domain.AnalyticsSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := path.Dir(s.name); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	tmp := s.name + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.name); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
