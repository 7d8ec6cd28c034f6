package scheduler

import (
	"log/slog"
	"testing"

	"github.com/wolvhq/wolv-site/internal/mirror"
	"github.com/wolvhq/wolv-site/internal/sitedata"
)

func TestStartRejectsInvalidSpec(t *testing.T) {
	store := sitedata.New(mirror.NewMemoryStore(), nil, nil)
	t.Cleanup(store.Close)

	s := New(store, slog.Default())
	if err := s.Start("not a cron spec"); err == nil {
		t.Error("Start() error = nil, want parse error")
	}
}

func TestStartAndStop(t *testing.T) {
	store := sitedata.New(mirror.NewMemoryStore(), nil, nil)
	t.Cleanup(store.Close)

	s := New(store, slog.Default())
	if err := s.Start("@every 1h"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Stop()
}
