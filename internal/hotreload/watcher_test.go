package hotreload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("service: {name: api-python}"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Add(path); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("service: {name: api-go}"), 0o600); err != nil {
		t.Fatalf("failed to modify file: %v", err)
	}

	select {
	case event := <-w.Events():
		if filepath.Base(event.Path) != "config.yaml" {
			t.Errorf("unexpected event path: %s", event.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for file system event")
	}
}

func TestShouldSkipEvent(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/etc/app/config.yaml", want: false},
		{path: "/etc/app/config.yaml.tmp", want: true},
		{path: "/etc/app/.config.yaml.swp", want: true},
		{path: "/etc/app/~config.yaml", want: true},
		{path: "/etc/app/.hidden", want: true},
	}

	for _, tt := range tests {
		if got := shouldSkipEvent(tt.path); got != tt.want {
			t.Errorf("shouldSkipEvent(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
