package hotreload

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingReloadable struct {
	name  string
	count atomic.Int32
}

func (c *countingReloadable) Reload(ctx context.Context) error {
	c.count.Add(1)
	return nil
}

func (c *countingReloadable) Name() string { return c.name }

func TestCoordinatorRegisterDuplicate(t *testing.T) {
	w, err := NewWatcher(zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	c := NewCoordinator(w, zap.NewNop())

	r := &countingReloadable{name: "server"}
	if err := c.Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := c.Register(r); err == nil {
		t.Error("expected error registering duplicate reloadable")
	}
}

func TestCoordinatorDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	m, err := NewManager(zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	m.SetDebounceTime(100 * time.Millisecond)

	if err := m.AddWatch(path); err != nil {
		t.Fatalf("AddWatch() error = %v", err)
	}

	r := &countingReloadable{name: "server"}
	if err := m.RegisterReloadable(r); err != nil {
		t.Fatalf("RegisterReloadable() error = %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() { _ = m.Shutdown(context.Background()) }()

	// A burst of writes inside the debounce window collapses into one reload
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("a: 2"), 0o600); err != nil {
			t.Fatalf("failed to modify file: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if r.count.Load() > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	got := r.count.Load()
	if got == 0 {
		t.Fatal("reloadable was never invoked")
	}
	if got > 2 {
		t.Errorf("expected debounced reloads, got %d invocations", got)
	}
}
