package hotreload

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Manager ties the watcher and coordinator together
type Manager struct {
	watcher     *Watcher
	coordinator *Coordinator
	logger      *zap.Logger
	started     bool
}

// NewManager creates a new hot reload manager
func NewManager(logger *zap.Logger) (*Manager, error) {
	watcher, err := NewWatcher(logger)
	if err != nil {
		return nil, err
	}

	return &Manager{
		watcher:     watcher,
		coordinator: NewCoordinator(watcher, logger),
		logger:      logger,
	}, nil
}

// AddWatch adds a file to watch
func (m *Manager) AddWatch(path string) error {
	return m.watcher.Add(path)
}

// RegisterReloadable registers a reloadable component
func (m *Manager) RegisterReloadable(reloadable Reloadable) error {
	return m.coordinator.Register(reloadable)
}

// SetDebounceTime sets the debounce window for reload events
func (m *Manager) SetDebounceTime(d time.Duration) {
	m.coordinator.SetDebounceTime(d)
}

// Start starts the hot reload system
func (m *Manager) Start() error {
	if m.started {
		return nil
	}
	if err := m.coordinator.Start(); err != nil {
		return err
	}
	m.started = true
	m.logger.Info("Config hot reload started")
	return nil
}

// Shutdown stops the hot reload system
func (m *Manager) Shutdown(ctx context.Context) error {
	if !m.started {
		return nil
	}
	m.coordinator.Stop()
	m.started = false
	m.logger.Info("Config hot reload stopped")
	return nil
}
