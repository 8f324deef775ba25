package hotreload

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reloadable is a component that can re-apply configuration at runtime
type Reloadable interface {
	Reload(ctx context.Context) error
	Name() string
}

// Coordinator debounces watcher events and fans reloads out to registered
// components.
type Coordinator struct {
	watcher      *Watcher
	reloadables  map[string]Reloadable
	logger       *zap.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	debounceTime time.Duration
	wg           sync.WaitGroup
	running      bool
}

// NewCoordinator creates a new reload coordinator
func NewCoordinator(watcher *Watcher, logger *zap.Logger) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())

	return &Coordinator{
		watcher:      watcher,
		reloadables:  make(map[string]Reloadable),
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		debounceTime: 500 * time.Millisecond,
	}
}

// Register adds a reloadable component
func (c *Coordinator) Register(reloadable Reloadable) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := reloadable.Name()
	if _, exists := c.reloadables[name]; exists {
		return fmt.Errorf("reloadable %s already registered", name)
	}

	c.reloadables[name] = reloadable
	c.logger.Info("Registered reloadable component", zap.String("name", name))
	return nil
}

// SetDebounceTime sets the debounce window for reload events
func (c *Coordinator) SetDebounceTime(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounceTime = d
}

// Start begins coordinating reloads
func (c *Coordinator) Start() error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("coordinator already running")
	}
	c.running = true
	c.mu.Unlock()

	c.watcher.Start()

	c.wg.Add(1)
	go c.coordinate()

	return nil
}

// Stop stops coordination and the underlying watcher
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	c.cancel()
	c.watcher.Stop()
	c.wg.Wait()
}

// coordinate applies debouncing: a burst of writes to the config file
// triggers a single reload after the quiet period.
func (c *Coordinator) coordinate() {
	defer c.wg.Done()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending int
	)

	for {
		select {
		case <-c.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-c.watcher.Events():
			if !ok {
				return
			}
			pending++
			c.logger.Debug("File system event",
				zap.String("path", event.Path),
				zap.String("operation", event.Op.String()),
			)

			c.mu.RLock()
			debounce := c.debounceTime
			c.mu.RUnlock()

			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			if pending > 0 {
				c.triggerReload(pending)
				pending = 0
			}
			timer = nil
			timerC = nil
		}
	}
}

func (c *Coordinator) triggerReload(events int) {
	c.mu.RLock()
	reloadables := make([]Reloadable, 0, len(c.reloadables))
	for _, r := range c.reloadables {
		reloadables = append(reloadables, r)
	}
	c.mu.RUnlock()

	if len(reloadables) == 0 {
		return
	}

	c.logger.Info("Triggering reload", zap.Int("events", events))

	var wg sync.WaitGroup
	for _, reloadable := range reloadables {
		wg.Add(1)
		go func(r Reloadable) {
			defer wg.Done()
			if err := r.Reload(c.ctx); err != nil {
				c.logger.Error("Reload failed",
					zap.String("name", r.Name()),
					zap.Error(err),
				)
				return
			}
			c.logger.Info("Reloaded component", zap.String("name", r.Name()))
		}(reloadable)
	}
	wg.Wait()
}
