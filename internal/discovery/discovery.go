package discovery

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"swipe/internal/eventbus"
)

// DefaultDebounce groups bursts of file events (editors write in several steps)
const DefaultDebounce = 150 * time.Millisecond

// DiscoveryService loads panel directories and keeps them fresh
type DiscoveryService interface {
	StartScan(ctx context.Context, dir string) error
	Watch(ctx context.Context, dir string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	debounce   time.Duration
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	return newDiscoveryService(bus, DefaultDebounce)
}

func newDiscoveryService(bus eventbus.EventBus, debounce time.Duration) *discoveryService {
	ds := &discoveryService{
		bus:      bus,
		debounce: debounce,
	}

	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			if err := ds.StartScan(context.Background(), event.Dir); err != nil {
				log.Printf("Scan request for %s ignored: %v", event.Dir, err)
			}
		}
	})

	return ds
}

// StartScan loads the panels in dir in the background and publishes them
func (ds *discoveryService) StartScan(ctx context.Context, dir string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Dir: dir})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		found := 0
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()
			cancel()

			ds.bus.Publish(eventbus.ScanCompletedEvent{PanelsFound: found})
		}()

		set, err := LoadPanels(dir)
		if scanCtx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("Error loading panels from %s: %v", dir, err)
			ds.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to load panels from %s", dir),
				Err:     err,
			})
			return
		}
		found = set.Len()
		ds.bus.Publish(eventbus.PanelsLoadedEvent{Set: set})
	}()

	return nil
}

// Watch reloads dir whenever a panel file in it changes, until ctx is done
func (ds *discoveryService) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer watcher.Close()

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(ev) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(ds.debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(ds.debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				ds.rescan(ctx, dir)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error for %s: %v", dir, err)
				ds.bus.Publish(eventbus.ErrorEvent{Message: "Panel watcher failed", Err: err})
			}
		}
	}()

	return nil
}

// rescan starts a scan, retrying once the previous one has finished
func (ds *discoveryService) rescan(ctx context.Context, dir string) {
	for ctx.Err() == nil {
		if err := ds.StartScan(ctx, dir); err == nil {
			return
		}
		select {
		case <-ctx.Done():
		case <-time.After(ds.debounce):
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !IsPanelFile(filepath.Base(ev.Name)) {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// StopScan cancels any ongoing scan and waits for it and the watcher to exit.
// The watcher itself stops when the context passed to Watch is done.
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}
