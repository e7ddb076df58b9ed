// Package configwatch hot-reloads a small on-disk debug/telemetry config
// and hands each reloaded value to a caller-supplied callback (which
// may, for example, flip a Compositor's require-update flag), using
// fsnotify the way the rest of this corpus watches files it doesn't own.
package configwatch

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Config is the small set of knobs a running compositor program cares
// about at runtime: whether to keep tracing, and where to ship metrics
// and telemetry.
type Config struct {
	DebugTrace        bool   `json:"debug_trace"`
	MetricsPath       string `json:"metrics_path"`
	TelemetryEndpoint string `json:"telemetry_endpoint"`
}

// Load reads and decodes a Config from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Watcher reloads a Config from disk whenever the file changes and
// notifies subscribers of the new value.
type Watcher struct {
	path string

	mu  sync.RWMutex
	cfg Config

	fsw      *fsnotify.Watcher
	onChange func(Config)
	done     chan struct{}
}

// Watch starts watching path for changes, loading the initial config
// synchronously before returning. onChange, if non-nil, is called with
// every successfully reloaded Config (typically wired to
// Compositor.RequireUpdate via a closure in the caller).
func Watch(path string, onChange func(Config)) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		cfg:      cfg,
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Current returns the most recently loaded config.
func (w *Watcher) Current() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// Close stops the watch goroutine and releases the fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				continue
			}
			w.mu.Lock()
			w.cfg = cfg
			w.mu.Unlock()
			if w.onChange != nil {
				w.onChange(cfg)
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
