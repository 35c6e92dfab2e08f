package configwatcher

import (
	"context"
	"flagguard_backend/pkg/logger"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher 监听若干文件的变更，防抖后回调
// 监听的是文件所在目录，编辑器以重命名方式保存时也能收到事件
type Watcher struct {
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]func()
	timers   map[string]*time.Timer
}

func New(debounce time.Duration) *Watcher {
	return &Watcher{
		debounce: debounce,
		handlers: make(map[string]func()),
		timers:   make(map[string]*time.Timer),
	}
}

// Add 注册文件及其回调，需在 Run 之前调用
func (w *Watcher) Add(path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	w.mu.Lock()
	w.handlers[absPath] = onChange
	w.mu.Unlock()
	return nil
}

// Run 阻塞直到 ctx 取消
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fsw.Close()

	dirs := make(map[string]bool)
	w.mu.Lock()
	for path := range w.handlers {
		dirs[filepath.Dir(path)] = true
	}
	w.mu.Unlock()

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	handler, ok := w.handlers[path]
	if !ok {
		return
	}
	if t, exists := w.timers[path]; exists {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		logger.Log.Info("Watched file changed", zap.String("path", path))
		handler()
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
