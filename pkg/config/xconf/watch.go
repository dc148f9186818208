package xconf

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 在配置文件变更并尝试重载后被调用,err 为重载结果。
type WatchCallback func(cfg *Config, err error)

// WatchOption 监视选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

// WithDebounce 设置防抖窗口,窗口内的连续变更只触发一次重载。
// 默认 100ms,覆盖编辑器原子保存产生的事件风暴。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) { o.debounce = d }
}

// Watcher 监视单个配置文件并在变更后自动 Reload。
//
// 监视的是文件所在目录而非文件本身:K8s ConfigMap 与多数编辑器
// 通过 rename/symlink 切换原子更新文件,直接监视文件会丢事件。
type Watcher struct {
	cfg      *Config
	fw       *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	started bool
}

// Watch 创建监视器。cfg 必须来自 [Load];调用 [Watcher.Start] 后生效。
func Watch(cfg *Config, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if cfg.Path() == "" {
		return nil, ErrNotReloadable
	}
	o := &watchOptions{debounce: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(o)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(cfg.Path())); err != nil {
		fw.Close()
		return nil, fmt.Errorf("xconf: watch %s: %w", cfg.Path(), err)
	}
	return &Watcher{
		cfg:      cfg,
		fw:       fw,
		callback: callback,
		debounce: o.debounce,
		done:     make(chan struct{}),
	}, nil
}

// Start 启动后台监视协程,重复调用无效果。
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.loop()
}

// Stop 停止监视并释放资源,幂等。
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		w.started = true // 阻止 Stop 后再 Start
	}
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.fw.Close()
}

func (w *Watcher) loop() {
	target := filepath.Clean(w.cfg.Path())
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.callback(w.cfg, fmt.Errorf("xconf: watch error: %w", err))
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.callback(w.cfg, w.cfg.Reload())
	})
}
