package xconf

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "networks.yaml", "log:\n  level: info\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	var reloads atomic.Int32
	var lastErr atomic.Value
	w, err := Watch(cfg, func(_ *Config, err error) {
		if err != nil {
			lastErr.Store(err)
		}
		reloads.Add(1)
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()
	w.Start()

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))
	waitFor(t, func() bool { return reloads.Load() > 0 })

	assert.Nil(t, lastErr.Load())
	assert.Equal(t, "error", cfg.Koanf().String("log.level"))
}

func TestWatchDebounceCoalesces(t *testing.T) {
	path := writeFile(t, "networks.yaml", "log:\n  level: info\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	var reloads atomic.Int32
	w, err := Watch(cfg, func(_ *Config, _ error) {
		reloads.Add(1)
	}, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()
	w.Start()

	// 防抖窗口内连续写入,只应触发一次重载
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
		time.Sleep(5 * time.Millisecond)
	}
	waitFor(t, func() bool { return reloads.Load() > 0 })
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load())
}

func TestWatchRejectsBytesConfig(t *testing.T) {
	cfg, err := LoadBytes([]byte("{}"), FormatJSON)
	require.NoError(t, err)
	_, err = Watch(cfg, func(*Config, error) {})
	assert.ErrorIs(t, err, ErrNotReloadable)
}

func TestWatcherStopIdempotent(t *testing.T) {
	path := writeFile(t, "networks.yaml", "log:\n  level: info\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	w, err := Watch(cfg, func(*Config, error) {})
	require.NoError(t, err)
	w.Start()
	w.Stop()
	w.Stop()
}
