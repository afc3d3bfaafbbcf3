package reconnect

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/devconf/internal/config"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedInterval implements IntervalSource for testing.
type fixedInterval struct {
	nanos atomic.Int64
}

func newFixedInterval(d time.Duration) *fixedInterval {
	f := &fixedInterval{}
	f.nanos.Store(int64(d))
	return f
}

func (f *fixedInterval) set(d time.Duration) {
	f.nanos.Store(int64(d))
}

func (f *fixedInterval) ProxyReconnectInterval() time.Duration {
	return time.Duration(f.nanos.Load())
}

func TestAllow_FirstAttemptThenThrottled(t *testing.T) {
	th := NewThrottle(newFixedInterval(time.Hour), logger.Nop())

	assert.True(t, th.Allow("motion/axis1"))
	assert.False(t, th.Allow("motion/axis1"))
	assert.False(t, th.Allow("motion/axis1"))
}

func TestAllow_DevicesAreIndependent(t *testing.T) {
	th := NewThrottle(newFixedInterval(time.Hour), logger.Nop())

	assert.True(t, th.Allow("plc/vacuum"))
	assert.True(t, th.Allow("platform/hexapod"))
	assert.False(t, th.Allow("plc/vacuum"))
}

func TestAllow_ZeroIntervalNeverThrottles(t *testing.T) {
	th := NewThrottle(newFixedInterval(0), logger.Nop())

	for i := 0; i < 5; i++ {
		assert.True(t, th.Allow("plc/vacuum"))
	}
}

func TestAllow_IntervalChangeApplies(t *testing.T) {
	src := newFixedInterval(time.Hour)
	th := NewThrottle(src, logger.Nop())

	require.True(t, th.Allow("motion/axis1"))
	require.False(t, th.Allow("motion/axis1"))

	src.set(time.Millisecond)
	assert.Eventually(t, func() bool {
		return th.Allow("motion/axis1")
	}, time.Second, 5*time.Millisecond)
}

func TestForget_ResetsDevice(t *testing.T) {
	th := NewThrottle(newFixedInterval(time.Hour), logger.Nop())

	require.True(t, th.Allow("motion/axis1"))
	require.False(t, th.Allow("motion/axis1"))

	th.Forget("motion/axis1")
	assert.True(t, th.Allow("motion/axis1"))
}

func TestWait_FirstAttemptImmediate(t *testing.T) {
	th := NewThrottle(newFixedInterval(time.Hour), logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, th.Wait(ctx, "motion/axis1"))
}

func TestWait_ContextDeadline(t *testing.T) {
	th := NewThrottle(newFixedInterval(time.Hour), logger.Nop())
	require.True(t, th.Allow("motion/axis1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx, "motion/axis1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "motion/axis1")
}

func TestWait_ShortInterval(t *testing.T) {
	th := NewThrottle(newFixedInterval(10*time.Millisecond), logger.Nop())
	require.True(t, th.Allow("motion/axis1"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, th.Wait(ctx, "motion/axis1"))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestThrottle_WithConfigStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "system_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"proxy_reconnect_interval_sec": 30}`), 0o600))

	store := config.NewStore(filepath.Join(dir, config.RuntimeFileName), logger.Nop())
	require.NoError(t, store.LoadConfig(path))

	th := NewThrottle(store, logger.Nop())
	assert.True(t, th.Allow("platform/hexapod"))
	assert.False(t, th.Allow("platform/hexapod"))
}
