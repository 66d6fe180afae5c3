package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	var calls atomic.Int32
	d := New(time.Hour, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		d.Trigger()
	}

	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())

	assert.False(t, d.Flush(), "nothing left to flush")
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_FiresAfterQuietPeriod(t *testing.T) {
	var calls atomic.Int32
	d := New(20*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "exactly one trailing run")
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls atomic.Int32
	d := New(10*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Cancel()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushPreventsTimerRun(t *testing.T) {
	var calls atomic.Int32
	d := New(10*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Flush()

	time.Sleep(40 * time.Millisecond)
	d.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_RunsNeverOverlap(t *testing.T) {
	var active, maxActive, calls atomic.Int32
	started := make(chan struct{}, 4)
	d := New(5*time.Millisecond, func() {
		n := active.Add(1)
		if n > maxActive.Load() {
			maxActive.Store(n)
		}
		started <- struct{}{}
		time.Sleep(80 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	})

	d.Trigger()
	<-started
	// comes due while the first run is still sleeping
	d.Trigger()

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
	d.Wait()
	assert.Equal(t, int32(1), maxActive.Load())
}

func TestDebouncer_CancelDropsRunWaitingBehindActiveOne(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	d := New(5*time.Millisecond, func() {
		calls.Add(1)
		started <- struct{}{}
		<-release
	})

	d.Trigger()
	<-started
	d.Trigger()
	time.Sleep(30 * time.Millisecond) // second timer fires and waits
	d.Cancel()
	close(release)

	d.Wait()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushWaitsForActiveRun(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	d := New(time.Hour, func() {
		if calls.Add(1) == 1 {
			started <- struct{}{}
			<-release
		}
	})

	d.Trigger()
	go d.Flush()
	<-started
	d.Trigger()

	flushed := make(chan bool)
	go func() { flushed <- d.Flush() }()

	select {
	case <-flushed:
		t.Fatal("flush returned while a run was in progress")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	assert.True(t, <-flushed)
	assert.Equal(t, int32(2), calls.Load())
}
