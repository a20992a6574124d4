package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_BurstCollapsesToOneCall(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		d.Do(func() {
			calls.Add(1)
		})
	}
	d.Do(func() {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}
	// Give any erroneously surviving earlier timers a chance to fire.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_LastFunctionWins(t *testing.T) {
	d := New(20 * time.Millisecond)

	got := make(chan string, 2)
	d.Do(func() { got <- "first" })
	d.Do(func() { got <- "second" })

	select {
	case v := <-got:
		assert.Equal(t, "second", v)
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := New(10 * time.Millisecond)

	var calls atomic.Int32
	d.Do(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())

	// A stopped debouncer still accepts new work.
	done := make(chan struct{})
	d.Do(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debouncer unusable after Stop")
	}
}

func TestDebouncer_FlushRunsImmediately(t *testing.T) {
	d := New(time.Hour)

	var pending atomic.Int32
	d.Do(func() { pending.Add(1) })

	ran := false
	d.Flush(func() { ran = true })
	require.True(t, ran)

	// The pending invocation was cancelled, not deferred.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, pending.Load())
}
