package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleSettlesAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	ch := d.Schedule("dune")

	select {
	case query, ok := <-ch:
		require.True(t, ok)
		assert.Equal(t, "dune", query)
	case <-time.After(time.Second):
		t.Fatal("query never settled")
	}
}

func TestRescheduleCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	first := d.Schedule("du")
	second := d.Schedule("dune")

	// The superseded channel closes without delivering a value
	select {
	case _, ok := <-first:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("canceled schedule never closed its channel")
	}

	select {
	case query, ok := <-second:
		require.True(t, ok)
		assert.Equal(t, "dune", query)
	case <-time.After(time.Second):
		t.Fatal("rescheduled query never settled")
	}
}

func TestOnlyLastOfBurstSettles(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var last <-chan string
	for _, q := range []string{"d", "du", "dun", "dune"} {
		last = d.Schedule(q)
	}

	query, ok := <-last
	require.True(t, ok)
	assert.Equal(t, "dune", query)
}

func TestStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	ch := d.Schedule("dune")
	d.Stop()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "stopped schedule must close without a value")
	case <-time.After(time.Second):
		t.Fatal("stopped schedule never closed its channel")
	}
}

func TestStopWithoutPendingIsSafe(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	d.Stop()
	d.Stop()
}
