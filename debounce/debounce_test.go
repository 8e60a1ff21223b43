package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerFiresOnceWithFinalValue(t *testing.T) {
	rec := &recorder{}
	d := New(100*time.Millisecond, rec.record)
	defer d.Stop()

	// three keystrokes inside the window
	d.Trigger("p")
	time.Sleep(20 * time.Millisecond)
	d.Trigger("po")
	time.Sleep(20 * time.Millisecond)
	d.Trigger("pot")

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, []string{"pot"}, rec.snapshot())
}

func TestDebouncerEachPauseFires(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("first")
	time.Sleep(150 * time.Millisecond)
	d.Trigger("second")
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestDebouncerStopPreventsDelivery(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// triggers after Stop are ignored
	d.Trigger("still doomed")
	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerNothingFiresAfterStopReturns(t *testing.T) {
	// race Stop against the timer landing; whatever was delivered must have
	// finished by the time Stop returns
	for i := 0; i < 100; i++ {
		rec := &recorder{}
		d := New(time.Millisecond, rec.record)

		d.Trigger("edge")
		time.Sleep(time.Millisecond)
		d.Stop()
		afterStop := rec.snapshot()

		time.Sleep(5 * time.Millisecond)
		assert.Equal(t, afterStop, rec.snapshot())
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := New[string](0, func(string) {})
	defer d.Stop()
	assert.Equal(t, DefaultDelay, d.delay)
}
