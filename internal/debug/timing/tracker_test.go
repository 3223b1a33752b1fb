package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestTracker() (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	tracker := NewTracker()
	tracker.now = clock.Now
	return tracker, clock
}

func TestTrackerRecordsDurations(t *testing.T) {
	tracker, clock := newTestTracker()

	ctx := tracker.StartTiming(context.Background(), "suggest")
	clock.Advance(4 * time.Millisecond)
	assert.Equal(t, 4*time.Millisecond, tracker.EndTiming(ctx))

	ctx = tracker.StartTiming(context.Background(), "suggest")
	clock.Advance(2 * time.Millisecond)
	tracker.EndTiming(ctx)

	assert.Equal(t, []time.Duration{4 * time.Millisecond, 2 * time.Millisecond}, tracker.GetTimings("suggest"))
	assert.Equal(t, 3*time.Millisecond, tracker.GetAverageTime("suggest"))
	assert.Zero(t, tracker.GetAverageTime("random_page"))
}

func TestTrackerSummaries(t *testing.T) {
	tracker, clock := newTestTracker()

	for _, op := range []string{"suggest", "load_catalog", "suggest"} {
		ctx := tracker.StartTiming(context.Background(), op)
		clock.Advance(time.Millisecond)
		tracker.EndTiming(ctx)
	}

	summaries := tracker.Summaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, "load_catalog", summaries[0].Operation)
	assert.Equal(t, 1, summaries[0].Count)
	assert.Equal(t, "suggest", summaries[1].Operation)
	assert.Equal(t, 2, summaries[1].Count)
	assert.Equal(t, time.Millisecond, summaries[1].Max)
}

func TestTrackerDisabled(t *testing.T) {
	tracker, _ := newTestTracker()
	tracker.SetEnabled(false)

	ctx := tracker.StartTiming(context.Background(), "suggest")
	assert.Zero(t, tracker.EndTiming(ctx))
	assert.Nil(t, tracker.GetTimings("suggest"))
}

func TestTrackerEndWithoutStart(t *testing.T) {
	tracker, _ := newTestTracker()
	assert.Zero(t, tracker.EndTiming(context.Background()))
}

func TestTrackerReset(t *testing.T) {
	tracker, _ := newTestTracker()
	tracker.EndTiming(tracker.StartTiming(context.Background(), "a"))
	tracker.EndTiming(tracker.StartTiming(context.Background(), "b"))

	tracker.Reset("a")
	assert.Nil(t, tracker.GetTimings("a"))
	assert.Len(t, tracker.GetTimings("b"), 1)

	tracker.Reset("")
	assert.Empty(t, tracker.Summaries())
}
