package timing

import (
	"context"
	"sort"
	"sync"
	"time"
)

type timingKey struct{}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

// Summary aggregates the recorded durations of one operation
type Summary struct {
	Operation string
	Count     int
	Average   time.Duration
	Max       time.Duration
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

// StartTiming returns a context carrying the operation start; pass it to EndTiming
func (tt *Tracker) StartTiming(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if !tt.isEnabled() {
		return ctx
	}

	return context.WithValue(ctx, timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: tt.now(),
	})
}

// EndTiming records the elapsed time and returns it; zero when nothing was started
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	if ctx == nil || !tt.isEnabled() {
		return 0
	}

	timingInfo, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return 0
	}

	duration := tt.now().Sub(timingInfo.StartTime)

	tt.mu.Lock()
	tt.timings[timingInfo.Operation] = append(tt.timings[timingInfo.Operation], duration)
	tt.mu.Unlock()

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

// Summaries returns one entry per operation, sorted by operation name
func (tt *Tracker) Summaries() []Summary {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	summaries := make([]Summary, 0, len(tt.timings))
	for operation, timings := range tt.timings {
		if len(timings) == 0 {
			continue
		}
		var total, longest time.Duration
		for _, d := range timings {
			total += d
			if d > longest {
				longest = d
			}
		}
		summaries = append(summaries, Summary{
			Operation: operation,
			Count:     len(timings),
			Average:   total / time.Duration(len(timings)),
			Max:       longest,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Operation < summaries[j].Operation
	})
	return summaries
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}
