package debug

import (
	"context"
	"time"

	"recipe-suggester/internal/debug/timing"
	"recipe-suggester/internal/logger"
)

// Logger provides structured logging with context
type Logger = logger.Logger

// TimingTracker measures operation performance
type TimingTracker interface {
	StartTiming(ctx context.Context, operation string) context.Context
	EndTiming(ctx context.Context) time.Duration
	GetAverageTime(operation string) time.Duration
	Summaries() []timing.Summary
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	Shutdown()
}
