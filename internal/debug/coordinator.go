package debug

import (
	"io"
	"os"
	"sync"

	"recipe-suggester/internal/debug/timing"
	"recipe-suggester/internal/logger"
)

type DebugCoordinator struct {
	logger        Logger
	timingTracker *timing.Tracker
	closer        io.Closer
	once          sync.Once
}

type Config struct {
	EnableLogging        bool
	EnableTimingTracking bool
	UseJSONLogging       bool
	LogLevel             logger.LogLevel
	// LogFile is opened in append mode; empty means stdout
	LogFile string
	Session string
}

func NewCoordinator(config Config) (*DebugCoordinator, error) {
	var (
		loggerImpl Logger = logger.NoOpLogger{}
		closer     io.Closer
	)

	if config.EnableLogging {
		var out io.Writer = os.Stdout
		if config.LogFile != "" {
			f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, err
			}
			out = f
			closer = f
		}

		loggerImpl = logger.New(logger.Options{
			Level:   config.LogLevel,
			JSON:    config.UseJSONLogging,
			Writer:  out,
			Session: config.Session,
		})
	}

	timingTracker := timing.NewTracker()
	timingTracker.SetEnabled(config.EnableTimingTracking)

	return &DebugCoordinator{
		logger:        loggerImpl,
		timingTracker: timingTracker,
		closer:        closer,
	}, nil
}

// NewNoOpCoordinator discards logs and keeps timing enabled
func NewNoOpCoordinator() *DebugCoordinator {
	return &DebugCoordinator{
		logger:        logger.NoOpLogger{},
		timingTracker: timing.NewTracker(),
	}
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

// Shutdown logs the timing summary and releases the log file
func (dc *DebugCoordinator) Shutdown() {
	dc.once.Do(func() {
		for _, summary := range dc.timingTracker.Summaries() {
			dc.logger.Info("Debug", "timing summary", map[string]interface{}{
				"operation":  summary.Operation,
				"count":      summary.Count,
				"average_us": summary.Average.Microseconds(),
				"max_us":     summary.Max.Microseconds(),
			})
		}

		if dc.closer != nil {
			dc.closer.Close()
		}
	})
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: true,
		UseJSONLogging:       false,
		LogLevel:             logger.InfoLevel,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: false,
		UseJSONLogging:       true,
		LogLevel:             logger.WarnLevel,
	}
}
