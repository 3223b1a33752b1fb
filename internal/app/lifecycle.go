package app

import (
	"sync"

	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/gui"
)

// Lifecycle owns the shutdown of the GUI manager and the debug coordinator
type Lifecycle struct {
	debugCoord debug.Coordinator
	guiManager *gui.Manager
	logger     debug.Logger
	once       sync.Once
	isShutdown bool
}

func NewLifecycle(dc debug.Coordinator, gm *gui.Manager) *Lifecycle {
	return &Lifecycle{
		debugCoord: dc,
		guiManager: gm,
		logger:     dc.Logger(),
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(l.shutdown)
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}

func (l *Lifecycle) shutdown() {
	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"avg_suggest": l.debugCoord.TimingTracker().GetAverageTime(opSuggest).String(),
	})

	l.guiManager.Shutdown()
	l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)

	// Debug coordinator last so the timing summary covers everything above
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	l.debugCoord.Shutdown()
}
