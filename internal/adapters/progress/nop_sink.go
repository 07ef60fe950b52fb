package progress

import (
	"github.com/solar-insurance/solar-cli/internal/domain/config"
	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// NewNopSink creates a progress sink that discards everything
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink picks the spinner for interactive runs and the no-op sink otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
