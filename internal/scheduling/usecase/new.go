package usecase

import (
	"meetmate/internal/scheduling"
	"meetmate/pkg/datemath"
	"meetmate/pkg/judgment"
	pkgLog "meetmate/pkg/log"
)

// Config tunes the recommendation pipeline.
type Config struct {
	SearchWindowDays    int // default window when no preferred date extracted
	PreferredWindowDays int // window used when a preferred date is extracted
	BufferMinutes       int // gap enforced between consecutive meetings
	TopK                int // candidates handed to the reconciler
}

func (c Config) withDefaults() Config {
	if c.SearchWindowDays == 0 {
		c.SearchWindowDays = 14
	}
	if c.PreferredWindowDays == 0 {
		c.PreferredWindowDays = 7
	}
	if c.TopK == 0 {
		c.TopK = 5
	}
	return c
}

type implUseCase struct {
	l            pkgLog.Logger
	judge        *judgment.Judge
	availability scheduling.AvailabilityProvider
	booker       scheduling.Booker
	dateMath     *datemath.Parser
	cfg          Config
}

// New creates a new scheduling UseCase instance.
func New(
	l pkgLog.Logger,
	judge *judgment.Judge,
	availability scheduling.AvailabilityProvider,
	booker scheduling.Booker,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:            l,
		judge:        judge,
		availability: availability,
		booker:       booker,
		dateMath:     dateMath,
		cfg:          cfg.withDefaults(),
	}
}
