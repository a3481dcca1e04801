package usecase

import (
	"meetmate/internal/followup"
	"meetmate/internal/followup/repository"
	"meetmate/pkg/judgment"
	pkgLog "meetmate/pkg/log"
)

// Config tunes the triage batch.
type Config struct {
	UpcomingWindowDays int // how far ahead "upcoming" items are considered
	ReportWindowDays   int // lookahead for the summary report
}

func (c Config) withDefaults() Config {
	if c.UpcomingWindowDays == 0 {
		c.UpcomingWindowDays = 3
	}
	if c.ReportWindowDays == 0 {
		c.ReportWindowDays = 7
	}
	return c
}

type implUseCase struct {
	l           pkgLog.Logger
	judge       *judgment.Judge
	repo        repository.ItemRepository
	notifier    followup.Notifier
	escalations followup.EscalationSink
	cfg         Config
}

// New creates a new follow-up UseCase instance.
func New(
	l pkgLog.Logger,
	judge *judgment.Judge,
	repo repository.ItemRepository,
	notifier followup.Notifier,
	escalations followup.EscalationSink,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:           l,
		judge:       judge,
		repo:        repo,
		notifier:    notifier,
		escalations: escalations,
		cfg:         cfg.withDefaults(),
	}
}
