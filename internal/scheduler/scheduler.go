package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/domain"
)

// runTimeout bounds a single weekly pass so a stuck run cannot block the
// next scheduled slot.
const runTimeout = 6 * time.Hour

// Runner defines the interface for a full sync pass.
type Runner interface {
	RunAll(ctx context.Context, targetFilter []string) (*domain.RunResult, error)
}

// Scheduler triggers one run per week at a configured UTC day and time.
type Scheduler struct {
	runner Runner
	day    time.Weekday
	hour   int
	minute int
	logger *slog.Logger
	now    func() time.Time
}

func New(runner Runner, cfg config.ScheduleConfig, logger *slog.Logger) (*Scheduler, error) {
	day, err := parseWeekday(cfg.Day)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		runner: runner,
		day:    day,
		hour:   cfg.Hour,
		minute: cfg.Minute,
		logger: logger.With("component", "scheduler"),
		now:    time.Now,
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"day", s.day.String(),
		"hour", s.hour,
		"minute", s.minute,
	)

	for {
		next := s.nextRun(s.now())
		wait := next.Sub(s.now())
		s.logger.Info("next run scheduled", "at", next, "in", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		if _, err := s.runner.RunAll(runCtx, nil); err != nil {
			s.logger.Error("scheduled run failed", "error", err)
		}
		cancel()
	}
}

// nextRun returns the next occurrence of the weekly slot strictly after from.
func (s *Scheduler) nextRun(from time.Time) time.Time {
	from = from.UTC()
	next := time.Date(from.Year(), from.Month(), from.Day(), s.hour, s.minute, 0, 0, time.UTC)
	next = next.AddDate(0, 0, (int(s.day)-int(from.Weekday())+7)%7)
	if !next.After(from) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
