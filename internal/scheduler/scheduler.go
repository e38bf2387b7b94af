// Package scheduler fires a job once per calendar day at a fixed local time.
package scheduler

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Scheduler owns the single daily trigger of the process. The next fire is
// recomputed in the configured location after every run, so wall-clock
// jumps across daylight-saving transitions keep the trigger at the same
// local time.
type Scheduler struct {
	hour    int
	minute  int
	loc     *time.Location
	job     func()
	stop    chan struct{}
	started bool
}

// New creates a scheduler for the given local time. The hour, minute and
// location are validated by the config layer before construction.
func New(hour, minute int, loc *time.Location, job func()) *Scheduler {
	return &Scheduler{
		hour:   hour,
		minute: minute,
		loc:    loc,
		job:    job,
		stop:   make(chan struct{}),
	}
}

// Start launches the trigger loop. Only one registration per scheduler is
// supported; a second Start is an error.
func (s *Scheduler) Start() error {
	if s.started {
		return errors.New("scheduler already started")
	}
	s.started = true

	go s.run()
	return nil
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) run() {
	next := s.nextAfter(time.Now().In(s.loc))
	zap.S().Info("daily trigger scheduled", zap.Time("next_run", next))

	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.job()
		case <-s.stop:
			return
		}

		next = s.nextAfter(time.Now().In(s.loc))
		zap.S().Info("daily trigger scheduled", zap.Time("next_run", next))
		timer.Reset(time.Until(next))
	}
}

// nextAfter returns the first hour:minute in the scheduler's location
// strictly after now. Built with time.Date in the location, so the result
// lands on the configured local time on either side of a DST shift.
func (s *Scheduler) nextAfter(now time.Time) time.Time {
	now = now.In(s.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
