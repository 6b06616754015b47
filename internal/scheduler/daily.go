// Package scheduler runs a job once at start and again at every local midnight.
package scheduler

import (
	"context"
	"sync"
	"time"

	"hunterlog/internal/logging"
)

type Job func(ctx context.Context) error

type Daily struct {
	name string
	job  Job
	loc  *time.Location

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type Option func(*Daily)

// WithClock overrides the time source and the timer used between runs.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(d *Daily) {
		if now != nil {
			d.now = now
		}
		if after != nil {
			d.after = after
		}
	}
}

func NewDaily(name string, loc *time.Location, job Job, opts ...Option) *Daily {
	if loc == nil {
		loc = time.Local
	}
	d := &Daily{
		name:     name,
		job:      job,
		loc:      loc,
		now:      time.Now,
		after:    time.After,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NextMidnight returns the start of the day after t in loc.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, day := t.Date()
	return time.Date(y, m, day+1, 0, 0, 0, 0, loc)
}

// Start runs the job immediately and then in the background at every next
// midnight until ctx is cancelled or Stop is called.
func (d *Daily) Start(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Infow("Starting daily scheduler", "job", d.name)
	d.run(ctx)
	go d.loop(ctx)
}

func (d *Daily) Stop() {
	d.stopOnce.Do(func() { close(d.stopChan) })
	<-d.done
}

// Done is closed once the background loop has exited.
func (d *Daily) Done() <-chan struct{} { return d.done }

func (d *Daily) loop(ctx context.Context) {
	defer close(d.done)
	log := logging.FromContext(ctx)
	for {
		now := d.now()
		wait := NextMidnight(now, d.loc).Sub(now)
		select {
		case <-ctx.Done():
			log.Infow("Daily scheduler stopped", "job", d.name, "reason", ctx.Err())
			return
		case <-d.stopChan:
			log.Infow("Daily scheduler stopped", "job", d.name)
			return
		case <-d.after(wait):
			d.run(ctx)
		}
	}
}

func (d *Daily) run(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debugw("Running daily job", "job", d.name)
	if err := d.job(ctx); err != nil {
		log.Errorw("Daily job failed", "job", d.name, "error", err)
	}
}
