package alarm

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"daycast/internal/metrics"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("alarm timer is closed")

// Status is the timer lifecycle position: disarmed -> armed -> fired -> disarmed
type Status string

const (
	StatusDisarmed Status = "disarmed"
	StatusArmed    Status = "armed"
	StatusFired    Status = "fired"
)

// Alarm describes one armed or fired alarm
type Alarm struct {
	ID      string    `json:"id"`
	Target  time.Time `json:"target"`
	FiredAt time.Time `json:"firedAt,omitzero"`
}

// State is a snapshot of the timer for the rendering layer
type State struct {
	Status      Status     `json:"status"`
	Armed       bool       `json:"armed"`
	ID          string     `json:"id,omitempty"`
	TargetTime  *time.Time `json:"targetTime,omitempty"`
	LastFiredAt *time.Time `json:"lastFiredAt,omitempty"`
}

// Notifier delivers the alert when an alarm fires. Notify may block; the
// timer stays in StatusFired until it returns.
type Notifier interface {
	Notify(ctx context.Context, a Alarm)
}

type NotifierFunc func(ctx context.Context, a Alarm)

func (f NotifierFunc) Notify(ctx context.Context, a Alarm) {
	f(ctx, a)
}

// Stopper is the cancellable handle of a scheduled callback; *time.Timer satisfies it
type Stopper interface {
	Stop() bool
}

// ScheduleFunc runs f once after d
type ScheduleFunc func(d time.Duration, f func()) Stopper

func afterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

type Option func(*Timer)

// WithClock overrides the wall clock used to compute delays
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithScheduler overrides how the one-shot callback is scheduled
func WithScheduler(schedule ScheduleFunc) Option {
	return func(t *Timer) {
		t.schedule = schedule
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Timer) {
		t.metrics = m
	}
}

type pending struct {
	alarm  Alarm
	handle Stopper
}

// Timer owns at most one outstanding one-shot alarm
type Timer struct {
	mu        sync.Mutex
	status    Status
	current   *pending
	lastFired *time.Time
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc

	notifier Notifier
	now      func() time.Time
	schedule ScheduleFunc
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewTimer(notifier Notifier, logger *slog.Logger, opts ...Option) *Timer {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Timer{
		status:   StatusDisarmed,
		ctx:      ctx,
		cancel:   cancel,
		notifier: notifier,
		now:      time.Now,
		schedule: afterFunc,
		logger:   logger.With("component", "alarm-timer"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Arm schedules a single alarm at target, replacing any outstanding one.
// A target in the past fires immediately.
func (t *Timer) Arm(target time.Time) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", ErrClosed
	}

	if t.current != nil {
		t.current.handle.Stop()
		t.logger.Debug("replacing armed alarm", "id", t.current.alarm.ID)
		t.metrics.ObserveAlarm("replaced")
	}

	delay := max(target.Sub(t.now()), 0)

	id := uuid.NewString()
	p := &pending{alarm: Alarm{ID: id, Target: target}}
	p.handle = t.schedule(delay, func() { t.fire(id) })
	t.current = p
	t.status = StatusArmed

	t.logger.Info("alarm armed", "id", id, "target", target, "delay", delay)
	t.metrics.ObserveAlarm("armed")

	return id, nil
}

// Disarm cancels the outstanding alarm. It reports whether one was armed.
func (t *Timer) Disarm() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil || t.status != StatusArmed {
		return false
	}
	t.current.handle.Stop()
	t.logger.Info("alarm disarmed", "id", t.current.alarm.ID)
	t.current = nil
	t.status = StatusDisarmed
	t.metrics.ObserveAlarm("disarmed")
	return true
}

// State returns a snapshot of the timer
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := State{
		Status:      t.status,
		Armed:       t.status == StatusArmed,
		LastFiredAt: t.lastFired,
	}
	if t.current != nil {
		target := t.current.alarm.Target
		s.ID = t.current.alarm.ID
		s.TargetTime = &target
	}
	return s
}

// Close cancels any outstanding alarm; nothing fires afterwards
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	if t.current != nil {
		t.current.handle.Stop()
		t.logger.Info("alarm cancelled on close", "id", t.current.alarm.ID)
		t.metrics.ObserveAlarm("cancelled")
		t.current = nil
	}
	t.status = StatusDisarmed
	t.cancel()
}

func (t *Timer) fire(id string) {
	t.mu.Lock()
	// A replaced or cancelled timer may still run if Stop lost the race
	if t.closed || t.current == nil || t.current.alarm.ID != id {
		t.mu.Unlock()
		return
	}
	firedAt := t.now()
	t.status = StatusFired
	t.lastFired = &firedAt
	a := t.current.alarm
	a.FiredAt = firedAt
	t.mu.Unlock()

	t.logger.Info("alarm fired", "id", id, "target", a.Target)
	t.metrics.ObserveAlarm("fired")

	if t.notifier != nil {
		t.notifier.Notify(t.ctx, a)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Re-armed while the alert was showing
	if t.current != nil && t.current.alarm.ID == id {
		t.current = nil
		t.status = StatusDisarmed
	}
}
