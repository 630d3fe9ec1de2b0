package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"daycast/internal/alarm"
	"daycast/internal/forecast"
	"daycast/internal/location"
	"daycast/internal/metrics"
	"daycast/internal/timezone"
	"daycast/internal/types"
)

var (
	ErrMountInProgress = errors.New("screen is already loading")
	ErrTornDown        = errors.New("screen has been torn down")
)

// Dependencies are the collaborators of a Screen
type Dependencies struct {
	Resolver location.Service
	Fetcher  forecast.Service
	Timezone timezone.Service // optional, UTC when nil
	Metrics  *metrics.Metrics // optional
	// Notifier receives fired alarms after the screen has recorded them
	Notifier     alarm.Notifier
	AlarmOptions []alarm.Option
}

// Options tunes the mount chain
type Options struct {
	// MountTimeout bounds the whole chain; zero means wait indefinitely
	MountTimeout time.Duration
	// OnChange is called with a snapshot after every display state mutation
	OnChange func(DisplayState)
}

// Screen owns the display state, the alarm timer and the toggle of one
// weather screen instance
type Screen struct {
	mu        sync.RWMutex
	display   DisplayState
	location  *time.Location
	toggled   bool
	mounting  bool
	tornDown  bool
	lastAlert *alarm.Alarm

	resolver location.Service
	fetcher  forecast.Service
	timezone timezone.Service
	timer    *alarm.Timer
	notifier alarm.Notifier
	metrics  *metrics.Metrics
	opts     Options
	logger   *slog.Logger
}

func NewScreen(deps Dependencies, opts Options, logger *slog.Logger) *Screen {
	s := &Screen{
		display:  NewDisplayState(),
		location: time.UTC,
		resolver: deps.Resolver,
		fetcher:  deps.Fetcher,
		timezone: deps.Timezone,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		opts:     opts,
		logger:   logger.With("component", "screen"),
	}
	alarmOpts := append([]alarm.Option{alarm.WithMetrics(deps.Metrics)}, deps.AlarmOptions...)
	s.timer = alarm.NewTimer(alarm.NotifierFunc(s.alert), logger, alarmOpts...)
	return s
}

// Mount runs the resolve -> fetch chain once. The forecast fetch starts only
// after coordinates are known. Errors are also reflected in the display status.
func (s *Screen) Mount(ctx context.Context) error {
	s.mu.Lock()
	if s.tornDown {
		s.mu.Unlock()
		return ErrTornDown
	}
	if s.mounting {
		s.mu.Unlock()
		return ErrMountInProgress
	}
	s.mounting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.mounting = false
		s.mu.Unlock()
	}()

	if s.opts.MountTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.MountTimeout)
		defer cancel()
	}

	status, err := s.run(ctx)
	s.metrics.ObserveMount(string(status))
	return err
}

// Retry resets the screen to its loading state and mounts again
func (s *Screen) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.tornDown {
		s.mu.Unlock()
		return ErrTornDown
	}
	if s.mounting {
		s.mu.Unlock()
		return ErrMountInProgress
	}
	s.display = NewDisplayState()
	snapshot := s.display.clone()
	s.mu.Unlock()

	s.changed(snapshot)
	return s.Mount(ctx)
}

func (s *Screen) run(ctx context.Context) (Status, error) {
	resolution, err := s.resolver.Resolve(ctx)
	if resolution != nil && !resolution.PermissionGranted {
		s.update(func(d *DisplayState) {
			d.PermissionGranted = false
		})
	}
	if err != nil {
		status := StatusLocationError
		if errors.Is(err, location.ErrPermissionDenied) {
			status = StatusPermissionRequired
		}
		s.fail(status, err)
		return status, fmt.Errorf("failed to resolve location: %w", err)
	}

	loc, tzName := s.lookupLocation(resolution.Coordinates)

	placeName := resolution.PlaceName
	if !resolution.HasPlaceName {
		placeName = UnknownPlaceName
	}
	s.mu.Lock()
	s.location = loc
	s.mu.Unlock()
	s.update(func(d *DisplayState) {
		d.PlaceName = placeName
		d.Timezone = tzName
	})

	days, err := s.fetcher.Fetch(ctx, resolution.Coordinates)
	if err != nil {
		s.fail(StatusForecastError, err)
		return StatusForecastError, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	s.update(func(d *DisplayState) {
		d.Forecasts = days
		d.Status = StatusReady
		d.Error = ""
	})

	s.logger.Info("screen loaded",
		"place", placeName,
		"days", len(days),
	)

	return StatusReady, nil
}

func (s *Screen) lookupLocation(coords types.Coords) (*time.Location, string) {
	loc := timezone.LoadLocation(s.timezone, coords.Latitude, coords.Longitude)
	return loc, loc.String()
}

func (s *Screen) fail(status Status, err error) {
	s.logger.Error("screen failed to load", "status", status, "error", err)
	s.update(func(d *DisplayState) {
		d.Status = status
		d.Error = err.Error()
	})
}

func (s *Screen) update(mutate func(*DisplayState)) {
	s.mu.Lock()
	mutate(&s.display)
	snapshot := s.display.clone()
	s.mu.Unlock()

	s.changed(snapshot)
}

func (s *Screen) changed(snapshot DisplayState) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(snapshot)
	}
}

// Display returns a snapshot of the display state
func (s *Screen) Display() DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display.clone()
}

// View renders the current display state in the location's time zone
func (s *Screen) View() ViewModel {
	s.mu.RLock()
	state := s.display.clone()
	loc := s.location
	s.mu.RUnlock()
	return Render(state, loc)
}

// Location is the time zone of the resolved position, UTC until resolved
func (s *Screen) Location() *time.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// Toggle flips the UI toggle and returns its new value. It has no other effect.
func (s *Screen) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggled = !s.toggled
	return s.toggled
}

func (s *Screen) Toggled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toggled
}

// AlarmState is the alarm snapshot plus the most recent alert
type AlarmState struct {
	alarm.State
	LastAlert *alarm.Alarm `json:"lastAlert,omitempty"`
}

func (s *Screen) Alarm() AlarmState {
	state := AlarmState{State: s.timer.State()}
	s.mu.RLock()
	if s.lastAlert != nil {
		a := *s.lastAlert
		state.LastAlert = &a
	}
	s.mu.RUnlock()
	return state
}

// ArmAlarm arms the single alarm at target, replacing any armed one
func (s *Screen) ArmAlarm(target time.Time) (AlarmState, error) {
	if _, err := s.timer.Arm(target); err != nil {
		if errors.Is(err, alarm.ErrClosed) {
			return AlarmState{}, ErrTornDown
		}
		return AlarmState{}, err
	}
	return s.Alarm(), nil
}

// ArmAlarmAt arms the alarm at the next occurrence of a wall-clock time
// in the screen's time zone
func (s *Screen) ArmAlarmAt(clock string, now time.Time) (AlarmState, error) {
	target, err := PickTime(clock, now, s.Location())
	if err != nil {
		return AlarmState{}, err
	}
	return s.ArmAlarm(target)
}

func (s *Screen) DisarmAlarm() bool {
	return s.timer.Disarm()
}

// Teardown cancels any outstanding alarm. The screen cannot be mounted afterwards.
func (s *Screen) Teardown() {
	s.mu.Lock()
	s.tornDown = true
	s.mu.Unlock()

	s.timer.Close()
	s.logger.Info("screen torn down")
}

func (s *Screen) alert(ctx context.Context, a alarm.Alarm) {
	s.mu.Lock()
	s.lastAlert = &a
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(ctx, a)
	}
}
