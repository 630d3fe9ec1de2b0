package screen

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTime = errors.New("invalid alarm time")

var clockLayouts = []string{"15:04", "3:04PM", "3:04 PM", "15:04:05"}

// PickTime turns a wall-clock time such as "07:30" into its next occurrence
// after now in loc. A time equal to now rolls over to tomorrow.
func PickTime(clock string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	clock = strings.ToUpper(strings.TrimSpace(clock))

	var parsed time.Time
	var err error
	for _, layout := range clockLayouts {
		parsed, err = time.Parse(layout, clock)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	local := now.In(loc)
	target := time.Date(local.Year(), local.Month(), local.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc)
	if !target.After(local) {
		target = time.Date(local.Year(), local.Month(), local.Day()+1,
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc)
	}
	return target, nil
}
