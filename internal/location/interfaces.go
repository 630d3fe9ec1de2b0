package location

import (
	"context"

	"daycast/internal/types"
)

// Accuracy is the precision tier requested from a PositionSource.
// Tiers are numbered 1 (lowest) to 5 (highest) like the platform location API.
type Accuracy int

const (
	AccuracyLowest Accuracy = iota + 1
	AccuracyLow
	AccuracyBalanced
	AccuracyHigh
	AccuracyHighest
)

// PositionSource is the device location collaborator
type PositionSource interface {
	// RequestPermission asks for foreground location access
	RequestPermission(ctx context.Context) (bool, error)
	// CurrentPosition returns a single position sample
	CurrentPosition(ctx context.Context, accuracy Accuracy) (types.Coords, error)
}

// GeocodeOptions mirrors the platform reverse-geocode options
type GeocodeOptions struct {
	UseMapProvider bool
}

// ReverseGeocoder turns coordinates into ordered place candidates
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coords types.Coords, opts GeocodeOptions) ([]types.Place, error)
}
