package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"daycast/internal/types"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
)

// Resolution is the outcome of a single resolve
type Resolution struct {
	Coordinates       types.Coords
	PlaceName         string
	HasPlaceName      bool
	PermissionGranted bool
}

// Service resolves the current position and its place name
type Service interface {
	Resolve(ctx context.Context) (*Resolution, error)
}

// Options controls resolver behaviour
type Options struct {
	// ContinueOnPermissionDenied still samples the position after a denial.
	// The resolution then carries PermissionGranted=false and no error.
	ContinueOnPermissionDenied bool
	Accuracy                   Accuracy
}

// resolver implements the Service interface
type resolver struct {
	source   PositionSource
	geocoder ReverseGeocoder
	opts     Options
	logger   *slog.Logger
}

// NewResolver creates a location service from a position source and a geocoder
func NewResolver(source PositionSource, geocoder ReverseGeocoder, opts Options, logger *slog.Logger) Service {
	if opts.Accuracy == 0 {
		opts.Accuracy = AccuracyHighest
	}
	return &resolver{
		source:   source,
		geocoder: geocoder,
		opts:     opts,
		logger:   logger.With("component", "location-resolver"),
	}
}

// Resolve asks for permission, samples the position once and reverse-geocodes it.
// On ErrPermissionDenied the returned resolution is non-nil with PermissionGranted=false.
func (r *resolver) Resolve(ctx context.Context) (*Resolution, error) {
	granted, err := r.source.RequestPermission(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to request permission: %w", err)
	}

	resolution := &Resolution{PermissionGranted: granted}

	if !granted {
		if !r.opts.ContinueOnPermissionDenied {
			r.logger.Warn("location permission denied")
			return resolution, ErrPermissionDenied
		}
		r.logger.Warn("location permission denied, requesting position anyway")
	}

	coords, err := r.source.CurrentPosition(ctx, r.opts.Accuracy)
	if err != nil {
		r.logger.Error("failed to get current position", "error", err)
		return resolution, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	}
	if err := coords.Validate(); err != nil {
		return resolution, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	}
	resolution.Coordinates = coords

	places, err := r.geocoder.ReverseGeocode(ctx, coords, GeocodeOptions{UseMapProvider: false})
	if err != nil {
		r.logger.Error("failed to reverse geocode",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return resolution, fmt.Errorf("%w: reverse geocode: %w", ErrLocationUnavailable, err)
	}

	// Only the first candidate is considered
	if len(places) > 0 && places[0].City != "" {
		resolution.PlaceName = places[0].City
		resolution.HasPlaceName = true
	} else {
		r.logger.Warn("reverse geocode returned no city",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"candidates", len(places),
		)
	}

	r.logger.Debug("resolved location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"place", resolution.PlaceName,
	)

	return resolution, nil
}
