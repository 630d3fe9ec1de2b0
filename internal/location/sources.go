package location

import (
	"context"
	"errors"
	"fmt"

	"daycast/internal/providers/ipapi"
	"daycast/internal/providers/openstreetmap"
	"daycast/internal/types"
)

// StaticSource reports fixed coordinates, e.g. from configuration
type StaticSource struct {
	Coords types.Coords
	Denied bool
}

func (s StaticSource) RequestPermission(ctx context.Context) (bool, error) {
	return !s.Denied, nil
}

func (s StaticSource) CurrentPosition(ctx context.Context, accuracy Accuracy) (types.Coords, error) {
	return s.Coords, nil
}

// IPLookup is satisfied by ipapi.Client
type IPLookup interface {
	Lookup(ctx context.Context) (*ipapi.LookupAPIResponse, error)
}

// IPSource approximates the device position from its public IP address.
// Accuracy is whatever the geolocation database provides.
type IPSource struct {
	lookup IPLookup
}

func NewIPSource(lookup IPLookup) *IPSource {
	return &IPSource{lookup: lookup}
}

// RequestPermission always succeeds, there is no prompt for IP geolocation
func (s *IPSource) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *IPSource) CurrentPosition(ctx context.Context, accuracy Accuracy) (types.Coords, error) {
	resp, err := s.lookup.Lookup(ctx)
	if err != nil {
		return types.Coords{}, fmt.Errorf("ip geolocation: %w", err)
	}
	return types.NewCoords(resp.Lat, resp.Lon), nil
}

// ReverseLookup is satisfied by openstreetmap.Client
type ReverseLookup interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// NominatimGeocoder reverse-geocodes through OpenStreetMap Nominatim
type NominatimGeocoder struct {
	lookup ReverseLookup
}

func NewNominatimGeocoder(lookup ReverseLookup) *NominatimGeocoder {
	return &NominatimGeocoder{lookup: lookup}
}

// ReverseGeocode returns at most one candidate. Nominatim is not a map
// provider geocoder, so opts.UseMapProvider has no effect.
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, coords types.Coords, opts GeocodeOptions) ([]types.Place, error) {
	resp, err := g.lookup.Lookup(ctx, coords.Latitude, coords.Longitude)
	if errors.Is(err, openstreetmap.ErrNoResult) {
		return []types.Place{}, nil
	}
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("lookup response is nil")
	}

	return []types.Place{translatePlace(resp)}, nil
}

// translatePlace converts an OpenStreetMap reverse lookup response to a Place
func translatePlace(resp *openstreetmap.LookupAPIResponse) types.Place {
	return types.Place{
		City:        resp.Address.Locality(),
		District:    resp.Address.County,
		Region:      resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
		DisplayName: resp.DisplayName,
	}
}
