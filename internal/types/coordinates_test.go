package types

import (
	"errors"
	"testing"
)

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coords
		wantErr error
	}{
		{"valid", NewCoords(37.5, 127.0), nil},
		{"poles", NewCoords(-90, 180), nil},
		{"latitude too high", NewCoords(91, 0), ErrInvalidLatitude},
		{"longitude too low", NewCoords(0, -181), ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
