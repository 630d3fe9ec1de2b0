//go:build integration

package openweathermap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestClient_GetOneCall_Integration(t *testing.T) {
	apiKey := os.Getenv("DAYCAST_OPENWEATHERMAP_APIKEY")
	if apiKey == "" {
		t.Skip("DAYCAST_OPENWEATHERMAP_APIKEY not set")
	}

	// Test coordinates: Seoul
	lat := 37.5
	lon := 127.0

	client := NewClient(apiKey, slog.Default())

	t.Logf("Making API call to OpenWeatherMap One Call API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetOneCall(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(*resp.Daily) == 0 {
		t.Fatal("No daily data")
	}

	for i := 1; i < len(*resp.Daily); i++ {
		if (*resp.Daily)[i].Dt <= (*resp.Daily)[i-1].Dt {
			t.Errorf("daily entries not in chronological order at index %d", i)
		}
	}

	t.Log("✓ API call successful, response structure valid")
}
