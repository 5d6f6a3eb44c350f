// Package maps wraps the Google Maps web-service APIs used to turn place
// names into coordinates and waypoint lists into walkable paths.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/walkroute/backend/pkg/geojson"
)

// Resolver is the interface the recommendation service consumes
type Resolver interface {
	Geocode(ctx context.Context, address string) (geojson.Coordinate, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
	WalkingDirections(ctx context.Context, waypoints []string) ([]geojson.Coordinate, error)
	VerifyKey(ctx context.Context) error
}

// Client talks to the Maps geocoding and directions endpoints
type Client struct {
	BaseURL    string
	APIKey     string
	Region     string
	HTTPClient *http.Client
}

// NewClient creates a Maps client. The region biases geocoding results the
// way the service expects (Seoul trails → "kr").
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Region:  "kr",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Routes       []struct {
		Legs []struct {
			Steps []struct {
				StartLocation latLng `json:"start_location"`
				EndLocation   latLng `json:"end_location"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Helper to execute requests
func (c *Client) doRequest(ctx context.Context, path string, params url.Values, result interface{}) error {
	params.Set("key", c.APIKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("maps api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusError converts a non-OK API status into an error carrying the
// error_message the API attached, if any.
func statusError(endpoint, status, message string) error {
	if message != "" {
		return fmt.Errorf("%s returned status %s: %s", endpoint, status, message)
	}
	return fmt.Errorf("%s returned status %s", endpoint, status)
}

// Geocode resolves a place name to the coordinate of its first match.
func (c *Client) Geocode(ctx context.Context, address string) (geojson.Coordinate, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("region", c.Region)

	var resp geocodeResponse
	if err := c.doRequest(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return geojson.Coordinate{}, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return geojson.Coordinate{}, statusError("geocode", resp.Status, resp.ErrorMessage)
	}

	loc := resp.Results[0].Geometry.Location
	return geojson.NewCoordinate(loc.Lng, loc.Lat), nil
}

// ReverseGeocode resolves a coordinate to the formatted address of its first
// match.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("region", c.Region)

	var resp geocodeResponse
	if err := c.doRequest(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return "", err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return "", statusError("reverse geocode", resp.Status, resp.ErrorMessage)
	}

	return resp.Results[0].FormattedAddress, nil
}

// WalkingDirections requests a walking route through the given waypoints
// (first entry is the origin, last the destination) and flattens it into an
// ordered coordinate path: every step's start location plus each leg's final
// end location.
func (c *Client) WalkingDirections(ctx context.Context, waypoints []string) ([]geojson.Coordinate, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("directions require at least origin and destination, got %d waypoints", len(waypoints))
	}

	params := url.Values{}
	params.Set("origin", waypoints[0])
	params.Set("destination", waypoints[len(waypoints)-1])
	params.Set("mode", "walking")
	params.Set("region", c.Region)
	if middle := waypoints[1 : len(waypoints)-1]; len(middle) > 0 {
		params.Set("waypoints", strings.Join(middle, "|"))
	}

	var resp directionsResponse
	if err := c.doRequest(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" || len(resp.Routes) == 0 {
		return nil, statusError("directions", resp.Status, resp.ErrorMessage)
	}

	var coords []geojson.Coordinate
	for _, leg := range resp.Routes[0].Legs {
		if len(leg.Steps) == 0 {
			continue
		}
		for _, step := range leg.Steps {
			coords = append(coords, geojson.NewCoordinate(step.StartLocation.Lng, step.StartLocation.Lat))
		}
		last := leg.Steps[len(leg.Steps)-1]
		coords = append(coords, geojson.NewCoordinate(last.EndLocation.Lng, last.EndLocation.Lat))
	}
	return coords, nil
}

// VerifyKey exercises the geocoding endpoint with a known address to confirm
// the API key is valid and the required APIs are enabled before a directions
// request is attempted.
func (c *Client) VerifyKey(ctx context.Context) error {
	_, err := c.Geocode(ctx, "Seoul Station, Seoul, South Korea")
	if err != nil {
		return fmt.Errorf("maps api key verification failed: %w", err)
	}
	return nil
}
