package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/walkroute/backend/internal/infrastructure/gemini"
	"github.com/walkroute/backend/internal/infrastructure/maps"
	appErrors "github.com/walkroute/backend/pkg/errors"
	"github.com/walkroute/backend/pkg/geojson"
)

// TrailRequest represents a trail recommendation request
type TrailRequest struct {
	Distance  string  `json:"distance" binding:"required"`
	Theme     string  `json:"theme" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// TrailDetail carries the descriptive fields Gemini produces for a trail
type TrailDetail struct {
	TrailName     string `json:"trail_name"`
	MainFeatures  string `json:"main_features"`
	EstimatedTime string `json:"estimated_time"`
	RouteGuide    string `json:"route_guide"`
}

// Recommendation is a completed trail recommendation
type Recommendation struct {
	ID          string               `json:"id"`
	RouteName   string               `json:"route_name"`
	Detail      *TrailDetail         `json:"detail,omitempty"`
	Waypoints   []string             `json:"waypoints,omitempty"`
	Coordinates []geojson.Coordinate `json:"coordinates"`
	GeoJSON     geojson.Feature      `json:"geojson"`
	CreatedAt   time.Time            `json:"created_at"`
}

// RecommendationService orchestrates the Gemini and Maps clients into a
// single trail recommendation pipeline.
type RecommendationService struct {
	llm      gemini.TextGenerator
	resolver maps.Resolver
	cache    *RecommendationCache
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(llm gemini.TextGenerator, resolver maps.Resolver, cache *RecommendationCache) *RecommendationService {
	return &RecommendationService{
		llm:      llm,
		resolver: resolver,
		cache:    cache,
	}
}

// Recommend runs the full pipeline: trail name, detail, waypoints, then
// coordinates. Only the name step is fatal; later steps degrade the response
// rather than failing it.
func (s *RecommendationService) Recommend(ctx context.Context, req TrailRequest) (*Recommendation, error) {
	routeName, err := s.trailName(ctx, req)
	if err != nil {
		return nil, appErrors.NewUpstreamError("gemini", "trail name generation failed", err)
	}
	log.Printf("📄 Recommended trail name: %s", routeName)

	detail := s.trailDetail(ctx, routeName)
	waypoints := s.trailWaypoints(ctx, routeName, req.Latitude, req.Longitude)
	coords := s.resolveCoordinates(ctx, waypoints)

	rec := &Recommendation{
		ID:          uuid.NewString(),
		RouteName:   routeName,
		Detail:      detail,
		Waypoints:   waypoints,
		Coordinates: coords,
		GeoJSON:     geojson.LineString(coords),
		CreatedAt:   time.Now().UTC(),
	}
	s.cache.Put(rec)
	return rec, nil
}

// Get returns a previously computed recommendation by ID.
func (s *RecommendationService) Get(id string) (*Recommendation, error) {
	rec, ok := s.cache.Get(id)
	if !ok {
		return nil, appErrors.NewNotFoundError("recommendation", id)
	}
	return rec, nil
}

func (s *RecommendationService) trailName(ctx context.Context, req TrailRequest) (string, error) {
	text, err := s.llm.GenerateText(ctx, trailNamePrompt(req.Distance, req.Theme, req.Latitude, req.Longitude))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// trailDetail asks for the descriptive JSON block. A failure here is logged
// and the recommendation continues without a detail section.
func (s *RecommendationService) trailDetail(ctx context.Context, routeName string) *TrailDetail {
	text, err := s.llm.GenerateText(ctx, trailDetailPrompt(routeName))
	if err != nil {
		log.Printf("❌ Gemini detail error: %v", err)
		return nil
	}

	var detail TrailDetail
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &detail); err != nil {
		log.Printf("❌ Gemini detail error: %v", err)
		return nil
	}
	return &detail
}

// trailWaypoints reverse-geocodes the start position into a place name, then
// asks Gemini for a closed loop of waypoints through it. Failures yield an
// empty list.
func (s *RecommendationService) trailWaypoints(ctx context.Context, routeName string, lat, lng float64) []string {
	startLocation, err := s.resolver.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		log.Printf("❌ Reverse geocoding error: %v", err)
		startLocation = "Starting Point"
	}

	text, err := s.llm.GenerateText(ctx, trailWaypointsPrompt(routeName, startLocation))
	if err != nil {
		log.Printf("❌ Waypoints extraction error: %v", err)
		return nil
	}

	var parsed struct {
		Waypoints []string `json:"waypoints"`
	}
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &parsed); err != nil {
		log.Printf("❌ Waypoints extraction error: %v", err)
		return nil
	}
	return parsed.Waypoints
}

// resolveCoordinates turns waypoint names into an ordered coordinate path.
// A walking-directions route is preferred; when the directions API is
// unavailable each waypoint is geocoded individually instead. Any failure in
// the fallback yields an empty path (the route name and detail still stand).
func (s *RecommendationService) resolveCoordinates(ctx context.Context, waypoints []string) []geojson.Coordinate {
	if len(waypoints) < 2 {
		return nil
	}

	if err := s.resolver.VerifyKey(ctx); err != nil {
		log.Printf("❌ Google Maps API key verification error: %v", err)
		return nil
	}

	coords, err := s.resolver.WalkingDirections(ctx, waypoints)
	if err == nil {
		return coords
	}
	log.Printf("❌ Google Maps directions error: %v", err)

	var fallback []geojson.Coordinate
	for _, waypoint := range waypoints {
		log.Printf("🔍 Getting coordinates for: %s", waypoint)
		coord, err := s.resolver.Geocode(ctx, waypoint)
		if err != nil {
			log.Printf("❌ Geocoding error for %s: %v", waypoint, err)
			return nil
		}
		fallback = append(fallback, coord)
	}
	return fallback
}
