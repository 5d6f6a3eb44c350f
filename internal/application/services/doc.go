// Package services provides the business logic layer for WalkRoute.
//
// This package contains the service implementations that handle:
//   - Trail recommendation orchestration across the Gemini and Maps
//     clients (RecommendationService)
//   - In-memory retention of completed recommendations (RecommendationCache)
//   - Scheduled cache eviction (ServiceManager)
//
// All services follow clean architecture principles with dependency injection
// and are designed to be testable and maintainable.
package services
