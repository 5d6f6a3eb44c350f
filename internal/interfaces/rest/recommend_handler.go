package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walkroute/backend/internal/application/services"
)

// Recommender defines the interface for trail recommendation operations
type Recommender interface {
	Recommend(ctx context.Context, req services.TrailRequest) (*services.Recommendation, error)
	Get(id string) (*services.Recommendation, error)
}

// RecommendHandler handles the trail recommendation API endpoints
type RecommendHandler struct {
	svc Recommender
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(svc Recommender) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Recommend handles POST /recommend
// Runs the full recommendation pipeline and returns the route with its
// coordinate path and GeoJSON rendering.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req services.TrailRequest
	if !BindJSON(c, &req) {
		return
	}

	rec, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          rec.ID,
		"route_name":  rec.RouteName,
		"detail":      rec.Detail,
		"coordinates": rec.Coordinates,
		"geojson":     rec.GeoJSON,
	})
}

// GetRecommendation handles GET /recommend/:id
// Returns a previously computed recommendation while it is still cached.
func (h *RecommendHandler) GetRecommendation(c *gin.Context) {
	HandleGetEnvelope(c, "recommendation", func() (interface{}, error) {
		return h.svc.Get(c.Param("id"))
	})
}
