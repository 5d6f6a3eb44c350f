package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walkroute/backend/internal/application/services"
	"github.com/walkroute/backend/internal/interfaces/rest"
	appErrors "github.com/walkroute/backend/pkg/errors"
	"github.com/walkroute/backend/pkg/geojson"
)

// MockRecommender is a mock implementation of the Recommender interface
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(ctx context.Context, req services.TrailRequest) (*services.Recommendation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Recommendation), args.Error(1)
}

func (m *MockRecommender) Get(id string) (*services.Recommendation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Recommendation), args.Error(1)
}

func sampleRecommendation() *services.Recommendation {
	coords := []geojson.Coordinate{
		geojson.NewCoordinate(127.1214, 37.5202),
		geojson.NewCoordinate(127.1230, 37.5215),
	}
	return &services.Recommendation{
		ID:          "rec-123",
		RouteName:   "2km Nature Trail at Olympic Park",
		Coordinates: coords,
		GeoJSON:     geojson.LineString(coords),
	}
}

func TestRecommendHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockRecommender)
	handler := rest.NewRecommendHandler(mockSvc)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		reqBody := services.TrailRequest{
			Distance:  "2km",
			Theme:     "nature",
			Latitude:  37.5202,
			Longitude: 127.1214,
		}
		jsonBytes, _ := json.Marshal(reqBody)
		c.Request = httptest.NewRequest("POST", "/recommend", bytes.NewBuffer(jsonBytes))
		c.Request.Header.Set("Content-Type", "application/json")

		mockSvc.On("Recommend", mock.Anything, reqBody).Return(sampleRecommendation(), nil).Once()

		handler.Recommend(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "rec-123", resp["id"])
		assert.Equal(t, "2km Nature Trail at Olympic Park", resp["route_name"])
		assert.Len(t, resp["coordinates"], 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest("POST", "/recommend", bytes.NewBufferString(`{"distance": "2km"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Recommend(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp["code"])
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		reqBody := services.TrailRequest{
			Distance:  "3km",
			Theme:     "history",
			Latitude:  37.57,
			Longitude: 126.98,
		}
		jsonBytes, _ := json.Marshal(reqBody)
		c.Request = httptest.NewRequest("POST", "/recommend", bytes.NewBuffer(jsonBytes))
		c.Request.Header.Set("Content-Type", "application/json")

		mockSvc.On("Recommend", mock.Anything, reqBody).
			Return(nil, appErrors.NewUpstreamError("gemini", "trail name generation failed", nil)).Once()

		handler.Recommend(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRecommendHandler_GetRecommendation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockRecommender)
	handler := rest.NewRecommendHandler(mockSvc)

	t.Run("Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/recommend/rec-123", nil)
		c.Params = gin.Params{{Key: "id", Value: "rec-123"}}

		mockSvc.On("Get", "rec-123").Return(sampleRecommendation(), nil).Once()

		handler.GetRecommendation(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		rec := resp["recommendation"].(map[string]interface{})
		assert.Equal(t, "rec-123", rec["id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/recommend/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		mockSvc.On("Get", "missing").Return(nil, appErrors.NewNotFoundError("recommendation", "missing")).Once()

		handler.GetRecommendation(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockSvc.AssertExpectations(t)
	})
}
