package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/walkroute/backend/internal/infrastructure/gemini"
	"github.com/walkroute/backend/internal/infrastructure/maps"
)

// ServiceManager wires the service layer together and owns the background
// scheduler.
type ServiceManager struct {
	Recommendation *RecommendationService
	Cache          *RecommendationCache

	scheduler *cron.Cron
}

// NewServiceManager creates the service graph from the two external clients.
func NewServiceManager(llm gemini.TextGenerator, resolver maps.Resolver) *ServiceManager {
	cache := NewRecommendationCache(DefaultRecommendationTTL)
	return &ServiceManager{
		Recommendation: NewRecommendationService(llm, resolver, cache),
		Cache:          cache,
	}
}

// StartScheduler starts the background cache-eviction job (1 minute cadence).
func (m *ServiceManager) StartScheduler() {
	m.scheduler = cron.New()
	m.scheduler.AddFunc("@every 1m", func() {
		if evicted := m.Cache.PurgeExpired(); evicted > 0 {
			log.Printf("🧹 Evicted %d expired recommendation(s)", evicted)
		}
	})
	m.scheduler.Start()
}

// StopScheduler stops the scheduler and waits for any running job to finish.
func (m *ServiceManager) StopScheduler() {
	if m.scheduler == nil {
		return
	}
	ctx := m.scheduler.Stop()
	<-ctx.Done()
}
