package service

import (
	"context"
	"encoding/json"
	"time"

	"institute_backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates the admin dashboard counters. When a
// Redis client is configured the summary is cached briefly; a nil
// client means every request hits the database.
type DashboardService struct {
	DashboardRepo *repository.DashboardRepository
	Redis         *redis.Client
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository, redisClient *redis.Client) *DashboardService {
	return &DashboardService{
		DashboardRepo: dashboardRepo,
		Redis:         redisClient,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*repository.DashboardSummary, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var summary repository.DashboardSummary
			if jsonErr := json.Unmarshal([]byte(cached), &summary); jsonErr == nil {
				return &summary, nil
			}
		} else if err != redis.Nil {
			zap.L().Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	summary, err := s.DashboardRepo.Summary()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, jsonErr := json.Marshal(summary); jsonErr == nil {
			if err := s.Redis.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				zap.L().Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return summary, nil
}
