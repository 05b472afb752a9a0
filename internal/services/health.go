package services

import (
	"context"

	"gorm.io/gorm"

	"formintake/internal/database"
)

// HealthResult is the health endpoint payload
type HealthResult struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// HealthService implements the health service
type HealthService struct {
	name string
	db   *gorm.DB
}

// NewHealthService creates a new health service
func NewHealthService(name string, db *gorm.DB) *HealthService {
	return &HealthService{name: name, db: db}
}

// Check reports the service as healthy when the database answers a ping.
func (s *HealthService) Check(ctx context.Context) (*HealthResult, error) {
	res := &HealthResult{Status: "healthy", Service: s.name, Database: "up"}
	if err := database.HealthCheck(ctx, s.db); err != nil {
		res.Status = "unhealthy"
		res.Database = "down"
		return res, err
	}
	return res, nil
}
