// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"employee-directory/config"
	"employee-directory/internal/repository/postgres"
	"employee-directory/internal/repository/postgrest"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	EmployeeInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendPostgREST:
		return postgrest.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
