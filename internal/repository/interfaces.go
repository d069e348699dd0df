// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"employee-directory/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EmployeeInterface exposes read access to the employees collection.
type EmployeeInterface interface {
	// ListEmployees returns rows ordered by id ascending. A positive limit caps
	// the number of rows; zero means all rows.
	ListEmployees(ctx context.Context, limit int) ([]entities.EmployeeRecord, error)
}
