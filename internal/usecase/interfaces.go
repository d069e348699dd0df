package usecase

import (
	"context"

	"employee-directory/internal/entities"
)

// EmployeeUsecaseInterface abstracts employee read operations for delivery layer.
type EmployeeUsecaseInterface interface {
	ListEmployees(ctx context.Context) ([]entities.EmployeeRecord, error)
	SampleEmployee(ctx context.Context) (entities.EmployeeRecord, bool, error)
}
