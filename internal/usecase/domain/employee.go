// Package domain contains application Usecases orchestrating employee reads.
package domain

import (
	"context"
	"fmt"

	"employee-directory/internal/entities"
)

// ListEmployees returns every employee ordered by id.
func (u *Usecase) ListEmployees(ctx context.Context) ([]entities.EmployeeRecord, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	records, err := u.repo.ListEmployees(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return records, nil
}

// SampleEmployee returns the first employee row, if any.
func (u *Usecase) SampleEmployee(ctx context.Context) (entities.EmployeeRecord, bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	records, err := u.repo.ListEmployees(ctx, 1)
	if err != nil {
		return nil, false, fmt.Errorf("sample employee: %w", err)
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	return records[0], true, nil
}
