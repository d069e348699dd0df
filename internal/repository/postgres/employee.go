package postgres

import (
	"context"
	"errors"
	"fmt"

	"employee-directory/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

var errNotStarted = errors.New("postgres repository is not started")

// ListEmployees runs SELECT * over the employees table ordered by id.
func (p *Postgres) ListEmployees(ctx context.Context, limit int) ([]entities.EmployeeRecord, error) {
	if p.db == nil {
		return nil, entities.NewFetchError("", errNotStarted)
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id ASC", pgx.Identifier{p.table}.Sanitize())
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to query employees", "error", err, "table", p.table)
		return nil, fetchError(err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		p.log.Errorw("failed to collect employees", "error", err, "table", p.table)
		return nil, fetchError(err)
	}

	records := make([]entities.EmployeeRecord, 0, len(maps))
	for _, m := range maps {
		for k, v := range m {
			m[k] = plainValue(v)
		}
		records = append(records, entities.EmployeeRecord(m))
	}

	p.log.Debugw("employees fetched", "count", len(records), "limit", limit)
	return records, nil
}

func fetchError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return entities.NewFetchError(pgErr.Message, err)
	}
	return entities.NewFetchError(err.Error(), err)
}

// plainValue converts driver-specific column values into types that print and
// marshal naturally.
func plainValue(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	default:
		return v
	}
}
