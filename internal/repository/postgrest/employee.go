package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"employee-directory/internal/entities"

	pgrest "github.com/supabase-community/postgrest-go"
)

var (
	errNotStarted = errors.New("postgrest repository is not started")

	// The client reports API errors as "(<code>) <message>".
	codePrefixRe = regexp.MustCompile(`^\([^)]*\) `)
)

type result struct {
	body []byte
	err  error
}

// ListEmployees issues select=* ordered by id ascending.
func (p *PostgREST) ListEmployees(ctx context.Context, limit int) ([]entities.EmployeeRecord, error) {
	if p.client == nil {
		return nil, entities.NewFetchError("", errNotStarted)
	}

	query := p.client.From(p.table).
		Select("*", "", false).
		Order("id", &pgrest.OrderOpts{Ascending: true})
	if limit > 0 {
		query = query.Limit(limit, "")
	}

	body, err := p.execute(ctx, query)
	if err != nil {
		p.log.Errorw("failed to fetch employees", "error", err, "table", p.table)
		return nil, fetchError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		p.log.Errorw("failed to decode employees", "error", err, "table", p.table)
		return nil, entities.NewFetchError("", fmt.Errorf("decode employees: %w", err))
	}

	records := make([]entities.EmployeeRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, entities.EmployeeRecord(r))
	}

	p.log.Debugw("employees fetched", "count", len(records), "limit", limit)
	return records, nil
}

// execute bounds the client call by ctx and postgrest.timeout. The client
// itself takes no context, so an abandoned call finishes in the background.
func (p *PostgREST) execute(ctx context.Context, query *pgrest.FilterBuilder) ([]byte, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		body, _, err := query.Execute()
		done <- result{body: body, err: err}
	}()

	select {
	case res := <-done:
		return res.body, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func fetchError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return entities.NewFetchError("timed out waiting for employees", err)
	}
	msg := codePrefixRe.ReplaceAllString(err.Error(), "")
	if msg == "" {
		msg = err.Error()
	}
	return entities.NewFetchError(msg, err)
}
