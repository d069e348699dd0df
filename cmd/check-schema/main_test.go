package main

import (
	"bytes"
	"context"
	"testing"

	"employee-directory/internal/entities"

	"github.com/stretchr/testify/require"
)

type sampleStub struct {
	rec entities.EmployeeRecord
	ok  bool
	err error
}

func (s sampleStub) ListEmployees(context.Context) ([]entities.EmployeeRecord, error) {
	return nil, s.err
}

func (s sampleStub) SampleEmployee(context.Context) (entities.EmployeeRecord, bool, error) {
	return s.rec, s.ok, s.err
}

func TestInspectPrintsSample(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := inspect(context.Background(), sampleStub{
		rec: entities.EmployeeRecord{"id": 1, "name": "Ada", "email": "ada@example.com"},
		ok:  true,
	}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
	out := stdout.String()
	require.Contains(t, out, "Sample employee record: [\n  {\n")
	require.Contains(t, out, `"name": "Ada"`)
	require.Contains(t, out, "Table columns: email, id, name\n")
}

func TestInspectEmptyTable(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := inspect(context.Background(), sampleStub{}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, "Sample employee record: []\n", stdout.String())
}

func TestInspectFetchError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := inspect(context.Background(), sampleStub{
		err: entities.NewFetchError("connection refused", nil),
	}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Equal(t, "Error fetching employees: connection refused\n", stderr.String())
}
