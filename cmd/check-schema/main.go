// Command check-schema prints a sample employee row and its column names.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"employee-directory/config"
	"employee-directory/internal/entities"
	"employee-directory/internal/repository"
	"employee-directory/internal/usecase"
	"employee-directory/pkg/logger"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 1
	}

	log, err := logger.New("error")
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return 1
	}

	repo, err := repository.New(ctx, cfg.Source.Backend, log, cfg)
	if err != nil {
		fmt.Fprintln(stderr, "repository:", err)
		return 1
	}
	if err := repo.OnStart(ctx); err != nil {
		fmt.Fprintln(stderr, "repository start:", err)
		return 1
	}
	defer func() { _ = repo.OnStop(ctx) }()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout)
	return inspect(ctx, uc, stdout, stderr)
}

func inspect(ctx context.Context, uc usecase.EmployeeUsecaseInterface, stdout, stderr io.Writer) int {
	rec, ok, err := uc.SampleEmployee(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "Error fetching employees:", entities.FetchMessage(err))
		return 1
	}

	sample := []entities.EmployeeRecord{}
	if ok {
		sample = append(sample, rec)
	}
	out, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, "encode sample:", err)
		return 1
	}
	fmt.Fprintln(stdout, "Sample employee record:", string(out))

	if ok {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Table columns:", strings.Join(rec.Columns(), ", "))
	}
	return 0
}
