// Package postgrest implements the repository against a hosted PostgREST
// endpoint such as Supabase.
package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"employee-directory/config"

	pgrest "github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"
)

const restPath = "/rest/v1"

// PostgREST queries tables over HTTP with an API key.
type PostgREST struct {
	log    *zap.SugaredLogger
	cfg    config.PostgRESTConfig
	table  string
	client *pgrest.Client
}

// New creates a PostgREST repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *PostgREST {
	return &PostgREST{
		log:   log.Named("repo.postgrest"),
		cfg:   cfg.PostgREST,
		table: cfg.Source.Table,
	}
}

// OnStart validates the endpoint URL and builds the REST client.
func (p *PostgREST) OnStart(_ context.Context) error {
	base := strings.TrimRight(p.cfg.URL, "/")
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse postgrest url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("postgrest url must be http(s): %q", p.cfg.URL)
	}

	client := pgrest.NewClient(base+restPath, "", map[string]string{
		"apikey":        p.cfg.Key,
		"Authorization": "Bearer " + p.cfg.Key,
	})
	if client.ClientError != nil {
		return fmt.Errorf("postgrest client: %w", client.ClientError)
	}

	p.client = client
	p.log.Infow("postgrest ready", "host", u.Host, "table", p.table)
	return nil
}

// OnStop is a no-op; the client holds no resources beyond pooled connections.
func (p *PostgREST) OnStop(_ context.Context) error {
	return nil
}
