package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/logger"
)

type fakeGenerator struct {
	queries []domain.SearchQuery
	err     error

	gotDescription string
	gotN           int
}

func (g *fakeGenerator) Generate(ctx context.Context, description string, n int) ([]domain.SearchQuery, error) {
	g.gotDescription = description
	g.gotN = n
	return g.queries, g.err
}

type fakeFetcher struct {
	listings []domain.JobListing
	err      error

	gotQueries  []domain.SearchQuery
	gotLocation string
}

func (f *fakeFetcher) Fetch(ctx context.Context, queries []domain.SearchQuery, location string) ([]domain.JobListing, error) {
	f.gotQueries = queries
	f.gotLocation = location
	return f.listings, f.err
}

func quietLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Format: "text", Output: io.Discard})
}

func TestSearchMockFallback(t *testing.T) {
	tests := []struct {
		name string
		caps config.Capabilities
	}{
		{"no credentials", config.Capabilities{}},
		{"genai only", config.Capabilities{GenAI: true}},
		{"search only", config.Capabilities{Search: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewJobSearchService(tt.caps, nil, nil, 3, quietLogger())

			result, err := svc.Search(context.Background(), &SearchRequest{Query: "golang developer"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Mock {
				t.Error("expected mock flag")
			}
			if result.Message == "" {
				t.Error("expected explanatory message")
			}
			if len(result.Jobs) != 3 {
				t.Fatalf("expected exactly 3 sample listings, got %d", len(result.Jobs))
			}
			companies := []string{"TechCorp", "StartupXYZ", "Enterprise Solutions Inc"}
			for i, want := range companies {
				if result.Jobs[i].Company != want {
					t.Errorf("listing %d company = %q, want %q", i, result.Jobs[i].Company, want)
				}
			}
		})
	}
}

func TestSearchMockUsesRequestedLocation(t *testing.T) {
	svc := NewJobSearchService(config.Capabilities{}, nil, nil, 3, quietLogger())

	result, err := svc.Search(context.Background(), &SearchRequest{Query: "golang", Location: "Berlin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, job := range result.Jobs {
		if job.Location != "Berlin" {
			t.Errorf("listing %d location = %q, want %q", i, job.Location, "Berlin")
		}
	}
}

func TestSearchPipeline(t *testing.T) {
	caps := config.Capabilities{GenAI: true, Search: true}
	gen := &fakeGenerator{queries: []domain.SearchQuery{
		{ID: "1", Query: "golang developer"},
		{ID: "2", Query: "go backend engineer"},
	}}
	fetcher := &fakeFetcher{listings: []domain.JobListing{
		{ID: "a", Title: "Go Developer", Company: "Acme"},
		{ID: "b", Title: "Go Developer", Company: "Acme"},
		{ID: "c", Title: "Platform Engineer", Company: "Initech"},
	}}

	svc := NewJobSearchService(caps, gen, fetcher, 3, quietLogger())

	result, err := svc.Search(context.Background(), &SearchRequest{Query: "golang developer", Location: "Austin, TX"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.gotDescription != "golang developer" || gen.gotN != 3 {
		t.Errorf("generator called with (%q, %d)", gen.gotDescription, gen.gotN)
	}
	if len(fetcher.gotQueries) != 2 || fetcher.gotLocation != "Austin, TX" {
		t.Errorf("fetcher called with %d queries, location %q", len(fetcher.gotQueries), fetcher.gotLocation)
	}

	if result.Mock {
		t.Error("did not expect mock flag")
	}
	if len(result.Queries) != 2 {
		t.Errorf("expected queries echoed back, got %d", len(result.Queries))
	}
	if len(result.Jobs) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 listings, got %d", len(result.Jobs))
	}
	if result.Jobs[0].ID != "b" {
		t.Errorf("expected last duplicate to win, got %q", result.Jobs[0].ID)
	}
}

func TestSearchExcludesJobBoards(t *testing.T) {
	caps := config.Capabilities{GenAI: true, Search: true}
	gen := &fakeGenerator{queries: []domain.SearchQuery{{ID: "1", Query: "go"}}}
	fetcher := &fakeFetcher{listings: []domain.JobListing{
		{ID: "a", Title: "Go Developer", Company: "Acme", ViaLink: "https://www.linkedin.com/jobs/view/1"},
		{ID: "b", Title: "Go Developer", Company: "Initech", ViaLink: "https://careers.initech.com/jobs/2"},
	}}

	svc := NewJobSearchService(caps, gen, fetcher, 3, quietLogger())

	result, err := svc.Search(context.Background(), &SearchRequest{Query: "go", ExcludeJobBoards: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Jobs) != 1 || result.Jobs[0].ID != "b" {
		t.Errorf("expected only the direct listing, got %+v", result.Jobs)
	}
}

func TestSearchGeneratorFailureStopsPipeline(t *testing.T) {
	caps := config.Capabilities{GenAI: true, Search: true}
	gen := &fakeGenerator{err: ErrQueryGeneration}
	fetcher := &fakeFetcher{}

	svc := NewJobSearchService(caps, gen, fetcher, 3, quietLogger())

	_, err := svc.Search(context.Background(), &SearchRequest{Query: "go"})
	if !errors.Is(err, ErrQueryGeneration) {
		t.Errorf("expected ErrQueryGeneration, got %v", err)
	}
	if fetcher.gotQueries != nil {
		t.Error("fetcher should not run after generation fails")
	}
}

func TestSearchFetchFailure(t *testing.T) {
	caps := config.Capabilities{GenAI: true, Search: true}
	gen := &fakeGenerator{queries: []domain.SearchQuery{{ID: "1", Query: "go"}}}
	fetcher := &fakeFetcher{err: ErrFetchListings}

	svc := NewJobSearchService(caps, gen, fetcher, 3, quietLogger())

	_, err := svc.Search(context.Background(), &SearchRequest{Query: "go"})
	if !errors.Is(err, ErrFetchListings) {
		t.Errorf("expected ErrFetchListings, got %v", err)
	}
}
