package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/logger"
)

// Generator produces search queries from a free-text description.
type Generator interface {
	Generate(ctx context.Context, description string, n int) ([]domain.SearchQuery, error)
}

// Fetcher retrieves normalized listings for a set of queries.
type Fetcher interface {
	Fetch(ctx context.Context, queries []domain.SearchQuery, location string) ([]domain.JobListing, error)
}

// SearchRequest is the inbound search contract.
type SearchRequest struct {
	Query            string `json:"query" binding:"required"`
	Location         string `json:"location,omitempty"`
	ExcludeJobBoards bool   `json:"exclude_job_boards,omitempty"`
}

// SearchResult is the outbound search contract. Mock is true when the
// response carries synthetic sample data because credentials are absent.
type SearchResult struct {
	Jobs    []domain.JobListing  `json:"jobs"`
	Queries []domain.SearchQuery `json:"queries,omitempty"`
	Mock    bool                 `json:"mock"`
	Message string               `json:"message,omitempty"`
}

// JobSearchService orchestrates the search pipeline: query generation,
// sequential fetching, job-board filtering, and deduplication.
type JobSearchService struct {
	caps       config.Capabilities
	generator  Generator
	fetcher    Fetcher
	numQueries int
	logger     *logger.Logger
}

// NewJobSearchService creates a new job search service.
// Parameters:
//   - caps: capability descriptor computed from configured credentials.
//   - generator: query generator; may be nil when caps.GenAI is false.
//   - fetcher: listing fetcher.
//   - numQueries: how many queries to derive per search.
//   - log: logger instance.
// Returns:
//   - *JobSearchService: initialized service.
func NewJobSearchService(
	caps config.Capabilities,
	generator Generator,
	fetcher Fetcher,
	numQueries int,
	log *logger.Logger,
) *JobSearchService {
	if numQueries <= 0 {
		numQueries = 3
	}
	return &JobSearchService{
		caps:       caps,
		generator:  generator,
		fetcher:    fetcher,
		numQueries: numQueries,
		logger:     log,
	}
}

// Search runs one search attempt. When either external credential is absent
// it degrades to three synthetic sample listings marked mock; once both are
// configured, any downstream failure terminates the attempt.
// Parameters:
//   - ctx: context for cancellation.
//   - req: search request.
// Returns:
//   - *SearchResult: deduplicated listings plus the queries used.
//   - error: one of the pipeline taxonomy errors on failure.
func (s *JobSearchService) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	start := time.Now()

	if !s.caps.GenAI || !s.caps.Search {
		s.logger.Warn("search credentials missing, returning mock listings")
		return &SearchResult{
			Jobs:    mockListings(req.Query, req.Location),
			Mock:    true,
			Message: "Using mock data. Configure GEMINI_API_KEY and SERP_API_KEY for real job search.",
		}, nil
	}

	queries, err := s.generator.Generate(ctx, req.Query, s.numQueries)
	if err != nil {
		return nil, err
	}

	jobs, err := s.fetcher.Fetch(ctx, queries, req.Location)
	if err != nil {
		return nil, err
	}

	if req.ExcludeJobBoards {
		jobs = ExcludeJobBoards(jobs)
	}
	jobs = Dedupe(jobs)

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldCount:      len(jobs),
	}).Info(ctx, "Job search completed: queries=%d", len(queries))

	return &SearchResult{
		Jobs:    jobs,
		Queries: queries,
		Mock:    false,
	}, nil
}

// mockListings builds the fixed three-listing sample set used when external
// credentials are not configured.
func mockListings(query, location string) []domain.JobListing {
	now := time.Now().UnixMilli()
	fallback := func(def string) string {
		if location != "" {
			return location
		}
		return def
	}
	return []domain.JobListing{
		{
			ID:          fmt.Sprintf("mock-1-%d", now),
			Title:       fmt.Sprintf("Senior %s Developer", query),
			Company:     "TechCorp",
			Location:    fallback("Remote"),
			Description: fmt.Sprintf("We are looking for an experienced %s developer to join our team. Work with modern technologies and build amazing products.", query),
			URL:         "https://example.com/job/1",
			Source:      "LinkedIn",
			PostedDate:  "Posted 2 days ago",
			Salary:      "$120k - $150k",
			JobType:     domain.JobTypeFullTime,
		},
		{
			ID:          fmt.Sprintf("mock-2-%d", now),
			Title:       fmt.Sprintf("%s Engineer", query),
			Company:     "StartupXYZ",
			Location:    fallback("San Francisco, CA"),
			Description: fmt.Sprintf("Join our fast-growing startup as a %s engineer. Build cutting-edge applications with the latest technology stack.", query),
			URL:         "https://example.com/job/2",
			Source:      "Indeed",
			PostedDate:  "Posted 1 week ago",
			Salary:      "$100k - $130k",
			JobType:     domain.JobTypeFullTime,
		},
		{
			ID:          fmt.Sprintf("mock-3-%d", now),
			Title:       fmt.Sprintf("Lead %s Developer", query),
			Company:     "Enterprise Solutions Inc",
			Location:    fallback("New York, NY"),
			Description: fmt.Sprintf("Looking for a lead %s developer to mentor our team and build scalable solutions.", query),
			URL:         "https://example.com/job/3",
			Source:      "Company Website",
			PostedDate:  "Posted 3 days ago",
			Salary:      "$130k - $160k",
			JobType:     domain.JobTypeFullTime,
		},
	}
}
