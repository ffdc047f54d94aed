package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
)

// ListingFetcher retrieves job postings from the search provider's
// google_jobs engine, one call per expanded query, sequentially.
type ListingFetcher struct {
	client          *resty.Client
	apiKey          string
	endpoint        string
	defaultLocation string
}

// serpJob is the provider's per-result shape. Ephemeral; mapped into
// domain.JobListing immediately.
type serpJob struct {
	Title        string `json:"title"`
	CompanyName  string `json:"company_name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	ShareURL     string `json:"share_url"`
	Via          string `json:"via"`
	ApplyOptions []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"apply_options"`
	DetectedExtensions struct {
		PostedAt     string `json:"posted_at"`
		ScheduleType string `json:"schedule_type"`
		Salary       string `json:"salary"`
	} `json:"detected_extensions"`
}

type serpResponse struct {
	JobsResults []serpJob `json:"jobs_results"`
	Error       string    `json:"error,omitempty"`
}

// NewListingFetcher creates a ListingFetcher.
// Parameters:
//   - cfg: search provider settings (key, endpoint, default location, timeout).
// Returns:
//   - *ListingFetcher: initialized fetcher.
func NewListingFetcher(cfg *config.SearchConfig) *ListingFetcher {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	location := cfg.DefaultLocation
	if location == "" {
		location = "United States"
	}

	return &ListingFetcher{
		client:          client,
		apiKey:          cfg.APIKey,
		endpoint:        cfg.BaseURL,
		defaultLocation: location,
	}
}

// Fetch issues one search call per query and returns the concatenated,
// normalized listings in query order. A failing call fails the whole batch.
// Parameters:
//   - ctx: context for cancellation.
//   - queries: expanded search queries, fetched sequentially.
//   - location: optional location text; empty means the default geography.
// Returns:
//   - []domain.JobListing: normalized listings, classified by real source.
//   - error: ErrSearchNotConfigured or a wrapped ErrFetchListings.
func (f *ListingFetcher) Fetch(ctx context.Context, queries []domain.SearchQuery, location string) ([]domain.JobListing, error) {
	if f.apiKey == "" {
		return nil, ErrSearchNotConfigured
	}

	var all []domain.JobListing
	for _, q := range queries {
		searchQuery, searchLocation := resolveGeography(q.Query, location, f.defaultLocation)

		var resp serpResponse
		httpResp, err := f.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"api_key":  f.apiKey,
				"engine":   "google_jobs",
				"q":        searchQuery,
				"location": searchLocation,
				"hl":       "en",
				"gl":       "us",
			}).
			SetResult(&resp).
			Get(f.endpoint)
		if err != nil {
			return nil, fmt.Errorf("%w: query %q: %v", ErrFetchListings, q.Query, err)
		}
		if httpResp.IsError() {
			return nil, fmt.Errorf("%w: query %q: provider returned status %d", ErrFetchListings, q.Query, httpResp.StatusCode())
		}
		if resp.Error != "" {
			// The provider reports an empty result set as an error body on a
			// 200 response; that query just contributes nothing.
			if isNoResultsError(resp.Error) {
				continue
			}
			return nil, fmt.Errorf("%w: query %q: %s", ErrFetchListings, q.Query, resp.Error)
		}

		for i, job := range resp.JobsResults {
			all = append(all, mapListing(q.Query, i, job))
		}
	}

	return all, nil
}

// isNoResultsError matches the provider's "Google Jobs hasn't returned any
// results for this query." body, which arrives in the error field.
func isNoResultsError(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "hasn't returned any results")
}

// resolveGeography applies the remote special case: the provider's location
// field rejects non-geographic values, so "remote" moves into the query text
// and the location falls back to the default geography.
func resolveGeography(query, location, defaultLocation string) (string, string) {
	if location == "" {
		return query, defaultLocation
	}
	if strings.Contains(strings.ToLower(location), "remote") {
		return query + " remote", defaultLocation
	}
	return query, location
}

// mapListing normalizes one raw provider result.
func mapListing(query string, index int, job serpJob) domain.JobListing {
	applyLink := ""
	if len(job.ApplyOptions) > 0 {
		applyLink = job.ApplyOptions[0].Link
	}

	title := job.Title
	if title == "" {
		title = "Untitled Position"
	}
	company := job.CompanyName
	if company == "" {
		company = "Unknown Company"
	}
	location := job.Location
	if location == "" {
		location = "Location not specified"
	}
	url := job.ShareURL
	if url == "" {
		url = applyLink
	}
	if url == "" {
		url = "#"
	}

	return domain.JobListing{
		ID:          fmt.Sprintf("%s-%d-%d", query, index, time.Now().UnixMilli()),
		Title:       title,
		Company:     company,
		Location:    location,
		Description: job.Description,
		URL:         url,
		Source:      RealSource(job.Via, applyLink),
		PostedDate:  job.DetectedExtensions.PostedAt,
		Salary:      job.DetectedExtensions.Salary,
		JobType:     extractJobType(job.DetectedExtensions.ScheduleType),
		ViaLink:     job.Via,
	}
}

// extractJobType maps the provider's free-form schedule type onto the
// enumerated job types. Unknown values map to the empty type.
func extractJobType(scheduleType string) domain.JobType {
	lower := strings.ToLower(scheduleType)
	switch {
	case strings.Contains(lower, "full"):
		return domain.JobTypeFullTime
	case strings.Contains(lower, "part"):
		return domain.JobTypePartTime
	case strings.Contains(lower, "contract"):
		return domain.JobTypeContract
	case strings.Contains(lower, "intern"):
		return domain.JobTypeInternship
	default:
		return ""
	}
}
