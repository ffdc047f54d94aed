package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
)

func TestResolveGeography(t *testing.T) {
	tests := []struct {
		name             string
		query            string
		location         string
		expectedQuery    string
		expectedLocation string
	}{
		{
			name:             "no location uses default geography",
			query:            "golang developer",
			location:         "",
			expectedQuery:    "golang developer",
			expectedLocation: "United States",
		},
		{
			name:             "remote moves into the query",
			query:            "golang developer",
			location:         "Remote",
			expectedQuery:    "golang developer remote",
			expectedLocation: "United States",
		},
		{
			name:             "remote detected inside a phrase",
			query:            "golang developer",
			location:         "remote (US only)",
			expectedQuery:    "golang developer remote",
			expectedLocation: "United States",
		},
		{
			name:             "concrete location passes through",
			query:            "golang developer",
			location:         "Austin, TX",
			expectedQuery:    "golang developer",
			expectedLocation: "Austin, TX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, location := resolveGeography(tt.query, tt.location, "United States")
			if query != tt.expectedQuery {
				t.Errorf("query = %q, want %q", query, tt.expectedQuery)
			}
			if location != tt.expectedLocation {
				t.Errorf("location = %q, want %q", location, tt.expectedLocation)
			}
		})
	}
}

func TestMapListingFallbacks(t *testing.T) {
	listing := mapListing("golang developer", 0, serpJob{})

	if listing.Title != "Untitled Position" {
		t.Errorf("title = %q, want fallback", listing.Title)
	}
	if listing.Company != "Unknown Company" {
		t.Errorf("company = %q, want fallback", listing.Company)
	}
	if listing.Location != "Location not specified" {
		t.Errorf("location = %q, want fallback", listing.Location)
	}
	if listing.URL != "#" {
		t.Errorf("url = %q, want placeholder", listing.URL)
	}
	if listing.Source != "Google Jobs" {
		t.Errorf("source = %q, want default", listing.Source)
	}
	if !strings.HasPrefix(listing.ID, "golang developer-0-") {
		t.Errorf("id = %q, want query-index prefix", listing.ID)
	}
}

func TestMapListingURLPrecedence(t *testing.T) {
	job := serpJob{
		Title:       "Go Developer",
		CompanyName: "Acme",
		Via:         "https://careers.acme.com/openings/1",
	}
	job.ApplyOptions = []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	}{
		{Title: "Apply", Link: "https://careers.acme.com/apply/1"},
	}

	listing := mapListing("go", 2, job)
	if listing.URL != "https://careers.acme.com/apply/1" {
		t.Errorf("url = %q, want the apply link when share_url is absent", listing.URL)
	}
	if listing.Source != "careers.acme.com" {
		t.Errorf("source = %q, want the referral hostname", listing.Source)
	}
	if listing.ViaLink != job.Via {
		t.Errorf("via link not carried through: %q", listing.ViaLink)
	}

	job.ShareURL = "https://www.google.com/share/1"
	listing = mapListing("go", 2, job)
	if listing.URL != "https://www.google.com/share/1" {
		t.Errorf("url = %q, want share_url first", listing.URL)
	}
}

func TestExtractJobType(t *testing.T) {
	tests := []struct {
		scheduleType string
		expected     domain.JobType
	}{
		{"Full-time", domain.JobTypeFullTime},
		{"FULL TIME", domain.JobTypeFullTime},
		{"Part-time", domain.JobTypePartTime},
		{"Contractor", domain.JobTypeContract},
		{"Internship", domain.JobTypeInternship},
		{"Temporary", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractJobType(tt.scheduleType); got != tt.expected {
			t.Errorf("extractJobType(%q) = %q, want %q", tt.scheduleType, got, tt.expected)
		}
	}
}

func TestListingFetcherNotConfigured(t *testing.T) {
	fetcher := NewListingFetcher(&config.SearchConfig{})

	_, err := fetcher.Fetch(context.Background(), []domain.SearchQuery{{Query: "go"}}, "")
	if err != ErrSearchNotConfigured {
		t.Errorf("expected ErrSearchNotConfigured, got %v", err)
	}
}

func TestListingFetcherFetch(t *testing.T) {
	var gotParams []map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]string{}
		for k := range r.URL.Query() {
			params[k] = r.URL.Query().Get(k)
		}
		gotParams = append(gotParams, params)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs_results": []map[string]interface{}{
				{
					"title":        "Go Developer",
					"company_name": "Acme",
					"location":     "Austin, TX",
					"via":          "https://careers.acme.com/openings/1",
					"detected_extensions": map[string]string{
						"posted_at":     "2 days ago",
						"schedule_type": "Full-time",
						"salary":        "$150k",
					},
				},
			},
		})
	}))
	defer server.Close()

	fetcher := NewListingFetcher(&config.SearchConfig{
		APIKey:          "test-key",
		BaseURL:         server.URL,
		DefaultLocation: "United States",
		Timeout:         5 * time.Second,
	})

	queries := []domain.SearchQuery{
		{ID: "q-1", Query: "golang developer", Category: "direct"},
		{ID: "q-2", Query: "backend engineer go", Category: "skills"},
	}
	listings, err := fetcher.Fetch(context.Background(), queries, "Remote")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("expected one listing per query, got %d", len(listings))
	}
	if len(gotParams) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(gotParams))
	}
	first := gotParams[0]
	if first["engine"] != "google_jobs" {
		t.Errorf("engine = %q", first["engine"])
	}
	if first["q"] != "golang developer remote" {
		t.Errorf("q = %q, want the remote-augmented query", first["q"])
	}
	if first["location"] != "United States" {
		t.Errorf("location = %q, want the default geography", first["location"])
	}
	if first["api_key"] != "test-key" {
		t.Errorf("api_key = %q", first["api_key"])
	}

	l := listings[0]
	if l.Company != "Acme" || l.Title != "Go Developer" {
		t.Errorf("unexpected listing: %+v", l)
	}
	if l.JobType != domain.JobTypeFullTime {
		t.Errorf("job type = %q", l.JobType)
	}
	if l.PostedDate != "2 days ago" || l.Salary != "$150k" {
		t.Errorf("extensions not mapped: %+v", l)
	}
}

func TestListingFetcherProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid API key. Your API key should be here: https://serpapi.com/manage-api-key"})
	}))
	defer server.Close()

	fetcher := NewListingFetcher(&config.SearchConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	_, err := fetcher.Fetch(context.Background(), []domain.SearchQuery{{Query: "go"}}, "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), ErrFetchListings.Error()) {
		t.Errorf("error %v does not wrap the fetch failure", err)
	}
}

func TestListingFetcherNoResultsQueryIsSkipped(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			json.NewEncoder(w).Encode(map[string]string{"error": "Google Jobs hasn't returned any results for this query."})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jobs_results": []map[string]interface{}{
				{"title": "Go Developer", "company_name": "Acme"},
			},
		})
	}))
	defer server.Close()

	fetcher := NewListingFetcher(&config.SearchConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	queries := []domain.SearchQuery{
		{ID: "q-1", Query: "cobol developer antarctica"},
		{ID: "q-2", Query: "golang developer"},
	}
	listings, err := fetcher.Fetch(context.Background(), queries, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected the empty query not to abort the batch, %d calls made", calls)
	}
	if len(listings) != 1 || listings[0].Company != "Acme" {
		t.Errorf("unexpected listings: %+v", listings)
	}
}

func TestListingFetcherHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	fetcher := NewListingFetcher(&config.SearchConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	_, err := fetcher.Fetch(context.Background(), []domain.SearchQuery{{Query: "go"}}, "")
	if err == nil {
		t.Fatal("expected an error for a non-2xx status")
	}
}
