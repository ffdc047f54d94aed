package service

import (
	"testing"

	"github.com/tyler/huntboard/internal/domain"
)

func TestIsJobBoard(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected bool
	}{
		{
			name:     "indeed link",
			rawURL:   "https://www.indeed.com/viewjob?jk=abc",
			expected: true,
		},
		{
			name:     "linkedin link",
			rawURL:   "https://linkedin.com/jobs/view/123",
			expected: true,
		},
		{
			name:     "subdomain of a board",
			rawURL:   "https://de.indeed.com/viewjob?jk=abc",
			expected: true,
		},
		{
			name:     "company ats",
			rawURL:   "https://boards.greenhouse.io/acme/jobs/42",
			expected: false,
		},
		{
			name:     "company site",
			rawURL:   "https://careers.acme.com/openings/42",
			expected: false,
		},
		{
			name:     "plain label, not a url",
			rawURL:   "via LinkedIn",
			expected: false,
		},
		{
			name:     "empty",
			rawURL:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsJobBoard(tt.rawURL); got != tt.expected {
				t.Errorf("IsJobBoard(%q) = %v, want %v", tt.rawURL, got, tt.expected)
			}
		})
	}
}

func TestRealSource(t *testing.T) {
	tests := []struct {
		name      string
		viaLink   string
		applyLink string
		expected  string
	}{
		{
			name:      "direct company referral wins",
			viaLink:   "https://boards.greenhouse.io/acme/jobs/42",
			applyLink: "https://www.indeed.com/viewjob?jk=abc",
			expected:  "boards.greenhouse.io",
		},
		{
			name:      "job-board referral falls through to apply link",
			viaLink:   "https://www.linkedin.com/jobs/view/123",
			applyLink: "https://careers.acme.com/openings/42",
			expected:  "careers.acme.com",
		},
		{
			name:      "both links are boards, raw referral kept",
			viaLink:   "https://www.linkedin.com/jobs/view/123",
			applyLink: "https://www.indeed.com/viewjob?jk=abc",
			expected:  "https://www.linkedin.com/jobs/view/123",
		},
		{
			name:      "referral label without a hostname",
			viaLink:   "via LinkedIn",
			applyLink: "",
			expected:  "via LinkedIn",
		},
		{
			name:      "www prefix stripped",
			viaLink:   "https://www.acme.com/jobs/42",
			applyLink: "",
			expected:  "acme.com",
		},
		{
			name:      "nothing to go on",
			viaLink:   "",
			applyLink: "",
			expected:  "Google Jobs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RealSource(tt.viaLink, tt.applyLink); got != tt.expected {
				t.Errorf("RealSource(%q, %q) = %q, want %q", tt.viaLink, tt.applyLink, got, tt.expected)
			}
		})
	}
}

func TestExcludeJobBoards(t *testing.T) {
	listings := []domain.JobListing{
		{ID: "a", ViaLink: "https://www.linkedin.com/jobs/view/1"},
		{ID: "b", ViaLink: "https://careers.acme.com/openings/2"},
		{ID: "c", ViaLink: "via Indeed"},
		{ID: "d", ViaLink: ""},
		{ID: "e", ViaLink: "https://de.indeed.com/viewjob?jk=5"},
	}

	filtered := ExcludeJobBoards(listings)

	ids := make([]string, 0, len(filtered))
	for _, l := range filtered {
		ids = append(ids, l.ID)
	}
	expected := []string{"b", "c", "d"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d listings, got %d (%v)", len(expected), len(ids), ids)
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("position %d: expected %q, got %q", i, id, ids[i])
		}
	}
}

func TestDedupe(t *testing.T) {
	listings := []domain.JobListing{
		{ID: "1", Title: "Go Developer", Company: "Acme", Source: "linkedin.com"},
		{ID: "2", Title: "Platform Engineer", Company: "Initech", Source: "initech.com"},
		{ID: "3", Title: "Go Developer", Company: "Acme", Source: "careers.acme.com"},
		{ID: "4", Title: "Go Developer", Company: "Globex", Source: "globex.com"},
	}

	unique := Dedupe(listings)

	if len(unique) != 3 {
		t.Fatalf("expected 3 unique listings, got %d", len(unique))
	}

	// Later duplicate replaces the earlier one, at the earlier position.
	if unique[0].ID != "3" {
		t.Errorf("expected last duplicate to win at first position, got id %q", unique[0].ID)
	}
	if unique[1].ID != "2" || unique[2].ID != "4" {
		t.Errorf("unexpected ordering: %q, %q", unique[1].ID, unique[2].ID)
	}

	seen := make(map[string]bool)
	for _, l := range unique {
		key := l.Title + "-" + l.Company
		if seen[key] {
			t.Errorf("duplicate key %q survived", key)
		}
		seen[key] = true
	}
}

func TestDedupeCaseSensitive(t *testing.T) {
	listings := []domain.JobListing{
		{ID: "1", Title: "Go Developer", Company: "Acme"},
		{ID: "2", Title: "go developer", Company: "Acme"},
	}

	unique := Dedupe(listings)
	if len(unique) != 2 {
		t.Errorf("expected case-differing titles to stay distinct, got %d listings", len(unique))
	}
}
