package service

import (
	"net/url"
	"strings"

	"github.com/tyler/huntboard/internal/domain"
)

// jobBoardDomains are known aggregator sites. A listing whose link resolves
// to one of these is not considered a direct company-site posting.
// Matching is a substring check on the hostname.
var jobBoardDomains = []string{
	"indeed.com",
	"linkedin.com",
	"glassdoor.com",
	"monster.com",
	"ziprecruiter.com",
	"careerbuilder.com",
	"dice.com",
	"simplyhired.com",
	"jobs.com",
	"jobrapido.com",
	"talent.com",
	"jobsdb.com",
	"seek.com",
	"jooble.org",
}

// hostname extracts the lowercase hostname of rawURL with any leading
// "www." stripped. Returns "" when rawURL has no parseable host, which is
// common: the provider's via field is often a label like "via LinkedIn"
// rather than a URL.
func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// IsJobBoard reports whether rawURL points at a known job-board aggregator.
func IsJobBoard(rawURL string) bool {
	host := hostname(rawURL)
	if host == "" {
		return false
	}
	for _, board := range jobBoardDomains {
		if strings.Contains(host, board) {
			return true
		}
	}
	return false
}

// RealSource labels a listing with its originating domain: the hostname of
// the first non-job-board link, checked referral link first then apply link.
// Falls back to the raw referral label, then "Google Jobs".
func RealSource(viaLink, applyLink string) string {
	if viaLink != "" && !IsJobBoard(viaLink) {
		if host := hostname(viaLink); host != "" {
			return host
		}
	}
	if applyLink != "" && !IsJobBoard(applyLink) {
		if host := hostname(applyLink); host != "" {
			return host
		}
	}
	if viaLink != "" {
		return viaLink
	}
	return "Google Jobs"
}

// ExcludeJobBoards drops listings whose referral link resolves to a job-board
// domain. Listings without a parseable referral link are kept.
func ExcludeJobBoards(listings []domain.JobListing) []domain.JobListing {
	filtered := make([]domain.JobListing, 0, len(listings))
	for _, l := range listings {
		if l.ViaLink != "" && IsJobBoard(l.ViaLink) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

// Dedupe collapses listings onto distinct (title, company) pairs. The key is
// case-sensitive and exact; when duplicates occur the listing appearing later
// wins, at the position the key was first seen.
func Dedupe(listings []domain.JobListing) []domain.JobListing {
	unique := make([]domain.JobListing, 0, len(listings))
	index := make(map[string]int, len(listings))
	for _, l := range listings {
		key := l.Title + "-" + l.Company
		if at, seen := index[key]; seen {
			unique[at] = l
			continue
		}
		index[key] = len(unique)
		unique = append(unique, l)
	}
	return unique
}
