package service

import "errors"

// Search pipeline failure taxonomy. All three are terminal for the current
// search attempt: nothing is retried, nothing is partially salvaged.
var (
	// ErrGenAINotConfigured means the generative-language credential is absent.
	ErrGenAINotConfigured = errors.New("Gemini API key not configured")

	// ErrSearchNotConfigured means the job-search provider credential is absent.
	ErrSearchNotConfigured = errors.New("SerpAPI key not configured")

	// ErrQueryGeneration means the language service call failed or returned
	// output that could not be parsed as a query list.
	ErrQueryGeneration = errors.New("failed to generate search queries")

	// ErrFetchListings means a job-search provider call failed.
	ErrFetchListings = errors.New("failed to fetch job listings")
)

// ErrInvalidStatus is returned when an application status is not one of the
// five enumerated values.
var ErrInvalidStatus = errors.New("invalid application status")

// ErrSessionNotFound is returned for operations on an unknown search session.
var ErrSessionNotFound = errors.New("search session not found")

// ErrListingNotFound is returned for operations on a listing id that is not
// part of the session's result set.
var ErrListingNotFound = errors.New("listing not found in session")
