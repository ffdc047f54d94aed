package domain

// JobType classifies a listing's employment arrangement.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// SearchQuery is one expanded search-engine query produced by the query
// generator. Consumed immediately by the fetcher, never persisted.
type SearchQuery struct {
	ID       string `json:"id"`
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

// JobListing is a normalized job posting held in memory for the duration of
// one search session. A confirmed listing seeds exactly one Application; no
// link between the two is retained.
type JobListing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	PostedDate  string  `json:"posted_date,omitempty"`
	Salary      string  `json:"salary,omitempty"`
	JobType     JobType `json:"job_type,omitempty"`

	// ViaLink is the provider's referral link, carried through so job-board
	// filtering never has to re-locate the raw result. Internal only.
	ViaLink string `json:"-"`
}
