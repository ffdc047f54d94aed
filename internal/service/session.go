package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/logger"
)

// ApplicationCreator persists applications created from confirmed listings.
// Satisfied by repository.ApplicationRepository.
type ApplicationCreator interface {
	Create(ctx context.Context, app *domain.Application) error
}

// defaultSessionLimit bounds how many recent search sessions are retained
// per process, matching the ten-entry search history of the web client.
const defaultSessionLimit = 10

// DefaultResumeVersion seeds applications confirmed from a listing; the
// caller may override it per confirmation.
const DefaultResumeVersion = "Frontend"

// SearchSession holds one search's result set and its per-listing view
// state. A listing is either visible or rejected; rejection is one-way.
// Confirmation is a fire-and-forget side effect and is not tracked.
type SearchSession struct {
	ID               string               `json:"id"`
	Query            string               `json:"query"`
	Location         string               `json:"location,omitempty"`
	ExcludeJobBoards bool                 `json:"exclude_job_boards"`
	Mock             bool                 `json:"mock"`
	Queries          []domain.SearchQuery `json:"queries,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`

	listings []domain.JobListing
	rejected map[string]bool
}

// SessionView is the client-facing snapshot of a session: only listings
// that have not been rejected.
type SessionView struct {
	ID               string               `json:"id"`
	Query            string               `json:"query"`
	Location         string               `json:"location,omitempty"`
	ExcludeJobBoards bool                 `json:"exclude_job_boards"`
	Mock             bool                 `json:"mock"`
	Queries          []domain.SearchQuery `json:"queries,omitempty"`
	Jobs             []domain.JobListing  `json:"jobs"`
	CreatedAt        time.Time            `json:"created_at"`
}

// ConfirmOverrides are the optional per-confirmation field overrides.
type ConfirmOverrides struct {
	ResumeVersion string `json:"resume_version,omitempty"`
	Status        string `json:"status,omitempty"`
}

// SessionService stores search sessions in memory and turns confirmed
// listings into persisted applications. Sessions are transient: a new
// process starts empty, and only the most recent sessions are kept.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*SearchSession
	order    []string
	limit    int

	apps   ApplicationCreator
	logger *logger.Logger
}

// NewSessionService creates a new session service.
// Parameters:
//   - apps: application repository used by listing confirmation.
//   - log: logger instance.
// Returns:
//   - *SessionService: initialized service retaining up to ten sessions.
func NewSessionService(apps ApplicationCreator, log *logger.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[string]*SearchSession),
		limit:    defaultSessionLimit,
		apps:     apps,
		logger:   log,
	}
}

// Start records a completed search as a new session and returns its view.
// Parameters:
//   - req: the search request the result came from.
//   - result: pipeline output to hold for the session's lifetime.
// Returns:
//   - *SessionView: snapshot of the new session with all listings visible.
func (s *SessionService) Start(req *SearchRequest, result *SearchResult) *SessionView {
	session := &SearchSession{
		ID:               uuid.New().String(),
		Query:            req.Query,
		Location:         req.Location,
		ExcludeJobBoards: req.ExcludeJobBoards,
		Mock:             result.Mock,
		Queries:          result.Queries,
		CreatedAt:        time.Now(),
		listings:         result.Jobs,
		rejected:         make(map[string]bool),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.order = append(s.order, session.ID)
	for len(s.order) > s.limit {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}
	view := s.view(session)
	s.mu.Unlock()

	s.logger.WithFields(logger.Fields{
		logger.FieldSessionID: session.ID,
		logger.FieldCount:     len(session.listings),
	}).Info("Search session opened")
	return view
}

// Get returns the current view of a session.
func (s *SessionService) Get(id string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.view(session), nil
}

// Reject removes a listing from the session's visible set. Rejection is
// idempotent per listing id and cannot be undone.
// Parameters:
//   - sessionID: session to operate on.
//   - listingID: listing to reject.
// Returns:
//   - error: ErrSessionNotFound or ErrListingNotFound.
func (s *SessionService) Reject(sessionID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if _, ok := session.listing(listingID); !ok {
		return ErrListingNotFound
	}
	session.rejected[listingID] = true
	return nil
}

// Confirm creates an application seeded from the listing's company, title,
// URL, and source. The listing stays visible, so the same listing can be
// imported again.
// Parameters:
//   - ctx: context for the database write.
//   - sessionID: session to operate on.
//   - listingID: listing to confirm.
//   - overrides: optional resume version and status overrides.
// Returns:
//   - *domain.Application: the created application record.
//   - error: lookup errors, ErrInvalidStatus, or a persistence failure.
func (s *SessionService) Confirm(ctx context.Context, sessionID, listingID string, overrides ConfirmOverrides) (*domain.Application, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	listing, ok := session.listing(listingID)
	s.mu.Unlock()
	if !ok {
		return nil, ErrListingNotFound
	}

	resumeVersion := overrides.ResumeVersion
	if resumeVersion == "" {
		resumeVersion = DefaultResumeVersion
	}
	status := domain.StatusApplied
	if overrides.Status != "" {
		status = domain.ApplicationStatus(overrides.Status)
		if !domain.ValidStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	source := listing.Source
	if source == "" {
		source = "Job Search"
	}

	app := &domain.Application{
		ID:            uuid.New().String(),
		DateApplied:   time.Now(),
		Company:       listing.Company,
		JobTitle:      listing.Title,
		URL:           listing.URL,
		ResumeVersion: resumeVersion,
		Status:        status,
		Source:        source,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.WithFields(logger.Fields{
		logger.FieldSessionID: sessionID,
		"company":             app.Company,
	}).Info("Listing confirmed into application")
	return app, nil
}

// listing finds a listing in the session's full result set, rejected or not.
func (session *SearchSession) listing(id string) (domain.JobListing, bool) {
	for _, l := range session.listings {
		if l.ID == id {
			return l, true
		}
	}
	return domain.JobListing{}, false
}

// view snapshots the session with rejected listings filtered out.
// Caller must hold the lock or own the session exclusively.
func (s *SessionService) view(session *SearchSession) *SessionView {
	visible := make([]domain.JobListing, 0, len(session.listings))
	for _, l := range session.listings {
		if !session.rejected[l.ID] {
			visible = append(visible, l)
		}
	}
	return &SessionView{
		ID:               session.ID,
		Query:            session.Query,
		Location:         session.Location,
		ExcludeJobBoards: session.ExcludeJobBoards,
		Mock:             session.Mock,
		Queries:          session.Queries,
		Jobs:             visible,
		CreatedAt:        session.CreatedAt,
	}
}
