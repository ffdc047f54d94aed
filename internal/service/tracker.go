package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/logger"
	"github.com/tyler/huntboard/internal/repository"
)

// TrackerService implements the CRUD operations behind the five dashboard
// tables: applications, network contacts, revenue weeks, content posts, and
// weekly reviews.
type TrackerService struct {
	apps     *repository.ApplicationRepository
	contacts *repository.ContactRepository
	revenue  *repository.RevenueRepository
	content  *repository.ContentRepository
	reviews  *repository.ReviewRepository
	logger   *logger.Logger
}

// NewTrackerService creates a new tracker service.
// Parameters:
//   - apps, contacts, revenue, content, reviews: entity repositories.
//   - log: logger instance.
// Returns:
//   - *TrackerService: initialized service.
func NewTrackerService(
	apps *repository.ApplicationRepository,
	contacts *repository.ContactRepository,
	revenue *repository.RevenueRepository,
	content *repository.ContentRepository,
	reviews *repository.ReviewRepository,
	log *logger.Logger,
) *TrackerService {
	return &TrackerService{
		apps:     apps,
		contacts: contacts,
		revenue:  revenue,
		content:  content,
		reviews:  reviews,
		logger:   log,
	}
}

// ApplicationInput carries client-supplied application fields. DateApplied
// defaults to submission time when unset.
type ApplicationInput struct {
	DateApplied   *time.Time `json:"date_applied"`
	Company       string     `json:"company" binding:"required"`
	JobTitle      string     `json:"job_title" binding:"required"`
	URL           string     `json:"url"`
	ResumeVersion string     `json:"resume_version"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	Notes         string     `json:"notes"`
	FollowUpDate  *time.Time `json:"follow_up_date"`
}

// ListApplications returns applications matching the filters, newest first.
func (s *TrackerService) ListApplications(ctx context.Context, filters domain.ApplicationFilters) ([]domain.Application, error) {
	return s.apps.List(ctx, filters)
}

// CreateApplication persists a new application. Status defaults to Applied
// and must be one of the enumerated values; the database does not enforce it.
func (s *TrackerService) CreateApplication(ctx context.Context, in *ApplicationInput) (*domain.Application, error) {
	status := domain.StatusApplied
	if in.Status != "" {
		status = domain.ApplicationStatus(in.Status)
		if !domain.ValidStatus(status) {
			return nil, ErrInvalidStatus
		}
	}
	dateApplied := time.Now()
	if in.DateApplied != nil {
		dateApplied = *in.DateApplied
	}

	app := &domain.Application{
		ID:            uuid.New().String(),
		DateApplied:   dateApplied,
		Company:       in.Company,
		JobTitle:      in.JobTitle,
		URL:           in.URL,
		ResumeVersion: in.ResumeVersion,
		Status:        status,
		Source:        in.Source,
		Notes:         in.Notes,
		FollowUpDate:  in.FollowUpDate,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateApplication overwrites an existing application's editable fields.
func (s *TrackerService) UpdateApplication(ctx context.Context, id string, in *ApplicationInput) (*domain.Application, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		status := domain.ApplicationStatus(in.Status)
		if !domain.ValidStatus(status) {
			return nil, ErrInvalidStatus
		}
		app.Status = status
	}
	if in.DateApplied != nil {
		app.DateApplied = *in.DateApplied
	}
	app.Company = in.Company
	app.JobTitle = in.JobTitle
	app.URL = in.URL
	app.ResumeVersion = in.ResumeVersion
	app.Source = in.Source
	app.Notes = in.Notes
	app.FollowUpDate = in.FollowUpDate

	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// DeleteApplication removes an application by id.
func (s *TrackerService) DeleteApplication(ctx context.Context, id string) error {
	return s.apps.Delete(ctx, id)
}

// ContactInput carries client-supplied network contact fields.
type ContactInput struct {
	DateContacted *time.Time `json:"date_contacted"`
	ContactName   string     `json:"contact_name" binding:"required"`
	Company       string     `json:"company"`
	Method        string     `json:"method"`
	Purpose       string     `json:"purpose"`
	Responded     bool       `json:"responded"`
	FollowUpDate  *time.Time `json:"follow_up_date"`
	Outcome       string     `json:"outcome"`
	Notes         string     `json:"notes"`
}

// ListContacts returns contacts matching the filters, newest first.
func (s *TrackerService) ListContacts(ctx context.Context, filters domain.ContactFilters) ([]domain.NetworkContact, error) {
	return s.contacts.List(ctx, filters)
}

// CreateContact persists a new network contact. DateContacted defaults to now.
func (s *TrackerService) CreateContact(ctx context.Context, in *ContactInput) (*domain.NetworkContact, error) {
	dateContacted := time.Now()
	if in.DateContacted != nil {
		dateContacted = *in.DateContacted
	}

	contact := &domain.NetworkContact{
		ID:            uuid.New().String(),
		DateContacted: dateContacted,
		ContactName:   in.ContactName,
		Company:       in.Company,
		Method:        in.Method,
		Purpose:       in.Purpose,
		Responded:     in.Responded,
		FollowUpDate:  in.FollowUpDate,
		Outcome:       in.Outcome,
		Notes:         in.Notes,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateContact overwrites an existing contact's editable fields.
func (s *TrackerService) UpdateContact(ctx context.Context, id string, in *ContactInput) (*domain.NetworkContact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DateContacted != nil {
		contact.DateContacted = *in.DateContacted
	}
	contact.ContactName = in.ContactName
	contact.Company = in.Company
	contact.Method = in.Method
	contact.Purpose = in.Purpose
	contact.Responded = in.Responded
	contact.FollowUpDate = in.FollowUpDate
	contact.Outcome = in.Outcome
	contact.Notes = in.Notes

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a contact by id.
func (s *TrackerService) DeleteContact(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}

// RevenueInput carries client-supplied revenue week fields. The weekly total
// is always recomputed server-side.
type RevenueInput struct {
	WeekOf              time.Time `json:"week_of" binding:"required"`
	ProductWorkHours    float64   `json:"product_work_hours"`
	ProductRevenue      float64   `json:"product_revenue"`
	ClientWorkHours     float64   `json:"client_work_hours"`
	ClientRevenue       float64   `json:"client_revenue"`
	TemplateSalesCount  int       `json:"template_sales_count"`
	TemplateSalesAmount float64   `json:"template_sales_amount"`
	OtherIncome         float64   `json:"other_income"`
	Notes               string    `json:"notes"`
}

// ListRevenueWeeks returns all revenue weeks, newest first.
func (s *TrackerService) ListRevenueWeeks(ctx context.Context) ([]domain.RevenueWeek, error) {
	return s.revenue.List(ctx)
}

// UpsertRevenueWeek creates or updates the revenue week keyed by week_of and
// returns the stored row, whose id survives across repeated upserts.
func (s *TrackerService) UpsertRevenueWeek(ctx context.Context, in *RevenueInput) (*domain.RevenueWeek, error) {
	week := &domain.RevenueWeek{
		ID:                  uuid.New().String(),
		WeekOf:              in.WeekOf,
		ProductWorkHours:    in.ProductWorkHours,
		ProductRevenue:      in.ProductRevenue,
		ClientWorkHours:     in.ClientWorkHours,
		ClientRevenue:       in.ClientRevenue,
		TemplateSalesCount:  in.TemplateSalesCount,
		TemplateSalesAmount: in.TemplateSalesAmount,
		OtherIncome:         in.OtherIncome,
		Notes:               in.Notes,
	}
	week.ComputeTotal()

	return s.revenue.Upsert(ctx, week)
}

// UpdateRevenueWeek overwrites an existing revenue week by id and recomputes
// its total.
func (s *TrackerService) UpdateRevenueWeek(ctx context.Context, id string, in *RevenueInput) (*domain.RevenueWeek, error) {
	week, err := s.revenue.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	week.WeekOf = in.WeekOf
	week.ProductWorkHours = in.ProductWorkHours
	week.ProductRevenue = in.ProductRevenue
	week.ClientWorkHours = in.ClientWorkHours
	week.ClientRevenue = in.ClientRevenue
	week.TemplateSalesCount = in.TemplateSalesCount
	week.TemplateSalesAmount = in.TemplateSalesAmount
	week.OtherIncome = in.OtherIncome
	week.Notes = in.Notes
	week.ComputeTotal()

	if err := s.revenue.Update(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// DeleteRevenueWeek removes a revenue week by id.
func (s *TrackerService) DeleteRevenueWeek(ctx context.Context, id string) error {
	return s.revenue.Delete(ctx, id)
}

// ContentInput carries client-supplied content post fields.
type ContentInput struct {
	WeekOf             time.Time `json:"week_of" binding:"required"`
	ScheduledDate      time.Time `json:"scheduled_date" binding:"required"`
	DayOfWeek          string    `json:"day_of_week"`
	Topic              string    `json:"topic" binding:"required"`
	Done               bool      `json:"done"`
	EngagementLikes    int       `json:"engagement_likes"`
	EngagementComments int       `json:"engagement_comments"`
	EngagementShares   int       `json:"engagement_shares"`
	LeadsGenerated     int       `json:"leads_generated"`
	Notes              string    `json:"notes"`
}

// ListContentPosts returns content posts matching the filters, newest first.
func (s *TrackerService) ListContentPosts(ctx context.Context, filters domain.ContentFilters) ([]domain.ContentPost, error) {
	return s.content.List(ctx, filters)
}

// CreateContentPost persists a new content post.
func (s *TrackerService) CreateContentPost(ctx context.Context, in *ContentInput) (*domain.ContentPost, error) {
	post := &domain.ContentPost{
		ID:                 uuid.New().String(),
		WeekOf:             in.WeekOf,
		ScheduledDate:      in.ScheduledDate,
		DayOfWeek:          in.DayOfWeek,
		Topic:              in.Topic,
		Done:               in.Done,
		EngagementLikes:    in.EngagementLikes,
		EngagementComments: in.EngagementComments,
		EngagementShares:   in.EngagementShares,
		LeadsGenerated:     in.LeadsGenerated,
		Notes:              in.Notes,
	}
	if err := s.content.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateContentPost overwrites an existing content post's editable fields.
func (s *TrackerService) UpdateContentPost(ctx context.Context, id string, in *ContentInput) (*domain.ContentPost, error) {
	post, err := s.content.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.WeekOf = in.WeekOf
	post.ScheduledDate = in.ScheduledDate
	post.DayOfWeek = in.DayOfWeek
	post.Topic = in.Topic
	post.Done = in.Done
	post.EngagementLikes = in.EngagementLikes
	post.EngagementComments = in.EngagementComments
	post.EngagementShares = in.EngagementShares
	post.LeadsGenerated = in.LeadsGenerated
	post.Notes = in.Notes

	if err := s.content.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteContentPost removes a content post by id.
func (s *TrackerService) DeleteContentPost(ctx context.Context, id string) error {
	return s.content.Delete(ctx, id)
}

// ReviewInput carries client-supplied weekly review fields.
type ReviewInput struct {
	WeekOf          time.Time `json:"week_of" binding:"required"`
	JobApplications int       `json:"job_applications"`
	DeepWorkHours   float64   `json:"deep_work_hours"`
	RevenueThisWeek float64   `json:"revenue_this_week"`
	ContentPosted   int       `json:"content_posted"`
	NetworkOutreach int       `json:"network_outreach"`
	MeetingsNotes   string    `json:"meetings_notes"`
	Blockers        string    `json:"blockers"`
	Wins            string    `json:"wins"`
	ActionItems     string    `json:"action_items"`
}

// ListReviews returns all weekly reviews, newest first.
func (s *TrackerService) ListReviews(ctx context.Context) ([]domain.WeeklyReview, error) {
	return s.reviews.List(ctx)
}

// UpsertReview creates or updates the weekly review keyed by week_of and
// returns the stored row, whose id survives across repeated upserts.
func (s *TrackerService) UpsertReview(ctx context.Context, in *ReviewInput) (*domain.WeeklyReview, error) {
	review := &domain.WeeklyReview{
		ID:              uuid.New().String(),
		WeekOf:          in.WeekOf,
		JobApplications: in.JobApplications,
		DeepWorkHours:   in.DeepWorkHours,
		RevenueThisWeek: in.RevenueThisWeek,
		ContentPosted:   in.ContentPosted,
		NetworkOutreach: in.NetworkOutreach,
		MeetingsNotes:   in.MeetingsNotes,
		Blockers:        in.Blockers,
		Wins:            in.Wins,
		ActionItems:     in.ActionItems,
	}
	return s.reviews.Upsert(ctx, review)
}

// UpdateReview overwrites an existing weekly review by id.
func (s *TrackerService) UpdateReview(ctx context.Context, id string, in *ReviewInput) (*domain.WeeklyReview, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.WeekOf = in.WeekOf
	review.JobApplications = in.JobApplications
	review.DeepWorkHours = in.DeepWorkHours
	review.RevenueThisWeek = in.RevenueThisWeek
	review.ContentPosted = in.ContentPosted
	review.NetworkOutreach = in.NetworkOutreach
	review.MeetingsNotes = in.MeetingsNotes
	review.Blockers = in.Blockers
	review.Wins = in.Wins
	review.ActionItems = in.ActionItems

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a weekly review by id.
func (s *TrackerService) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
