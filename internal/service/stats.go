package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/repository"
)

// monthlyWindowWeeks is how many recent revenue weeks roll up into the
// monthly figure.
const monthlyWindowWeeks = 4

// DashboardStats is the aggregate snapshot served at /dashboard.
type DashboardStats struct {
	TotalApplications    int64 `json:"total_applications"`
	ApplicationsThisWeek int64 `json:"applications_this_week"`
	ApplicationsGoal     int   `json:"applications_goal"`
	ApplicationsProgress int   `json:"applications_progress"`

	MonthlyRevenue  float64 `json:"monthly_revenue"`
	MonthlyGoal     float64 `json:"monthly_goal"`
	RevenueProgress int     `json:"revenue_progress"`
	OnTrack         bool    `json:"on_track"`

	ContactsThisWeek int64 `json:"contacts_this_week"`
	ContactsGoal     int   `json:"contacts_goal"`
	ContactsProgress int   `json:"contacts_progress"`

	PostsThisWeek int64 `json:"posts_this_week"`
	PostsGoal     int   `json:"posts_goal"`
	PostsProgress int   `json:"posts_progress"`

	LatestReview *domain.WeeklyReview `json:"latest_review,omitempty"`
}

// NetworkStats summarizes outreach activity for the contacts list view.
type NetworkStats struct {
	ContactsThisWeek int64  `json:"contacts_this_week"`
	WeeklyGoal       int    `json:"weekly_goal"`
	Responded        int64  `json:"responded"`
	Total            int64  `json:"total"`
	ResponseRate     string `json:"response_rate"`
}

// ContentStats summarizes the content calendar for its list view.
type ContentStats struct {
	PostsThisWeek   int64 `json:"posts_this_week"`
	WeeklyGoal      int   `json:"weekly_goal"`
	TotalPosts      int   `json:"total_posts"`
	Completed       int   `json:"completed"`
	TotalEngagement int   `json:"total_engagement"`
	TotalLeads      int   `json:"total_leads"`
}

// RevenueStats summarizes income for the revenue list view.
type RevenueStats struct {
	MonthlyTotal  float64 `json:"monthly_total"`
	MonthlyGoal   float64 `json:"monthly_goal"`
	OnTrack       bool    `json:"on_track"`
	GapToClose    float64 `json:"gap_to_close"`
	AverageWeekly float64 `json:"average_weekly"`
}

// StatsService computes the dashboard and per-table aggregates. All of it is
// arithmetic over repository queries; nothing is cached.
type StatsService struct {
	apps     *repository.ApplicationRepository
	contacts *repository.ContactRepository
	revenue  *repository.RevenueRepository
	content  *repository.ContentRepository
	reviews  *repository.ReviewRepository
	goals    config.GoalsConfig
}

// NewStatsService creates a new stats service.
// Parameters:
//   - apps, contacts, revenue, content, reviews: entity repositories.
//   - goals: fixed weekly/monthly targets.
// Returns:
//   - *StatsService: initialized service.
func NewStatsService(
	apps *repository.ApplicationRepository,
	contacts *repository.ContactRepository,
	revenue *repository.RevenueRepository,
	content *repository.ContentRepository,
	reviews *repository.ReviewRepository,
	goals config.GoalsConfig,
) *StatsService {
	return &StatsService{
		apps:     apps,
		contacts: contacts,
		revenue:  revenue,
		content:  content,
		reviews:  reviews,
		goals:    goals,
	}
}

// Dashboard assembles the aggregate snapshot for the landing page.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *DashboardStats: computed snapshot.
//   - error: non-nil if any underlying query fails.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	weekStart := StartOfWeek(time.Now())

	total, err := s.apps.Count(ctx)
	if err != nil {
		return nil, err
	}
	appsThisWeek, err := s.apps.CountSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	recentWeeks, err := s.revenue.Recent(ctx, monthlyWindowWeeks)
	if err != nil {
		return nil, err
	}
	contactsThisWeek, err := s.contacts.CountSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	postsThisWeek, err := s.content.CountDoneSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	latest, err := s.reviews.Latest(ctx)
	if err != nil {
		return nil, err
	}

	var monthlyRevenue float64
	for _, w := range recentWeeks {
		monthlyRevenue += w.WeeklyTotal
	}

	return &DashboardStats{
		TotalApplications:    total,
		ApplicationsThisWeek: appsThisWeek,
		ApplicationsGoal:     s.goals.ApplicationsPerWeek,
		ApplicationsProgress: Progress(float64(appsThisWeek), float64(s.goals.ApplicationsPerWeek)),
		MonthlyRevenue:       monthlyRevenue,
		MonthlyGoal:          s.goals.RevenuePerMonth,
		RevenueProgress:      Progress(monthlyRevenue, s.goals.RevenuePerMonth),
		OnTrack:              monthlyRevenue >= s.goals.RevenuePerMonth,
		ContactsThisWeek:     contactsThisWeek,
		ContactsGoal:         s.goals.ContactsPerWeek,
		ContactsProgress:     Progress(float64(contactsThisWeek), float64(s.goals.ContactsPerWeek)),
		PostsThisWeek:        postsThisWeek,
		PostsGoal:            s.goals.PostsPerWeek,
		PostsProgress:        Progress(float64(postsThisWeek), float64(s.goals.PostsPerWeek)),
		LatestReview:         latest,
	}, nil
}

// Network computes the contacts list stats.
func (s *StatsService) Network(ctx context.Context) (*NetworkStats, error) {
	weekStart := StartOfWeek(time.Now())
	thisWeek, err := s.contacts.CountSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	responded, total, err := s.contacts.CountResponded(ctx)
	if err != nil {
		return nil, err
	}
	return &NetworkStats{
		ContactsThisWeek: thisWeek,
		WeeklyGoal:       s.goals.ContactsPerWeek,
		Responded:        responded,
		Total:            total,
		ResponseRate:     ResponseRate(responded, total),
	}, nil
}

// Content computes the content calendar stats.
func (s *StatsService) Content(ctx context.Context) (*ContentStats, error) {
	weekStart := StartOfWeek(time.Now())
	thisWeek, err := s.content.CountDoneSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	posts, err := s.content.List(ctx, domain.ContentFilters{})
	if err != nil {
		return nil, err
	}

	stats := &ContentStats{
		PostsThisWeek: thisWeek,
		WeeklyGoal:    s.goals.PostsPerWeek,
		TotalPosts:    len(posts),
	}
	for _, p := range posts {
		if p.Done {
			stats.Completed++
		}
		stats.TotalEngagement += p.EngagementLikes + p.EngagementComments + p.EngagementShares
		stats.TotalLeads += p.LeadsGenerated
	}
	return stats, nil
}

// Revenue computes the revenue list stats. The monthly window is the most
// recent four weeks.
func (s *StatsService) Revenue(ctx context.Context) (*RevenueStats, error) {
	weeks, err := s.revenue.List(ctx)
	if err != nil {
		return nil, err
	}

	var monthlyTotal float64
	for i, w := range weeks {
		if i >= monthlyWindowWeeks {
			break
		}
		monthlyTotal += w.WeeklyTotal
	}

	var allTotal float64
	for _, w := range weeks {
		allTotal += w.WeeklyTotal
	}
	var average float64
	if len(weeks) > 0 {
		average = allTotal / float64(len(weeks))
	}

	gap := s.goals.RevenuePerMonth - monthlyTotal
	if gap < 0 {
		gap = 0
	}

	return &RevenueStats{
		MonthlyTotal:  monthlyTotal,
		MonthlyGoal:   s.goals.RevenuePerMonth,
		OnTrack:       monthlyTotal >= s.goals.RevenuePerMonth,
		GapToClose:    gap,
		AverageWeekly: average,
	}, nil
}

// StartOfWeek returns midnight on the Sunday of now's week, local time.
func StartOfWeek(now time.Time) time.Time {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

// Progress returns value as an integer percentage of goal, truncated.
// A zero goal yields zero.
func Progress(value, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(value / goal * 100)
}

// ResponseRate formats responded/total as a percentage with one decimal,
// "0.0" when there are no contacts.
func ResponseRate(responded, total int64) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(responded)/float64(total)*100)
}
