package repository

import (
	"context"
	"errors"

	"github.com/tyler/huntboard/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository handles weekly review data operations.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ReviewRepository: repository instance bound to db.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert creates or updates a weekly review keyed by week_of and returns the
// persisted row. On conflict the existing row keeps its id.
func (r *ReviewRepository) Upsert(ctx context.Context, review *domain.WeeklyReview) (*domain.WeeklyReview, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_of"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"job_applications", "deep_work_hours", "revenue_this_week",
			"content_posted", "network_outreach",
			"meetings_notes", "blockers", "wins", "action_items", "updated_at",
		}),
	}).Create(review).Error
	if err != nil {
		return nil, err
	}

	var stored domain.WeeklyReview
	if err := r.db.WithContext(ctx).First(&stored, "week_of = ?", review.WeekOf).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update updates an existing weekly review record.
func (r *ReviewRepository) Update(ctx context.Context, review *domain.WeeklyReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// GetByID retrieves a weekly review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.WeeklyReview, error) {
	var review domain.WeeklyReview
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List retrieves all weekly reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]domain.WeeklyReview, error) {
	var reviews []domain.WeeklyReview
	if err := r.db.WithContext(ctx).Order("week_of DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Latest retrieves the most recent weekly review, or nil when none exist.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *domain.WeeklyReview: newest review, or nil.
//   - error: non-nil if the query fails.
func (r *ReviewRepository) Latest(ctx context.Context) (*domain.WeeklyReview, error) {
	var review domain.WeeklyReview
	err := r.db.WithContext(ctx).Order("week_of DESC").First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Delete removes a weekly review by ID.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.WeeklyReview{}, "id = ?", id).Error
}
