package repository

import (
	"context"
	"time"

	"github.com/tyler/huntboard/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository handles content post data operations.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ContentRepository: repository instance bound to db.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create inserts a new content post record.
func (r *ContentRepository) Create(ctx context.Context, post *domain.ContentPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update updates an existing content post record.
func (r *ContentRepository) Update(ctx context.Context, post *domain.ContentPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// GetByID retrieves a content post by its ID.
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*domain.ContentPost, error) {
	var post domain.ContentPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves content posts matching the given filters, newest first.
func (r *ContentRepository) List(ctx context.Context, filters domain.ContentFilters) ([]domain.ContentPost, error) {
	var posts []domain.ContentPost
	query := r.db.WithContext(ctx)
	if filters.WeekOf != nil {
		query = query.Where("week_of = ?", *filters.WeekOf)
	}
	if filters.Done != nil {
		query = query.Where("done = ?", *filters.Done)
	}
	if err := query.Order("scheduled_date DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountDoneSince counts published posts scheduled on or after the given time.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - since: inclusive lower bound on scheduled date.
// Returns:
//   - int64: number of matching records.
//   - error: non-nil if the query fails.
func (r *ContentRepository) CountDoneSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ContentPost{}).
		Where("scheduled_date >= ? AND done = ?", since, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a content post by ID.
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.ContentPost{}, "id = ?", id).Error
}
