package repository

import (
	"context"

	"github.com/tyler/huntboard/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevenueRepository handles revenue week data operations.
type RevenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new RevenueRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *RevenueRepository: repository instance bound to db.
func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Upsert creates or updates a revenue week keyed by week_of and returns the
// persisted row. On conflict the existing row keeps its id, so the caller
// must not trust the id it passed in.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - week: revenue week to create or update.
// Returns:
//   - *domain.RevenueWeek: the stored record.
//   - error: non-nil if the upsert fails.
func (r *RevenueRepository) Upsert(ctx context.Context, week *domain.RevenueWeek) (*domain.RevenueWeek, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_of"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"product_work_hours", "product_revenue",
			"client_work_hours", "client_revenue",
			"template_sales_count", "template_sales_amount",
			"other_income", "weekly_total", "notes", "updated_at",
		}),
	}).Create(week).Error
	if err != nil {
		return nil, err
	}

	var stored domain.RevenueWeek
	if err := r.db.WithContext(ctx).First(&stored, "week_of = ?", week.WeekOf).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update updates an existing revenue week record.
func (r *RevenueRepository) Update(ctx context.Context, week *domain.RevenueWeek) error {
	return r.db.WithContext(ctx).Save(week).Error
}

// GetByID retrieves a revenue week by its ID.
func (r *RevenueRepository) GetByID(ctx context.Context, id string) (*domain.RevenueWeek, error) {
	var week domain.RevenueWeek
	if err := r.db.WithContext(ctx).First(&week, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// List retrieves all revenue weeks, newest first.
func (r *RevenueRepository) List(ctx context.Context) ([]domain.RevenueWeek, error) {
	var weeks []domain.RevenueWeek
	if err := r.db.WithContext(ctx).Order("week_of DESC").Find(&weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

// Recent retrieves the most recent n revenue weeks, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - n: maximum number of weeks to return.
// Returns:
//   - []domain.RevenueWeek: matching records.
//   - error: non-nil if the query fails.
func (r *RevenueRepository) Recent(ctx context.Context, n int) ([]domain.RevenueWeek, error) {
	var weeks []domain.RevenueWeek
	if err := r.db.WithContext(ctx).Order("week_of DESC").Limit(n).Find(&weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

// Delete removes a revenue week by ID.
func (r *RevenueRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.RevenueWeek{}, "id = ?", id).Error
}
