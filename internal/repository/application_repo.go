package repository

import (
	"context"
	"time"

	"github.com/tyler/huntboard/internal/domain"
	"gorm.io/gorm"
)

// ApplicationRepository handles job application data operations.
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ApplicationRepository: repository instance bound to db.
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - app: application record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// Update updates an existing application record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - app: application record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *ApplicationRepository) Update(ctx context.Context, app *domain.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// GetByID retrieves an application by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: application ID.
// Returns:
//   - *domain.Application: record if found.
//   - error: non-nil if lookup fails.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// List retrieves applications matching the given filters, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filters: optional narrowing criteria; zero values are ignored.
// Returns:
//   - []domain.Application: matching records ordered by date applied descending.
//   - error: non-nil if the query fails.
func (r *ApplicationRepository) List(ctx context.Context, filters domain.ApplicationFilters) ([]domain.Application, error) {
	var apps []domain.Application
	query := r.db.WithContext(ctx)
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.Company != "" {
		query = query.Where("company LIKE ?", "%"+filters.Company+"%")
	}
	if filters.ResumeVersion != "" {
		query = query.Where("resume_version = ?", filters.ResumeVersion)
	}
	if err := query.Order("date_applied DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Count returns the total number of applications.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of records.
//   - error: non-nil if the query fails.
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSince counts applications applied on or after the given time.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - since: inclusive lower bound on date applied.
// Returns:
//   - int64: number of matching records.
//   - error: non-nil if the query fails.
func (r *ApplicationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("date_applied >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes an application by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: application ID to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Application{}, "id = ?", id).Error
}
