package repository

import (
	"context"
	"time"

	"github.com/tyler/huntboard/internal/domain"
	"gorm.io/gorm"
)

// ContactRepository handles network contact data operations.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ContactRepository: repository instance bound to db.
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact record.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.NetworkContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Update updates an existing contact record.
func (r *ContactRepository) Update(ctx context.Context, contact *domain.NetworkContact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// GetByID retrieves a contact by its ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*domain.NetworkContact, error) {
	var contact domain.NetworkContact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List retrieves contacts matching the given filters, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filters: optional narrowing criteria; a nil Responded means no filter.
// Returns:
//   - []domain.NetworkContact: matching records ordered by date contacted descending.
//   - error: non-nil if the query fails.
func (r *ContactRepository) List(ctx context.Context, filters domain.ContactFilters) ([]domain.NetworkContact, error) {
	var contacts []domain.NetworkContact
	query := r.db.WithContext(ctx)
	if filters.Outcome != "" {
		query = query.Where("outcome = ?", filters.Outcome)
	}
	if filters.Responded != nil {
		query = query.Where("responded = ?", *filters.Responded)
	}
	if err := query.Order("date_contacted DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountSince counts contacts made on or after the given time.
func (r *ContactRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.NetworkContact{}).
		Where("date_contacted >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountResponded counts contacts that received a response, and the total.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: responded count.
//   - int64: total contact count.
//   - error: non-nil if either query fails.
func (r *ContactRepository) CountResponded(ctx context.Context) (int64, int64, error) {
	var responded, total int64
	if err := r.db.WithContext(ctx).Model(&domain.NetworkContact{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.NetworkContact{}).
		Where("responded = ?", true).
		Count(&responded).Error; err != nil {
		return 0, 0, err
	}
	return responded, total, nil
}

// Delete removes a contact by ID.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.NetworkContact{}, "id = ?", id).Error
}
