package tickets

import (
	"context"
	"fmt"

	"booking/common"

	"gorm.io/gorm"
)

// Repository handles data access for tickets
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll returns every ticket in insertion order
func (r *Repository) FindAll(ctx context.Context) ([]common.Ticket, error) {
	var tickets []common.Ticket
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// FindFirstByName returns the first ticket with the given name.
// The error wraps gorm.ErrRecordNotFound when there is none.
func (r *Repository) FindFirstByName(ctx context.Context, name string) (*common.Ticket, error) {
	var ticket common.Ticket
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ticket).Error; err != nil {
		return nil, fmt.Errorf("failed to find ticket by name: %w", err)
	}
	return &ticket, nil
}

// ExistsByID reports whether a ticket with the id is stored
func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&common.Ticket{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket id: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new ticket
func (r *Repository) Create(ctx context.Context, ticket *common.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

// UpdateByID rewrites name and nohp of the ticket with the id and reports
// how many rows matched.
func (r *Repository) UpdateByID(ctx context.Context, id, name, nohp string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&common.Ticket{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "nohp": nohp})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByName removes every ticket with the name
func (r *Repository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&common.Ticket{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}
