package history

import (
	"fmt"
	"time"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultListLimit caps list queries when the caller does not set a limit.
const DefaultListLimit = 50

// Repository provides database access for history entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the calculations table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Entry{})
}

// Append stores a new calculation record.
func (r *Repository) Append(source calc.Source, expression, result string, at time.Time) (*Entry, error) {
	entry := &Entry{
		ID:         uuid.New().String(),
		Source:     string(source),
		Expression: expression,
		Result:     result,
		CreatedAt:  at,
	}
	if err := r.db.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}
	return entry, nil
}

// List returns the most recent entries, newest first.
func (r *Repository) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var entries []Entry
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// Count returns the total number of stored entries.
func (r *Repository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&Entry{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return total, nil
}

// Clear removes all entries and reports how many were deleted.
func (r *Repository) Clear() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&Entry{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear history: %w", res.Error)
	}
	return res.RowsAffected, nil
}
