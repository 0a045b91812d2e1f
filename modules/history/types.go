// Package history persists the append-only calculation log.
package history

import (
	"time"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// Entry is the persisted form of a calculation record.
type Entry struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Source     string    `gorm:"size:16;index" json:"source"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name for GORM.
func (Entry) TableName() string {
	return "calculations"
}

// Record converts an entry to its domain representation.
func (e Entry) Record() calc.Record {
	return calc.Record{
		ID:         e.ID,
		Source:     calc.Source(e.Source),
		Expression: e.Expression,
		Result:     e.Result,
		CreatedAt:  e.CreatedAt,
	}
}

// ListRequest asks for recent history entries.
type ListRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ListResponse carries recent history entries, newest first.
type ListResponse struct {
	Records []calc.Record `json:"records"`
	Total   int64         `json:"total"`
}

// ClearRequest asks for the history to be wiped.
type ClearRequest struct{}

// ClearResponse reports how many entries were removed.
type ClearResponse struct {
	Removed int64 `json:"removed"`
}
