package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// HistoryPort defines the interface other modules use to access the
// calculation log.
type HistoryPort interface {
	List(ctx context.Context, limit int) ([]calc.Record, int64, error)
	Clear(ctx context.Context) (int64, error)
}

// Adapter implements HistoryPort using the service container.
type Adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new history adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{container: container}
}

// List returns recent history records, newest first.
func (a *Adapter) List(ctx context.Context, limit int) ([]calc.Record, int64, error) {
	req := ListRequest{Limit: limit}
	var resp ListResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, 0, fmt.Errorf("list request failed: %w", err)
	}

	return resp.Records, resp.Total, nil
}

// Clear wipes the calculation log.
func (a *Adapter) Clear(ctx context.Context) (int64, error) {
	req := ClearRequest{}
	var resp ClearResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"clear",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("clear request failed: %w", err)
	}

	return resp.Removed, nil
}
