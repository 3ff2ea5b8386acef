package port

import (
	"context"

	"irpfdecl/internal/domain"
)

// RowSource reads the whole payments sheet in a single call.
type RowSource interface {
	FetchRows(ctx context.Context) (*domain.Table, error)
	// Configured reports whether the source has the credentials it needs.
	Configured() bool
}
