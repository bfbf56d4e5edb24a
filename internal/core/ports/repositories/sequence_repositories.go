package repositories

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SequenceAllocator hands out monotonically increasing counter values, one
// counter per identifier type. Values consumed by rolled back work are not reused.
type SequenceAllocator interface {
	NextValue(ctx context.Context, seq domain.Sequence) (int64, error)
	NextValueInTx(ctx context.Context, tx pgx.Tx, seq domain.Sequence) (int64, error)
}
