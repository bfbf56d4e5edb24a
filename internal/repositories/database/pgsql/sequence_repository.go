package pgsql

import (
	"context"
	"fmt"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository allocates identifier counters from PostgreSQL sequences.
type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceAllocator {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceAllocator = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) NextValue(ctx context.Context, seq domain.Sequence) (int64, error) {
	return nextValue(ctx, r.Pool, seq)
}

func (r *PgxSequenceRepository) NextValueInTx(ctx context.Context, tx pgx.Tx, seq domain.Sequence) (int64, error) {
	return nextValue(ctx, tx, seq)
}

func nextValue(ctx context.Context, q dbtx, seq domain.Sequence) (int64, error) {
	if !seq.IsValid() {
		return 0, apperrors.NewValidationError(fmt.Sprintf("unknown sequence %q", seq))
	}
	var v int64
	if err := q.QueryRow(ctx, `SELECT nextval($1::regclass);`, string(seq)).Scan(&v); err != nil {
		return 0, translateError(err, "sequence", "allocate "+string(seq))
	}
	return v, nil
}
