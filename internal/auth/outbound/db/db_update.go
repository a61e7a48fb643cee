package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/twogate/internal/auth/entity"
	"github.com/shandysiswandi/twogate/internal/pkg/goerror"
)

const confirmUserQuery = `
UPDATE users
SET status = $1, confirmed_at = $2
WHERE id = $3 AND status = $4
`

// ConfirmUser transitions the account status guarded by the old status so a
// concurrent confirm cannot double-apply.
func (s *DB) ConfirmUser(ctx context.Context, id int64, oldStatus, newStatus entity.UserStatus, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "ConfirmUser")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, confirmUserQuery,
		int16(newStatus),
		pgtype.Timestamptz{Valid: true, Time: at},
		id,
		int16(oldStatus),
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
