package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/twogate/internal/auth/entity"
)

const createUserQuery = `
INSERT INTO users (id, username, password, totp_secret, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

// CreateUser inserts the credential row. The unique index on username makes
// the insert the arbiter for concurrent registrations; the losing racer gets
// goerror.ErrConflict.
func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createUserQuery,
		user.ID,
		user.Username,
		user.Password,
		user.TOTPSecret,
		int16(user.Status),
		pgtype.Timestamptz{Valid: true, Time: user.CreatedAt},
	)
	err = s.mapError(err)
	return err
}
