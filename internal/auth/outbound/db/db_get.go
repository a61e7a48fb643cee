package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/twogate/internal/auth/entity"
)

const getUserByUsernameQuery = `
SELECT id, username, password, totp_secret, status, created_at, confirmed_at
FROM users
WHERE username = $1
`

func (s *DB) GetUserByUsername(ctx context.Context, username string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	var u entity.User
	var status int16
	var createdAt, confirmedAt pgtype.Timestamptz

	err = s.conn.QueryRow(ctx, getUserByUsernameQuery, username).Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.TOTPSecret,
		&status,
		&createdAt,
		&confirmedAt,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	u.Status = entity.UserStatus(status)
	u.CreatedAt = createdAt.Time
	if confirmedAt.Valid {
		t := confirmedAt.Time
		u.ConfirmedAt = &t
	}

	return &u, nil
}
