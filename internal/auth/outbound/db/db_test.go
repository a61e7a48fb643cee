package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/twogate/internal/auth/entity"
	"github.com/shandysiswandi/twogate/internal/pkg/goerror"
	"github.com/shandysiswandi/twogate/internal/pkg/instrument"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id           BIGINT PRIMARY KEY,
    username     TEXT NOT NULL,
    password     TEXT NOT NULL,
    totp_secret  BYTEA NOT NULL,
    status       SMALLINT NOT NULL DEFAULT 1,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    confirmed_at TIMESTAMPTZ NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username);
`

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("twogate"),
		postgres.WithUsername("twogate"),
		postgres.WithPassword("twogate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("create pgx pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, usersSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return NewDB(pool, instrument.NewNoop())
}

func TestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	store := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	alice := entity.User{
		ID:         1,
		Username:   "alice",
		Password:   "$2a$10$notarealhashbutlongenoughtostorexxxxxxxxxxxxxxxxxxxxx",
		TOTPSecret: []byte{0x01, 0x02, 0x03},
		Status:     entity.UserStatusPending,
		CreatedAt:  now,
	}

	t.Run("create and get", func(t *testing.T) {
		if err := store.CreateUser(ctx, alice); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		got, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername() error = %v", err)
		}
		if got.ID != alice.ID || got.Username != alice.Username || got.Password != alice.Password {
			t.Fatalf("GetUserByUsername() = %+v, want %+v", got, alice)
		}
		if string(got.TOTPSecret) != string(alice.TOTPSecret) {
			t.Fatalf("totp secret roundtrip mismatch: %v", got.TOTPSecret)
		}
		if got.Status != entity.UserStatusPending || got.ConfirmedAt != nil {
			t.Fatalf("fresh row status = %v confirmed_at = %v, want pending/nil", got.Status, got.ConfirmedAt)
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		dup := alice
		dup.ID = 2
		if err := store.CreateUser(ctx, dup); !errors.Is(err, goerror.ErrConflict) {
			t.Fatalf("CreateUser() duplicate error = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown username not found", func(t *testing.T) {
		if _, err := store.GetUserByUsername(ctx, "nobody"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("GetUserByUsername() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("confirm transitions and guards", func(t *testing.T) {
		if err := store.ConfirmUser(ctx, alice.ID, entity.UserStatusPending, entity.UserStatusConfirmed, now); err != nil {
			t.Fatalf("ConfirmUser() error = %v", err)
		}

		got, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername() error = %v", err)
		}
		if got.Status != entity.UserStatusConfirmed {
			t.Fatalf("status after confirm = %v, want confirmed", got.Status)
		}
		if got.ConfirmedAt == nil || !got.ConfirmedAt.Equal(now) {
			t.Fatalf("confirmed_at = %v, want %v", got.ConfirmedAt, now)
		}

		// The guarded update refuses the same transition twice.
		err = store.ConfirmUser(ctx, alice.ID, entity.UserStatusPending, entity.UserStatusConfirmed, now)
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("second ConfirmUser() error = %v, want ErrNotFound", err)
		}
	})
}
