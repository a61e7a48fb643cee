package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/twogate/internal/auth/entity"
	"github.com/shandysiswandi/twogate/internal/pkg/goerror"
	"github.com/shandysiswandi/twogate/internal/pkg/mfa"
)

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Code     string `validate:"required,len=6,numeric"`
}

type LoginOutput struct {
	UserID   int64
	Username string
}

// Login authenticates a confirmed account with its password and a fresh
// TOTP code. Unknown usernames, wrong passwords, and unconfirmed accounts
// all fail with the same message so usernames cannot be enumerated.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Username = strings.TrimSpace(strings.ToLower(in.Username))
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByUsername(ctx, in.Username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "username", in.Username)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	if user.Status != entity.UserStatusConfirmed {
		slog.WarnContext(ctx, "user account enrollment not confirmed", "user_id", user.ID, "status", user.Status.String())
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	secret, err := s.mfaEncryptor.Decrypt(user.TOTPSecret, mfa.Scope{
		UserID:  user.ID,
		Purpose: mfa.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to decrypt totp secret", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.totp.Validate(in.Code, string(secret), s.clock.Now()) {
		slog.WarnContext(ctx, "invalid totp code on login", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid TOTP token", goerror.CodeUnauthorized)
	}

	return &LoginOutput{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
