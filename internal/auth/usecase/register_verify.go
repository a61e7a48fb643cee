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

type RegisterVerifyInput struct {
	Username string `validate:"required,min=3,max=64,alphanum"`
	// Password is accepted for wire compatibility but not re-verified here;
	// possession of the enrolled seed is what this step proves.
	Password string `validate:"required"`
	Code     string `validate:"required,len=6,numeric"`
}

func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
	defer span.End()

	in.Username = strings.TrimSpace(strings.ToLower(in.Username))
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByUsername(ctx, in.Username)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "username", in.Username)
		return goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	secret, err := s.mfaEncryptor.Decrypt(user.TOTPSecret, mfa.Scope{
		UserID:  user.ID,
		Purpose: mfa.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to decrypt totp secret", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.totp.Validate(in.Code, string(secret), s.clock.Now()) {
		slog.WarnContext(ctx, "invalid totp code on enrollment confirm", "user_id", user.ID)
		return goerror.NewBusiness("Invalid TOTP token", goerror.CodeUnauthorized)
	}

	// Re-confirming an already-confirmed account is a no-op.
	if user.Status == entity.UserStatusConfirmed {
		return nil
	}

	err = s.repoDB.ConfirmUser(ctx, user.ID, entity.UserStatusPending, entity.UserStatusConfirmed, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		// A concurrent confirm won the guarded update; same outcome.
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo confirm user", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
