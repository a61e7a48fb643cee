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

type RegisterInput struct {
	Username string `validate:"required,min=3,max=64,alphanum"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	// Secret is the base32 TOTP seed, disclosed once at enrollment time.
	Secret string
	// URI is the otpauth:// provisioning URI for authenticator apps.
	URI string
	// QRCode is the provisioning URI rendered as a PNG data URI.
	QRCode string
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(strings.ToLower(in.Username))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	secret, uri, err := s.totp.Generate(in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate totp secret", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	newUserID := s.uid.Generate()
	encryptedSecret, err := s.mfaEncryptor.Encrypt([]byte(secret), mfa.Scope{
		UserID:  newUserID,
		Purpose: mfa.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encrypt totp secret", "user_id", newUserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	qrCode, err := s.qr.EncodeDataURI(uri)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode provisioning qr", "user_id", newUserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.User{
		ID:         newUserID,
		Username:   in.Username,
		Password:   string(hashedPassword),
		TOTPSecret: encryptedSecret,
		Status:     entity.UserStatusPending,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "username already registered", "username", in.Username)
			return nil, goerror.NewBusiness("Username already exists", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{
		Secret: secret,
		URI:    uri,
		QRCode: qrCode,
	}, nil
}
