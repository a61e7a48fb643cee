package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/twogate/internal/auth/entity"
	"github.com/shandysiswandi/twogate/internal/pkg/clock"
	"github.com/shandysiswandi/twogate/internal/pkg/config"
	"github.com/shandysiswandi/twogate/internal/pkg/hash"
	"github.com/shandysiswandi/twogate/internal/pkg/instrument"
	"github.com/shandysiswandi/twogate/internal/pkg/mfa"
	"github.com/shandysiswandi/twogate/internal/pkg/otp"
	"github.com/shandysiswandi/twogate/internal/pkg/qr"
	"github.com/shandysiswandi/twogate/internal/pkg/uid"
	"github.com/shandysiswandi/twogate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) error
	ConfirmUser(ctx context.Context, id int64, oldStatus, newStatus entity.UserStatus, at time.Time) error
}

type Usecase struct {
	repoDB       repoDB
	validator    validator.Validator
	cfg          config.Config
	bcrypt       hash.Hash
	mfaEncryptor mfa.Encryptor
	uid          uid.NumberID
	totp         otp.OTP
	qr           qr.Encoder
	clock        clock.Clocker
	ins          instrument.Instrumentation
}

type Dependency struct {
	RepoDB       repoDB
	Validator    validator.Validator
	Config       config.Config
	Bcrypt       hash.Hash
	MFAEncryptor mfa.Encryptor
	UID          uid.NumberID
	Totp         otp.OTP
	QR           qr.Encoder
	Clock        clock.Clocker
	Instrument   instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:       dep.RepoDB,
		validator:    dep.Validator,
		cfg:          dep.Config,
		bcrypt:       dep.Bcrypt,
		mfaEncryptor: dep.MFAEncryptor,
		uid:          dep.UID,
		totp:         dep.Totp,
		qr:           dep.QR,
		clock:        dep.Clock,
		ins:          dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}
