package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/twogate/internal/auth/inbound"
	"github.com/shandysiswandi/twogate/internal/auth/outbound/db"
	"github.com/shandysiswandi/twogate/internal/auth/usecase"
	"github.com/shandysiswandi/twogate/internal/pkg/clock"
	"github.com/shandysiswandi/twogate/internal/pkg/config"
	"github.com/shandysiswandi/twogate/internal/pkg/hash"
	"github.com/shandysiswandi/twogate/internal/pkg/instrument"
	"github.com/shandysiswandi/twogate/internal/pkg/mfa"
	"github.com/shandysiswandi/twogate/internal/pkg/otp"
	"github.com/shandysiswandi/twogate/internal/pkg/qr"
	"github.com/shandysiswandi/twogate/internal/pkg/router"
	"github.com/shandysiswandi/twogate/internal/pkg/uid"
	"github.com/shandysiswandi/twogate/internal/pkg/validator"
)

type Dependency struct {
	DBConn       *pgxpool.Pool              `validate:"required"`
	Router       *router.Router             `validate:"required"`
	Config       config.Config              `validate:"required"`
	Instrument   instrument.Instrumentation `validate:"required"`
	UID          uid.NumberID               `validate:"required"`
	Bcrypt       hash.Hash                  `validate:"required"`
	MFAEncryptor mfa.Encryptor              `validate:"required"`
	Clock        clock.Clocker              `validate:"required"`
	Totp         otp.OTP                    `validate:"required"`
	QR           qr.Encoder                 `validate:"required"`
	Validator    validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:       dbAuth,
		Validator:    dep.Validator,
		Config:       dep.Config,
		Bcrypt:       dep.Bcrypt,
		MFAEncryptor: dep.MFAEncryptor,
		UID:          dep.UID,
		Totp:         dep.Totp,
		QR:           dep.QR,
		Clock:        dep.Clock,
		Instrument:   dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
