package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator    validator.Validator
	clock        clock.Clocker
	bcrypt       hash.Hash
	uid          uid.NumberID
	uuid         uid.StringID
	totp         otp.OTP
	qr           qr.Encoder
	mfaEncryptor mfa.Encryptor

	// resources
	dbConn *pgxpool.Pool

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
