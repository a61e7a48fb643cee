package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/twogate/internal/auth"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Config:       a.config,
			Instrument:   a.ins,
			UID:          a.uid,
			Bcrypt:       a.bcrypt,
			MFAEncryptor: a.mfaEncryptor,
			Clock:        a.clock,
			Validator:    a.validator,
			Router:       a.router,
			Totp:         a.totp,
			QR:           a.qr,
			DBConn:       a.dbConn,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}
}
