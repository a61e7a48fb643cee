package inbound

import (
	"context"

	"github.com/shandysiswandi/twogate/internal/auth/usecase"
	"github.com/shandysiswandi/twogate/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/register/verify", end.RegisterVerify)
	r.POST("/api/v1/auth/login", end.Login)
}
