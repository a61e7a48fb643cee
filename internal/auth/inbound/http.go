package inbound

import (
	"github.com/shandysiswandi/twogate/internal/auth/usecase"
	"github.com/shandysiswandi/twogate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for enrollment and authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register enrolls a new account and issues its TOTP secret.
// @Summary Register account
// @Description Creates a pending account and returns the TOTP secret, provisioning URI, and QR code. The secret is disclosed only in this response.
// @Tags Auth, Enrollment
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Enrollment material"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		Secret: resp.Secret,
		URI:    resp.URI,
		QRCode: resp.QRCode,
	}, nil
}

// RegisterVerify confirms a pending enrollment with a fresh TOTP code.
// @Summary Confirm enrollment
// @Description Validates the submitted code against the enrolled secret and marks the account confirmed.
// @Tags Auth, Enrollment
// @Accept json
// @Produce json
// @Param request body RegisterVerifyRequest true "Confirmation payload"
// @Success 200 {object} router.successResponse{data=RegisterVerifyResponse} "Enrollment confirmed"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials or TOTP code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register/verify [post]
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		Username: req.Username,
		Password: req.Password,
		Code:     req.Code,
	}); err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{}, nil
}

// Login authenticates with password and TOTP code.
// @Summary Authenticate user
// @Description Validates the password and a fresh TOTP code for a confirmed account.
// @Tags Auth, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials or TOTP code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		UserID:   resp.UserID,
		Username: resp.Username,
	}, nil
}
