package inbound

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
	QRCode string `json:"qr_code"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. Scan the QR code with your authenticator app, then verify a code to activate your account."
}

type RegisterVerifyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type RegisterVerifyResponse struct{}

func (RegisterVerifyResponse) Message() string {
	return "Two-factor enrollment confirmed. Your account is now active."
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type LoginResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (LoginResponse) Message() string {
	return "Login successful."
}
