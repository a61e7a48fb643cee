package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/twogate/internal/auth/usecase"
	"github.com/shandysiswandi/twogate/internal/pkg/goerror"
	"github.com/shandysiswandi/twogate/internal/pkg/instrument"
	"github.com/shandysiswandi/twogate/internal/pkg/router"
	"github.com/shandysiswandi/twogate/internal/pkg/uid"
)

type stubUC struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	verifyErr   error
	loginOut    *usecase.LoginOutput
	loginErr    error

	gotRegister usecase.RegisterInput
	gotLogin    usecase.LoginInput
}

func (s *stubUC) Register(_ context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.gotRegister = in
	return s.registerOut, s.registerErr
}

func (s *stubUC) RegisterVerify(_ context.Context, _ usecase.RegisterVerifyInput) error {
	return s.verifyErr
}

func (s *stubUC) Login(_ context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.gotLogin = in
	return s.loginOut, s.loginErr
}

type envelope struct {
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestServer(t *testing.T, uc uc) *httptest.Server {
	t.Helper()

	r := router.NewRouter(router.Config{
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, envelope) {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestRegisterEndpoint(t *testing.T) {
	stub := &stubUC{registerOut: &usecase.RegisterOutput{
		Secret: "JBSWY3DPEHPK3PXP",
		URI:    "otpauth://totp/TwoGate:alice?secret=JBSWY3DPEHPK3PXP",
		QRCode: "data:image/png;base64,aGk=",
	}}
	srv := newTestServer(t, stub)

	status, env := postJSON(t, srv, "/api/v1/auth/register", `{"username":"alice","password":"correct horse"}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if stub.gotRegister.Username != "alice" {
		t.Fatalf("usecase received username %q, want alice", stub.gotRegister.Username)
	}

	var data RegisterResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Secret != "JBSWY3DPEHPK3PXP" || !strings.HasPrefix(data.QRCode, "data:image/png;base64,") {
		t.Fatalf("data = %+v, want enrollment material", data)
	}
}

func TestRegisterEndpointConflict(t *testing.T) {
	stub := &stubUC{registerErr: goerror.NewBusiness("Username already exists", goerror.CodeConflict)}
	srv := newTestServer(t, stub)

	status, env := postJSON(t, srv, "/api/v1/auth/register", `{"username":"alice","password":"correct horse"}`)

	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if env.Message != "Username already exists" {
		t.Fatalf("message = %q, want conflict message", env.Message)
	}
}

func TestRegisterEndpointMalformedBody(t *testing.T) {
	srv := newTestServer(t, &stubUC{})

	status, _ := postJSON(t, srv, "/api/v1/auth/register", `{"username": `)

	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestRegisterVerifyEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubUC{})

	status, env := postJSON(t, srv, "/api/v1/auth/register/verify",
		`{"username":"alice","password":"correct horse","code":"123456"}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(env.Message, "confirmed") {
		t.Fatalf("message = %q, want confirmation message", env.Message)
	}
}

func TestLoginEndpoint(t *testing.T) {
	stub := &stubUC{loginOut: &usecase.LoginOutput{UserID: 42, Username: "alice"}}
	srv := newTestServer(t, stub)

	status, env := postJSON(t, srv, "/api/v1/auth/login",
		`{"username":"alice","password":"correct horse","code":"123456"}`)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var data LoginResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.UserID != 42 || data.Username != "alice" {
		t.Fatalf("data = %+v, want user 42/alice", data)
	}
}

func TestLoginEndpointUnauthorized(t *testing.T) {
	stub := &stubUC{loginErr: goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)}
	srv := newTestServer(t, stub)

	status, env := postJSON(t, srv, "/api/v1/auth/login",
		`{"username":"alice","password":"wrong","code":"123456"}`)

	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if env.Message != "Invalid credentials" {
		t.Fatalf("message = %q, want Invalid credentials", env.Message)
	}
}
