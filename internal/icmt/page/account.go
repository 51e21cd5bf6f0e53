package page

import (
	"context"
	"strings"
	"sync"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
)

// MsgMissingCredentials is shown when the account form is incomplete.
const MsgMissingCredentials = "Email and password are required"

// AuthService is the slice of the backend the account pages need.
type AuthService interface {
	Register(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Account backs the login, register and logout flows.
type Account struct {
	mu       sync.Mutex
	svc      AuthService
	navigate Navigator

	errMsg  string
	loading bool
	user    *api.User
}

// NewAccount builds the account page around its collaborators.
func NewAccount(svc AuthService, navigate Navigator) *Account {
	return &Account{svc: svc, navigate: navigate}
}

// Login signs in and navigates home on success.
func (a *Account) Login(ctx context.Context, creds api.Credentials) error {
	return a.authenticate(ctx, creds, api.MsgLoginFailed, a.svc.Login)
}

// Register creates the account and navigates home on success.
func (a *Account) Register(ctx context.Context, creds api.Credentials) error {
	return a.authenticate(ctx, creds, api.MsgRegisterFailed, a.svc.Register)
}

func (a *Account) authenticate(ctx context.Context, creds api.Credentials, fallback string,
	call func(context.Context, api.Credentials) (*api.AuthResponse, error)) error {
	if !a.begin() {
		return errors.ErrSubmissionInFlight
	}

	creds.Email = strings.TrimSpace(creds.Email)
	creds.Name = strings.TrimSpace(creds.Name)
	if creds.Email == "" || creds.Password == "" {
		a.finish(MsgMissingCredentials, nil)
		return errors.ErrMissingCredentials
	}

	resp, err := call(ctx, creds)
	if err != nil {
		a.finish(errorMessage(err, fallback), nil)
		return err
	}

	a.finish("", &resp.User)
	if a.navigate != nil {
		a.navigate(RootRoute)
	}
	return nil
}

// Logout ends the session and navigates home on success.
func (a *Account) Logout(ctx context.Context) error {
	if !a.begin() {
		return errors.ErrSubmissionInFlight
	}
	if err := a.svc.Logout(ctx); err != nil {
		a.finish(errorMessage(err, api.MsgLogoutFailed), nil)
		return err
	}
	a.finish("", nil)
	if a.navigate != nil {
		a.navigate(RootRoute)
	}
	return nil
}

func (a *Account) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loading {
		return false
	}
	a.loading = true
	a.errMsg = ""
	return true
}

func (a *Account) finish(msg string, user *api.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	a.errMsg = msg
	a.user = user
}

// Error is the message to display, if any.
func (a *Account) Error() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// User is the account returned by the last successful login or register.
func (a *Account) User() *api.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}
