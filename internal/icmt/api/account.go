package api

import "context"

// Fallback messages used when a failed response carries no usable error.
const (
	MsgRegisterFailed = "Registration failed"
	MsgLoginFailed    = "Login failed"
	MsgLogoutFailed   = "Logout failed"
)

// registerBody always carries name, even when it is empty.
type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates an account and starts a session for it
func (c *Client) Register(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	body := registerBody{Email: creds.Email, Password: creds.Password, Name: creds.Name}
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/register", body, &resp, MsgRegisterFailed); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login starts a session for an existing account
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	login := Credentials{Email: creds.Email, Password: creds.Password}
	var resp AuthResponse
	if err := c.post(ctx, "/api/auth/login", login, &resp, MsgLoginFailed); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout ends the current session
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil, MsgLogoutFailed)
}
