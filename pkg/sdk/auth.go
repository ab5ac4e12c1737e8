package sdk

import "context"

// Credentials for the password login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration payload for the self-service registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

// AuthResponse is returned by both login and register: a session token plus
// the authenticated user's profile.
type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// CheckAuthResponse reports whether the caller's token identifies a live
// session. User is populated only when IsAuthenticated is true.
type CheckAuthResponse struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	User            *User `json:"user,omitempty"`
}

// CheckAuth asks the backend whether the attached token is still valid.
func (c *Client) CheckAuth(ctx context.Context) (*CheckAuthResponse, error) {
	var resp CheckAuthResponse
	if err := c.get(ctx, "/auth/check_auth/", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges a username and password for a session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns its first session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the session token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout/", nil, nil)
}

// Profile fetches the authenticated user's own profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/profile/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
