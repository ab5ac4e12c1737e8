package sdk

import (
	"context"
	"log/slog"
	"sync"
)

// AuthState is the session's resolution state. Route and command guards must
// treat AuthChecking as "decision pending": redirecting on the initial false
// before the auth check settles would bounce a logged-in user to the login
// screen.
type AuthState int

const (
	AuthChecking AuthState = iota
	AuthAnonymous
	AuthAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthChecking:
		return "checking"
	case AuthAnonymous:
		return "anonymous"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Decision is a guard's verdict for an access attempt.
type Decision int

const (
	// DecisionPending means the auth check has not settled; do nothing yet.
	DecisionPending Decision = iota
	// DecisionAllow grants access.
	DecisionAllow
	// DecisionRedirect sends the caller to the login entry point.
	DecisionRedirect
)

// AuthResult is the tagged outcome of a login or registration attempt. All
// failure paths, including transport errors, resolve to a result with a
// displayable message; these operations never return a raised error for
// business failures.
type AuthResult struct {
	OK    bool
	Error string
}

// Session is the single source of truth for "who is logged in". It owns the
// current Principal, the persisted token, and the derived authorization
// flags consumed by guards. Construct one per process and inject it;
// nothing else mutates session state.
type Session struct {
	baseURL string
	store   CredentialStore
	logger  *slog.Logger
	opts    []ClientOption

	mu        sync.Mutex
	state     AuthState
	principal *User
	token     string
}

// NewSession creates a session bound to the given API server and credential
// store. The session starts in AuthChecking; call CheckAuth before trusting
// any guard decision.
func NewSession(baseURL string, store CredentialStore, optFns ...ClientOption) *Session {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		baseURL: baseURL,
		store:   store,
		logger:  logger,
		opts:    optFns,
		state:   AuthChecking,
	}
}

// Client returns an SDK client carrying the session's current token.
func (s *Session) Client() *Client {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	opts := s.opts
	if token != "" {
		opts = append(append([]ClientOption(nil), s.opts...), WithToken(token))
	}
	return NewClient(s.baseURL, opts...)
}

// State returns the session's resolution state.
func (s *Session) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Principal returns the authenticated user, or nil when anonymous. The
// Principal is either absent or fully populated; there is no partial state.
func (s *Session) Principal() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

// IsAuthenticated reports whether a Principal is present.
func (s *Session) IsAuthenticated() bool {
	return s.Principal() != nil
}

// IsAdmin reports whether the Principal may use the administrative console:
// present and flagged staff or superuser.
func (s *Session) IsAdmin() bool {
	p := s.Principal()
	return p != nil && (p.IsStaff || p.IsSuperuser)
}

// Gate decides whether the current session may proceed. While the auth check
// is pending it returns DecisionPending and must not trigger a redirect.
func (s *Session) Gate(requireAdmin bool) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == AuthChecking {
		return DecisionPending
	}
	if s.principal == nil {
		return DecisionRedirect
	}
	if requireAdmin && !(s.principal.IsStaff || s.principal.IsSuperuser) {
		return DecisionRedirect
	}
	return DecisionAllow
}

// CheckAuth resolves the session against the backend using the persisted
// token. It always settles: after return the state is AuthAuthenticated with
// a Principal, or AuthAnonymous with the cached token cleared. Call once at
// process start.
func (s *Session) CheckAuth(ctx context.Context) {
	if creds, err := s.store.LoadCredentials(); err == nil && creds != nil {
		s.mu.Lock()
		s.token = creds.Token
		s.mu.Unlock()
	}

	resp, err := s.Client().CheckAuth(ctx)
	if err != nil || !resp.IsAuthenticated || resp.User == nil {
		if err != nil {
			s.logger.Debug("auth check failed", "err", err)
		}
		s.clearSession()
		s.setResolved(AuthAnonymous, nil)
		return
	}
	s.setResolved(AuthAuthenticated, resp.User)
}

// Login authenticates with a username and password. Both fields are required
// before any network call is made; everything beyond non-emptiness is the
// backend's to judge.
func (s *Session) Login(ctx context.Context, req LoginRequest) AuthResult {
	if req.Username == "" || req.Password == "" {
		return AuthResult{Error: "Username and password are required"}
	}

	resp, err := s.Client().Login(ctx, req)
	if err != nil {
		return AuthResult{Error: ErrorMessage(err, "Invalid credentials")}
	}
	s.establish(resp)
	return AuthResult{OK: true}
}

// Register creates an account and signs it in.
func (s *Session) Register(ctx context.Context, req RegisterRequest) AuthResult {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return AuthResult{Error: "Username, email and password are required"}
	}

	resp, err := s.Client().Register(ctx, req)
	if err != nil {
		return AuthResult{Error: ErrorMessage(err, "Registration failed")}
	}
	s.establish(resp)
	return AuthResult{OK: true}
}

// Logout ends the session. The backend call is best effort; regardless of
// its outcome the token and Principal are cleared, so from the caller's
// perspective this cannot fail.
func (s *Session) Logout(ctx context.Context) {
	if err := s.Client().Logout(ctx); err != nil {
		s.logger.Warn("logout call failed", "err", err)
	}
	s.clearSession()
	s.setResolved(AuthAnonymous, nil)
}

// HandleUnauthorized applies the global 401 policy: when err is an
// UnauthorizedError from any backend call, the token and Principal are
// cleared and true is returned so the caller can route to the login entry
// point. The policy lives here, once, rather than per call site.
func (s *Session) HandleUnauthorized(err error) bool {
	if !IsUnauthorized(err) {
		return false
	}
	s.clearSession()
	s.setResolved(AuthAnonymous, nil)
	return true
}

func (s *Session) establish(resp *AuthResponse) {
	if err := s.store.SaveCredentials(&Credentials{Token: resp.Token}); err != nil {
		s.logger.Warn("failed to persist session token", "err", err)
	}
	user := resp.User
	s.mu.Lock()
	s.token = resp.Token
	s.principal = &user
	s.state = AuthAuthenticated
	s.mu.Unlock()
}

func (s *Session) clearSession() {
	if err := s.store.DeleteCredentials(); err != nil {
		s.logger.Warn("failed to clear persisted token", "err", err)
	}
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

func (s *Session) setResolved(state AuthState, principal *User) {
	s.mu.Lock()
	s.state = state
	s.principal = principal
	s.mu.Unlock()
}
