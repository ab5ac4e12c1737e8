package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/auth"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// ErrNotLoggedIn is returned when a command needs a session and none exists.
var ErrNotLoggedIn = errors.New("not logged in; run `npuctl auth login`")

// ErrAdminRequired is returned when the session's Principal lacks the staff
// or superuser flag.
var ErrAdminRequired = errors.New("admin access required; sign in with a staff or superuser account")

// Provider yields the process-wide session and authenticated SDK clients.
// It owns the one place where an unauthorized response clears the session
// and routes the operator back to login.
type Provider struct {
	serverURL string
	logger    *slog.Logger

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Provider{serverURL: serverURL, logger: logger}
}

// Session returns the resolved session, performing the auth check on first
// use. After return the session has settled; it is never left pending.
func (p *Provider) Session(ctx context.Context) (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.sessionErr = fmt.Errorf("failed to create credential store: %w", err)
			return
		}
		session := sdk.NewSession(p.serverURL, store, sdk.WithLogger(p.logger))
		session.CheckAuth(ctx)
		p.session = session
	})
	return p.session, p.sessionErr
}

// Client returns an SDK client for any authenticated session.
func (p *Provider) Client(ctx context.Context) (*sdk.Client, error) {
	return p.gated(ctx, false)
}

// AdminClient returns an SDK client only when the session passes the admin
// gate; every mutating command goes through here.
func (p *Provider) AdminClient(ctx context.Context) (*sdk.Client, error) {
	return p.gated(ctx, true)
}

func (p *Provider) gated(ctx context.Context, requireAdmin bool) (*sdk.Client, error) {
	session, err := p.Session(ctx)
	if err != nil {
		return nil, err
	}
	switch session.Gate(requireAdmin) {
	case sdk.DecisionAllow:
		return session.Client(), nil
	case sdk.DecisionRedirect:
		if session.IsAuthenticated() {
			return nil, ErrAdminRequired
		}
		return nil, ErrNotLoggedIn
	default:
		// Session(ctx) always settles the check, so a pending decision
		// here is a bug.
		return nil, errors.New("auth check still pending")
	}
}

// Wrap applies the global unauthorized policy to an SDK call's error: a 401
// from any resource clears the persisted token and Principal, and the
// operator is routed to the login entry point. Other errors pass through
// with their display message attached.
func (p *Provider) Wrap(err error) error {
	if err == nil {
		return nil
	}
	if p.session != nil && p.session.HandleUnauthorized(err) {
		p.logger.Debug("session invalidated by unauthorized response", "err", err)
		return fmt.Errorf("session expired: %w", ErrNotLoggedIn)
	}
	return err
}
