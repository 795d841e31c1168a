// ABOUTME: Session orchestrator chaining authentication, token persistence and identity resolution
// ABOUTME: Owns the login/register/refresh flows and classifies API failures into user-facing messages

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"petradar/internal/api"
	"petradar/internal/store"
)

// Session is a snapshot of the client's authentication and identity state.
// UserID 0 means identity was never resolved; such a session is still
// authenticated but unusable for owner-scoped calls.
type Session struct {
	Token        string
	RefreshToken string
	UserID       int64
	Email        string
	DisplayName  string
}

// IdentityResolved reports whether a real server-side user id is known
func (s Session) IdentityResolved() bool {
	return s.UserID > 0
}

// Orchestrator sequences the multi-step auth flows. Both collaborators are
// injected; there is no ambient credential state.
type Orchestrator struct {
	api   *api.Client
	creds *store.Credentials
}

// New creates an orchestrator over the given API client and credential store
func New(client *api.Client, creds *store.Credentials) *Orchestrator {
	return &Orchestrator{api: client, creds: creds}
}

// Login authenticates and resolves identity:
//  1. POST login; any failure leaves the credential store untouched.
//  2. Persist the token immediately so the identity scan below already
//     carries the new bearer.
//  3. Scan the user list for a case-insensitive email match. A miss or a
//     failed scan degrades to the unresolved sentinel (id 0) instead of
//     failing the login.
func (o *Orchestrator) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := o.api.Login(ctx, api.LoginRequest{Username: email, Password: password})
	if err != nil {
		return nil, classifyLogin(err)
	}
	if resp.Token == "" {
		return nil, errors.New("login succeeded but no token was returned")
	}

	if err := o.creds.SaveToken(resp.Token, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	o.resolveIdentity(ctx, email)

	s := o.Current()
	return &s, nil
}

// resolveIdentity looks up the numeric user id by scanning the full user
// list, because the login response does not include one. Failure here is
// swallowed: the session proceeds with the unresolved sentinel.
func (o *Orchestrator) resolveIdentity(ctx context.Context, email string) {
	users, err := o.api.ListUsers(ctx)
	if err == nil {
		for _, u := range users {
			if strings.EqualFold(u.Email, email) {
				if err := o.creds.SaveIdentity(u.ID, u.Email, u.DisplayName()); err != nil {
					slog.Debug("failed to persist identity", "error", err)
				}
				return
			}
		}
		slog.Debug("identity scan found no matching user", "email", email)
	} else {
		slog.Debug("identity scan failed, proceeding degraded", "error", err)
	}

	if err := o.creds.SaveIdentity(0, email, ""); err != nil {
		slog.Debug("failed to persist degraded identity", "error", err)
	}
}

// RegisterInput carries the registration form fields. LastName and
// PhoneNumber are optional.
type RegisterInput struct {
	Name        string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
}

// Register creates a new account. The API returns no token, so the caller
// must log in afterwards (see RegisterAndLogin).
func (o *Orchestrator) Register(ctx context.Context, in RegisterInput) error {
	req := api.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     "User",
	}
	if in.LastName != "" {
		req.LastName = api.String(in.LastName)
	}
	if in.PhoneNumber != "" {
		req.PhoneNumber = api.String(in.PhoneNumber)
	}

	if err := o.api.CreateUser(ctx, req); err != nil {
		return classifyRegister(err)
	}
	return nil
}

// RegisterAndLogin registers and then logs in with the same one-shot
// credentials, running the full token and identity resolution.
func (o *Orchestrator) RegisterAndLogin(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := o.Register(ctx, in); err != nil {
		return nil, err
	}
	return o.Login(ctx, in.Email, in.Password)
}

// Refresh exchanges the stored refresh token for new tokens. Nothing in the
// client calls this automatically; expiry surfaces as a failed API call.
func (o *Orchestrator) Refresh(ctx context.Context) (*Session, error) {
	refresh := o.creds.RefreshToken()
	if refresh == "" {
		return nil, errors.New("no refresh token stored; log in first")
	}

	resp, err := o.api.Refresh(ctx, api.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		return nil, classifyLogin(err)
	}
	if resp.Token == "" {
		return nil, errors.New("refresh succeeded but no token was returned")
	}

	if err := o.creds.SaveToken(resp.Token, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s := o.Current()
	return &s, nil
}

// Logout clears the credential store. Idempotent.
func (o *Orchestrator) Logout() error {
	return o.creds.Logout()
}

// Current returns a snapshot of the stored session state
func (o *Orchestrator) Current() Session {
	return Session{
		Token:        o.creds.Token(),
		RefreshToken: o.creds.RefreshToken(),
		UserID:       o.creds.UserID(),
		Email:        o.creds.Email(),
		DisplayName:  o.creds.Name(),
	}
}

// RequireUserID returns the resolved user id for owner-scoped calls, or an
// error when the session is degraded (sentinel 0).
func (o *Orchestrator) RequireUserID() (int64, error) {
	if !o.creds.IsAuthenticated() {
		return 0, errors.New("not logged in")
	}
	id := o.creds.UserID()
	if id == 0 {
		return 0, errors.New("your account id could not be resolved; log out and log in again")
	}
	return id, nil
}

func classifyLogin(err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 400:
			return errors.New("invalid login details")
		case 401:
			return errors.New("incorrect email or password")
		case 404:
			return errors.New("user not found")
		case 500:
			return errors.New("server error, try again later")
		default:
			return fmt.Errorf("login failed (status %d)", statusErr.Code)
		}
	}
	return fmt.Errorf("connection error: %w", err)
}

func classifyRegister(err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 400:
			return errors.New("invalid registration details")
		case 401:
			return errors.New("registration requires administrator access in this environment")
		case 409:
			return errors.New("email is already registered")
		case 500:
			return errors.New("server error, try again later")
		default:
			return fmt.Errorf("registration failed (status %d)", statusErr.Code)
		}
	}
	return fmt.Errorf("connection error: %w", err)
}
