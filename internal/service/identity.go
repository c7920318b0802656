package service

import (
	"context"
	"fmt"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"replydesk.app/server/core/config"
)

// Identity is the subset of an AuthKit user the service stores.
type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

func (i Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	case i.LastName != "":
		return i.LastName
	}
	return i.Email
}

// IdentityProvider is the hosted login the dashboard redirects to.
type IdentityProvider interface {
	AuthorizationURL(state string, opts AuthURLOptions) (string, error)
	Authenticate(ctx context.Context, code string) (*Identity, error)
}

type AuthURLOption func(*AuthURLOptions)

type AuthURLOptions struct {
	LoginHint string
}

// WithLoginHint pre-fills the email field on the AuthKit screen.
func WithLoginHint(email string) AuthURLOption {
	return func(o *AuthURLOptions) { o.LoginHint = email }
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

// NewWorkOSProvider configures the usermanagement package with the API key.
func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state string, opts AuthURLOptions) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
		LoginHint:   opts.LoginHint,
	})
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*Identity, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, fmt.Errorf("workos authenticate: %w", err)
	}

	return &Identity{
		ID:        resp.User.ID,
		Email:     resp.User.Email,
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
		AvatarURL: resp.User.ProfilePictureURL,
	}, nil
}
