package identity

import "context"

// Profile is what the external identity provider returns after a completed
// authorization-code exchange. Only the username is consumed here, for the
// creator account verification equality check.
type Profile struct {
	ExternalID string
	Username   string
}

// Provider is the external OAuth collaborator. The token-exchange dance
// itself is out of scope; implementations swap a verified code for a profile.
type Provider interface {
	ExchangeCode(ctx context.Context, code string) (*Profile, error)
}

// StaticProvider returns a fixed profile; used in development and tests.
type StaticProvider struct {
	Profile Profile
	Err     error
}

func (p *StaticProvider) ExchangeCode(ctx context.Context, code string) (*Profile, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	profile := p.Profile
	return &profile, nil
}
