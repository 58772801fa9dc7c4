// Package identity resolves who is signed in on this device.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
)

// Provider reports the signed-in identity. It returns common.ErrNoIdentity
// when nobody is signed in.
type Provider interface {
	CurrentIdentityRef(ctx context.Context) (string, error)
}

// Discoverer looks up the display name registered for an identity.
type Discoverer interface {
	DiscoverDisplayName(ctx context.Context, ref string) (string, error)
}

type Identity struct {
	Ref         string
	DisplayName string
}

type Resolver struct {
	provider   Provider
	discoverer Discoverer
	logger     logging.Logger
}

func NewResolver(p Provider, d Discoverer, logger logging.Logger) *Resolver {
	return &Resolver{provider: p, discoverer: d, logger: logger.With("module", "identity")}
}

// Resolve returns the signed-in identity with its display name. A failed or
// empty discovery falls back to common.DefaultUsername and is not an error.
func (r *Resolver) Resolve(ctx context.Context) (*Identity, error) {
	ref, err := r.provider.CurrentIdentityRef(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoIdentity) {
			return nil, common.ErrNoIdentity
		}
		return nil, fmt.Errorf("%w: %v", common.ErrIdentityUnavailable, err)
	}
	if ref == "" {
		return nil, common.ErrNoIdentity
	}

	name, err := r.discoverer.DiscoverDisplayName(ctx, ref)
	if err != nil {
		r.logger.Warn(ctx, "display name discovery failed", "ref", ref, "error", err.Error())
		name = ""
	}
	if name == "" {
		name = common.DefaultUsername
	}

	return &Identity{Ref: ref, DisplayName: name}, nil
}
