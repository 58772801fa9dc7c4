package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeProvider struct {
	ref string
	err error
}

func (f *fakeProvider) CurrentIdentityRef(context.Context) (string, error) { return f.ref, f.err }

type fakeDiscoverer struct {
	name  string
	err   error
	calls int
}

func (f *fakeDiscoverer) DiscoverDisplayName(context.Context, string) (string, error) {
	f.calls++
	return f.name, f.err
}

func TestResolve_WithDiscoveredName(t *testing.T) {
	r := NewResolver(&fakeProvider{ref: "icloud-123"}, &fakeDiscoverer{name: "Dominique"}, nopLogger())

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Identity{Ref: "icloud-123", DisplayName: "Dominique"}, id)
}

func TestResolve_DiscoveryFallback(t *testing.T) {
	for name, d := range map[string]*fakeDiscoverer{
		"failure": {err: errors.New("directory down")},
		"empty":   {name: ""},
	} {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(&fakeProvider{ref: "ref"}, d, nopLogger())
			id, err := r.Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "User", id.DisplayName)
		})
	}
}

func TestResolve_NoIdentity(t *testing.T) {
	d := &fakeDiscoverer{name: "x"}
	for name, p := range map[string]*fakeProvider{
		"signed out": {err: common.ErrNoIdentity},
		"empty ref":  {ref: ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewResolver(p, d, nopLogger()).Resolve(context.Background())
			assert.ErrorIs(t, err, common.ErrNoIdentity)
		})
	}
	assert.Zero(t, d.calls, "discovery must not run without an identity")
}

func TestResolve_ProviderFailure(t *testing.T) {
	_, err := NewResolver(&fakeProvider{err: errors.New("disk")}, &fakeDiscoverer{}, nopLogger()).Resolve(context.Background())
	assert.ErrorIs(t, err, common.ErrIdentityUnavailable)
	assert.NotErrorIs(t, err, common.ErrNoIdentity)
}
