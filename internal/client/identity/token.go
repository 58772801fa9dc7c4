package identity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/t4gged/t4gged/internal/common"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	GivenName string `json:"given_name,omitempty"`
}

// TokenProvider reads the identity token from a file. It is both the
// device's Provider and the gRPC client's token source. Claims are read
// without verification; the server holds the key and verifies every call.
type TokenProvider struct {
	path string
	now  func() time.Time
}

func NewTokenProvider(path string) *TokenProvider {
	return &TokenProvider{path: path, now: time.Now}
}

// Token returns the raw token. A missing, empty or expired token is
// common.ErrNoIdentity; an unreadable or malformed one is a plain error.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	raw, _, err := p.read()
	return raw, err
}

// CurrentIdentityRef returns the token subject.
func (p *TokenProvider) CurrentIdentityRef(ctx context.Context) (string, error) {
	_, claims, err := p.read()
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (p *TokenProvider) read() (string, *tokenClaims, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, common.ErrNoIdentity
		}
		return "", nil, fmt.Errorf("read identity token: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", nil, common.ErrNoIdentity
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", nil, fmt.Errorf("parse identity token: %w", err)
	}

	if claims.Subject == "" {
		return "", nil, common.ErrNoIdentity
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(p.now()) {
		return "", nil, common.ErrNoIdentity
	}

	return raw, claims, nil
}
