package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/server/auth"
)

func TestParseOptions(t *testing.T) {
	o, err := parseOptions([]string{"-i", "rec-1", "-g", "Dom", "-x", "1h"})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", o.ref)
	assert.Equal(t, "Dom", o.givenName)
	assert.Equal(t, time.Hour, o.validity)
	assert.Equal(t, "secretKey", o.secret)

	_, err = parseOptions(nil)
	assert.Error(t, err)

	_, err = parseOptions([]string{"-x", "soon"})
	assert.Error(t, err)
}

func TestRun_WritesVerifiableToken(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "identity.jwt")
	var stdout bytes.Buffer

	err := run(context.Background(), []string{"-i", "rec-1", "-s", "k", "-o", out}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "rec-1")

	token, err := os.ReadFile(out)
	require.NoError(t, err)
	ref, err := auth.IdentityFromToken(string(token), []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "rec-1", ref)
}

func TestRun_BadDSN(t *testing.T) {
	err := run(context.Background(), []string{"-i", "rec-1", "-d", "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", "-o", filepath.Join(t.TempDir(), "t")}, &bytes.Buffer{})
	assert.Error(t, err)
}
