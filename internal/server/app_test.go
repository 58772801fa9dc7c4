package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/logging"
	"github.com/t4gged/t4gged/internal/server/config"
	"github.com/t4gged/t4gged/internal/server/repositories/repomanager"
)

func testApp(t *testing.T, grpcAddr string) (*App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = grpcAddr
	c.MetricsAddr = "127.0.0.1:0"

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return newApp(c, logger, db, repomanager.NewPostgresRepositoryManager()), mock
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, mock := testApp(t, "127.0.0.1:0")
	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunStopsOnBadAddress(t *testing.T) {
	app, mock := testApp(t, "127.0.0.1:99999")
	mock.ExpectClose()

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop on listen failure")
	}
}

func TestNewApp_UnknownLogBackend(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.LogBackend = "syslog"

	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}
