// Package client is the device's connection to the remote record store.
//
// GRPCClient implements RecordStore over the RecordStore gRPC service. Every
// call carries the identity token from a TokenSource, runs under the
// configured request timeout and passes through a circuit breaker, so a dead
// server fails fast instead of stalling each command.
//
// Failures come back as the sentinel errors of package common, matched with
// errors.Is. An unreachable server, an expired deadline or an open breaker
// yields a *common.StoreError wrapping ErrUnavailable.
//
// OpenDatabase opens the local SQLite file and applies the embedded
// migrations.
package client
