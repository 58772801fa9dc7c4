// Package config loads runtime configuration for the t4gged device client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the record-store gRPC endpoint
//	-f string   path of the local SQLite profile store
//	-t string   path of the identity token file
//	-w int      per-request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": ".t4gged/profile.db",
//	  "token_file": ".t4gged/identity.jwt",
//	  "request_timeout": "5s"
//	}
package config
