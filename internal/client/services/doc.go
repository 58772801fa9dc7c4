// Package services holds the device-side application services the REPL
// drives: sign-in, local profile edits and friend invites.
package services
