// Package common holds the constants and sentinel errors shared by the
// record-store server and the device client.
package common

// IdentityTokenHeaderName is the gRPC metadata key carrying the caller's
// identity token.
const IdentityTokenHeaderName = "identity_token"

// DefaultUsername is used when neither an explicit username nor a
// discovered given name is available.
const DefaultUsername = "User"
