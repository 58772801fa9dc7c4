// Package cli is the interactive T4GGED device client.
//
// It wires configuration, the local profile store, the remote record store
// client and the services into a small REPL:
//
//	signin [name]          sign in with the device identity
//	whoami                 show the local profile
//	email <addr>           set the profile email
//	passcode | unlock      set or enter the local passcode
//	avatar <file>          upload a profile image
//	invite <user>          send a friend invite
//	invites [in|out] [st]  list invites
//	accept | decline <id>  answer an invite
//	friends                list friendships
//	signout                remove the local profile
//
// App.Run blocks until the user exits or the context is cancelled.
package cli
