// Package session derives authentication state, role and subject from the
// bearer token held in the credential store, decoding claims without
// signature verification for UI purposes only.
package session
