// Package pkce generates Proof Key for Code Exchange material (RFC 7636).
package pkce

import (
	xoauth2 "golang.org/x/oauth2"

	"github.com/jrsteele09/go-auth-client/oauth2"
)

// Pair is a verifier and its derived S256 challenge. The challenge (with
// its method) goes into the authorization request; the verifier is kept by
// the caller and presented at the token endpoint.
type Pair struct {
	Verifier  string
	Challenge string
	Method    oauth2.CodeMethodType
}

// NewPair generates a cryptographically random verifier and its S256
// challenge: BASE64URL(SHA256(verifier)). Panics only if crypto/rand is
// unreadable.
func NewPair() Pair {
	verifier := xoauth2.GenerateVerifier()
	return Pair{
		Verifier:  verifier,
		Challenge: xoauth2.S256ChallengeFromVerifier(verifier),
		Method:    oauth2.CodeMethodTypeS256,
	}
}

// ChallengeFromVerifier derives the S256 challenge for an existing
// verifier, for callers that persist verifiers across processes.
func ChallengeFromVerifier(verifier string) string {
	return xoauth2.S256ChallengeFromVerifier(verifier)
}
