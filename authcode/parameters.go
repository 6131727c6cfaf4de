package authcode

import "github.com/jrsteele09/go-auth-client/oauth2"

// AuthCodeURLRequest holds the caller-supplied parameters for building an
// authorization request URL. Construct one per call; the client never
// mutates or retains it.
type AuthCodeURLRequest struct {
	// Scopes are the permissions to request, merged with the default
	// scopes (openid, profile, offline_access) and de-duplicated.
	// Example: []string{"mail.read"}
	Scopes []string

	// RedirectURI is where the authorization response will be delivered.
	// Required: Yes
	// Must exactly match a URI pre-registered with the authority.
	RedirectURI string

	// CodeChallenge is the PKCE challenge derived from the code verifier.
	// Required: together with CodeChallengeMethod, or not at all
	// Example: BASE64URL(SHA256(code_verifier)), see the pkce package.
	CodeChallenge string

	// CodeChallengeMethod says how CodeChallenge was derived ("S256" or
	// "plain"). Required whenever CodeChallenge is set.
	CodeChallengeMethod oauth2.CodeMethodType

	// State is an opaque value echoed back in the authorization response.
	// Recommended for CSRF protection; callers must compare it on callback.
	State string

	// Prompt constrains the interaction shown to the user: "login",
	// "none", "consent" or "select_account". Optional.
	Prompt oauth2.PromptType

	// LoginHint pre-fills the username/email field on the login page.
	// Optional, UI convenience only.
	LoginHint string

	// DomainHint tells the authority which directory or federation realm
	// to route the user to, skipping the home-realm discovery page.
	// Optional. Example: "contoso.com"
	DomainHint string

	// Nonce binds the resulting ID token to this request. The authority
	// echoes it inside the id_token; callers validate the round trip.
	Nonce string

	// CorrelationID is attached to the request for cross-system tracing.
	// Sent verbatim when set, otherwise a fresh UUID is generated for
	// this call.
	CorrelationID string

	// Authority overrides the client's default authority for this call.
	// Optional. Example: "https://login.microsoftonline.com/common/v2.0"
	Authority string
}

// AuthCodeExchangeRequest holds the caller-supplied parameters for
// exchanging an authorization code at the token endpoint. Single-use, same
// lifecycle as AuthCodeURLRequest.
type AuthCodeExchangeRequest struct {
	// Code is the authorization code returned to the redirect URI. Passed
	// through without validation: only the authorization server can judge
	// it.
	Code string

	// RedirectURI must match the one sent in the authorization request.
	// Required: Yes
	RedirectURI string

	// CodeVerifier is the PKCE verifier matching the code_challenge sent
	// earlier. No format validation is applied; the server checks the
	// PKCE relation cryptographically.
	CodeVerifier string

	// ClientSecret authenticates confidential clients at the token
	// endpoint. Public clients leave it empty. Never logged.
	ClientSecret string

	// Scopes are merged and defaulted exactly as for the authorization
	// request.
	Scopes []string

	// Authority overrides the client's default authority for this call.
	Authority string
}
