package oauth2

// ResponseType is the OAuth 2.0 response_type sent to the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType requests an authorization code from the authorization endpoint.
	// This client only implements the Authorization Code flow, so every
	// authorization URL it produces carries response_type=code.
	// The code is later exchanged for tokens at the token endpoint.
	CodeResponseType ResponseType = "code"
)

// ResponseModeType is the OAuth 2.0 response_mode sent to the authorization endpoint.
// It tells the server how to deliver the authorization response to the redirect URI.
type ResponseModeType string

const (
	// QueryResponseMode asks for parameters in the redirect URL query string.
	// Example: https://client.example.com/callback?code=ABC123&state=xyz
	QueryResponseMode ResponseModeType = "query"

	// FragmentResponseMode asks for parameters in the URL fragment (after #).
	// Example: https://client.example.com/callback#code=ABC123&state=xyz
	// The fragment is never sent to the redirect server, only visible to the
	// user agent. This is the only mode this client currently requests.
	FragmentResponseMode ResponseModeType = "fragment"

	// FormPostResponseMode asks the server to POST parameters back via an
	// auto-submitting HTML form, keeping them out of the URL entirely.
	FormPostResponseMode ResponseModeType = "form_post"
)

// CodeMethodType is the PKCE (Proof Key for Code Exchange) challenge method.
// Sent as code_challenge_method alongside a code_challenge.
type CodeMethodType string

const (
	// CodeMethodTypeS256 means the challenge is BASE64URL(SHA256(code_verifier)).
	// Required for public clients; the server recomputes the hash from the
	// verifier presented at the token endpoint.
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypeNone (wire value "plain") sends the verifier as the
	// challenge unchanged. Legacy only; S256 should be used where possible.
	CodeMethodTypeNone CodeMethodType = "plain"
)

// GrantType is the OAuth 2.0 grant_type sent to the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: code, client_id, redirect_uri,
	// code_verifier (if PKCE) and client_secret (confidential clients).
	AuthorizationCodeGrant GrantType = "authorization_code"
)

// PromptType is the OIDC prompt parameter, controlling the interaction the
// authorization server is allowed to present to the user.
type PromptType string

const (
	// LoginPrompt forces the user to enter credentials even with an
	// existing session.
	LoginPrompt PromptType = "login"

	// NonePrompt requires silent authentication: the server must not show
	// any UI, and fails if interaction would be needed.
	NonePrompt PromptType = "none"

	// ConsentPrompt forces the consent dialog even if consent was
	// previously granted.
	ConsentPrompt PromptType = "consent"

	// SelectAccountPrompt shows the account picker regardless of session
	// state. Useful when the user has several signed-in accounts.
	SelectAccountPrompt PromptType = "select_account"
)

// DefaultScopes are always requested, merged with whatever the caller asks
// for: openid and profile for the ID token, offline_access for a refresh
// token.
var DefaultScopes = []string{"openid", "profile", "offline_access"}
