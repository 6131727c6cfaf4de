package oauth2

// TokenResponse is the success body returned by an OAuth2 token endpoint,
// as defined in RFC 6749 section 5.1. Pointer fields distinguish "field
// absent" from "field present but empty".
type TokenResponse struct {
	// AccessToken is the token used to access protected resources.
	// Usage: Authorization header as "Bearer <access_token>".
	// Lifespan: short-lived, see ExpiresIn.
	AccessToken *string `json:"access_token,omitempty"`

	// IdToken is the OpenID Connect ID token containing user identity claims.
	// Only present when the "openid" scope was granted, which this client
	// always requests.
	IdToken *string `json:"id_token,omitempty"`

	// TokenType indicates how to present the access token, normally "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds. A hint only, the
	// authoritative expiry lives inside the token itself.
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token for obtaining new access tokens.
	// Only present when "offline_access" was granted. Long-lived, must be
	// stored securely by the caller; this client never caches it.
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope is the space-separated list of scopes actually granted, which
	// may be narrower than what was requested.
	Scope string `json:"scope,omitempty"`
}
