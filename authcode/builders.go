package authcode

import (
	"strings"

	"github.com/jrsteele09/go-auth-client/oauth2"
)

// Protocol parameter names, per RFC 6749, RFC 7636 and the provider
// extensions this client supports.
const (
	paramClientID            = "client_id"
	paramScope               = "scope"
	paramRedirectURI         = "redirect_uri"
	paramCodeChallenge       = "code_challenge"
	paramCodeChallengeMethod = "code_challenge_method"
	paramState               = "state"
	paramPrompt              = "prompt"
	paramLoginHint           = "login_hint"
	paramDomainHint          = "domain_hint"
	paramNonce               = "nonce"
	paramCorrelationID       = "correlation_id"
	paramResponseMode        = "response_mode"
	paramResponseType        = "response_type"
	paramCode                = "code"
	paramCodeVerifier        = "code_verifier"
	paramClientSecret        = "client_secret"
	paramGrantType           = "grant_type"
)

// buildAuthorizationParameters assembles the authorization endpoint query
// parameters in their fixed emission order. Inputs are already validated;
// scopes are already merged and defaulted. No network I/O happens here.
func buildAuthorizationParameters(clientID string, req *AuthCodeURLRequest, scopes []string, correlationID string) *oauth2.Parameters {
	params := &oauth2.Parameters{}
	params.Add(paramClientID, clientID)
	params.Add(paramScope, strings.Join(scopes, " "))
	params.Add(paramRedirectURI, req.RedirectURI)
	params.AddIfPresent(paramCodeChallenge, req.CodeChallenge)
	params.AddIfPresent(paramCodeChallengeMethod, string(req.CodeChallengeMethod))
	params.AddIfPresent(paramState, req.State)
	params.AddIfPresent(paramPrompt, string(req.Prompt))
	params.AddIfPresent(paramLoginHint, req.LoginHint)
	params.AddIfPresent(paramDomainHint, req.DomainHint)
	params.AddIfPresent(paramNonce, req.Nonce)
	params.Add(paramCorrelationID, correlationID)
	params.Add(paramResponseMode, string(oauth2.FragmentResponseMode))
	params.Add(paramResponseType, string(oauth2.CodeResponseType))
	return params
}

// buildTokenParameters assembles the token endpoint form body in its fixed
// emission order. The authorization code and code verifier pass through
// untouched: the authorization server is authoritative for both.
func buildTokenParameters(clientID string, req *AuthCodeExchangeRequest, scopes []string) *oauth2.Parameters {
	params := &oauth2.Parameters{}
	params.Add(paramClientID, clientID)
	params.Add(paramScope, strings.Join(scopes, " "))
	params.Add(paramRedirectURI, req.RedirectURI)
	params.Add(paramCode, req.Code)
	params.AddIfPresent(paramCodeVerifier, req.CodeVerifier)
	params.AddIfPresent(paramClientSecret, req.ClientSecret)
	params.Add(paramGrantType, string(oauth2.AuthorizationCodeGrant))
	return params
}
