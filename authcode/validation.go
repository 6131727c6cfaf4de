package authcode

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-auth-client/oauth2"
)

// Validator holds the request validation rules for the authorization code
// flow. All checks are synchronous and run before any network step;
// validation failures are never retried.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndDefaultScopes unions the requested scopes with the default
// scopes, de-duplicated, defaults first. The client identifier is a
// reserved value and may not be requested as a custom scope.
func (v *Validator) ValidateAndDefaultScopes(requested []string, clientID string) ([]string, error) {
	merged := make([]string, 0, len(oauth2.DefaultScopes)+len(requested))
	seen := make(map[string]struct{})
	for _, scope := range oauth2.DefaultScopes {
		merged = append(merged, scope)
		seen[scope] = struct{}{}
	}
	for _, scope := range requested {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		if scope == clientID {
			return nil, fmt.Errorf("%w: %q is reserved and cannot be requested as a scope", InvalidScopeErr, scope)
		}
		if _, ok := seen[scope]; ok {
			continue
		}
		merged = append(merged, scope)
		seen[scope] = struct{}{}
	}
	return merged, nil
}

// ValidateRedirectURI checks the redirect URI is present.
func (v *Validator) ValidateRedirectURI(uri string) error {
	if strings.TrimSpace(uri) == "" {
		return MissingRedirectURIErr
	}
	return nil
}

// ValidatePKCE checks that a code challenge and its method are provided
// together or not at all, and that the method is a recognised transform.
func (v *Validator) ValidatePKCE(codeChallenge string, method oauth2.CodeMethodType) error {
	if codeChallenge == "" && method == "" {
		return nil
	}
	if codeChallenge == "" || method == "" {
		return fmt.Errorf("%w: code_challenge and code_challenge_method must be provided together", InvalidPKCEParametersErr)
	}
	if method != oauth2.CodeMethodTypeS256 && method != oauth2.CodeMethodTypeNone {
		return fmt.Errorf("%w: code_challenge_method must be %q or %q", InvalidPKCEParametersErr, oauth2.CodeMethodTypeS256, oauth2.CodeMethodTypeNone)
	}
	return nil
}

// ValidatePrompt checks an optional prompt against the accepted set.
func (v *Validator) ValidatePrompt(prompt oauth2.PromptType) error {
	if prompt == "" {
		return nil
	}
	switch prompt {
	case oauth2.LoginPrompt, oauth2.NonePrompt, oauth2.ConsentPrompt, oauth2.SelectAccountPrompt:
		return nil
	}
	return fmt.Errorf("%w: %q", InvalidPromptErr, prompt)
}
