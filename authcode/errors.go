package authcode

import "errors"

var (
	MissingClientIDErr       = errors.New("missing client id")
	MissingRedirectURIErr    = errors.New("missing redirect uri")
	InvalidScopeErr          = errors.New("invalid scope")
	InvalidPKCEParametersErr = errors.New("invalid pkce parameters")
	InvalidPromptErr         = errors.New("invalid prompt value")
)
