package config

import "os"

const (
	appNameVar      = "APP_NAME"
	clientIDVar     = "CLIENT_ID"
	clientSecretVar = "CLIENT_SECRET"
	authorityVar    = "AUTHORITY"
	redirectURIVar  = "REDIRECT_URI"
	listenAddrVar   = "LISTEN_ADDR"
	scopesVar       = "SCOPES"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go Auth Client")
}

func (EnvVars) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

// GetClientSecret returns the confidential client secret, empty for
// public clients.
func (EnvVars) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

// GetAuthority returns the issuer URL used for OIDC discovery.
func (EnvVars) GetAuthority() string {
	return GetEnv(authorityVar, "")
}

func (EnvVars) GetRedirectURI() string {
	return GetEnv(redirectURIVar, "http://localhost:8137/callback")
}

func (EnvVars) GetListenAddr() string {
	return GetEnv(listenAddrVar, "localhost:8137")
}

// GetScopes returns extra scopes to request, space separated.
func (EnvVars) GetScopes() string {
	return GetEnv(scopesVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
