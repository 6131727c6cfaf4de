// Package config supplies environment-backed settings for the demo
// command. The library itself never reads the environment: it takes all
// configuration as explicit values.
package config

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetAppName() string
	GetClientID() string
	GetClientSecret() string
	GetAuthority() string
	GetRedirectURI() string
	GetListenAddr() string
	GetScopes() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
