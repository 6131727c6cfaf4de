// Package authcode implements the client side of the OAuth 2.0
// Authorization Code grant with PKCE: building authorization request URLs
// and exchanging authorization codes for tokens.
package authcode

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-auth-client/authority"
	"github.com/jrsteele09/go-auth-client/oauth2"
	"github.com/jrsteele09/go-auth-client/transport"
)

const formContentType = "application/x-www-form-urlencoded"

// CorrelationSource produces a fresh correlation id per call. Used only
// when the caller does not supply one; ids are never cached or reused.
type CorrelationSource interface {
	NewCorrelationID() string
}

// UUIDCorrelationSource is the default CorrelationSource, backed by
// random (version 4) UUIDs.
type UUIDCorrelationSource struct{}

var _ CorrelationSource = UUIDCorrelationSource{}

func (UUIDCorrelationSource) NewCorrelationID() string {
	return uuid.NewString()
}

// Config is the immutable configuration of a Client. Copied at
// construction and never mutated afterwards, which is what makes
// concurrent calls against one Client safe without locking.
type Config struct {
	// ClientID identifies this application to the authority.
	// Required: Yes
	ClientID string

	// Authority is the default authority hint (issuer URL), used whenever
	// a request does not carry its own override.
	Authority string

	// Resolver turns authority hints into endpoint metadata. Defaults to
	// OIDC discovery.
	Resolver authority.Resolver

	// Transport executes the token endpoint POST. Defaults to net/http
	// with a 30 second timeout.
	Transport transport.Client

	// Correlation generates per-call correlation ids. Defaults to random
	// UUIDs.
	Correlation CorrelationSource
}

// Client performs the two operations of the authorization code flow. Each
// call is stateless and independent; a Client may be shared freely across
// goroutines.
type Client struct {
	config Config
}

// New creates a Client, filling in default collaborators for any left nil.
func New(config Config) (*Client, error) {
	if config.ClientID == "" {
		return nil, MissingClientIDErr
	}
	if config.Resolver == nil {
		config.Resolver = authority.NewDiscoveryResolver()
	}
	if config.Transport == nil {
		config.Transport = transport.NewHTTPClient(nil)
	}
	if config.Correlation == nil {
		config.Correlation = UUIDCorrelationSource{}
	}
	return &Client{config: config}, nil
}

// AuthCodeURL validates the request and produces the full authorization
// request URL. Validation failures surface before the authority is
// resolved; no other network I/O takes place.
func (c *Client) AuthCodeURL(ctx context.Context, req AuthCodeURLRequest) (string, error) {
	validator := NewValidator()

	scopes, err := validator.ValidateAndDefaultScopes(req.Scopes, c.config.ClientID)
	if err != nil {
		return "", err
	}
	if err := validator.ValidateRedirectURI(req.RedirectURI); err != nil {
		return "", err
	}
	if err := validator.ValidatePKCE(req.CodeChallenge, req.CodeChallengeMethod); err != nil {
		return "", err
	}
	if err := validator.ValidatePrompt(req.Prompt); err != nil {
		return "", err
	}

	metadata, err := c.resolve(ctx, req.Authority)
	if err != nil {
		return "", err
	}

	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = c.config.Correlation.NewCorrelationID()
	}

	params := buildAuthorizationParameters(c.config.ClientID, &req, scopes, correlationID)
	return metadata.AuthorizationEndpoint + "?" + params.Encode(), nil
}

// AcquireTokenByAuthCode validates the request, resolves the authority and
// exchanges the authorization code at the token endpoint. A 2xx response
// yields the token payload; a non-2xx response yields a
// *oauth2.ProtocolError carrying the server's error body, never a success
// value. Transport failures propagate wrapped, unchanged in kind.
func (c *Client) AcquireTokenByAuthCode(ctx context.Context, req AuthCodeExchangeRequest) (*oauth2.TokenResponse, error) {
	validator := NewValidator()

	scopes, err := validator.ValidateAndDefaultScopes(req.Scopes, c.config.ClientID)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateRedirectURI(req.RedirectURI); err != nil {
		return nil, err
	}

	metadata, err := c.resolve(ctx, req.Authority)
	if err != nil {
		return nil, err
	}

	params := buildTokenParameters(c.config.ClientID, &req, scopes)
	headers := map[string]string{"Content-Type": formContentType}

	resp, err := c.config.Transport.Post(ctx, metadata.TokenEndpoint, params.Encode(), headers)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		protocolErr := &oauth2.ProtocolError{StatusCode: resp.StatusCode, Raw: resp.Body}
		// Best effort: a non-JSON error body still surfaces via Raw.
		_ = json.Unmarshal(resp.Body, &protocolErr.Response)
		log.Debug().Int("status", resp.StatusCode).Str("error", protocolErr.Response.ErrorCode).Msg("Token exchange rejected")
		return nil, protocolErr
	}

	var tokenResponse oauth2.TokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResponse); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return &tokenResponse, nil
}

// resolve picks the per-request authority override over the configured
// default and hands it to the resolver. Resolution always completes before
// the exchange request is issued.
func (c *Client) resolve(ctx context.Context, override string) (authority.Metadata, error) {
	hint := override
	if hint == "" {
		hint = c.config.Authority
	}
	return c.config.Resolver.Resolve(ctx, hint)
}
