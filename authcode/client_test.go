package authcode_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-auth-client/authcode"
	"github.com/jrsteele09/go-auth-client/authority"
	"github.com/jrsteele09/go-auth-client/authority/resolverfake"
	"github.com/jrsteele09/go-auth-client/oauth2"
	"github.com/jrsteele09/go-auth-client/transport"
	"github.com/jrsteele09/go-auth-client/transport/transportfake"
)

const (
	testClientID    = "client-id"
	testAuthority   = "https://login.example.com"
	testRedirectURI = "https://app/redirect"
)

type fixedCorrelation struct{ id string }

func (f fixedCorrelation) NewCorrelationID() string { return f.id }

func newTestClient(t *testing.T) (*authcode.Client, *resolverfake.FakeResolver, *transportfake.FakeNetworkClient) {
	t.Helper()

	resolver := resolverfake.NewFakeResolver()
	resolver.Set(testAuthority, authority.Metadata{
		AuthorizationEndpoint: "https://login.example.com/authorize",
		TokenEndpoint:         "https://login.example.com/token",
	})
	network := transportfake.NewFakeNetworkClient()

	client, err := authcode.New(authcode.Config{
		ClientID:  testClientID,
		Authority: testAuthority,
		Resolver:  resolver,
		Transport: network,
	})
	require.NoError(t, err)
	return client, resolver, network
}

func TestNew(t *testing.T) {
	t.Run("missing client id", func(t *testing.T) {
		_, err := authcode.New(authcode.Config{})
		require.ErrorIs(t, err, authcode.MissingClientIDErr)
	})
}

func TestClient_AuthCodeURL(t *testing.T) {
	ctx := context.Background()

	t.Run("full url with supplied correlation id", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			Scopes:              []string{"mail.read"},
			RedirectURI:         testRedirectURI,
			CodeChallenge:       "abc",
			CodeChallengeMethod: oauth2.CodeMethodTypeS256,
			State:               "xyz",
			CorrelationID:       "abc-123",
		})
		require.NoError(t, err)
		require.Equal(t,
			"https://login.example.com/authorize?"+
				"client_id=client-id"+
				"&scope=openid%20profile%20offline_access%20mail.read"+
				"&redirect_uri=https%3A%2F%2Fapp%2Fredirect"+
				"&code_challenge=abc"+
				"&code_challenge_method=S256"+
				"&state=xyz"+
				"&correlation_id=abc-123"+
				"&response_mode=fragment"+
				"&response_type=code",
			url)
	})

	t.Run("fixed fields appear exactly once", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI: testRedirectURI,
		})
		require.NoError(t, err)
		require.Equal(t, 1, strings.Count(url, "client_id="))
		require.Equal(t, 1, strings.Count(url, "response_type=code"))
		require.Equal(t, 1, strings.Count(url, "response_mode=fragment"))
	})

	t.Run("optional fields omitted when absent", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI: testRedirectURI,
		})
		require.NoError(t, err)
		require.NotContains(t, url, "state=")
		require.NotContains(t, url, "prompt=")
		require.NotContains(t, url, "login_hint=")
		require.NotContains(t, url, "domain_hint=")
		require.NotContains(t, url, "nonce=")
		require.NotContains(t, url, "code_challenge")
	})

	t.Run("extension parameters emitted when present", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI: testRedirectURI,
			Prompt:      oauth2.SelectAccountPrompt,
			LoginHint:   "user@contoso.com",
			DomainHint:  "contoso.com",
			Nonce:       "n-0S6_WzA2Mj",
		})
		require.NoError(t, err)
		require.Contains(t, url, "prompt=select_account")
		require.Contains(t, url, "login_hint=user%40contoso.com")
		require.Contains(t, url, "domain_hint=contoso.com")
		require.Contains(t, url, "nonce=n-0S6_WzA2Mj")
	})

	t.Run("generated correlation ids differ between calls", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		first, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{RedirectURI: testRedirectURI})
		require.NoError(t, err)
		second, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{RedirectURI: testRedirectURI})
		require.NoError(t, err)

		require.Contains(t, first, "correlation_id=")
		require.NotEqual(t, correlationIDFromURL(t, first), correlationIDFromURL(t, second))
	})

	t.Run("custom correlation source", func(t *testing.T) {
		resolver := resolverfake.NewFakeResolver()
		resolver.Set(testAuthority, authority.Metadata{
			AuthorizationEndpoint: "https://login.example.com/authorize",
			TokenEndpoint:         "https://login.example.com/token",
		})
		client, err := authcode.New(authcode.Config{
			ClientID:    testClientID,
			Authority:   testAuthority,
			Resolver:    resolver,
			Correlation: fixedCorrelation{id: "fixed-id"},
		})
		require.NoError(t, err)

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{RedirectURI: testRedirectURI})
		require.NoError(t, err)
		require.Contains(t, url, "correlation_id=fixed-id")
	})

	t.Run("missing redirect uri fails before resolution", func(t *testing.T) {
		client, resolver, _ := newTestClient(t)

		_, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{})
		require.ErrorIs(t, err, authcode.MissingRedirectURIErr)
		require.Empty(t, resolver.Resolved())
	})

	t.Run("pkce challenge without method fails before resolution", func(t *testing.T) {
		client, resolver, _ := newTestClient(t)

		_, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI:   testRedirectURI,
			CodeChallenge: "abc",
		})
		require.ErrorIs(t, err, authcode.InvalidPKCEParametersErr)
		require.Empty(t, resolver.Resolved())
	})

	t.Run("authority override wins over default", func(t *testing.T) {
		client, resolver, _ := newTestClient(t)
		resolver.Set("https://login.other.example", authority.Metadata{
			AuthorizationEndpoint: "https://login.other.example/authorize",
			TokenEndpoint:         "https://login.other.example/token",
		})

		url, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI: testRedirectURI,
			Authority:   "https://login.other.example",
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(url, "https://login.other.example/authorize?"))
		require.Equal(t, []string{"https://login.other.example"}, resolver.Resolved())
	})

	t.Run("resolution failure surfaces", func(t *testing.T) {
		client, _, _ := newTestClient(t)

		_, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
			RedirectURI: testRedirectURI,
			Authority:   "https://unknown.example",
		})
		require.ErrorIs(t, err, authority.ResolutionErr)
	})
}

func TestClient_AcquireTokenByAuthCode(t *testing.T) {
	ctx := context.Background()

	t.Run("posts ordered form body with form content type", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Respond(200, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)

		tokens, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:         "authcode1",
			RedirectURI:  testRedirectURI,
			CodeVerifier: "ver",
		})
		require.NoError(t, err)
		require.NotNil(t, tokens.AccessToken)
		require.Equal(t, "at", *tokens.AccessToken)
		require.Equal(t, "Bearer", tokens.TokenType)
		require.Equal(t, 3600, tokens.ExpiresIn)

		requests := network.Requests()
		require.Len(t, requests, 1)
		require.Equal(t, "https://login.example.com/token", requests[0].URL)
		require.Equal(t, "application/x-www-form-urlencoded", requests[0].Headers["Content-Type"])
		require.Equal(t,
			"client_id=client-id"+
				"&scope=openid%20profile%20offline_access"+
				"&redirect_uri=https%3A%2F%2Fapp%2Fredirect"+
				"&code=authcode1"+
				"&code_verifier=ver"+
				"&grant_type=authorization_code",
			requests[0].Body)
	})

	t.Run("client secret included for confidential clients", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Respond(200, `{"access_token":"at","token_type":"Bearer"}`)

		_, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:         "authcode1",
			RedirectURI:  testRedirectURI,
			ClientSecret: "super-secret-value",
		})
		require.NoError(t, err)

		body := network.Requests()[0].Body
		require.Contains(t, body, "&client_secret=super-secret-value&grant_type=")
		require.NotContains(t, body, "code_verifier")
	})

	t.Run("non-2xx yields protocol error with payload", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Respond(400, `{"error":"invalid_grant","error_description":"code expired"}`)

		tokens, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:        "authcode1",
			RedirectURI: testRedirectURI,
		})
		require.Nil(t, tokens)

		var protocolErr *oauth2.ProtocolError
		require.ErrorAs(t, err, &protocolErr)
		require.Equal(t, 400, protocolErr.StatusCode)
		require.Equal(t, "invalid_grant", protocolErr.Response.ErrorCode)
		require.Equal(t, "code expired", protocolErr.Response.ErrorDescription)
		require.JSONEq(t, `{"error":"invalid_grant","error_description":"code expired"}`, string(protocolErr.Raw))
	})

	t.Run("non-json error body kept raw", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Respond(502, "Bad Gateway")

		_, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:        "authcode1",
			RedirectURI: testRedirectURI,
		})

		var protocolErr *oauth2.ProtocolError
		require.ErrorAs(t, err, &protocolErr)
		require.Equal(t, 502, protocolErr.StatusCode)
		require.Empty(t, protocolErr.Response.ErrorCode)
		require.Equal(t, "Bad Gateway", string(protocolErr.Raw))
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Fail(context.DeadlineExceeded)

		_, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:        "authcode1",
			RedirectURI: testRedirectURI,
		})
		require.ErrorIs(t, err, transport.NetworkErr)

		var protocolErr *oauth2.ProtocolError
		require.False(t, errors.As(err, &protocolErr))
	})

	t.Run("missing redirect uri fails before any network call", func(t *testing.T) {
		client, resolver, network := newTestClient(t)

		_, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code: "authcode1",
		})
		require.ErrorIs(t, err, authcode.MissingRedirectURIErr)
		require.Empty(t, resolver.Resolved())
		require.Empty(t, network.Requests())
	})

	t.Run("malformed success body is an error", func(t *testing.T) {
		client, _, network := newTestClient(t)
		network.Respond(200, "not json")

		_, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
			Code:        "authcode1",
			RedirectURI: testRedirectURI,
		})
		require.Error(t, err)
	})
}

func correlationIDFromURL(t *testing.T, url string) string {
	t.Helper()
	for _, pair := range strings.Split(strings.SplitN(url, "?", 2)[1], "&") {
		if strings.HasPrefix(pair, "correlation_id=") {
			return strings.TrimPrefix(pair, "correlation_id=")
		}
	}
	t.Fatalf("no correlation_id in %s", url)
	return ""
}
