// Command authdemo walks through the authorization code flow against a
// real authority: it prints an authorization URL, waits for the redirect
// on a loopback listener, exchanges the code and prints the resulting
// identity claims.
//
// Configuration comes from the environment: CLIENT_ID and AUTHORITY are
// required; CLIENT_SECRET, REDIRECT_URI, LISTEN_ADDR and SCOPES are
// optional.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/google/uuid"

	"github.com/jrsteele09/go-auth-client/authcode"
	"github.com/jrsteele09/go-auth-client/internal/config"
	"github.com/jrsteele09/go-auth-client/oauth2"
	"github.com/jrsteele09/go-auth-client/pkce"
	"github.com/jrsteele09/go-auth-client/token"
)

// callbackPage turns the fragment-mode authorization response into a query
// string the loopback server can read: the fragment never leaves the user
// agent on its own.
const callbackPage = `<!DOCTYPE html>
<html><body><script>
window.location.replace("/exchange?" + window.location.hash.substring(1));
</script>Signing in...</body></html>`

type callbackResult struct {
	code string
	err  error
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running demo: %s\n", err)
	}
	log.Printf("Done\n")
}

func run() error {
	c := config.New()
	displayAppname(c.GetAppName())

	if c.GetClientID() == "" || c.GetAuthority() == "" {
		return errors.New("CLIENT_ID and AUTHORITY must be set")
	}

	client, err := authcode.New(authcode.Config{
		ClientID:  c.GetClientID(),
		Authority: c.GetAuthority(),
	})
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pair := pkce.NewPair()
	state := uuid.NewString()
	nonce := uuid.NewString()

	authURL, err := client.AuthCodeURL(ctx, authcode.AuthCodeURLRequest{
		Scopes:              strings.Fields(c.GetScopes()),
		RedirectURI:         c.GetRedirectURI(),
		CodeChallenge:       pair.Challenge,
		CodeChallengeMethod: pair.Method,
		State:               state,
		Nonce:               nonce,
	})
	if err != nil {
		return fmt.Errorf("building authorization url: %w", err)
	}

	log.Printf("Open this URL in a browser to sign in:\n\n%s\n\n", authURL)

	code, err := waitForCallback(ctx, c.GetListenAddr(), state)
	if err != nil {
		return err
	}

	tokens, err := client.AcquireTokenByAuthCode(ctx, authcode.AuthCodeExchangeRequest{
		Code:         code,
		RedirectURI:  c.GetRedirectURI(),
		CodeVerifier: pair.Verifier,
		ClientSecret: c.GetClientSecret(),
		Scopes:       strings.Fields(c.GetScopes()),
	})
	if err != nil {
		var protocolErr *oauth2.ProtocolError
		if errors.As(err, &protocolErr) {
			return fmt.Errorf("authority rejected the exchange: %w", protocolErr)
		}
		return fmt.Errorf("token exchange: %w", err)
	}

	log.Printf("Token type: %s, granted scopes: %s\n", tokens.TokenType, tokens.Scope)

	if tokens.IdToken != nil {
		claims, err := token.ExtractClaims(*tokens.IdToken)
		if err != nil {
			return fmt.Errorf("reading id token: %w", err)
		}
		if claims.Nonce != nonce {
			return errors.New("id token nonce does not match the request")
		}
		log.Printf("Signed in as %s (subject %s)\n", claims.PreferredUsername, claims.Subject)
	}

	return nil
}

// waitForCallback runs a loopback server until the authorization response
// arrives or the context expires. State is compared before the code is
// accepted.
func waitForCallback(ctx context.Context, addr, expectedState string) (string, error) {
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, callbackPage)
	})
	mux.HandleFunc("/exchange", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if errorParam := query.Get("error"); errorParam != "" {
			results <- callbackResult{err: fmt.Errorf("authorization failed: %s - %s", errorParam, query.Get("error_description"))}
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}
		if query.Get("state") != expectedState {
			results <- callbackResult{err: errors.New("state mismatch in authorization response")}
			http.Error(w, "Invalid state", http.StatusBadRequest)
			return
		}
		results <- callbackResult{code: query.Get("code")}
		fmt.Fprint(w, "Signed in. You can close this window.")
	})

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			results <- callbackResult{err: fmt.Errorf("server.ListenAndServe %w", err)}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case result := <-results:
		if result.err != nil {
			return "", result.err
		}
		return result.code, nil
	case <-ctx.Done():
		return "", fmt.Errorf("timed out waiting for authorization response: %w", ctx.Err())
	}
}

func displayAppname(appName string) {
	myFigure := figure.NewFigure(appName, "", true)
	myFigure.Print()
}
