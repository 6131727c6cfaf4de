// Package token extracts identity claims from ID tokens returned by the
// token endpoint. Extraction is unverified: signature and issuer
// validation belong to a dedicated verifier, not this client.
package token

import (
	"errors"
	"fmt"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of ID token claims this client surfaces.
type Claims struct {
	// Subject is the user's unique, stable identifier at the issuer.
	Subject string

	// Issuer is the authority that minted the token.
	Issuer string

	// Audience is the client ID the token was issued to.
	Audience string

	// Nonce echoes the nonce sent in the authorization request. Callers
	// compare it against the value they generated to detect replay.
	Nonce string

	// PreferredUsername is the display username, when the profile scope
	// was granted.
	PreferredUsername string

	// Email is the user's email address, when present.
	Email string
}

// ExtractClaims parses the raw ID token without verifying its signature
// and returns the claims this client cares about.
func ExtractClaims(rawIDToken string) (*Claims, error) {
	if strings.TrimSpace(rawIDToken) == "" {
		return nil, errors.New("empty id token")
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawIDToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse id token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims from id token")
	}

	sub, _ := mapClaims["sub"].(string)
	iss, _ := mapClaims["iss"].(string)
	aud, _ := mapClaims["aud"].(string)
	nonce, _ := mapClaims["nonce"].(string)
	preferredUsername, _ := mapClaims["preferred_username"].(string)
	email, _ := mapClaims["email"].(string)

	return &Claims{
		Subject:           sub,
		Issuer:            iss,
		Audience:          aud,
		Nonce:             nonce,
		PreferredUsername: preferredUsername,
		Email:             email,
	}, nil
}
