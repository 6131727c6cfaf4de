// Package authority resolves an identity provider ("authority") into the
// endpoint metadata the client needs: where to send the user for
// authorization and where to exchange the code for tokens.
package authority

import (
	"context"
	"errors"
	"fmt"
)

var (
	ResolutionErr = errors.New("authority resolution failed")
)

// Metadata holds the resolved endpoints of an authority. Treated as opaque
// input by the rest of the client: no further validation is applied.
type Metadata struct {
	// AuthorizationEndpoint is where the user agent is sent to authenticate.
	AuthorizationEndpoint string

	// TokenEndpoint is where authorization codes are exchanged for tokens.
	TokenEndpoint string
}

// Resolver turns an authority hint (typically an issuer URL) into endpoint
// metadata. A Resolve call may perform network I/O; implementations honour
// the passed context for cancellation.
type Resolver interface {
	Resolve(ctx context.Context, authority string) (Metadata, error)
}

// StaticResolver serves fixed endpoint metadata without any network call,
// for callers that already know their authority's endpoints.
type StaticResolver struct {
	Metadata Metadata
}

var _ Resolver = StaticResolver{}

// Resolve returns the configured metadata, ignoring the authority hint.
func (r StaticResolver) Resolve(_ context.Context, _ string) (Metadata, error) {
	if r.Metadata.AuthorizationEndpoint == "" || r.Metadata.TokenEndpoint == "" {
		return Metadata{}, fmt.Errorf("%w: static metadata missing endpoints", ResolutionErr)
	}
	return r.Metadata, nil
}
