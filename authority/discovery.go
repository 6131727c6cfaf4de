package authority

import (
	"context"
	"fmt"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
)

// DiscoveryResolver resolves an issuer URL into endpoint metadata via the
// OIDC discovery document (/.well-known/openid-configuration). Resolved
// authorities are cached for the resolver's lifetime; discovery documents
// are static per issuer.
type DiscoveryResolver struct {
	cache map[string]Metadata
	lock  sync.RWMutex
}

var _ Resolver = (*DiscoveryResolver)(nil)

// NewDiscoveryResolver creates a resolver with an empty cache.
func NewDiscoveryResolver() *DiscoveryResolver {
	return &DiscoveryResolver{cache: make(map[string]Metadata)}
}

// Resolve fetches the discovery document for the issuer and extracts the
// authorization and token endpoints.
func (r *DiscoveryResolver) Resolve(ctx context.Context, issuer string) (Metadata, error) {
	if issuer == "" {
		return Metadata{}, fmt.Errorf("%w: empty issuer", ResolutionErr)
	}

	r.lock.RLock()
	metadata, ok := r.cache[issuer]
	r.lock.RUnlock()
	if ok {
		return metadata, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ResolutionErr, err)
	}

	endpoint := provider.Endpoint()
	if endpoint.AuthURL == "" || endpoint.TokenURL == "" {
		return Metadata{}, fmt.Errorf("%w: discovery document for %q missing endpoints", ResolutionErr, issuer)
	}

	metadata = Metadata{
		AuthorizationEndpoint: endpoint.AuthURL,
		TokenEndpoint:         endpoint.TokenURL,
	}

	r.lock.Lock()
	r.cache[issuer] = metadata
	r.lock.Unlock()

	return metadata, nil
}
