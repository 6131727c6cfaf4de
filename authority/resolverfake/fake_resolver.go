package resolverfake

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/go-auth-client/authority"
)

var _ authority.Resolver = (*FakeResolver)(nil)

// FakeResolver serves canned metadata per authority and records the
// authorities it was asked to resolve.
type FakeResolver struct {
	metadata map[string]authority.Metadata
	resolved []string
	lock     sync.Mutex
}

func NewFakeResolver() *FakeResolver {
	return &FakeResolver{metadata: make(map[string]authority.Metadata)}
}

// Set registers metadata for an authority hint.
func (r *FakeResolver) Set(authorityHint string, metadata authority.Metadata) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.metadata[authorityHint] = metadata
}

func (r *FakeResolver) Resolve(_ context.Context, authorityHint string) (authority.Metadata, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.resolved = append(r.resolved, authorityHint)
	metadata, ok := r.metadata[authorityHint]
	if !ok {
		return authority.Metadata{}, fmt.Errorf("%w: unknown authority %q", authority.ResolutionErr, authorityHint)
	}
	return metadata, nil
}

// Resolved returns the authority hints passed to Resolve, in call order.
func (r *FakeResolver) Resolved() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.resolved...)
}
