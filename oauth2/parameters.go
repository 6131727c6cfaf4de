package oauth2

import (
	"net/url"
	"strings"
)

// Parameter is a single protocol (name, value) pair.
type Parameter struct {
	Name  string
	Value string
}

// Parameters is an ordered collection of protocol parameters. Unlike
// url.Values, it preserves insertion order so that the serialized query
// string or form body is deterministic. Names are unique keys: the
// builders add each protocol field at most once.
type Parameters struct {
	pairs []Parameter
}

// Add appends a (name, value) pair.
func (p *Parameters) Add(name, value string) {
	p.pairs = append(p.pairs, Parameter{Name: name, Value: value})
}

// AddIfPresent appends the pair only when value is non-empty, so optional
// protocol fields are omitted rather than sent as empty strings.
func (p *Parameters) AddIfPresent(name, value string) {
	if value == "" {
		return
	}
	p.Add(name, value)
}

// Get returns the value for name, or "" if the parameter is absent.
func (p *Parameters) Get(name string) string {
	for _, pair := range p.pairs {
		if pair.Name == name {
			return pair.Value
		}
	}
	return ""
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return len(p.pairs)
}

// Encode serializes the parameters as form URL-encoded name=value pairs
// joined by "&", in insertion order. Spaces encode as %20, per the
// query-string convention of RFC 6749 examples.
func (p *Parameters) Encode() string {
	var b strings.Builder
	for i, pair := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(pair.Name))
		b.WriteByte('=')
		b.WriteString(escape(pair.Value))
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
