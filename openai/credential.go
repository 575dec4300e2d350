package openai

import (
	"context"

	"github.com/kbukum/openaikit/errors"
)

// ResolverFunc produces a credential on demand, for example from a secret store.
type ResolverFunc func(ctx context.Context, name string) (string, error)

// Credential is either a fixed API key or a function that produces one.
type Credential struct {
	static   string
	resolver ResolverFunc
}

// StaticCredential wraps a fixed API key.
func StaticCredential(key string) Credential {
	return Credential{static: key}
}

// ResolverCredential wraps a function that yields the API key when resolved.
func ResolverCredential(fn ResolverFunc) Credential {
	return Credential{resolver: fn}
}

// Resolve returns the concrete key. name identifies what the key is for
// and is passed through to the resolver.
func (c Credential) Resolve(ctx context.Context, name string) (string, error) {
	key := c.static
	if c.resolver != nil {
		v, err := c.resolver(ctx, name)
		if err != nil {
			return "", errors.CredentialUnresolved(name, err)
		}
		key = v
	}
	if key == "" {
		return "", errors.MissingField("api_key")
	}
	return key, nil
}

// ResolveConfiguration resolves cred before building the Configuration, so
// the Authorization header always holds a concrete key.
func ResolveConfiguration(ctx context.Context, cred Credential, p Parameters) (*Configuration, error) {
	key, err := cred.Resolve(ctx, "Authorization")
	if err != nil {
		return nil, err
	}
	p.APIKey = key
	return NewConfiguration(p), nil
}
