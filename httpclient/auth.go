package httpclient

import "encoding/base64"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
)

// AuthorizationHeader is the header name carrying credentials.
const AuthorizationHeader = "Authorization"

// AuthConfig describes how a request is authenticated.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// HeaderValue renders the Authorization header value.
// The second result is false when no header should be sent.
func (a *AuthConfig) HeaderValue() (string, bool) {
	if a == nil {
		return "", false
	}
	switch a.Type {
	case AuthBearer:
		return "Bearer " + a.Token, true
	case AuthBasic:
		creds := a.Username + ":" + a.Password
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds)), true
	default:
		return "", false
	}
}

// Apply sets the Authorization header on h, replacing any value already
// present under a differently cased key.
func (a *AuthConfig) Apply(h map[string]string) map[string]string {
	v, ok := a.HeaderValue()
	if !ok {
		return h
	}
	return MergeHeaders(h, map[string]string{AuthorizationHeader: v})
}
