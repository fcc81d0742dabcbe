package apiclient

import (
	"net/http"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"golang.org/x/oauth2"
)

// TokenSource yields the stored bearer token for a scope.
// credentials.Store satisfies it.
type TokenSource interface {
	Token(s scope.Scope) (string, bool)
}

// Transport attaches the bearer token of exactly one scope. The token is read
// on every request so logins and logouts take effect immediately. Any
// caller-supplied Authorization header is dropped: only the transport's own
// scope decides what credential leaves the process.
type Transport struct {
	Scope  scope.Scope // empty for the public transport
	Tokens TokenSource
	Base   http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Del("Authorization")

	if t.Scope != "" && t.Tokens != nil {
		if raw, ok := t.Tokens.Token(t.Scope); ok && raw != "" {
			tok := &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}
			tok.SetAuthHeader(r)
		}
	}

	return t.base().RoundTrip(r)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
