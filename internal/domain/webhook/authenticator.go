package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"
)

const (
	SignatureHeader = "X-Rd-Signature"
	TokenHeader     = "X-Webhook-Token"
	TokenQueryParam = "token"
)

type AuthMethod string

const (
	AuthMethodHMAC  AuthMethod = "hmac"
	AuthMethodToken AuthMethod = "token"
	AuthMethodQuery AuthMethod = "query"
	AuthMethodNone  AuthMethod = "none"
)

type AuthResult struct {
	Valid  bool
	Method AuthMethod
}

var rejected = AuthResult{Valid: false, Method: AuthMethodNone}

// Authenticator checks inbound deliveries against a server-held secret. It
// must run on the raw body before any JSON parsing.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(strings.TrimSpace(secret))}
}

func (a *Authenticator) Configured() bool {
	return len(a.secret) > 0
}

// Authenticate tries HMAC signature, token header and token query parameter
// in that order. Without a configured secret every request is rejected.
func (a *Authenticator) Authenticate(body []byte, headers http.Header, query url.Values) AuthResult {
	if !a.Configured() {
		return rejected
	}

	if sig := headers.Get(SignatureHeader); sig != "" && a.validSignature(body, sig) {
		return AuthResult{Valid: true, Method: AuthMethodHMAC}
	}
	if tok := headers.Get(TokenHeader); tok != "" && a.equalSecret(tok) {
		return AuthResult{Valid: true, Method: AuthMethodToken}
	}
	if tok := query.Get(TokenQueryParam); tok != "" && a.equalSecret(tok) {
		return AuthResult{Valid: true, Method: AuthMethodQuery}
	}
	return rejected
}

// Sign returns the hex HMAC-SHA256 of body, as the sender computes it.
func (a *Authenticator) Sign(body []byte) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *Authenticator) validSignature(body []byte, header string) bool {
	got := strings.ToLower(strings.TrimSpace(header))
	got = strings.TrimPrefix(got, "sha256=")
	want := a.Sign(body)
	return hmac.Equal([]byte(got), []byte(want))
}

func (a *Authenticator) equalSecret(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), a.secret) == 1
}
