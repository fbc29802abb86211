// Package session produces and consumes the self-contained signed token that
// proves an admin login. Nothing is stored server-side; the token carries the
// admin's email and an absolute expiry, protected by an HMAC over the payload.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// TTL is the session validity window.
const TTL = 7 * 24 * time.Hour

// separator joins the serialized payload and the hex MAC. The payload itself
// may contain this character, so verification splits on the last occurrence.
const separator = "."

// Claims is the signed session payload. Exp is epoch milliseconds.
type Claims struct {
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

// Codec signs and verifies session tokens with a server-held secret.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec over the configured secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign mints a token for email valid for TTL from now.
func (c *Codec) Sign(email string, now time.Time) string {
	claims := Claims{
		Email: email,
		Exp:   now.Add(TTL).UnixMilli(),
	}
	payload, _ := json.Marshal(claims)
	mac := c.mac(payload)
	return base64.StdEncoding.EncodeToString(append(append(payload, separator...), mac...))
}

// Verify checks a token's MAC and expiry and returns the embedded email.
// Any decode, parse, or verification failure yields ok == false; Verify
// never panics and never surfaces an error to the caller.
func (c *Codec) Verify(token string, now time.Time) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", false
	}
	decoded := string(raw)

	// The JSON payload can legitimately contain the separator, so split on
	// the last occurrence rather than the first.
	idx := strings.LastIndex(decoded, separator)
	if idx < 0 {
		return "", false
	}
	payload, gotMAC := decoded[:idx], decoded[idx+1:]

	wantMAC := c.mac([]byte(payload))
	if !hmac.Equal([]byte(gotMAC), wantMAC) {
		return "", false
	}

	var claims Claims
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return "", false
	}
	if claims.Email == "" || now.UnixMilli() >= claims.Exp {
		return "", false
	}
	return claims.Email, true
}

// mac computes the hex-encoded HMAC-SHA256 over the exact payload bytes.
func (c *Codec) mac(payload []byte) []byte {
	h := hmac.New(sha256.New, c.secret)
	h.Write(payload)
	return []byte(hex.EncodeToString(h.Sum(nil)))
}
