// Package authcookie owns the single piece of persisted client state: an
// HMAC-signed "this browser is logged in" flag. No other component reads
// or writes the cookie directly.
package authcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid auth cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func New(secret []byte, name string, secure bool, ttl time.Duration) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure, TTL: ttl}
}

// value format: unixIssuedAt.base64(hmac(unixIssuedAt))
func (c *Codec) encode(issuedAt time.Time) string {
	payload := strconv.FormatInt(issuedAt.Unix(), 10)
	return payload + "." + sign(c.Secret, payload)
}

func (c *Codec) decode(v string) (time.Time, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return time.Time{}, ErrInvalid
	}
	if !verify(c.Secret, parts[0], parts[1]) {
		return time.Time{}, ErrInvalid
	}
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	return time.Unix(sec, 0), nil
}

// IsAuthenticated reports whether the request carries a valid, unexpired
// auth cookie. Invalid cookies are cleared so they are not retried.
func (c *Codec) IsAuthenticated(ctx *gin.Context) bool {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return false
	}
	issuedAt, err := c.decode(v)
	if err != nil {
		c.Clear(ctx)
		return false
	}
	if time.Since(issuedAt) > c.TTL {
		c.Clear(ctx)
		return false
	}
	return true
}

// Set marks the browser as logged in. The cookie survives restarts and is
// removed only by Clear (explicit logout) or expiry.
func (c *Codec) Set(ctx *gin.Context) {
	val := c.encode(time.Now())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, int(c.TTL.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
