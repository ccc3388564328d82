package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

const CtxKeyFlash = "flash"

// FlashMiddleware reads the flash cookie into the context and clears it:
// one display per flash.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(CtxKeyFlash, f)
			}
			// Clear unconditionally so an invalid cookie is not retried.
			clearCookie(c, codec.CookieName, codec.Secure)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}

func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, codec.CookieMaxAge(), "/", "", codec.Secure, true)
}

func clearCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
