package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/authcookie"
	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

const CtxKeyAuthenticated = "authenticated"

// Auth resolves the signed auth cookie once per request and stashes the
// result; everything downstream reads the context, never the cookie.
func Auth(codec *authcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxKeyAuthenticated, codec.IsAuthenticated(c))
		c.Next()
	}
}

func IsAuthenticated(c *gin.Context) bool {
	if v, ok := c.Get(CtxKeyAuthenticated); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// RequireAuth guards a route group:
// - SSR: flash + redirect to /login?return_to=...
// - JSON: 401
func RequireAuth(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		returnTo := c.Request.URL.RequestURI()
		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please log in to continue.",
		})

		c.Redirect(http.StatusFound, "/login?return_to="+url.QueryEscape(returnTo))
		c.Abort()
	}
}
