package render

import (
	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/middleware"
)

// Page renders an HTML template, injecting the cross-cutting keys every
// page expects (flash, auth state) so handlers only supply their own data.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.GetFlash(c)
	}
	if _, ok := data["Authenticated"]; !ok {
		data["Authenticated"] = middleware.IsAuthenticated(c)
	}
	c.HTML(status, name, data)
}
