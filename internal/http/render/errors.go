package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	Page(c, status, "error.html", gin.H{
		"Title":      http.StatusText(status),
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    msg,
		"RequestID":  requestID,
	})
}
