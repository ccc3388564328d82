package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/render"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

func (h *DashboardHandler) Get(c *gin.Context) {
	render.Page(c, http.StatusOK, "dashboard.html", gin.H{
		"Title": "Dashboard",
	})
}
