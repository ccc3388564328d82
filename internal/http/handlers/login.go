package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/aseelyusef9/frontInvApp/internal/http/authcookie"
	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/internal/http/render"
	"github.com/aseelyusef9/frontInvApp/internal/http/validation"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

// LoginHandler checks the single configured credential pair. This is a
// local placeholder gate, not real authentication: there is no user store
// and no account management behind it.
type LoginHandler struct {
	Flash        *flash.Codec
	Auth         *authcookie.Codec
	Username     string
	PasswordHash []byte // bcrypt
}

func NewLoginHandler(f *flash.Codec, a *authcookie.Codec, username string, passwordHash []byte) *LoginHandler {
	return &LoginHandler{Flash: f, Auth: a, Username: username, PasswordHash: passwordHash}
}

type loginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	ReturnTo string `form:"return_to"`
}

func (h *LoginHandler) Get(c *gin.Context) {
	if h.Auth.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render.Page(c, http.StatusOK, "login.html", gin.H{
		"Title":    "Login",
		"ReturnTo": normalizeReturnTo(c.Query("return_to")),
		"Form":     view.LoginForm{},
	})
}

func (h *LoginHandler) Post(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.Page(c, http.StatusBadRequest, "login.html", gin.H{
			"Title":       "Login",
			"ReturnTo":    normalizeReturnTo(in.ReturnTo),
			"Form":        view.LoginForm{Username: in.Username},
			"FieldErrors": errs,
		})
		return
	}

	if in.Username != h.Username || bcrypt.CompareHashAndPassword(h.PasswordHash, []byte(in.Password)) != nil {
		// page-level message, not a field error
		render.Page(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title":     "Login",
			"ReturnTo":  normalizeReturnTo(in.ReturnTo),
			"Form":      view.LoginForm{Username: in.Username},
			"PageError": "Invalid credentials",
		})
		return
	}

	h.Auth.Set(c)

	dest := "/dashboard"
	if rt := normalizeReturnTo(in.ReturnTo); rt != "" {
		dest = rt
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Logged in.")
}

func (h *LoginHandler) Logout(c *gin.Context) {
	h.Auth.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/login", view.FlashInfo, "Logged out.")
}
