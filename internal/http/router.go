package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/authcookie"
	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/internal/http/handlers"
	"github.com/aseelyusef9/frontInvApp/internal/http/middleware"
	"github.com/aseelyusef9/frontInvApp/internal/modules/extraction"
	"github.com/aseelyusef9/frontInvApp/internal/storage"
)

type Config struct {
	Logger       *slog.Logger
	Extractor    *extraction.Client
	Archive      storage.Archive // nil disables archiving
	FlashCodec   *flash.Codec
	AuthCodec    *authcookie.Codec
	Username     string
	PasswordHash []byte
	Templates    string // glob
}

func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.LoadHTMLGlob(cfg.Templates)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.ErrorHandler(cfg.Logger),
		middleware.FlashMiddleware(cfg.FlashCodec),
		middleware.Auth(cfg.AuthCodec),
	)

	login := handlers.NewLoginHandler(cfg.FlashCodec, cfg.AuthCodec, cfg.Username, cfg.PasswordHash)
	dashboard := handlers.NewDashboardHandler()
	upload := handlers.NewUploadHandler(cfg.FlashCodec, cfg.Extractor, cfg.Archive, cfg.Logger)
	invoices := handlers.NewInvoicesHandler(cfg.FlashCodec, cfg.Extractor)
	detail := handlers.NewInvoiceHandler(cfg.FlashCodec, cfg.Extractor)

	r.GET("/", func(c *gin.Context) {
		if middleware.IsAuthenticated(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", login.Get)
	r.POST("/login", login.Post)
	r.POST("/logout", login.Logout)

	auth := r.Group("", middleware.RequireAuth(cfg.FlashCodec))
	auth.GET("/dashboard", dashboard.Get)
	auth.GET("/upload", upload.Get)
	auth.POST("/upload", upload.Post)
	auth.GET("/invoices", invoices.List)
	auth.GET("/invoices/export.xlsx", invoices.Export)
	auth.GET("/invoice/:id", detail.Show)
	auth.POST("/invoice/:id", detail.Save)
	auth.GET("/invoice/:id/pdf", detail.Pdf)

	return r
}
