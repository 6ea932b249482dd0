package handler

import (
	"fmt"
	"net/http"

	"hangman/internal/middleware"
	"hangman/internal/service"
	"hangman/internal/web"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the hangman page and word endpoint
type Handler struct {
	wordService *service.WordService
	page        web.PageData
	logger      *zap.Logger
}

// Route binds a method and path to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewHandler creates a new handler instance
func NewHandler(wordService *service.WordService, logger *zap.Logger) *Handler {
	return &Handler{
		wordService: wordService,
		page:        web.DefaultPageData(),
		logger:      logger,
	}
}

// Routes returns all route bindings
func (h *Handler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleHome},
		{Method: http.MethodGet, Path: "/get-word", Handler: h.handleGetWord},
		{Method: http.MethodGet, Path: "/healthz", Handler: h.handleHealth},
	}
}

// NewRouter builds the gin engine with middleware, templates, static assets and routes
func NewRouter(h *Handler, ssl bool) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestLogger(h.logger))

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if ssl {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.StaticFS("/static", web.StaticFS())

	for _, r := range h.Routes() {
		router.Handle(r.Method, r.Path, r.Handler)
	}

	return router, nil
}

// handleHome renders the hangman page
func (h *Handler) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageTemplate, h.page)
}

// handleHealth reports that the server is up
func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
