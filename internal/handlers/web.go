package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const fallbackMessage = "This short link doesn't exist or may have expired"

// WebHandler serves the HTML surface: the home page and the fallback
// error page for unmatched non-API paths.
type WebHandler struct {
	logger *zap.Logger
	tmpl   *template.Template
}

func NewWebHandler(logger *zap.Logger) (*WebHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &WebHandler{logger: logger, tmpl: tmpl}, nil
}

// RegisterRoutes registers the web routes on the engine root.
func (h *WebHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
}

func (h *WebHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", nil)
}

// Fallback renders the 404 page for unmatched paths outside /api.
func (h *WebHandler) Fallback(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{
		"ErrorCode":    "404",
		"ErrorMessage": fallbackMessage,
	})
}

func (h *WebHandler) render(c *gin.Context, status int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		h.logger.Error("template render failed",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}
