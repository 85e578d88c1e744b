package web

import (
	"errors"
	"log/slog"
	"net/http"

	"yatube/auth"
	"yatube/store"
	"yatube/utils"

	"github.com/gin-gonic/gin"
)

// Renderer turns a template name and its context into the response
type Renderer interface {
	Render(c *gin.Context, status int, name string, data gin.H)
}

// HTMLRenderer renders the templates loaded into the gin engine
type HTMLRenderer struct{}

func (HTMLRenderer) Render(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user := auth.CurrentUser(c); user != nil {
		data["user"] = user
	}
	s.Renderer.Render(c, status, name, data)
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
}

func (s *Server) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	s.Logger.ErrorContext(c.Request.Context(), "request failed",
		slog.String("path", c.Request.URL.Path),
		slog.String("request_id", utils.RequestIDFrom(c)),
		slog.String("error", err.Error()),
	)
	s.render(c, http.StatusInternalServerError, "500.tmpl", nil)
}

// fail answers 404 for missing records and 500 for everything else
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.notFound(c)
		return
	}
	s.serverError(c, err)
}
