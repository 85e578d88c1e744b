package auth

import (
	"net/http"
	"net/url"
	"strings"

	"yatube/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and posseses the required permissions
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds auth checks in front of the handlers.
// With LoginURL set, anonymous visitors are sent to the login page and
// brought back afterwards; otherwise they get a JSON error.
type Router struct {
	Base     gin.IRoutes
	LoginURL string
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []models.Permission) {
	user := CurrentUser(c)
	if !IsAuthenticated(user) {
		if cr.LoginURL != "" {
			c.Redirect(http.StatusFound, LoginRedirect(cr.LoginURL, c.Request.URL.RequestURI()))
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	if !user.HasPermissions(required) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	handler(c, user)
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

// Match registers the handler for GET and POST, as used by HTML forms
func (cr *Router) Match(path string, handler HandlerFunc, required ...models.Permission) {
	cr.GET(path, handler, required...)
	cr.POST(path, handler, required...)
}

// LoginRedirect builds the login URL carrying the page to return to
func LoginRedirect(loginURL, next string) string {
	return loginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// SafeNext returns next if it is a local path, "" otherwise
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
