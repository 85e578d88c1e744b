// Package web serves the HTML pages of the site.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"yatube/auth"
	"yatube/listing"
	"yatube/models"
	"yatube/paginator"

	"github.com/gin-gonic/gin"
)

type PostStore interface {
	Get(ctx context.Context, id uint64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
}

type GroupStore interface {
	All(ctx context.Context) ([]models.Group, error)
	ByID(ctx context.Context, id uint64) (*models.Group, error)
	BySlug(ctx context.Context, slug string) (*models.Group, error)
}

type UserStore interface {
	ByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User, plainTextPassword string) error
	Authenticate(ctx context.Context, username, plainTextPassword string) (*models.User, error)
}

type Lister interface {
	Page(ctx context.Context, scope listing.Scope, rawNumber string) (*paginator.Page[models.Post], error)
	Count(ctx context.Context, scope listing.Scope) (int64, error)
}

type Server struct {
	Posts    PostStore
	Groups   GroupStore
	Users    UserStore
	Listing  Lister
	Renderer Renderer
	Logger   *slog.Logger
	LoginURL string
	Now      func() time.Time // defaults to time.Now
}

// Register mounts every page of the site on the router
func (s *Server) Register(router *gin.Engine) {
	if s.Renderer == nil {
		s.Renderer = HTMLRenderer{}
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	// Listings
	router.GET("/", s.Index)
	router.GET("/group/:slug/", s.GroupPosts)
	router.GET("/profile/:username/", s.Profile)
	router.GET("/posts/:post_id/", s.PostDetail)
	// Writing, login required
	authRouter := &auth.Router{Base: router, LoginURL: s.LoginURL}
	authRouter.Match("/create/", s.PostCreate)
	authRouter.Match("/posts/:post_id/edit/", s.PostEdit)
	// Accounts
	router.GET("/auth/login/", s.LoginView)
	router.POST("/auth/login/", s.Login)
	router.GET("/auth/signup/", s.SignupView)
	router.POST("/auth/signup/", s.Signup)
	router.GET("/auth/logout/", s.Logout)
	// Misc
	router.GET("/robots.txt", Robots)
	router.NoRoute(s.notFound)
}

func Robots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /auth/\nDisallow: /admin/\n")
}
