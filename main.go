package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/listing"
	"yatube/models"
	"yatube/store"
	"yatube/templates"
	"yatube/utils"
	"yatube/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func fatal(msg string, err error) {
	slog.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.DebugMode)

	database, err := db.Open(cfg)
	if err != nil {
		fatal("database", err)
	}
	if err = models.Migrate(database); err != nil {
		fatal("migrate", err)
	}
	if err = utils.RegisterValidators(); err != nil {
		fatal("validators", err)
	}
	posts := store.NewPosts(database)
	groups := store.NewGroups(database)
	users := store.NewUsers(database)
	if cfg.AdminUsername != "" {
		if _, err = users.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
			fatal("admin account", err)
		}
	}

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	_ = router.SetTrustedProxies([]string{})
	router.Use(gin.Recovery(), utils.RequestID(), utils.RequestLogger(logger, func(c *gin.Context) uint64 {
		if user := auth.CurrentUser(c); user != nil {
			return user.ID
		}
		return 0
	}))
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware(logger))
	} else {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	// HTML templates
	tmpl, err := templates.Load()
	if err != nil {
		fatal("templates", err)
	}
	router.SetHTMLTemplate(tmpl)

	sessionStore := gormsessions.NewStore(database, true, []byte(cfg.SessionKey))
	sessionStore.Options(sessions.Options{Path: "/", MaxAge: cfg.SessionMaxAge, HttpOnly: true})
	router.Use(sessions.Sessions(cfg.SessionCookieName, sessionStore))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // Listings change with every new post
	router.Use(auth.Identify(users))

	/*
	 *	Web interface
	 */
	site := &web.Server{
		Posts:    posts,
		Groups:   groups,
		Users:    users,
		Listing:  listing.NewService(posts),
		Renderer: web.HTMLRenderer{},
		Logger:   logger,
		LoginURL: cfg.LoginURL,
	}
	site.Register(router)

	/*
	 *	Admin API
	 */
	adminGroup := router.Group("/admin")
	if len(cfg.CORSAllowOrigins) > 0 {
		adminGroup.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           30 * 24 * time.Hour,
		}))
	}
	admin := &handlers.Admin{Groups: groups, Users: users}
	adminRouter := &auth.Router{Base: adminGroup}
	adminRouter.GET("/group/list", admin.GroupList, models.PermissionAdmin)
	adminRouter.POST("/group/create", admin.GroupCreate, models.PermissionAdmin)
	adminRouter.POST("/group/delete", admin.GroupDelete, models.PermissionAdmin)
	adminRouter.POST("/user/delete", admin.UserDelete, models.PermissionAdmin)

	if len(cfg.TLSDomains) > 0 {
		err = autotls.Run(router, cfg.TLSDomains...)
	} else {
		err = router.Run(cfg.BindAddress)
	}
	fatal("server stopped", err)
}
