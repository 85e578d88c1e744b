package web

import (
	"errors"
	"net/http"

	"yatube/auth"
	"yatube/models"
	"yatube/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type SignupRequest struct {
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Username  string `form:"username" binding:"required,max=150,username"`
	Email     string `form:"email" binding:"omitempty,email,max=254"`
	Password  string `form:"password" binding:"required,min=8"`
}

const (
	msgLoginRequired  = "Enter your username and password."
	msgLoginInvalid   = "Please enter a correct username and password."
	msgSignupInvalid  = "Check the fields: the username may only contain letters, digits and @/./+/-/_ and the password must be at least 8 characters long."
	msgUsernameExists = "A user with that username already exists."
)

func (s *Server) LoginView(c *gin.Context) {
	s.render(c, http.StatusOK, "login.tmpl", gin.H{
		"next": auth.SafeNext(c.Query("next")),
	})
}

// Login authenticates the visitor and sends them back to where they came from
func (s *Server) Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		s.render(c, http.StatusOK, "login.tmpl", gin.H{
			"error":    msgLoginRequired,
			"username": r.Username,
			"next":     auth.SafeNext(r.Next),
		})
		return
	}
	user, err := s.Users.Authenticate(c.Request.Context(), r.Username, r.Password)
	if errors.Is(err, store.ErrNotFound) {
		s.render(c, http.StatusOK, "login.tmpl", gin.H{
			"error":    msgLoginInvalid,
			"username": r.Username,
			"next":     auth.SafeNext(r.Next),
		})
		return
	} else if err != nil {
		s.serverError(c, err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(user.ID); err != nil {
		s.serverError(c, err)
		return
	}
	next := auth.SafeNext(r.Next)
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (s *Server) SignupView(c *gin.Context) {
	s.render(c, http.StatusOK, "signup.tmpl", nil)
}

func (s *Server) Signup(c *gin.Context) {
	r := SignupRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	data := gin.H{
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"username":   r.Username,
		"email":      r.Email,
	}
	if err != nil {
		data["error"] = msgSignupInvalid
		s.render(c, http.StatusOK, "signup.tmpl", data)
		return
	}
	user := models.User{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
	err = s.Users.Create(c.Request.Context(), &user, r.Password)
	if errors.Is(err, store.ErrAlreadyExists) {
		data["error"] = msgUsernameExists
		s.render(c, http.StatusOK, "signup.tmpl", data)
		return
	} else if err != nil {
		s.serverError(c, err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(user.ID); err != nil {
		s.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) Logout(c *gin.Context) {
	if err := auth.LoadSession(c).LogoutUser(); err != nil {
		s.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
