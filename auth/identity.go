package auth

import (
	"context"
	"errors"
	"net/http"

	"yatube/models"
	"yatube/store"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

type UserLoader interface {
	ByID(ctx context.Context, id uint64) (*models.User, error)
}

// Identify loads the user bound to the session, if any, and makes it
// available through CurrentUser. Sessions of deleted users are dropped.
func Identify(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := LoadSession(c)
		id := session.UserID()
		if id == 0 {
			c.Next()
			return
		}
		user, err := users.ByID(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(userContextKey, user)
		case errors.Is(err, store.ErrNotFound):
			_ = session.LogoutUser()
		default:
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the acting user, or nil when anonymous
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
