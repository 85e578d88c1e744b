package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"yatube/models"
	"yatube/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GroupStore interface {
	All(ctx context.Context) ([]models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint64) error
}

type UserStore interface {
	Delete(ctx context.Context, id uint64) error
}

// Admin serves the moderation endpoints, mounted behind the admin permission
type Admin struct {
	Groups GroupStore
	Users  UserStore
}

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GroupCreateRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Slug        string `form:"slug" binding:"required,slug"`
	Description string `form:"description" binding:"required"`
}

type DeleteRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

func groupInfo(g *models.Group) GroupInfo {
	return GroupInfo{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func (a *Admin) GroupList(c *gin.Context, user *models.User) {
	groups, err := a.Groups.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	result := make([]GroupInfo, 0, len(groups))
	for i := range groups {
		result = append(result, groupInfo(&groups[i]))
	}
	c.JSON(http.StatusOK, result)
}

func (a *Admin) GroupCreate(c *gin.Context, user *models.User) {
	r := GroupCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	group := models.Group{Title: r.Title, Slug: r.Slug, Description: r.Description}
	err := a.Groups.Create(c.Request.Context(), &group)
	if errors.Is(err, store.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, ExistsResponse)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	slog.InfoContext(c.Request.Context(), "group created", "group_id", group.ID, "slug", group.Slug, "user_id", user.ID)
	c.JSON(http.StatusOK, groupInfo(&group))
}

// GroupDelete removes the group; its posts stay, ungrouped
func (a *Admin) GroupDelete(c *gin.Context, user *models.User) {
	r := DeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	a.respondDelete(c, a.Groups.Delete(c.Request.Context(), r.ID))
}

// UserDelete removes the user together with all their posts
func (a *Admin) UserDelete(c *gin.Context, user *models.User) {
	r := DeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if r.ID == user.ID {
		c.JSON(http.StatusBadRequest, NopeResponse)
		return
	}
	a.respondDelete(c, a.Users.Delete(c.Request.Context(), r.ID))
}

func (a *Admin) respondDelete(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
