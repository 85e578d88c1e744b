package web

import (
	"net/http"
	"net/url"
	"strconv"

	"yatube/auth"
	"yatube/forms"
	"yatube/listing"
	"yatube/models"
	"yatube/store"

	"github.com/gin-gonic/gin"
)

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func detailURL(postID uint64) string {
	return "/posts/" + strconv.FormatUint(postID, 10) + "/"
}

func postID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	return id, err == nil && id != 0
}

// postData returns the submitted form values, nil for GET requests
func postData(c *gin.Context) url.Values {
	if c.Request.Method != http.MethodPost {
		return nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return url.Values{}
	}
	return c.Request.PostForm
}

func (s *Server) Index(c *gin.Context) {
	page, err := s.Listing.Page(c.Request.Context(), listing.All(), c.Query("page"))
	if err != nil {
		s.serverError(c, err)
		return
	}
	s.render(c, http.StatusOK, "index.tmpl", gin.H{
		"page_obj": page,
	})
}

func (s *Server) GroupPosts(c *gin.Context) {
	ctx := c.Request.Context()
	group, err := s.Groups.BySlug(ctx, c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	page, err := s.Listing.Page(ctx, listing.InGroup(group), c.Query("page"))
	if err != nil {
		s.serverError(c, err)
		return
	}
	s.render(c, http.StatusOK, "group_list.tmpl", gin.H{
		"group":    group,
		"page_obj": page,
	})
}

func (s *Server) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := s.Users.ByUsername(ctx, c.Param("username"))
	if err != nil {
		s.fail(c, err)
		return
	}
	page, err := s.Listing.Page(ctx, listing.ByAuthor(author), c.Query("page"))
	if err != nil {
		s.serverError(c, err)
		return
	}
	s.render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":      author,
		"page_obj":    page,
		"posts_count": page.Count,
	})
}

func (s *Server) PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		s.notFound(c)
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.Get(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	count, err := s.Listing.Count(ctx, listing.ByAuthor(&post.Author))
	if err != nil {
		s.serverError(c, err)
		return
	}
	s.render(c, http.StatusOK, "post_detail.tmpl", gin.H{
		"post":               post,
		"author_posts_count": count,
		"can_edit":           auth.CanEdit(auth.CurrentUser(c), post),
	})
}

// PostCreate publishes a new post of the acting user and sends them to their profile
func (s *Server) PostCreate(c *gin.Context, user *models.User) {
	if !auth.CanCreate(user) {
		c.Redirect(http.StatusFound, auth.LoginRedirect(s.LoginURL, c.Request.URL.RequestURI()))
		return
	}
	ctx := c.Request.Context()
	form := forms.NewPostForm(s.Groups, postData(c), nil)
	valid, err := form.Validate(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if valid {
		post := form.NewPost(user, s.Now().UTC())
		if err = s.Posts.Create(ctx, post); err != nil {
			s.serverError(c, err)
			return
		}
		s.Logger.InfoContext(ctx, "post created", "post_id", post.ID, "user_id", user.ID)
		c.Redirect(http.StatusFound, profileURL(user.Username))
		return
	}
	s.renderPostForm(c, form, gin.H{})
}

// PostEdit lets the author change the text and group of a post. Anyone else
// is sent back to the post page.
func (s *Server) PostEdit(c *gin.Context, user *models.User) {
	id, ok := postID(c)
	if !ok {
		s.notFound(c)
		return
	}
	ctx := c.Request.Context()
	post, err := s.Posts.Get(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !auth.CanEdit(user, post) {
		c.Redirect(http.StatusFound, detailURL(post.ID))
		return
	}
	form := forms.NewPostForm(s.Groups, postData(c), post)
	valid, err := form.Validate(ctx)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if valid {
		form.Apply(post)
		if err = s.Posts.Update(ctx, post); err != nil {
			s.fail(c, err)
			return
		}
		s.Logger.InfoContext(ctx, "post updated", "post_id", post.ID, "user_id", user.ID)
		c.Redirect(http.StatusFound, detailURL(post.ID))
		return
	}
	s.renderPostForm(c, form, gin.H{
		"is_edit": true,
		"post_id": post.ID,
	})
}

func (s *Server) renderPostForm(c *gin.Context, form *forms.PostForm, data gin.H) {
	groups, err := s.Groups.All(c.Request.Context())
	if err != nil {
		s.serverError(c, err)
		return
	}
	form.SetGroupChoices(groups)
	data["form"] = form
	s.render(c, http.StatusOK, "post_create.tmpl", data)
}

var _ PostStore = (*store.Posts)(nil)
var _ GroupStore = (*store.Groups)(nil)
var _ UserStore = (*store.Users)(nil)
var _ Lister = (*listing.Service)(nil)
