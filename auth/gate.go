package auth

import "yatube/models"

func IsAuthenticated(user *models.User) bool {
	return user != nil && user.ID != 0
}

// CanCreate reports whether the user may publish new posts
func CanCreate(user *models.User) bool {
	return IsAuthenticated(user)
}

// CanEdit reports whether the user may change the post: only its author can
func CanEdit(user *models.User, post *models.Post) bool {
	return IsAuthenticated(user) && post != nil && post.IsAuthor(user.ID)
}
