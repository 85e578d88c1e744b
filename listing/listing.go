// Package listing pages over the posts of the whole site, of a group or of an author.
package listing

import (
	"context"

	"yatube/models"
	"yatube/paginator"
	"yatube/store"
)

type PostQuerier interface {
	Count(ctx context.Context, filter store.PostFilter) (int64, error)
	List(ctx context.Context, filter store.PostFilter, offset, limit int) ([]models.Post, error)
}

// Scope selects which posts a listing is made of
type Scope struct {
	filter store.PostFilter
}

func All() Scope {
	return Scope{}
}

func InGroup(group *models.Group) Scope {
	return Scope{filter: store.PostFilter{GroupID: group.ID}}
}

func ByAuthor(author *models.User) Scope {
	return Scope{filter: store.PostFilter{AuthorID: author.ID}}
}

type Service struct {
	posts   PostQuerier
	perPage int
}

func NewService(posts PostQuerier) *Service {
	return &Service{posts: posts, perPage: paginator.PerPage}
}

// Page returns the requested page of the scope, newest posts first.
// rawNumber is the unparsed "page" query value and is clamped to the existing pages.
func (s *Service) Page(ctx context.Context, scope Scope, rawNumber string) (*paginator.Page[models.Post], error) {
	count, err := s.posts.Count(ctx, scope.filter)
	if err != nil {
		return nil, err
	}
	p := paginator.New(count, s.perPage)
	number := p.Number(rawNumber)
	if count == 0 {
		return paginator.NewPage(p, number, []models.Post{}), nil
	}
	offset, limit := p.Bounds(number)
	posts, err := s.posts.List(ctx, scope.filter, offset, limit)
	if err != nil {
		return nil, err
	}
	return paginator.NewPage(p, number, posts), nil
}

// Count returns the number of posts in the scope
func (s *Service) Count(ctx context.Context, scope Scope) (int64, error) {
	return s.posts.Count(ctx, scope.filter)
}
