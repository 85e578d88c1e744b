package store_test

import (
	"context"
	"testing"
	"time"

	"yatube/db/dbtest"
	"yatube/models"
	"yatube/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	posts  *store.Posts
	groups *store.Groups
	users  *store.Users
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	return &fixture{
		db:     db,
		posts:  store.NewPosts(db),
		groups: store.NewGroups(db),
		users:  store.NewUsers(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username}
	require.NoError(t, f.users.Create(context.Background(), u, "password"))
	return u
}

func (f *fixture) group(t *testing.T, slug string) *models.Group {
	t.Helper()
	g := &models.Group{Title: "Group " + slug, Slug: slug, Description: "about " + slug}
	require.NoError(t, f.groups.Create(context.Background(), g))
	return g
}

func (f *fixture) post(t *testing.T, author *models.User, group *models.Group, text string, at time.Time) *models.Post {
	t.Helper()
	p := &models.Post{Text: text, PubDate: at, AuthorID: author.ID}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, f.posts.Create(context.Background(), p))
	return p
}

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestPosts_ListOrderAndFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	leo := f.user(t, "leo")
	anna := f.user(t, "anna")
	cats := f.group(t, "cats")
	dogs := f.group(t, "dogs")

	p1 := f.post(t, leo, cats, "first", base)
	p2 := f.post(t, anna, dogs, "second", base.Add(time.Minute))
	p3 := f.post(t, leo, nil, "third", base.Add(2*time.Minute))
	p4 := f.post(t, anna, cats, "same time as third", base.Add(2*time.Minute))

	all, err := f.posts.List(ctx, store.PostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []uint64{p4.ID, p3.ID, p2.ID, p1.ID}, postIDs(all))
	assert.Equal(t, "anna", all[0].Author.Username)
	require.NotNil(t, all[0].Group)
	assert.Equal(t, "cats", all[0].Group.Slug)
	assert.Nil(t, all[1].Group)

	inCats, err := f.posts.List(ctx, store.PostFilter{GroupID: cats.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{p4.ID, p1.ID}, postIDs(inCats))

	byLeo, err := f.posts.List(ctx, store.PostFilter{AuthorID: leo.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{p3.ID, p1.ID}, postIDs(byLeo))

	count, err := f.posts.Count(ctx, store.PostFilter{GroupID: dogs.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	window, err := f.posts.List(ctx, store.PostFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{p3.ID, p2.ID}, postIDs(window))
}

func TestPosts_GetAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	leo := f.user(t, "leo")
	cats := f.group(t, "cats")
	p := f.post(t, leo, nil, "draft", base)

	_, err := f.posts.Get(ctx, p.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)

	edited := *p
	edited.Text = "final"
	edited.GroupID = &cats.ID
	// author and publication date are never written
	edited.AuthorID = 999
	edited.PubDate = base.AddDate(1, 0, 0)
	require.NoError(t, f.posts.Update(ctx, &edited))

	got, err := f.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Text)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, cats.ID, *got.GroupID)
	assert.Equal(t, leo.ID, got.AuthorID)
	assert.True(t, base.Equal(got.PubDate))

	got.GroupID = nil
	require.NoError(t, f.posts.Update(ctx, got))
	got, err = f.posts.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)

	assert.ErrorIs(t, f.posts.Update(ctx, &models.Post{ID: p.ID + 100}), store.ErrNotFound)
}

func TestGroups_CreateAndLookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cats := f.group(t, "cats")

	err := f.groups.Create(ctx, &models.Group{Title: "Other", Slug: "cats", Description: "dup"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := f.groups.BySlug(ctx, "cats")
	require.NoError(t, err)
	assert.Equal(t, cats.ID, got.ID)

	_, err = f.groups.BySlug(ctx, "dogs")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.groups.ByID(ctx, cats.ID+1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	f.group(t, "ants")
	all, err := f.groups.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ants", all[0].Slug)
}

func TestGroups_DeleteKeepsPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	leo := f.user(t, "leo")
	cats := f.group(t, "cats")
	dogs := f.group(t, "dogs")
	inCats := f.post(t, leo, cats, "cat post", base)
	inDogs := f.post(t, leo, dogs, "dog post", base)

	require.NoError(t, f.groups.Delete(ctx, cats.ID))

	got, err := f.posts.Get(ctx, inCats.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, "cat post", got.Text)

	got, err = f.posts.Get(ctx, inDogs.ID)
	require.NoError(t, err)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, dogs.ID, *got.GroupID)

	assert.ErrorIs(t, f.groups.Delete(ctx, cats.ID), store.ErrNotFound)
}

func TestUsers_DeleteRemovesPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	leo := f.user(t, "leo")
	anna := f.user(t, "anna")
	f.post(t, leo, nil, "one", base)
	f.post(t, leo, nil, "two", base)
	kept := f.post(t, anna, nil, "three", base)

	require.NoError(t, f.users.Delete(ctx, leo.ID))

	count, err := f.posts.Count(ctx, store.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	_, err = f.posts.Get(ctx, kept.ID)
	require.NoError(t, err)

	_, err = f.users.ByID(ctx, leo.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, f.users.Delete(ctx, leo.ID), store.ErrNotFound)
}

func TestUsers_CreateAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	leo := f.user(t, "leo")

	err := f.users.Create(ctx, &models.User{Username: "leo"}, "other")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := f.users.Authenticate(ctx, "leo", "password")
	require.NoError(t, err)
	assert.Equal(t, leo.ID, got.ID)

	_, err = f.users.Authenticate(ctx, "leo", "wrong")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.users.Authenticate(ctx, "nobody", "password")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_EnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := f.users.EnsureAdmin(ctx, "root", "secret")
	require.NoError(t, err)
	assert.True(t, admin.HasPermission(models.PermissionAdmin))

	// second run resets the password and does not duplicate the grant
	admin, err = f.users.EnsureAdmin(ctx, "root", "new secret")
	require.NoError(t, err)
	got, err := f.users.Authenticate(ctx, "root", "new secret")
	require.NoError(t, err)
	assert.Len(t, got.Grants, 1)
	assert.Equal(t, admin.ID, got.ID)
}

func postIDs(posts []models.Post) []uint64 {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
