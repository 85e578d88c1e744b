package forms

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"yatube/models"
	"yatube/store"
)

const (
	FieldText  = "text"
	FieldGroup = "group"
)

var postFields = []Field{
	{Name: FieldText, Kind: KindText, Required: true, Label: "Post text", Help: "Enter the text of the post"},
	{Name: FieldGroup, Kind: KindOptionalRef, Label: "Group", Help: "Choose the group the post belongs to"},
}

type GroupLookup interface {
	ByID(ctx context.Context, id uint64) (*models.Group, error)
}

// PostForm binds the text and group of a post. Without submitted data the
// form only displays the instance (if any); with data it can be validated.
type PostForm struct {
	Fields   []Field
	Data     url.Values
	Instance *models.Post
	Errors   Errors
	Choices  []Choice

	groups    GroupLookup
	validated bool
	text      string
	groupID   *uint64
}

func NewPostForm(groups GroupLookup, data url.Values, instance *models.Post) *PostForm {
	return &PostForm{
		Fields:   postFields,
		Data:     data,
		Instance: instance,
		Errors:   Errors{},
		groups:   groups,
	}
}

// IsBound reports whether values were submitted
func (f *PostForm) IsBound() bool {
	return f.Data != nil
}

// IsEdit reports whether the form changes an existing post
func (f *PostForm) IsEdit() bool {
	return f.Instance != nil && f.Instance.ID != 0
}

// SetGroupChoices fills the options of the group field, a blank option first
func (f *PostForm) SetGroupChoices(groups []models.Group) {
	f.Choices = make([]Choice, 0, len(groups)+1)
	f.Choices = append(f.Choices, Choice{Value: "", Label: "---------"})
	for _, g := range groups {
		f.Choices = append(f.Choices, Choice{Value: strconv.FormatUint(g.ID, 10), Label: g.Title})
	}
}

// Validate checks the submitted values. A returned error means the groups
// could not be looked up; field problems are reported through f.Errors.
func (f *PostForm) Validate(ctx context.Context) (bool, error) {
	f.Errors = Errors{}
	f.validated = false
	if !f.IsBound() {
		return false, nil
	}
	for _, field := range f.Fields {
		value, present := raw(f.Data, field.Name)
		if field.Required && !present {
			f.Errors.Add(field.Name, MsgRequired)
			continue
		}
		switch field.Kind {
		case KindText:
			f.text = value
		case KindOptionalRef:
			id, err := f.cleanGroup(ctx, value)
			if err != nil {
				return false, err
			}
			f.groupID = id
		}
	}
	f.validated = f.Errors.Empty()
	return f.validated, nil
}

func (f *PostForm) cleanGroup(ctx context.Context, value string) (*uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		f.Errors.Add(FieldGroup, MsgInvalidChoice)
		return nil, nil
	}
	group, err := f.groups.ByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		f.Errors.Add(FieldGroup, MsgInvalidChoice)
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &group.ID, nil
}

// Text is the cleaned text, valid after a successful Validate
func (f *PostForm) Text() string {
	return f.text
}

// GroupID is the cleaned group reference, valid after a successful Validate
func (f *PostForm) GroupID() *uint64 {
	return f.groupID
}

// Value returns what the field should display: the submitted value when
// bound, the instance value otherwise
func (f *PostForm) Value(name string) string {
	if f.IsBound() {
		v, _ := raw(f.Data, name)
		return v
	}
	if f.Instance == nil {
		return ""
	}
	switch name {
	case FieldText:
		return f.Instance.Text
	case FieldGroup:
		if f.Instance.GroupID != nil {
			return strconv.FormatUint(*f.Instance.GroupID, 10)
		}
	}
	return ""
}

// NewPost builds the post to create. The author is always the acting user.
func (f *PostForm) NewPost(author *models.User, now time.Time) *models.Post {
	if !f.validated {
		panic("forms: NewPost called on a form that did not validate")
	}
	return &models.Post{
		Text:     f.text,
		PubDate:  now,
		AuthorID: author.ID,
		GroupID:  f.groupID,
	}
}

// Apply copies the editable fields into the post, leaving author and
// publication date untouched
func (f *PostForm) Apply(post *models.Post) {
	if !f.validated {
		panic("forms: Apply called on a form that did not validate")
	}
	post.Text = f.text
	post.GroupID = f.groupID
	post.Group = nil
}
