// Package paginator slices listings into fixed-size pages.
//
// Requested page numbers never fail: a missing or non-numeric number yields the
// first page, a number past the end yields the last page, and a number below
// one yields the first page.
package paginator

import (
	"strconv"
	"strings"
)

// PerPage is the number of items shown on every listing page
const PerPage = 10

// Paginator knows the size of a listing and resolves page numbers against it
type Paginator struct {
	Count   int64
	PerPage int
}

func New(count int64, perPage int) Paginator {
	if perPage <= 0 {
		perPage = PerPage
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage}
}

// NumPages is never below one, an empty listing still has an (empty) first page
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return int((p.Count + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// Number turns the raw query value into a valid page number
func (p Paginator) Number(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	if last := p.NumPages(); n > last {
		return last
	}
	return n
}

// Bounds returns the offset and limit of the given (valid) page number
func (p Paginator) Bounds(number int) (offset, limit int) {
	return (number - 1) * p.PerPage, p.PerPage
}

// Page is one slice of a listing together with its position
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int64
	PerPage  int
}

func NewPage[T any](p Paginator, number int, items []T) *Page[T] {
	return &Page[T]{
		Items:    items,
		Number:   number,
		NumPages: p.NumPages(),
		Count:    p.Count,
		PerPage:  p.PerPage,
	}
}

func (pg *Page[T]) Len() int {
	return len(pg.Items)
}

func (pg *Page[T]) HasNext() bool {
	return pg.Number < pg.NumPages
}

func (pg *Page[T]) HasPrevious() bool {
	return pg.Number > 1
}

func (pg *Page[T]) HasOtherPages() bool {
	return pg.HasNext() || pg.HasPrevious()
}

func (pg *Page[T]) NextNumber() int {
	if !pg.HasNext() {
		return pg.Number
	}
	return pg.Number + 1
}

func (pg *Page[T]) PreviousNumber() int {
	if !pg.HasPrevious() {
		return pg.Number
	}
	return pg.Number - 1
}

// StartIndex is the 1-based position of the first item, 0 for an empty listing
func (pg *Page[T]) StartIndex() int64 {
	if pg.Count == 0 {
		return 0
	}
	return int64(pg.PerPage)*int64(pg.Number-1) + 1
}

// EndIndex is the 1-based position of the last item
func (pg *Page[T]) EndIndex() int64 {
	if pg.Number == pg.NumPages {
		return pg.Count
	}
	return int64(pg.PerPage) * int64(pg.Number)
}

// Range lists all page numbers, for rendering the page links
func (pg *Page[T]) Range() []int {
	r := make([]int, pg.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
