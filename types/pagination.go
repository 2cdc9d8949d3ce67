package types

import (
	"strconv"
)

const PostsPerPage = 10

// Paginator splits a counted result set into fixed-size pages.
type Paginator struct {
	Count   int
	PerPage int
}

// PageInfo describes one page of a paginated result set. Number is 1-based.
type PageInfo struct {
	Number   int
	NumPages int
	Offset   int
	Limit    int
}

func (p Paginator) NumPages() int {
	if p.Count <= 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// Page clamps the requested page number into range, so page 0, negative
// numbers, and numbers past the end all resolve to a real page.
func (p Paginator) Page(number int) PageInfo {
	numPages := p.NumPages()

	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return PageInfo{
		Number:   number,
		NumPages: numPages,
		Offset:   (number - 1) * p.PerPage,
		Limit:    p.PerPage,
	}
}

// ParsePageNumber reads a ?page= query value. Anything non-numeric resolves
// to page 1.
func ParsePageNumber(raw string) int {
	if raw == "" {
		return 1
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}

	return n
}

func (pg PageInfo) HasPrev() bool {
	return pg.Number > 1
}

func (pg PageInfo) HasNext() bool {
	return pg.Number < pg.NumPages
}

func (pg PageInfo) PrevNumber() int {
	return pg.Number - 1
}

func (pg PageInfo) NextNumber() int {
	return pg.Number + 1
}
