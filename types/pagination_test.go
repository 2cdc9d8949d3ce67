package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "empty set still has one page", count: 0, want: 1},
		{name: "single item", count: 1, want: 1},
		{name: "exactly one page", count: 10, want: 1},
		{name: "one over", count: 11, want: 2},
		{name: "nineteen items", count: 19, want: 2},
		{name: "exactly two pages", count: 20, want: 2},
		{name: "twenty one", count: 21, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginator{Count: tt.count, PerPage: PostsPerPage}
			assert.Equal(t, tt.want, p.NumPages())
		})
	}
}

func TestPageSplitsNineteenItems(t *testing.T) {
	p := Paginator{Count: 19, PerPage: PostsPerPage}

	first := p.Page(1)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 10, first.Limit)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	second := p.Page(2)
	assert.Equal(t, 10, second.Offset)
	// the second page query returns the remaining 9 rows
	assert.Equal(t, 10, second.Limit)
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrev())
	assert.Equal(t, 1, second.PrevNumber())
}

func TestPageClampsOutOfRange(t *testing.T) {
	p := Paginator{Count: 19, PerPage: PostsPerPage}

	assert.Equal(t, 1, p.Page(0).Number)
	assert.Equal(t, 1, p.Page(-3).Number)
	assert.Equal(t, 2, p.Page(99).Number)
	assert.Equal(t, 1, Paginator{Count: 0, PerPage: PostsPerPage}.Page(5).Number)
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, ParsePageNumber(""))
	assert.Equal(t, 1, ParsePageNumber("abc"))
	assert.Equal(t, 3, ParsePageNumber("3"))
	assert.Equal(t, -2, ParsePageNumber("-2"))
}
