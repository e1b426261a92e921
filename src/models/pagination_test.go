package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	t.Run("DefaultsWhenOutOfRange", func(t *testing.T) {
		p := NewPaginationParams(0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)

		p = NewPaginationParams(-3, -1)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("LimitCappedAt100", func(t *testing.T) {
		p := NewPaginationParams(2, 500)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 100, p.Limit)
	})

	t.Run("Skip", func(t *testing.T) {
		p := NewPaginationParams(3, 10)
		assert.Equal(t, int64(20), p.Skip())

		p = NewPaginationParams(1, 25)
		assert.Equal(t, int64(0), p.Skip())
	})
}

func TestNewPagination(t *testing.T) {
	t.Run("ExactMultiple", func(t *testing.T) {
		pg := NewPagination(30, NewPaginationParams(2, 10))
		assert.Equal(t, 2, pg.CurrentPage)
		assert.Equal(t, 3, pg.TotalPages)
		assert.Equal(t, int64(30), pg.TotalSessions)
		assert.True(t, pg.HasNextPage)
		assert.True(t, pg.HasPrevPage)
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		pg := NewPagination(31, NewPaginationParams(4, 10))
		assert.Equal(t, 4, pg.TotalPages)
		assert.False(t, pg.HasNextPage)
		assert.True(t, pg.HasPrevPage)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		pg := NewPagination(0, NewPaginationParams(1, 10))
		assert.Equal(t, 0, pg.TotalPages)
		assert.False(t, pg.HasNextPage)
		assert.False(t, pg.HasPrevPage)
	})

	t.Run("SinglePage", func(t *testing.T) {
		pg := NewPagination(5, NewPaginationParams(1, 10))
		assert.Equal(t, 1, pg.TotalPages)
		assert.False(t, pg.HasNextPage)
		assert.False(t, pg.HasPrevPage)
	})
}
