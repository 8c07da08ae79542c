package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 10)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := BuildPaginationFromPage(30, 3, 10)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNext)
	})

	t.Run("defaults on bad input", func(t *testing.T) {
		p := BuildPaginationFromPage(5, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.PerPage)
	})
}
