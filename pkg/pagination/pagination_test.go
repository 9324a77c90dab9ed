package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dromero-dev/comanda-api/pkg/pagination"
)

func TestWindow(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	t.Run("third page of 23 items holds indices 20 through 22", func(t *testing.T) {
		page := pagination.Window(items, 3, 10)
		assert.Len(t, page, 3)
		assert.Equal(t, []int{20, 21, 22}, page)
	})

	t.Run("first page is full", func(t *testing.T) {
		assert.Len(t, pagination.Window(items, 1, 10), 10)
	})

	t.Run("page beyond range is empty", func(t *testing.T) {
		assert.Empty(t, pagination.Window(items, 4, 10))
	})

	t.Run("invalid page or size yields nothing", func(t *testing.T) {
		assert.Empty(t, pagination.Window(items, 0, 10))
		assert.Empty(t, pagination.Window(items, 1, 0))
	})
}

func TestHead(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, pagination.Head(items, 2))
	assert.Equal(t, items, pagination.Head(items, 5))
	assert.Empty(t, pagination.Head(items, 0))
}

func TestVisiblePages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    []int
	}{
		{"no pages", 0, 1, []int{}},
		{"five or fewer pages all shown", 5, 3, []int{1, 2, 3, 4, 5}},
		{"middle page collapses both sides", 10, 5, []int{1, pagination.EllipsisLeft, 3, 4, 5, 6, 7, pagination.EllipsisRight, 10}},
		{"near the start only right gap collapses", 10, 2, []int{1, 2, 3, 4, pagination.EllipsisRight, 10}},
		{"near the end only left gap collapses", 10, 9, []int{1, pagination.EllipsisLeft, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.VisiblePages(tt.total, tt.current))
		})
	}
}

func TestNew(t *testing.T) {
	p := pagination.New(3, 10, 23)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, []int{1, 2, 3}, p.Pages)
}
