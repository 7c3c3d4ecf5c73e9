package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatorBasics(t *testing.T) {
	p := NewPaginator(20)

	info := p.Compute(57, 0)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 0, info.Offset)

	p.SetPage(2, 0)
	info = p.Compute(57, 0)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 20, info.Offset)
}

func TestPaginatorClampInvariant(t *testing.T) {
	// 1 <= effectivePage <= totalPages for any stored page
	for _, stored := range []int{-3, 0, 1, 2, 3, 99, 100000} {
		for _, total := range []int{0, 1, 19, 20, 21, 57, 400} {
			p := NewPaginator(20)
			p.SetPage(stored, 7)
			info := p.Compute(total, 7)

			assert.GreaterOrEqual(t, info.Page, 1,
				"stored=%d total=%d", stored, total)
			assert.LessOrEqual(t, info.Page, info.TotalPages,
				"stored=%d total=%d", stored, total)
			assert.Equal(t, (info.Page-1)*20, info.Offset)
		}
	}
}

func TestPaginatorFilterChangeResetsPage(t *testing.T) {
	p := NewPaginator(20)
	p.SetPage(3, 1)

	// Same signature keeps the page
	assert.Equal(t, 3, p.Compute(100, 1).Page)

	// A different signature (filters changed) drops back to page 1
	assert.Equal(t, 1, p.Compute(100, 2).Page)

	// And the reset sticks for subsequent computes under the new signature
	assert.Equal(t, 1, p.Compute(100, 2).Page)
}

func TestPaginatorShrinkingResultSetClamps(t *testing.T) {
	p := NewPaginator(10)
	p.SetPage(5, 0)

	assert.Equal(t, 5, p.Compute(50, 0).Page)

	// Result set shrank; the displayed page clamps without an error
	info := p.Compute(12, 0)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 2, info.TotalPages)
	assert.Equal(t, 10, info.Offset)
}

func TestPaginatorEmpty(t *testing.T) {
	p := NewPaginator(20)
	info := p.Compute(0, 0)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.Offset)
}

func TestPaginatorGuardsPageSize(t *testing.T) {
	p := NewPaginator(0)
	assert.Equal(t, 1, p.PageSize())
	info := p.Compute(3, 0)
	assert.Equal(t, 3, info.TotalPages)
}
