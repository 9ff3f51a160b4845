package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           Pagination
		wantPage     int
		wantPageSize int
	}{
		{"defaults", Pagination{}, 1, DefaultPageSize},
		{"negative", Pagination{Page: -3, PageSize: -1}, 1, DefaultPageSize},
		{"page size capped", Pagination{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"huge page clamped", Pagination{Page: math.MaxInt, PageSize: MaxPageSize}, MaxPage, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
			assert.GreaterOrEqual(t, p.Offset(), 0)
			assert.LessOrEqual(t, p.Offset(), math.MaxInt32)
		})
	}
}
