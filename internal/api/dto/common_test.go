package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		items          []int
		page           int
		pageSize       int
		total          int64
		wantTotalPages int64
	}{
		{name: "exact multiple", items: []int{1, 2}, page: 1, pageSize: 10, total: 20, wantTotalPages: 2},
		{name: "partial last page", items: []int{1}, page: 3, pageSize: 10, total: 21, wantTotalPages: 3},
		{name: "empty result", items: nil, page: 1, pageSize: 10, total: 0, wantTotalPages: 0},
		{name: "single item", items: []int{1}, page: 1, pageSize: 50, total: 1, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPage(tt.items, tt.page, tt.pageSize, tt.total)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.NotNil(t, p.Items, "items must marshal as [] rather than null")
			assert.Len(t, p.Items, len(tt.items))
		})
	}
}
