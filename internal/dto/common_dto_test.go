package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/dto"
)

func TestNewListMeta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, limit    int
		wantTotalPages int
	}{
		{"exact multiple", 20, 1, 10, 2},
		{"partial last page", 21, 1, 10, 3},
		{"empty set", 0, 1, 10, 0},
		{"single item", 1, 1, 10, 1},
		{"zero limit does not divide", 5, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := dto.NewListMeta(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
		})
	}
}
