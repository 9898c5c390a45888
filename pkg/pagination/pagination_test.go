package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		wantOffset int
		wantLimit  int
	}{
		{name: "unpaged", params: Params{Page: 1, PageSize: 0}, wantOffset: 0, wantLimit: 0},
		{name: "first page", params: Params{Page: 1, PageSize: 100}, wantOffset: 0, wantLimit: 100},
		{name: "third page", params: Params{Page: 3, PageSize: 25}, wantOffset: 50, wantLimit: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := tt.params.CalculateOffsetLimit()
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestBuildMeta(t *testing.T) {
	meta := Params{Page: 2, PageSize: 10}.BuildMeta(25)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 25, meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	meta = Params{Page: 1, PageSize: 0}.BuildMeta(25)
	assert.Equal(t, 0, meta.TotalPages)
}
