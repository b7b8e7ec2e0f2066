package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"defaults for zero values", Page{}, Page{Page: 1, Limit: 10}},
		{"negative page", Page{Page: -3, Limit: 5}, Page{Page: 1, Limit: 5}},
		{"negative limit", Page{Page: 2, Limit: -1}, Page{Page: 2, Limit: 10}},
		{"limit clamped to max", Page{Page: 1, Limit: 5000}, Page{Page: 1, Limit: 100}},
		{"valid window untouched", Page{Page: 3, Limit: 25}, Page{Page: 3, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Page{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 5, Page{Page: 2, Limit: 5}.Offset())
}

func TestPageTotalPages(t *testing.T) {
	page := Page{Page: 1, Limit: 10}

	assert.Equal(t, 0, page.TotalPages(0))
	assert.Equal(t, 1, page.TotalPages(1))
	assert.Equal(t, 1, page.TotalPages(10))
	assert.Equal(t, 2, page.TotalPages(11))
	assert.Equal(t, 3, Page{Page: 2, Limit: 5}.TotalPages(12))
}
