package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Bounds(t *testing.T) {
	tests := []struct {
		name       string
		req        PageRequest
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", req: PageRequest{}, wantLimit: 6, wantOffset: 0},
		{name: "second page", req: PageRequest{Page: 2, Limit: 10}, wantLimit: 10, wantOffset: 10},
		{name: "limit clamped", req: PageRequest{Page: 3, Limit: 1000}, wantLimit: 100, wantOffset: 200},
		{name: "negative page", req: PageRequest{Page: -1, Limit: 5}, wantLimit: 5, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := tt.req.Bounds(6, 100)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
