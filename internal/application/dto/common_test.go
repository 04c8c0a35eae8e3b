package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-api/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name      string
		in        dto.PageRequest
		wantPage  int
		wantLimit int
	}{
		{"ceros", dto.PageRequest{}, 1, 50},
		{"negativos", dto.PageRequest{Page: -3, Limit: -5}, 1, 50},
		{"recorte", dto.PageRequest{Page: 2, Limit: 100000}, 2, 500},
		{"válidos", dto.PageRequest{Page: 4, Limit: 20}, 4, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.DefaultPage(500)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.PageRequest{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 100, dto.PageRequest{Page: 3, Limit: 50}.Offset())
	assert.Equal(t, math.MaxInt, dto.PageRequest{Page: math.MaxInt, Limit: 50}.Offset(), "satura en vez de desbordar")
	assert.Equal(t, math.MaxInt, dto.PageRequest{Page: math.MaxInt/50 + 2, Limit: 50}.Offset())
	assert.Equal(t, (math.MaxInt/50)*50, dto.PageRequest{Page: math.MaxInt/50 + 1, Limit: 50}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, dto.TotalPages(0, 50))
	assert.Equal(t, 1, dto.TotalPages(50, 50))
	assert.Equal(t, 3, dto.TotalPages(101, 50))
}
