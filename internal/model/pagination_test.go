package model_test

import (
	"testing"

	"github.com/bookworm-labs/bookreview-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name       string
		page, size int
		total      int
		wantOffset int
		wantPages  int
	}{
		{name: "first page", page: 1, size: 10, total: 15, wantOffset: 0, wantPages: 2},
		{name: "second page", page: 2, size: 10, total: 15, wantOffset: 10, wantPages: 2},
		{name: "exact fit", page: 1, size: 5, total: 15, wantOffset: 0, wantPages: 3},
		{name: "single item", page: 1, size: 10, total: 1, wantOffset: 0, wantPages: 1},
		{name: "empty result still one page", page: 1, size: 10, total: 0, wantOffset: 0, wantPages: 1},
		{name: "max size", page: 3, size: 100, total: 250, wantOffset: 200, wantPages: 3},
		{name: "size one", page: 7, size: 1, total: 7, wantOffset: 6, wantPages: 7},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := model.Pagination{Page: tt.page, Size: tt.size}
			require.Equal(t, tt.wantOffset, p.Offset())
			require.Equal(t, tt.wantPages, p.Pages(tt.total))
		})
	}
}

func TestRound1(t *testing.T) {
	t.Parallel()
	require.Equal(t, 3.7, model.Round1(3.66))
	require.Equal(t, 3.7, model.Round1(3.7))
	require.Equal(t, 1.0, model.Round1(1.04))
	require.Equal(t, 5.0, model.Round1(4.95))
}
