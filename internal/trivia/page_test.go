package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages_CountMatchesCeil(t *testing.T) {
	for total := 0; total <= 101; total++ {
		pages := Pages(total)
		want := (total + 9) / 10
		if !assert.Len(t, pages, want, "total=%d", total) {
			continue
		}
		for i, p := range pages {
			assert.Equal(t, i+1, p, "total=%d", total)
		}
	}
}

func TestPages_TwentyThree(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Pages(23))
}

func TestPageCount_Negative(t *testing.T) {
	assert.Equal(t, 0, PageCount(-5))
	assert.Empty(t, Pages(-5))
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 0, 1},
		{0, 23, 1},
		{3, 23, 3},
		{4, 23, 3},
		{7, 10, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPage(tt.page, tt.total), "page=%d total=%d", tt.page, tt.total)
	}
}
