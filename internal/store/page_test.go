package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	testCases := []struct {
		name string
		page Page
		want int
	}{
		{
			name: "first page starts at zero",
			page: Page{Page: 1, Size: 50},
			want: 0,
		},
		{
			name: "later page multiplies out",
			page: Page{Page: 3, Size: 20},
			want: 40,
		},
		{
			name: "overflowing page clamps to max int",
			page: Page{Page: 92233720368547758, Size: 200},
			want: math.MaxInt,
		},
		{
			name: "max page at max size clamps to max int",
			page: Page{Page: math.MaxInt, Size: 200},
			want: math.MaxInt,
		},
		{
			name: "largest non-overflowing page still multiplies",
			page: Page{Page: math.MaxInt/200 + 1, Size: 200},
			want: (math.MaxInt / 200) * 200,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.page.Offset())
		})
	}
}
