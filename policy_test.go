package elastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevelSizes(t *testing.T) {
	cases := []struct {
		capacity int
		want     []int
	}{
		{1, []int{1}},
		{2, []int{2}},
		{3, []int{2, 1}},
		{4, []int{2, 2}},
		{8, []int{4, 2, 2}},
	}

	for _, c := range cases {
		got := newLevelSizes(c.capacity)
		assert.Equal(t, c.want, got, "capacity %d", c.capacity)

		sum := 0
		for _, s := range got {
			sum += s
		}
		assert.Equal(t, c.capacity, sum, "sizes must sum to capacity %d", c.capacity)
	}
}

func TestNewLevelSizesLargeCapacitySumsExactly(t *testing.T) {
	for _, capacity := range []int{1024, 1000, 7919, 65536} {
		sizes := newLevelSizes(capacity)
		sum := 0
		for _, s := range sizes {
			assert.GreaterOrEqual(t, s, 1)
			sum += s
		}
		assert.Equal(t, capacity, sum)
	}
}
