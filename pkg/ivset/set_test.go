package ivset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddFusesOverlappingAndAbutting(t *testing.T) {
	tests := []struct {
		name string
		adds []Interval[int]
		want []Interval[int]
	}{
		{
			name: "disjoint stays disjoint",
			adds: []Interval[int]{{0, 2}, {5, 7}},
			want: []Interval[int]{{0, 2}, {5, 7}},
		},
		{
			name: "abutting intervals fuse",
			adds: []Interval[int]{{0, 2}, {2, 4}},
			want: []Interval[int]{{0, 4}},
		},
		{
			name: "overlapping intervals fuse",
			adds: []Interval[int]{{0, 5}, {3, 8}},
			want: []Interval[int]{{0, 8}},
		},
		{
			name: "insert fills a gap between two intervals",
			adds: []Interval[int]{{0, 2}, {4, 6}, {2, 4}},
			want: []Interval[int]{{0, 6}},
		},
		{
			name: "empty interval is a no-op",
			adds: []Interval[int]{{3, 3}, {0, 1}},
			want: []Interval[int]{{0, 1}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New[int]()
			for _, iv := range tc.adds {
				s.Add(iv)
			}
			assert.Equal(t, tc.want, s.Intervals())
		})
	}
}

func TestSetContains(t *testing.T) {
	s := New[int]()
	s.Add(Interval[int]{2, 5})
	s.Add(Interval[int]{10, 12})

	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(9))
	assert.True(t, s.Contains(11))
}

func TestSetSumOfSizes(t *testing.T) {
	s := New[int]()
	s.Add(Interval[int]{0, 3})
	s.Add(Interval[int]{10, 11})
	require.Equal(t, 4, s.SumOfSizes())
}

func TestComplementIsInvolution(t *testing.T) {
	bound := Interval[int]{0, 20}
	s := New[int]()
	s.Add(Interval[int]{2, 5})
	s.Add(Interval[int]{10, 12})
	s.Add(Interval[int]{15, 20})

	c := s.Complement(bound)
	cc := c.Complement(bound)

	assert.True(t, s.Equal(cc), "Complement(Complement(s)) = %v, want %v", cc, s)
}

func TestComplementOfEmptySetIsBound(t *testing.T) {
	bound := Interval[int]{3, 9}
	s := New[int]()
	c := s.Complement(bound)
	assert.Equal(t, []Interval[int]{bound}, c.Intervals())
}

func TestComplementOfFullBoundIsEmpty(t *testing.T) {
	bound := Interval[int]{3, 9}
	s := New[int]()
	s.Add(bound)
	c := s.Complement(bound)
	assert.True(t, c.Empty())
}

func TestSetEqual(t *testing.T) {
	a := New[int]()
	a.Add(Interval[int]{0, 2})
	a.Add(Interval[int]{5, 6})

	b := New[int]()
	b.Add(Interval[int]{5, 6})
	b.Add(Interval[int]{0, 2})

	assert.True(t, a.Equal(b))

	b.AddValue(100)
	assert.False(t, a.Equal(b))
}

func TestLowerAndUpperBound(t *testing.T) {
	s := New[int]()
	s.Add(Interval[int]{2, 5})
	s.Add(Interval[int]{10, 12})

	lb, ok := s.LowerBound(4)
	require.True(t, ok)
	assert.Equal(t, Interval[int]{2, 5}, lb)

	lb, ok = s.LowerBound(7)
	require.True(t, ok)
	assert.Equal(t, Interval[int]{10, 12}, lb)

	_, ok = s.LowerBound(12)
	assert.False(t, ok)

	ub, ok := s.UpperBound(3)
	require.True(t, ok)
	assert.Equal(t, Interval[int]{10, 12}, ub)
}

func TestAddInvalidIntervalPanics(t *testing.T) {
	s := New[int]()
	assert.Panics(t, func() {
		s.Add(Interval[int]{Min: 5, Max: 1})
	})
}
