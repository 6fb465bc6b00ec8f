package singlell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{name: "both empty", a: []int{}, b: []int{}, want: true},
		{name: "same", a: []int{1, 2, 3}, b: []int{1, 2, 3}, want: true},
		{name: "prefix", a: []int{1, 2}, b: []int{1, 2, 3}, want: false},
		{name: "differ", a: []int{1, 3}, b: []int{1, 2}, want: false},
		{name: "empty and not", a: []int{}, b: []int{1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := From(tt.a...), From(tt.b...)
			assert.Equal(t, tt.want, Equal(a, b))
			assert.Equal(t, tt.want, Equal(b, a))
			assert.Equal(t, !tt.want, NotEqual(a, b))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	a := From("Go", "LIST")
	b := From("go", "list")
	assert.False(t, Equal(a, b))
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		less bool
		cmp  int
	}{
		{name: "prefix is smaller", a: []int{1, 2}, b: []int{1, 2, 3}, less: true, cmp: -1},
		{name: "first difference decides", a: []int{1, 3}, b: []int{1, 2}, less: false, cmp: 1},
		{name: "equal", a: []int{1, 2}, b: []int{1, 2}, less: false, cmp: 0},
		{name: "empty before anything", a: []int{}, b: []int{0}, less: true, cmp: -1},
		{name: "both empty", a: []int{}, b: []int{}, less: false, cmp: 0},
		{name: "shorter but bigger", a: []int{5}, b: []int{1, 2, 3}, less: false, cmp: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := From(tt.a...), From(tt.b...)
			assert.Equal(t, tt.less, Less(a, b))
			assert.Equal(t, tt.cmp, Compare(a, b))
			assert.Equal(t, Less(b, a), Greater(a, b))
			assert.Equal(t, !Less(b, a), LessOrEqual(a, b))
			assert.Equal(t, !Less(a, b), GreaterOrEqual(a, b))
			assert.Equal(t, tt.cmp == 0, Equal(a, b))
		})
	}
}

func TestLessFunc(t *testing.T) {
	byLen := func(x, y string) bool { return len(x) < len(y) }
	assert.True(t, LessFunc(From("a", "bb"), From("cc", "d"), byLen))
	assert.False(t, LessFunc(From("aa"), From("b"), byLen))
	assert.False(t, LessFunc(From("a"), From("b"), byLen))
}
