package idlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolPushAppendsInPlaceAtTail(t *testing.T) {
	var p Pool[int]
	var l List[int]
	l = p.Push(l, 1)
	l = p.Push(l, 2)
	l = p.Push(l, 3)
	assert.Equal(t, []int{1, 2, 3}, p.Slice(l))
}

func TestPoolPushRelocatesWhenNotAtTail(t *testing.T) {
	var p Pool[int]
	var a, b List[int]
	a = p.Push(a, 10)
	b = p.Push(b, 20) // b now sits at the tail, a no longer does
	a = p.Push(a, 11) // must relocate a rather than clobber b
	assert.Equal(t, []int{10, 11}, p.Slice(a))
	assert.Equal(t, []int{20}, p.Slice(b))
}

func TestPoolRemovePreservesOrder(t *testing.T) {
	var p Pool[int]
	var l List[int]
	for _, v := range []int{1, 2, 3, 4} {
		l = p.Push(l, v)
	}
	l = p.Remove(l, 1) // drop the "2"
	assert.Equal(t, []int{1, 3, 4}, p.Slice(l))
	assert.Equal(t, 3, l.Len())
}

func TestPoolRemoveLast(t *testing.T) {
	var p Pool[int]
	var l List[int]
	l = p.Push(l, 1)
	l = p.Push(l, 2)
	l = p.Remove(l, 1)
	assert.Equal(t, []int{1}, p.Slice(l))
}
