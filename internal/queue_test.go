package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_PushPop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue[int64]{}
	assert.True(q.Empty())

	q.Push(1, -2)
	q.Push(3)
	assert.Equal(3, q.Len())

	val, ok := q.Peek()
	assert.True(ok)
	assert.Equal(int64(1), val)

	val, ok = q.Pop()
	assert.True(ok)
	assert.Equal(int64(1), val)

	val, ok = q.Pop()
	assert.True(ok)
	assert.Equal(int64(-2), val)
	assert.Equal(1, q.Len())
}

func TestQueue_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	q := &Queue[int64]{}
	val, ok := q.Pop()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestQueue_Drain(t *testing.T) {
	assert := assert.New(t)

	q := &Queue[int64]{}
	q.Push(7, 8, 9)
	assert.Equal([]int64{7, 8, 9}, q.Drain())
	assert.True(q.Empty())
	assert.Nil(q.Drain())
}

func TestQueue_Clone(t *testing.T) {
	assert := assert.New(t)

	q := &Queue[int64]{}
	q.Push(1, 2)
	c := q.Clone()
	c.Push(3)
	q.Pop()

	assert.Equal([]int64{2}, q.Data)
	assert.Equal([]int64{1, 2, 3}, c.Data)
}

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	seen := map[[3]int]bool{}
	for perm := range Permutations([]int{0, 1, 2}) {
		seen[[3]int(perm)] = true
	}
	assert.Len(seen, 6)
	assert.True(seen[[3]int{2, 1, 0}])

	count := 0
	for range Permutations([]int{0, 1, 2, 3, 4}) {
		count++
	}
	assert.Equal(120, count)
}

func TestPermutations_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Permutations([]int{1, 2, 3}) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestPermutations_Empty(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for perm := range Permutations([]int{}) {
		assert.Empty(perm)
		count++
	}
	assert.Equal(1, count)
}
