package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Finite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int64{1, 2, 3}}
	assert.Equal(int64(3), mem.Len())

	value, err := mem.Read(2)
	assert.NoError(err)
	assert.Equal(int64(3), value)

	_, err = mem.Read(3)
	assert.ErrorIs(err, ErrAddressRange)

	_, err = mem.Read(-1)
	assert.ErrorIs(err, ErrAddressNegative)

	err = mem.Write(3, 4)
	assert.ErrorIs(err, ErrAddressRange)
	assert.Equal(int64(3), mem.Len())

	err = mem.Write(0, -5)
	assert.NoError(err)
	assert.Equal([]int64{-5, 2, 3}, mem.Cells)
}

func TestMemory_Growable(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int64{1, 2, 3}, Growable: true}

	value, err := mem.Read(1000)
	assert.NoError(err)
	assert.Equal(int64(0), value)
	assert.Equal(int64(3), mem.Len())

	err = mem.Write(9, 7)
	assert.NoError(err)
	assert.Equal(int64(10), mem.Len())
	assert.Equal([]int64{1, 2, 3, 0, 0, 0, 0, 0, 0, 7}, mem.Cells)

	// Writes below the length never shrink it.
	err = mem.Write(4, 1)
	assert.NoError(err)
	assert.Equal(int64(10), mem.Len())

	err = mem.Write(-1, 1)
	assert.ErrorIs(err, ErrAddressNegative)
}

func TestMemory_Limit(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Growable: true, Limit: 8}

	err := mem.Write(7, 1)
	assert.NoError(err)

	err = mem.Write(8, 1)
	assert.ErrorIs(err, ErrMemoryLimit)
	assert.Equal(int64(8), mem.Len())

	mem = &Memory{Growable: true}
	err = mem.Write(MEMORY_LIMIT, 1)
	assert.ErrorIs(err, ErrMemoryLimit)
}

func TestMemory_Clone(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{Cells: []int64{1, 2}, Growable: true, Limit: 16}
	clone := mem.Clone()
	clone.Cells[0] = 9

	assert.Equal(int64(1), mem.Cells[0])
	assert.True(clone.Growable)
	assert.Equal(int64(16), clone.Limit)
}
