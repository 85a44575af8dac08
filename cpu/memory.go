package cpu

import (
	"slices"
)

const (
	MEMORY_LIMIT = 1 << 24 // Default maximum cells of a growable memory.
)

// Memory is the machine's cell storage.
//
// A finite memory faults on any access at or beyond its length. A growable
// memory reads zero beyond its length, and extends with zero cells when
// written beyond its length, up to Limit cells. Length never shrinks.
type Memory struct {
	Cells    []int64
	Growable bool
	Limit    int64 // Maximum cells when growable; zero selects MEMORY_LIMIT.
}

// Len returns the provisioned number of cells.
func (mem *Memory) Len() int64 {
	return int64(len(mem.Cells))
}

func (mem *Memory) limit() int64 {
	if mem.Limit <= 0 {
		return MEMORY_LIMIT
	}
	return mem.Limit
}

// Read returns the cell at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr >= mem.Len() {
		if !mem.Growable {
			err = ErrAddressRange
		}
		return
	}

	value = mem.Cells[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr >= mem.Len() {
		if !mem.Growable {
			err = ErrAddressRange
			return
		}
		if addr >= mem.limit() {
			err = ErrMemoryLimit
			return
		}
		mem.Cells = append(mem.Cells, make([]int64, addr+1-mem.Len())...)
	}

	mem.Cells[addr] = value
	return
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() Memory {
	return Memory{
		Cells:    slices.Clone(mem.Cells),
		Growable: mem.Growable,
		Limit:    mem.Limit,
	}
}
