// Package blockdeque implements a double-ended queue backed by fixed-size
// blocks of 64 elements tracked through a growable slot table. Unlike a
// single ring buffer, growth never moves stored elements: only the table of
// block references is reallocated, so a full slot table doubles in O(blocks)
// pointer copies while every element stays where it was written. The deque
// offers amortized O(1) pushes and pops at both ends, O(1) indexed access,
// and random-access iterators that cross block boundaries transparently.
package blockdeque

import "errors"

const (
	// blockSize is the fixed element capacity of one block.
	blockSize = 64

	// minMapSlots is the floor on the slot table length.
	minMapSlots = 8
)

// Deque is a double-ended queue with stable element storage. Elements live
// in fixed-size blocks; the deque tracks them through a slot table (nil
// entries own no block) and a pair of cursors delimiting the occupied
// half-open range: start points at the first element, finish one past the
// last.
//
// To create a Deque instance, you must use one of the available
// constructors, MakeDeque(), MakeDequeRepeat(count, value), or
// CopySliceToDeque(s). nil and zero-value Deques panic when called, except
// for Len and the range-over-func iterators. Creating a Deque in the
// following way is wrong:
//
//	var deque Deque[int] // wrong
//
// The deque is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Deque[T any] struct {
	blocks [][]T

	startBlock, startOff   int
	finishBlock, finishOff int
	size                   int

	// epoch increments on every structural mutation (slot table
	// reallocation, block allocation or release, clear, swap, move).
	// Iterators capture it at creation and refuse stale dereferences.
	epoch uint64
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque allocates a deque with an 8-slot table and one block at its
// center, ready to grow toward either end.
func MakeDeque[T any]() *Deque[T] {
	d := &Deque[T]{}
	d.resetWithSlots(minMapSlots)
	return d
}

// MakeDequeRepeat allocates a deque holding count copies of value. Returns
// an error if passed a negative count.
func MakeDequeRepeat[T any](count int, value T) (*Deque[T], error) {
	if count < 0 {
		return nil, ErrNegativeLength
	}
	d := MakeDeque[T]()
	for range count {
		d.pushBack(value)
	}
	return d, nil
}

// CopySliceToDeque allocates a deque and pushes every element of the slice
// onto its back. Memory is not shared with the slice.
func CopySliceToDeque[T any](s []T) *Deque[T] {
	d := MakeDeque[T]()
	d.PushBack(s...)
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// Cap returns the element capacity of the current slot table. It is
// informational only: the table itself grows, so Cap never bounds how many
// elements may be stored.
func (d *Deque[T]) Cap() int { return len(d.blocks) * blockSize }

// PushBack takes in a variable number of arguments and puts them at the
// back of the Deque. The last argument is the new back. Use PushBack with
// PopFront for FIFO ordering, or with PopBack for LIFO ordering.
func (d *Deque[T]) PushBack(ts ...T) {
	for _, t := range ts {
		d.pushBack(t)
	}
}

// PushFront takes in a variable number of arguments and puts them at the
// front of the Deque. The last argument is the new front.
func (d *Deque[T]) PushFront(ts ...T) {
	for _, t := range ts {
		d.pushFront(t)
	}
}

// PopBack removes the last element in the Deque and returns it. Returns
// ErrEmpty if the Deque has no elements. The vacated slot is zeroed so
// references it held become collectable; a block vacated entirely is
// released back to the table.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	if d.finishOff == 0 {
		// The finish block holds no live elements once the cursor
		// retreats past its first slot.
		d.deallocateBlock(d.finishBlock)
		d.finishBlock--
		d.finishOff = blockSize
	}
	d.finishOff--
	t := d.blocks[d.finishBlock][d.finishOff]
	d.blocks[d.finishBlock][d.finishOff] = zero
	d.size--
	return t, nil
}

// PopFront removes the first element in the Deque and returns it. Returns
// ErrEmpty if the Deque has no elements. The vacated slot is zeroed; once
// the start cursor exhausts a block, that block is released.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	t := d.blocks[d.startBlock][d.startOff]
	d.blocks[d.startBlock][d.startOff] = zero
	d.startOff++
	if d.startOff == blockSize {
		d.deallocateBlock(d.startBlock)
		d.startBlock++
		d.startOff = 0
	}
	d.size--
	return t, nil
}

// EmplaceBack stores v in place at the back of the Deque and returns a
// pointer to the stored slot. The pointer stays valid until the next
// structural mutation.
func (d *Deque[T]) EmplaceBack(v T) *T {
	d.pushBack(v)
	b, o := d.backLoc()
	return &d.blocks[b][o]
}

// EmplaceFront stores v in place at the front of the Deque and returns a
// pointer to the stored slot. The pointer stays valid until the next
// structural mutation.
func (d *Deque[T]) EmplaceFront(v T) *T {
	d.pushFront(v)
	return &d.blocks[d.startBlock][d.startOff]
}

// Front returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) Front() (t T, ok bool) {
	if d.size == 0 {
		return
	}
	return d.blocks[d.startBlock][d.startOff], true
}

// Back returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) Back() (t T, ok bool) {
	if d.size == 0 {
		return
	}
	b, o := d.backLoc()
	return d.blocks[b][o], true
}

/*****************************************************************************
 * SLOT TABLE INTERNALS
 *****************************************************************************/

// pushBack advances the finish cursor into the next block when the current
// one is full, doubling the slot table first if that block index would fall
// off its end, then writes v at the cursor.
func (d *Deque[T]) pushBack(v T) {
	if d.finishOff == blockSize {
		if d.finishBlock+1 >= len(d.blocks) {
			d.reallocateMap(false)
		}
		// A block vacated earlier but not yet released is reused.
		if d.blocks[d.finishBlock+1] == nil {
			d.allocateBlock(d.finishBlock + 1)
		}
		d.finishBlock++
		d.finishOff = 0
	}
	d.blocks[d.finishBlock][d.finishOff] = v
	d.finishOff++
	d.size++
}

// pushFront is the mirror of pushBack at the start cursor, growing the slot
// table toward the front when the cursor would step before slot zero.
func (d *Deque[T]) pushFront(v T) {
	if d.startOff == 0 {
		if d.startBlock == 0 {
			d.reallocateMap(true)
		}
		if d.blocks[d.startBlock-1] == nil {
			d.allocateBlock(d.startBlock - 1)
		}
		d.startBlock--
		d.startOff = blockSize
	}
	d.startOff--
	d.blocks[d.startBlock][d.startOff] = v
	d.size++
}

// grownLayout is the single growth policy for the slot table: double the
// slot count (floor minMapSlots) and compute the new home for the occupied
// block range. Growth toward the front homes the range at one quarter of
// the new table so most fresh slots open up before it; growth toward the
// back re-centers it.
func grownLayout(mapSlots, liveBlocks int, addToFront bool) (newSlots, newStart int) {
	newSlots = max(minMapSlots, mapSlots*2)
	if addToFront {
		newStart = newSlots / 4
	} else {
		newStart = newSlots/2 - liveBlocks/2
	}
	return newSlots, newStart
}

// reallocateMap doubles the slot table and rebases the occupied block range
// per grownLayout. Only block references are copied; elements never move.
// Cursor block indices are rebased, offsets untouched.
func (d *Deque[T]) reallocateMap(addToFront bool) {
	liveBlocks := d.finishBlock - d.startBlock + 1
	newSlots, newStart := grownLayout(len(d.blocks), liveBlocks, addToFront)

	slots := make([][]T, newSlots)
	copy(slots[newStart:], d.blocks[d.startBlock:d.startBlock+liveBlocks])

	d.blocks = slots
	d.startBlock = newStart
	d.finishBlock = newStart + liveBlocks - 1
	d.epoch++
}

func (d *Deque[T]) allocateBlock(i int) {
	d.blocks[i] = make([]T, blockSize)
	d.epoch++
}

func (d *Deque[T]) deallocateBlock(i int) {
	d.blocks[i] = nil
	d.epoch++
}

// resetWithSlots discards all state and re-centers an empty cursor pair in
// a fresh table of at least minMapSlots slots, with the cursor block
// allocated so pushes can write immediately.
func (d *Deque[T]) resetWithSlots(slots int) {
	slots = max(minMapSlots, slots)
	center := slots / 2

	d.blocks = make([][]T, slots)
	d.blocks[center] = make([]T, blockSize)
	d.startBlock, d.startOff = center, 0
	d.finishBlock, d.finishOff = center, 0
	d.size = 0
	d.epoch++
}

// loc resolves a logical index to (block, offset) coordinates. No bounds
// check and no iteration.
func (d *Deque[T]) loc(i int) (block, off int) {
	off = d.startOff + i
	return d.startBlock + off/blockSize, off % blockSize
}

// backLoc returns the coordinates of the last element, stepping back across
// the block boundary when the finish cursor sits at offset zero.
func (d *Deque[T]) backLoc() (block, off int) {
	if d.finishOff == 0 {
		return d.finishBlock - 1, blockSize - 1
	}
	return d.finishBlock, d.finishOff - 1
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrEmpty is returned when popping from a Deque with no elements.
var ErrEmpty = errors.New("deque is empty")

// ErrOutOfRange is returned by checked element access with an index outside
// [0, Len()).
var ErrOutOfRange = errors.New("index out of range")

// ErrNegativeLength is returned when a count of elements is negative.
var ErrNegativeLength = errors.New("length cannot be negative")
