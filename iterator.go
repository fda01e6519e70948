package blockdeque

import (
	"fmt"
	"iter"
)

/*****************************************************************************
 * ITERATOR
 *****************************************************************************/

// Iterator is a random-access cursor over a Deque: a non-owning view made
// of (block, offset) coordinates plus a reference to the owning deque. It
// never extends the lifetime of any storage.
//
// An Iterator captures the deque's epoch when created. Any structural
// mutation of the deque (slot table growth, block allocation or release,
// Clear, Swap, Move, and every Insert/Erase/Emplace call) invalidates it;
// dereferencing an invalidated Iterator panics instead of reading through
// reallocated storage. Arithmetic and comparisons stay usable on stale
// iterators since they never touch storage.
type Iterator[T any] struct {
	d     *Deque[T]
	epoch uint64
	block int
	off   int
}

// Begin returns an iterator to the first element. Equal to End() when the
// Deque is empty.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d, epoch: d.epoch, block: d.startBlock, off: d.startOff}
}

// End returns an iterator one past the last element. It must not be
// dereferenced.
func (d *Deque[T]) End() Iterator[T] {
	block, off := d.finishBlock, d.finishOff
	// The finish cursor may rest at one past a block's last slot until
	// the next push; iterators carry the normalized coordinates so that
	// positions compare by value.
	if off == blockSize {
		block++
		off = 0
	}
	return Iterator[T]{d: d, epoch: d.epoch, block: block, off: off}
}

// Value returns the element the iterator refers to.
func (it Iterator[T]) Value() T {
	it.check()
	return it.d.blocks[it.block][it.off]
}

// Ptr returns a pointer to the element the iterator refers to. The pointer
// stays valid until the deque's next structural mutation.
func (it Iterator[T]) Ptr() *T {
	it.check()
	return &it.d.blocks[it.block][it.off]
}

// Set overwrites the element the iterator refers to.
func (it Iterator[T]) Set(v T) {
	it.check()
	it.d.blocks[it.block][it.off] = v
}

// Next returns an iterator advanced by one position, crossing into the
// next block when the current one is exhausted.
func (it Iterator[T]) Next() Iterator[T] {
	it.off++
	if it.off == blockSize {
		it.block++
		it.off = 0
	}
	return it
}

// Prev returns an iterator retreated by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.off == 0 {
		it.block--
		it.off = blockSize - 1
	} else {
		it.off--
	}
	return it
}

// Add returns an iterator offset by n positions, which may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	off := it.off + n
	it.block += off / blockSize
	it.off = off % blockSize
	if it.off < 0 {
		it.block--
		it.off += blockSize
	}
	return it
}

// Sub returns an iterator offset by -n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// At returns the element n positions away from the iterator.
func (it Iterator[T]) At(n int) T { return it.Add(n).Value() }

// Diff returns the distance in elements between it and rhs, positive when
// it lies past rhs in iteration order. Both iterators must come from the
// same Deque.
func (it Iterator[T]) Diff(rhs Iterator[T]) int {
	return (it.block-rhs.block)*blockSize + (it.off - rhs.off)
}

// Equal returns whether both iterators refer to the same position of the
// same Deque state.
func (it Iterator[T]) Equal(rhs Iterator[T]) bool {
	return it.d == rhs.d && it.epoch == rhs.epoch &&
		it.block == rhs.block && it.off == rhs.off
}

// Less returns whether it precedes rhs in iteration order. Iterators are
// ordered only when they share the same Deque state; otherwise Less returns
// false.
func (it Iterator[T]) Less(rhs Iterator[T]) bool {
	if it.d != rhs.d || it.epoch != rhs.epoch {
		return false
	}
	return it.block < rhs.block || (it.block == rhs.block && it.off < rhs.off)
}

func (it Iterator[T]) check() {
	if it.d == nil {
		panic("blockdeque: dereference of zero Iterator")
	}
	if it.epoch != it.d.epoch {
		panic(fmt.Sprintf(
			"blockdeque: iterator invalidated by structural mutation (iterator epoch %d, deque epoch %d)",
			it.epoch, it.d.epoch))
	}
}

/*****************************************************************************
 * REVERSE ITERATOR
 *****************************************************************************/

// ReverseIterator walks a Deque back to front. It wraps a base Iterator
// positioned one past the element it refers to, so RBegin wraps End and
// REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse iterator to the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.End()}
}

// REnd returns a reverse iterator one past the first element. It must not
// be dereferenced.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: d.Begin()}
}

// Base returns the underlying forward iterator, one past the element the
// reverse iterator refers to.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Value returns the element the reverse iterator refers to.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Ptr returns a pointer to the element the reverse iterator refers to.
func (r ReverseIterator[T]) Ptr() *T { return r.base.Prev().Ptr() }

// Set overwrites the element the reverse iterator refers to.
func (r ReverseIterator[T]) Set(v T) { r.base.Prev().Set(v) }

// Next returns a reverse iterator advanced one position toward the front.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	r.base = r.base.Prev()
	return r
}

// Prev returns a reverse iterator retreated one position toward the back.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	r.base = r.base.Next()
	return r
}

// Add returns a reverse iterator offset by n positions toward the front.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	r.base = r.base.Sub(n)
	return r
}

// Sub returns a reverse iterator offset by n positions toward the back.
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	r.base = r.base.Add(n)
	return r
}

// At returns the element n positions toward the front.
func (r ReverseIterator[T]) At(n int) T { return r.Add(n).Value() }

// Diff returns the distance in elements between r and rhs in reverse
// iteration order.
func (r ReverseIterator[T]) Diff(rhs ReverseIterator[T]) int {
	return rhs.base.Diff(r.base)
}

// Equal returns whether both reverse iterators refer to the same position
// of the same Deque state.
func (r ReverseIterator[T]) Equal(rhs ReverseIterator[T]) bool {
	return r.base.Equal(rhs.base)
}

// Less returns whether r precedes rhs in reverse iteration order.
func (r ReverseIterator[T]) Less(rhs ReverseIterator[T]) bool {
	return rhs.base.Less(r.base)
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only, front to back. If you need
// indexes, use All instead. The Deque must not be mutated during iteration.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		block, off := d.startBlock, d.startOff
		for range d.size {
			if !yield(d.blocks[block][off]) {
				return
			}
			off++
			if off == blockSize {
				block++
				off = 0
			}
		}
	}
}

// All returns an iterator over index-value pairs, front to back. The Deque
// must not be mutated during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		block, off := d.startBlock, d.startOff
		for i := range d.size {
			if !yield(i, d.blocks[block][off]) {
				return
			}
			off++
			if off == blockSize {
				block++
				off = 0
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front. The
// Deque must not be mutated during iteration.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		block, off := d.finishBlock, d.finishOff
		for i := d.size - 1; i >= 0; i-- {
			if off == 0 {
				block--
				off = blockSize
			}
			off--
			if !yield(i, d.blocks[block][off]) {
				return
			}
		}
	}
}
