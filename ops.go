package blockdeque

/*****************************************************************************
 * ELEMENT ACCESS
 *****************************************************************************/

// At returns the element at the i-th position in the Deque. Returns
// ErrOutOfRange if i is not in [0, Len()).
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return d.AtUnsafe(i), nil
}

// AtUnsafe returns the element at the i-th position in the Deque. It
// performs no bounds check: out of range it reads an unoccupied slot, or
// panics when the resolved block is not allocated.
func (d *Deque[T]) AtUnsafe(i int) T {
	b, o := d.loc(i)
	return d.blocks[b][o]
}

// Set writes v to the i-th position in the Deque. Returns ErrOutOfRange if
// i is not in [0, Len()).
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.size {
		return ErrOutOfRange
	}
	d.SetUnsafe(i, v)
	return nil
}

// SetUnsafe writes v to the i-th position in the Deque with no bounds
// check.
func (d *Deque[T]) SetUnsafe(i int, v T) {
	b, o := d.loc(i)
	d.blocks[b][o] = v
}

/*****************************************************************************
 * SEQUENCE MUTATION
 *****************************************************************************/

// Resize changes the element count to n. When shrinking, trailing elements
// are removed back to front and blocks vacated along the way are released;
// when growing, copies of fill are pushed onto the back. Returns an error
// if n is negative.
func (d *Deque[T]) Resize(n int, fill T) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if n < d.size {
		var zero T
		toDrop := d.size - n
		block, off := d.finishBlock, d.finishOff
		for ; toDrop > 0; toDrop-- {
			if off == 0 {
				d.deallocateBlock(block)
				block--
				off = blockSize
			}
			off--
			d.blocks[block][off] = zero
		}
		d.finishBlock, d.finishOff = block, off
		d.size = n
		return nil
	}
	for d.size < n {
		d.pushBack(fill)
	}
	return nil
}

// Insert places v at the position pos refers to, shifting that element and
// everything behind it one slot toward the back, and returns an iterator to
// the inserted element. pos must lie in [Begin(), End()]; inserting at
// End() is a push onto the back.
//
// Cost is O(distance from pos to the back): the deque always extends at the
// back and shifts rightward, it does not shift toward the nearer end.
// Insert invalidates all outstanding iterators.
func (d *Deque[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	return d.insertAt(pos.Diff(d.Begin()), v)
}

// Emplace stores v in place at the position pos refers to and returns an
// iterator to the stored element. It shares Insert's growth path and
// shifting behavior, and like Insert it invalidates all outstanding
// iterators.
func (d *Deque[T]) Emplace(pos Iterator[T], v T) Iterator[T] {
	return d.insertAt(pos.Diff(d.Begin()), v)
}

func (d *Deque[T]) insertAt(index int, v T) Iterator[T] {
	d.epoch++
	if index == d.size {
		d.pushBack(v)
		return d.End().Prev()
	}
	// Extend storage by one slot with a copy of the back element, then
	// shift everything from index through the old back one to the right.
	b, o := d.backLoc()
	d.pushBack(d.blocks[b][o])
	for i := d.size - 1; i > index; i-- {
		d.SetUnsafe(i, d.AtUnsafe(i-1))
	}
	d.SetUnsafe(index, v)
	return d.Begin().Add(index)
}

// Erase removes the element pos refers to, shifting everything behind it
// one slot toward the front, and returns an iterator to the element now at
// that position (or End() when the last element was erased). pos must refer
// to a live element.
//
// Cost is O(distance from pos to the back). Erase invalidates all
// outstanding iterators.
func (d *Deque[T]) Erase(pos Iterator[T]) Iterator[T] {
	index := pos.Diff(d.Begin())
	d.epoch++
	for i := index; i < d.size-1; i++ {
		d.SetUnsafe(i, d.AtUnsafe(i+1))
	}
	_, _ = d.PopBack()
	return d.Begin().Add(index)
}

// Clear removes every element, releases every block, and re-centers an
// empty cursor pair in a slot table half the previous length (floor 8).
// Capacity shrinks on Clear by design; use Assign to refill afterwards.
func (d *Deque[T]) Clear() {
	d.resetWithSlots(len(d.blocks) / 2)
}

// Assign replaces the contents of the Deque with the given elements.
func (d *Deque[T]) Assign(ts ...T) {
	d.Clear()
	d.PushBack(ts...)
}

// AssignRepeat replaces the contents of the Deque with count copies of
// value. Returns an error if passed a negative count.
func (d *Deque[T]) AssignRepeat(count int, value T) error {
	if count < 0 {
		return ErrNegativeLength
	}
	d.Clear()
	for range count {
		d.pushBack(value)
	}
	return nil
}

/*****************************************************************************
 * COPY, MOVE, SWAP
 *****************************************************************************/

// Clone returns a deque with the same elements in the same order, stored
// independently: mutating either deque never affects the other.
func (d *Deque[T]) Clone() *Deque[T] {
	out := MakeDeque[T]()
	for v := range d.Iter() {
		out.pushBack(v)
	}
	return out
}

// CopyFrom replaces the contents of the Deque with a copy of other's
// elements, sizing the slot table like other's. CopyFrom of a deque onto
// itself is a no-op.
func (d *Deque[T]) CopyFrom(other *Deque[T]) {
	if d == other {
		return
	}
	d.resetWithSlots(len(other.blocks))
	for v := range other.Iter() {
		d.pushBack(v)
	}
}

// Move hands the Deque's entire state off to a new Deque in O(1), without
// copying any element, and leaves the receiver empty (a fresh default
// deque). Iterators into the receiver are invalidated.
func (d *Deque[T]) Move() *Deque[T] {
	moved := &Deque[T]{
		blocks:      d.blocks,
		startBlock:  d.startBlock,
		startOff:    d.startOff,
		finishBlock: d.finishBlock,
		finishOff:   d.finishOff,
		size:        d.size,
	}
	d.resetWithSlots(minMapSlots)
	return moved
}

// MoveFrom takes other's entire state in O(1), discarding the receiver's
// previous contents and leaving other empty. MoveFrom of a deque onto
// itself is a no-op.
func (d *Deque[T]) MoveFrom(other *Deque[T]) {
	if d == other {
		return
	}
	d.blocks = other.blocks
	d.startBlock, d.startOff = other.startBlock, other.startOff
	d.finishBlock, d.finishOff = other.finishBlock, other.finishOff
	d.size = other.size
	d.epoch++
	other.resetWithSlots(minMapSlots)
}

// Swap exchanges the contents of both deques in O(1). Iterators into either
// deque are invalidated.
func (d *Deque[T]) Swap(other *Deque[T]) {
	if d == other {
		return
	}
	d.blocks, other.blocks = other.blocks, d.blocks
	d.startBlock, other.startBlock = other.startBlock, d.startBlock
	d.startOff, other.startOff = other.startOff, d.startOff
	d.finishBlock, other.finishBlock = other.finishBlock, d.finishBlock
	d.finishOff, other.finishOff = other.finishOff, d.finishOff
	d.size, other.size = other.size, d.size
	d.epoch++
	other.epoch++
}

/*****************************************************************************
 * COMPARISON AND SEARCH
 *****************************************************************************/

// Equal returns whether both Deques have the same length and the same
// elements in the same order. Two nil Deques are equal, but an empty Deque
// and nil are not. This must not be a method, otherwise Deque would be
// constrained to comparable elements.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.size != d2.size {
		return false
	}
	for i := range d1.size {
		if d1.AtUnsafe(i) != d2.AtUnsafe(i) {
			return false
		}
	}
	return true
}

// EqualFunc returns whether both Deques have the same length and pairwise
// elements satisfying f, in order. Two nil Deques are equal, but an empty
// Deque and nil are not.
func (d *Deque[T]) EqualFunc(other *Deque[T], f func(T, T) bool) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.size != other.size {
		return false
	}
	for i := range d.size {
		if !f(d.AtUnsafe(i), other.AtUnsafe(i)) {
			return false
		}
	}
	return true
}

// Index returns the index of the first occurrence of v in the Deque or -1
// if absent. It cannot be a method, otherwise Deque would be constrained to
// comparable elements only.
func Index[T comparable](d *Deque[T], v T) int {
	for i, got := range d.All() {
		if got == v {
			return i
		}
	}
	return -1
}

// Contains returns whether v is in the Deque. This must not be a method,
// otherwise Deque would be constrained to comparable elements.
func Contains[T comparable](d *Deque[T], v T) bool {
	return Index(d, v) != -1
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	for i, got := range d.All() {
		if f(got) {
			return i
		}
	}
	return -1
}
