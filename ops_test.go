package blockdeque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtSetChecked(t *testing.T) {
	d := CopySliceToDeque([]int{10, 20, 30})

	v, err := d.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)

	_, err = d.At(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = d.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.NoError(t, d.Set(2, 33))
	require.Equal(t, 33, d.AtUnsafe(2))

	require.ErrorIs(t, d.Set(3, 0), ErrOutOfRange)
	require.ErrorIs(t, d.Set(-1, 0), ErrOutOfRange)
}

func TestSetUnsafe(t *testing.T) {
	d := MakeDeque[int]()
	for i := range 130 {
		d.PushBack(i)
	}
	// Across a block boundary.
	d.SetUnsafe(100, -100)
	require.Equal(t, -100, d.AtUnsafe(100))
}

func TestResizeShrink(t *testing.T) {
	d := MakeDeque[int]()
	for i := range 200 {
		d.PushBack(i)
	}
	blocksBefore := allocatedBlocks(d)

	require.NoError(t, d.Resize(10, 0))
	require.Equal(t, 10, d.Len())
	for i := range 10 {
		require.Equal(t, i, d.AtUnsafe(i))
	}
	// Blocks vacated by the shrink are released.
	require.Less(t, allocatedBlocks(d), blocksBefore)
}

func TestResizeGrow(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	require.NoError(t, d.Resize(6, 9))
	require.Equal(t, []int{1, 2, 3, 9, 9, 9}, collect(d))
}

func TestResizeNoop(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	require.NoError(t, d.Resize(3, 0))
	require.Equal(t, []int{1, 2, 3}, collect(d))
}

func TestResizeToZeroAndNegative(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	require.ErrorIs(t, d.Resize(-1, 0), ErrNegativeLength)

	require.NoError(t, d.Resize(0, 0))
	require.Equal(t, 0, d.Len())

	d.PushBack(4)
	require.Equal(t, []int{4}, collect(d))
}

func TestInsertMiddle(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 4, 5})
	it := d.Insert(d.Begin().Add(2), 3)
	require.Equal(t, 3, it.Value())
	require.Equal(t, 5, d.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, collect(d))
}

func TestInsertFront(t *testing.T) {
	d := CopySliceToDeque([]int{2, 3})
	it := d.Insert(d.Begin(), 1)
	require.Equal(t, 1, it.Value())
	require.Equal(t, []int{1, 2, 3}, collect(d))
}

func TestInsertAtEnd(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2})
	it := d.Insert(d.End(), 3)
	require.Equal(t, 3, it.Value())
	require.True(t, it.Next().Equal(d.End()))
	require.Equal(t, []int{1, 2, 3}, collect(d))
}

func TestInsertIntoEmpty(t *testing.T) {
	d := MakeDeque[int]()
	it := d.Insert(d.Begin(), 1)
	require.Equal(t, 1, it.Value())
	require.Equal(t, []int{1}, collect(d))
}

func TestInsertAcrossBlocks(t *testing.T) {
	d := MakeDeque[int]()
	var want []int
	for i := range 200 {
		d.PushBack(i)
		want = append(want, i)
	}
	d.Insert(d.Begin().Add(70), -1)
	want = append(want[:70], append([]int{-1}, want[70:]...)...)
	require.Equal(t, want, collect(d))
}

func TestEraseMiddle(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3, 4, 5})
	it := d.Erase(d.Begin().Add(2))
	require.Equal(t, 4, it.Value())
	require.Equal(t, 4, d.Len())
	require.Equal(t, []int{1, 2, 4, 5}, collect(d))
}

func TestEraseLast(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	it := d.Erase(d.Begin().Add(2))
	require.True(t, it.Equal(d.End()))
	require.Equal(t, []int{1, 2}, collect(d))
}

func TestEraseFront(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	it := d.Erase(d.Begin())
	require.Equal(t, 2, it.Value())
	require.Equal(t, []int{2, 3}, collect(d))
}

func TestEmplaceAtPosition(t *testing.T) {
	d := CopySliceToDeque([]int{1, 3})
	it := d.Emplace(d.Begin().Add(1), 2)
	require.Equal(t, 2, it.Value())
	require.Equal(t, []int{1, 2, 3}, collect(d))

	it = d.Emplace(d.End(), 4)
	require.Equal(t, 4, it.Value())
	require.Equal(t, []int{1, 2, 3, 4}, collect(d))
}

func TestClearShrinksSlotTable(t *testing.T) {
	d := MakeDeque[int]()
	for i := range 3000 {
		d.PushBack(i)
	}
	capBefore := d.Cap()
	require.Greater(t, capBefore, minMapSlots*blockSize)

	d.Clear()
	require.Equal(t, 0, d.Len())
	require.Equal(t, capBefore/2, d.Cap())
	require.Equal(t, 1, allocatedBlocks(d))

	// Reusable after clear, and the table keeps halving down to the floor.
	d.PushBack(1)
	d.PushFront(0)
	require.Equal(t, []int{0, 1}, collect(d))

	for range 10 {
		d.Clear()
	}
	require.Equal(t, minMapSlots*blockSize, d.Cap())
}

func TestAssign(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	d.Assign(7, 8)
	require.Equal(t, []int{7, 8}, collect(d))

	d.Assign()
	require.Equal(t, 0, d.Len())
}

func TestAssignRepeat(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	require.NoError(t, d.AssignRepeat(4, 9))
	require.Equal(t, []int{9, 9, 9, 9}, collect(d))

	require.ErrorIs(t, d.AssignRepeat(-1, 9), ErrNegativeLength)
	// Contents untouched on error.
	require.Equal(t, []int{9, 9, 9, 9}, collect(d))
}

func TestCloneIndependent(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	c := d.Clone()
	require.True(t, Equal(d, c))

	c.PushBack(4)
	d.PushFront(0)
	require.Equal(t, []int{1, 2, 3, 4}, collect(c))
	require.Equal(t, []int{0, 1, 2, 3}, collect(d))
}

func TestCopyFrom(t *testing.T) {
	src := MakeDeque[int]()
	for i := range 1000 {
		src.PushBack(i)
	}
	dst := CopySliceToDeque([]int{-1, -2})
	dst.CopyFrom(src)
	require.True(t, Equal(src, dst))

	dst.PushBack(1000)
	require.Equal(t, 1000, src.Len())

	// Self copy is a no-op.
	src.CopyFrom(src)
	require.Equal(t, 1000, src.Len())
}

func TestMove(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	m := d.Move()

	require.Equal(t, []int{1, 2, 3}, collect(m))
	require.Equal(t, 0, d.Len())

	// The moved-from deque is a fresh empty deque, fully usable.
	d.PushBack(9)
	require.Equal(t, []int{9}, collect(d))
	require.Equal(t, []int{1, 2, 3}, collect(m))
}

func TestMoveFrom(t *testing.T) {
	src := CopySliceToDeque([]int{1, 2, 3})
	dst := CopySliceToDeque([]int{-1})

	dst.MoveFrom(src)
	require.Equal(t, []int{1, 2, 3}, collect(dst))
	require.Equal(t, 0, src.Len())

	src.PushBack(8)
	require.Equal(t, []int{8}, collect(src))

	dst.MoveFrom(dst)
	require.Equal(t, []int{1, 2, 3}, collect(dst))
}

func TestSwap(t *testing.T) {
	a := CopySliceToDeque([]int{1, 2})
	b := CopySliceToDeque([]int{3, 4, 5})

	a.Swap(b)
	require.Equal(t, []int{3, 4, 5}, collect(a))
	require.Equal(t, []int{1, 2}, collect(b))

	a.PushBack(6)
	b.PopFront()
	require.Equal(t, []int{3, 4, 5, 6}, collect(a))
	require.Equal(t, []int{2}, collect(b))

	a.Swap(a)
	require.Equal(t, []int{3, 4, 5, 6}, collect(a))
}

func TestEqual(t *testing.T) {
	var n1, n2 *Deque[int]
	require.True(t, Equal(n1, n2))
	require.False(t, Equal(n1, MakeDeque[int]()))

	a := CopySliceToDeque([]int{1, 2, 3})
	b := CopySliceToDeque([]int{1, 2, 3})
	require.True(t, Equal(a, b))

	require.NoError(t, b.Set(1, 9))
	require.False(t, Equal(a, b))

	b.Assign(1, 2)
	require.False(t, Equal(a, b))
}

func TestEqualFunc(t *testing.T) {
	a := CopySliceToDeque([]string{"A", "b"})
	b := CopySliceToDeque([]string{"a", "B"})
	caseless := func(x, y string) bool {
		return len(x) == len(y) && (x == y || x[0]|0x20 == y[0]|0x20)
	}
	require.True(t, a.EqualFunc(b, caseless))
	require.False(t, a.EqualFunc(CopySliceToDeque([]string{"a"}), caseless))
}

func TestIndexContains(t *testing.T) {
	d := CopySliceToDeque([]int{5, 6, 7, 6})

	require.Equal(t, 1, Index(d, 6))
	require.Equal(t, -1, Index(d, 8))
	require.True(t, Contains(d, 7))
	require.False(t, Contains(d, 8))

	require.Equal(t, 2, d.IndexFunc(func(v int) bool { return v > 6 }))
	require.Equal(t, -1, d.IndexFunc(func(v int) bool { return v < 0 }))
}
